package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// jobFile is the YAML layout of a batch file:
//
//	type: fixed        # optional, overrides --type
//	jobs:
//	  - {op: dot, a: "1,2,3", b: "4,5,6"}
//	  - {op: lerp, a: "0,0", b: "10,20", t: "0.5"}
type jobFile struct {
	Type string `yaml:"type"`
	Jobs []Job  `yaml:"jobs"`
}

func loadJobs(path string) (*jobFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var jf jobFile
	if err := yaml.Unmarshal(data, &jf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(jf.Jobs) == 0 {
		return nil, fmt.Errorf("%s: no jobs", path)
	}
	return &jf, nil
}

func (a *app) batchCmd() *cobra.Command {
	var file string
	var strict bool

	cmd := &cobra.Command{
		Use:   "batch -f jobs.yaml",
		Short: "run every job in a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jf, err := loadJobs(file)
			if err != nil {
				return err
			}
			e := a.engine
			if jf.Type != "" {
				if e, err = engineFor(jf.Type); err != nil {
					return err
				}
			}

			results := make([]result, len(jf.Jobs))
			failed := 0
			for i, job := range jf.Jobs {
				if job.Tolerance == "" {
					job.Tolerance = a.defaultTolerance()
				}
				value, err := e.Eval(job, a.cfg.Precision)
				if err != nil {
					failed++
					a.log.Warn("batch job failed", "index", i, "op", job.Op, "err", err)
				}
				results[i] = result{job: job, value: value, err: err}
			}
			if err := writeResults(cmd.OutOrStdout(), a.cfg.Format, e.Name(), results); err != nil {
				return err
			}
			if strict && failed > 0 {
				return fmt.Errorf("%d of %d jobs failed", failed, len(jf.Jobs))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "job file (yaml)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when any job fails")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
