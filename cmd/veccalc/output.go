package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-vector/internal/cpu"
)

type result struct {
	job   Job
	value string
	err   error
}

// operands renders the inputs of a job for the table view.
func (j Job) operands() string {
	var parts []string
	for _, kv := range [][2]string{{"a", j.A}, {"b", j.B}, {"c", j.C}, {"t", j.T}, {"u", j.U}, {"v", j.V}} {
		if kv[1] != "" {
			parts = append(parts, kv[0]+"="+kv[1])
		}
	}
	return strings.Join(parts, " ")
}

// writeResults prints results either as an aligned table or, for "plain",
// one value (or error) per line.
func writeResults(w io.Writer, format, typ string, results []result) error {
	if format == "plain" {
		for _, r := range results {
			line := r.value
			if r.err != nil {
				line = "error: " + r.err.Error()
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Op\tType\tOperands\tResult\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "--\t----\t--------\t------\n"); err != nil {
		return err
	}
	for _, r := range results {
		value := r.value
		if r.err != nil {
			value = "error: " + r.err.Error()
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.job.Op, typ, r.job.operands(), value); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// writeInfo prints the detected CPU features and the providers registered
// for the engine's element type, marking the one lookups resolve to.
func writeInfo(w io.Writer, e evaluator) error {
	f := cpu.DetectFeatures()
	if _, err := fmt.Fprintf(w, "arch=%s sse2=%t avx2=%t neon=%t force_generic=%t\n\n",
		f.Architecture, f.HasSSE2, f.HasAVX2, f.HasNEON, f.ForceGeneric); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Type\tProvider\tSIMD\tPriority\tSelected\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "----\t--------\t----\t--------\t--------\n"); err != nil {
		return err
	}
	selected := false
	for _, info := range e.Entries() {
		mark := ""
		if !selected && cpu.Supports(f, info.SIMDLevel) {
			mark = "*"
			selected = true
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			e.Name(), info.Name, info.SIMDLevel, info.Priority, mark); err != nil {
			return err
		}
	}
	return tw.Flush()
}
