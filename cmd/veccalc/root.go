package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-vector/arith"
	"github.com/cwbudde/algo-vector/internal/config"
	"github.com/cwbudde/algo-vector/vector"
)

// app holds the flag values and the configuration resolved from them.
type app struct {
	configFile  string
	elementType string
	tolerance   float64
	precision   int
	format      string
	logLevel    string
	logFormat   string

	cfg    *config.Config
	engine evaluator
	log    *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "veccalc",
		Short:        "evaluate n-dimensional vector operations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&a.elementType, "type", config.DefaultElementType,
		"element type: "+strings.Join(config.ElementTypes, ", "))
	pf.Float64Var(&a.tolerance, "tolerance", config.DefaultTolerance, "eq tolerance, 0 compares exactly")
	pf.IntVar(&a.precision, "precision", config.DefaultPrecision, "digits after the decimal point, -1 for shortest")
	pf.StringVar(&a.format, "format", config.DefaultFormat, "output format: table or plain")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	pf.StringVar(&a.logFormat, "log-format", config.DefaultLogFormat, "log format: text or json")

	for _, op := range ops {
		root.AddCommand(a.opCmd(op.name, op.usage, op.short))
	}
	root.AddCommand(a.batchCmd(), a.infoCmd())
	return root
}

// setup merges defaults, the config file and explicitly set flags, in that
// order, and installs the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg.ElementType = a.elementType
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = a.tolerance
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.log = installLogger(cmd.ErrOrStderr(), cfg)

	e, err := engineFor(cfg.ElementType)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.engine = e
	return nil
}

func installLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level()}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	l := slog.New(h)
	arith.SetLogger(l)
	vector.SetLogger(l)
	return l
}

// defaultTolerance is the configured tolerance as job text, empty when exact.
func (a *app) defaultTolerance() string {
	if a.cfg.Tolerance <= 0 {
		return ""
	}
	return strconv.FormatFloat(a.cfg.Tolerance, 'f', -1, 64)
}

// opCmd builds the subcommand for one operation. Positional arguments fill
// the operands in the order the usage line names them.
func (a *app) opCmd(name, usage, short string) *cobra.Command {
	fields := strings.Fields(usage)[1:]
	return &cobra.Command{
		Use:   strings.ToLower(usage),
		Short: short,
		Args:  cobra.ExactArgs(len(fields)),
		RunE: func(cmd *cobra.Command, args []string) error {
			job := Job{Op: name, Tolerance: a.defaultTolerance()}
			for i, f := range fields {
				switch f {
				case "A":
					job.A = args[i]
				case "B":
					job.B = args[i]
				case "C":
					job.C = args[i]
				case "T":
					job.T = args[i]
				case "U":
					job.U = args[i]
				case "V":
					job.V = args[i]
				}
			}
			a.log.Debug("veccalc: evaluate", "op", name, "type", a.engine.Name())
			value, err := a.engine.Eval(job, a.cfg.Precision)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			return writeResults(cmd.OutOrStdout(), a.cfg.Format, a.engine.Name(), []result{{job: job, value: value}})
		},
	}
}

// execute runs root with args after moving operands that start with a minus
// sign, such as "-1,2" or "-0.5", behind a "--" so they are not read as
// flags. Values of flags that take one are left in place, so
// "--precision -1" still sets the precision.
func execute(root *cobra.Command, args []string) error {
	root.SetArgs(operandArgs(root, args))
	return root.Execute()
}

func operandArgs(root *cobra.Command, args []string) []string {
	var flags, positional []string
	negative := false
	for i := 0; i < len(args); i++ {
		tok := args[i]
		switch {
		case tok == "--":
			positional = append(positional, args[i+1:]...)
			i = len(args)
		case isNegativeOperand(tok):
			negative = true
			positional = append(positional, tok)
		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			flags = append(flags, tok)
			if takesValue(root, tok) && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		default:
			positional = append(positional, tok)
		}
	}
	if !negative || len(positional) == 0 {
		return args
	}
	if c, _, err := root.Find(positional[:1]); err != nil || c == root {
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, positional[0])
	out = append(out, flags...)
	out = append(out, "--")
	return append(out, positional[1:]...)
}

func isNegativeOperand(tok string) bool {
	if len(tok) < 2 || tok[0] != '-' {
		return false
	}
	c := tok[1]
	return c == '.' || (c >= '0' && c <= '9')
}

// takesValue reports whether tok names a non-boolean flag of root or one of
// its subcommands and carries no inline "=value".
func takesValue(root *cobra.Command, tok string) bool {
	if strings.Contains(tok, "=") {
		return false
	}
	lookup := func(fs *pflag.FlagSet) *pflag.Flag {
		if name, ok := strings.CutPrefix(tok, "--"); ok {
			return fs.Lookup(name)
		}
		if len(tok) == 2 {
			return fs.ShorthandLookup(tok[1:])
		}
		return nil
	}
	sets := []*pflag.FlagSet{root.PersistentFlags()}
	for _, c := range root.Commands() {
		sets = append(sets, c.Flags())
	}
	for _, fs := range sets {
		if f := lookup(fs); f != nil {
			return f.Value.Type() != "bool"
		}
	}
	return false
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "show CPU features and the providers registered for --type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeInfo(cmd.OutOrStdout(), a.engine)
		},
	}
}
