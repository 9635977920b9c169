// Package cli implements the spirits command tree.
package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/armn3t/go-spirits"
	"github.com/armn3t/go-spirits/internal/config"
	"github.com/armn3t/go-spirits/internal/logging"
	"github.com/armn3t/go-spirits/internal/output"
)

// NoMatchError is returned by commands whose answer is negative, so main can
// exit non-zero without printing an error.
type NoMatchError struct {
	Msg string
}

func (e *NoMatchError) Error() string {
	return e.Msg
}

type rootOptions struct {
	configFile string
	verbosity  int
	output     string
	charset    string
	strict     bool
	parallel   bool

	cfg *config.Config
}

// NewRootCmd builds the spirits command and its subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "spirits",
		Short: "Match strings against glob-style patterns",
		Long: `spirits matches strings against patterns with three metacharacters:

  *   any run of characters, including none
  .   exactly one character
  ?   exactly one character, optional at the end of a pattern

A backslash makes the next character literal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (.yaml, .yml or .toml)")
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output format: text, json, yaml or toml")
	flags.StringVar(&opts.charset, "charset", "", `Restrict pattern characters ("default" or a literal set)`)
	flags.BoolVar(&opts.strict, "strict", false, "Reject patterns ending in an unescaped backslash")
	flags.BoolVar(&opts.parallel, "parallel", false, "Split large candidate lists across CPUs")

	cmd.AddCommand(
		newMatchCmd(opts),
		newFindCmd(opts),
		newBestCmd(opts),
		newMapCmd(opts),
		newStrengthCmd(opts),
	)

	return cmd
}

// load merges the config file, environment and flags, then sets up logging.
func (o *rootOptions) load(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = o.output
	}
	if flags.Changed("charset") {
		cfg.Charset = o.charset
	}
	if flags.Changed("strict") {
		cfg.Strict = o.strict
	}
	if flags.Changed("parallel") {
		cfg.Parallel = o.parallel
	}
	cfg.Verbosity += o.verbosity
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg

	logging.Setup(cfg.Verbosity, cmd.ErrOrStderr())
	log.Debug().
		Str("command", cmd.Name()).
		Str("config", o.configFile).
		Str("output", cfg.Output).
		Msg("Command started")
	return nil
}

func (o *rootOptions) printer(cmd *cobra.Command) (*output.Printer, error) {
	return output.New(cmd.OutOrStdout(), o.cfg.Output)
}

// compileOptions returns the options for compiling user patterns.
func (o *rootOptions) compileOptions(component string) []spirits.Option {
	opts := []spirits.Option{spirits.WithLogger(logging.Get(component))}
	if v := o.cfg.Validator(); v != nil {
		opts = append(opts, spirits.WithValidator(v))
	}
	return opts
}

// compile compiles a single user pattern.
func (o *rootOptions) compile(component, text string) (*spirits.Pattern, error) {
	return spirits.Compile(text, o.compileOptions(component)...)
}

// set compiles texts, falling back to the configured patterns when texts is
// empty.
func (o *rootOptions) set(component string, texts []string) (*spirits.Set, error) {
	if len(texts) == 0 {
		texts = o.cfg.Patterns
	}
	return spirits.NewSet(texts, o.compileOptions(component)...)
}
