package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/phrazzld/digits/internal/domain"
	"github.com/phrazzld/digits/internal/domain/arith"
	"github.com/spf13/cobra"
)

// CLI output formatters
var (
	errorColor  = color.New(color.FgRed, color.Bold)
	resultColor = color.New(color.FgGreen, color.Bold)
	headerColor = color.New(color.FgBlue, color.Bold)
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	outputJSON bool
	saturate   bool
	namesOnly  bool
	noColor    bool
}

// newRootCmd creates the root command with all subcommands.
func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "digitcalc",
		Short: "Single-digit decimal arithmetic",
		Long: `Evaluate one decimal digit operation or print an operation table.

Every operation yields a result digit and an optional secondary digit:
a carry for add and multiply, a borrow for subtract, a remainder for divide.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&opts.outputJSON, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&opts.saturate, "saturate", false, "Clamp operands above 9 to 9 instead of failing")
	rootCmd.PersistentFlags().BoolVar(&opts.namesOnly, "names-only", false, "Accept operator names only, not symbols")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(newEvalCmd(opts))
	rootCmd.AddCommand(newTableCmd(opts))

	return rootCmd
}

func newEngine(opts *options) (arith.Service, error) {
	return arith.NewServiceWithParams(arith.NewParams(arith.ParamsConfig{
		SaturateOrdinals: opts.saturate,
		NamesOnly:        opts.namesOnly,
	}), nil)
}

// evalOutput is the JSON form of an evaluated operation.
type evalOutput struct {
	Operator      domain.Operator  `json:"operator"`
	Digit         domain.Digit     `json:"digit"`
	Secondary     domain.Secondary `json:"secondary"`
	SecondaryKind string           `json:"secondary_kind"`
}

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <lhs> <op> <rhs>",
		Short: "Evaluate a single digit operation",
		Example: `  digitcalc eval 7 - 8
  digitcalc eval 8 multiply 7
  digitcalc --json eval 9 / 5`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(opts)
			if err != nil {
				return err
			}

			op, err := engine.ParseOperator(args[1])
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			res, err := engine.Evaluate(op, args[0], args[2])
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), evalOutput{
					Operator:      op,
					Digit:         res.Digit,
					Secondary:     res.Secondary,
					SecondaryKind: op.SecondaryKind(),
				})
			}

			line := fmt.Sprintf("digit=%s", res.Digit)
			if s, ok := res.Secondary.Get(); ok {
				line += fmt.Sprintf(" %s=%s", op.SecondaryKind(), s)
			}
			_, err = resultColor.Fprintln(cmd.OutOrStdout(), line)
			return err
		},
	}
}

func newTableCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "table <op>",
		Short: "Print the result of an operator for every pair of digits",
		Long: `Print a 10x10 grid with the left operand as rows and the right operand as
columns. Entries are "digit" or "digit,secondary"; "err" marks division by zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine(opts)
			if err != nil {
				return err
			}
			op, err := engine.ParseOperator(args[0])
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}
			table, err := engine.Table(op)
			if err != nil {
				return reportError(cmd.ErrOrStderr(), err)
			}

			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), table.Cells)
			}

			_, err = headerColor.Fprintf(cmd.OutOrStdout(), "%s (secondary: %s)\n", op, op.SecondaryKind())
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), table.Format())
			return err
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportError prints err to w and returns it so cobra exits non-zero.
func reportError(w io.Writer, err error) error {
	_, _ = errorColor.Fprintf(w, "Error: %v\n", err)
	return err
}
