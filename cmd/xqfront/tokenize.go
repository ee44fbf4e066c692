package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"xqfront/internal/diagfmt"
	"xqfront/internal/driver"
	"xqfront/internal/observ"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] file.xq",
		Short: "Print the tokens of an XQuery file",
		Long:  `Tokenize prints every token of a file, whitespace and comments included, with its kind and position.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}

	opts := driver.Options{MaxDiagnostics: g.maxDiagnostics}
	if g.timings {
		opts.Timer = observ.NewTimer()
	}
	result, err := driver.Tokenize(cmd.Context(), args[0], opts)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	if result.Bag.Len() > 0 {
		errColor, err := useColor(cmd, stderr)
		if err != nil {
			return err
		}
		result.Bag.Sort()
		diagfmt.Pretty(stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{Color: errColor, Context: 1})
	}

	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(stdout, result.Tokens, result.FileSet)
	default:
		outColor, cerr := useColor(cmd, stdout)
		if cerr != nil {
			return cerr
		}
		err = diagfmt.FormatTokensPretty(stdout, result.Tokens, result.FileSet, outColor)
	}
	if err != nil {
		return err
	}
	if g.timings && !g.quiet {
		fmt.Fprint(stderr, opts.Timer.Summary())
	}
	if result.Bag.HasErrors() {
		return errHadErrors
	}
	return nil
}
