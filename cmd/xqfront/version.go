package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"xqfront/internal/dialect"
	"xqfront/internal/version"
)

const versionTagline = "lossless trees for every query"

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show xqfront build information",
		Args:  cobra.NoArgs,
		RunE:  runVersion,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("full", false, "include commit, message and build date")
	return cmd
}

func supportedLanguages() []string {
	return []string{dialect.V10.String(), dialect.V30.String(), dialect.V31.String()}
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	full, err := cmd.Flags().GetBool("full")
	if err != nil {
		return fmt.Errorf("failed to get full flag: %w", err)
	}
	info := version.Current(supportedLanguages())
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(info)
	case "pretty":
		colored, err := useColor(cmd, out)
		if err != nil {
			return err
		}
		renderVersionPretty(out, info, full, colored)
		return nil
	}
	return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
}

func renderVersionPretty(w io.Writer, info version.Info, full, colored bool) {
	dim := color.New(color.Faint)
	if colored {
		dim.EnableColor()
	} else {
		dim.DisableColor()
	}
	fmt.Fprintf(w, "xqfront %s  %s\n", version.Colored(info.Version, colored), dim.Sprint(versionTagline))
	fmt.Fprintf(w, "  xquery: %v\n", info.Languages)
	fmt.Fprintf(w, "  go:     %s\n", info.GoVersion)
	if !full {
		return
	}
	optional := []struct{ label, value string }{
		{"commit", info.GitCommit},
		{"message", info.GitMessage},
		{"built", info.BuildDate},
	}
	for _, o := range optional {
		if o.value != "" {
			fmt.Fprintf(w, "  %-7s %s\n", o.label+":", o.value)
		}
	}
}
