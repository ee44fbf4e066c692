package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"xqfront/internal/diag"
	"xqfront/internal/diagfmt"
	"xqfront/internal/dialect"
	"xqfront/internal/driver"
	"xqfront/internal/observ"
	"xqfront/internal/source"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.xq|dir>",
		Short: "Parse XQuery files and report diagnostics",
		Long: `Parse builds the syntax tree of a file, or of every query file under a
directory, and reports lexical and syntax diagnostics. The exit status is 1
when any error was reported.`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|short|json|tree)")
	cmd.Flags().String("severity", "info", "lowest severity to report (info|warning|error)")
	cmd.Flags().Int("jobs", 0, "max parallel files for directories (0=auto)")
	cmd.Flags().String("dialect", "", "dialect preset ("+strings.Join(dialect.PresetNames(), "|")+")")
	cmd.Flags().String("config", "", "dialect config file (TOML or YAML)")
	cmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	cmd.Flags().Bool("no-cache", false, "do not read or write the diagnostics cache")
	cmd.Flags().Bool("trivia", false, "include whitespace and comments in tree output")
	return cmd
}

type parseFlags struct {
	format  string
	floor   diag.Severity
	jobs    int
	ui      uiMode
	noCache bool
	trivia  bool
}

func readParseFlags(cmd *cobra.Command) (parseFlags, error) {
	var f parseFlags
	var err error
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	switch f.format {
	case "pretty", "short", "json", "tree":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	sev, err := cmd.Flags().GetString("severity")
	if err != nil {
		return f, fmt.Errorf("failed to get severity flag: %w", err)
	}
	if f.floor, err = diag.ParseSeverity(sev); err != nil {
		return f, err
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiValue, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiValue); err != nil {
		return f, err
	}
	if f.noCache, err = cmd.Flags().GetBool("no-cache"); err != nil {
		return f, fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	if f.trivia, err = cmd.Flags().GetBool("trivia"); err != nil {
		return f, fmt.Errorf("failed to get trivia flag: %w", err)
	}
	return f, nil
}

func runParse(cmd *cobra.Command, args []string) error {
	target := args[0]
	pf, err := readParseFlags(cmd)
	if err != nil {
		return err
	}
	g, err := readGlobalFlags(cmd)
	if err != nil {
		return err
	}
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	fs := afero.NewOsFs()
	cfg, origin, err := resolveDialect(cmd, fs, target)
	if err != nil {
		return err
	}
	info, err := fs.Stat(target)
	if err != nil {
		return err
	}

	opts := driver.Options{
		Dialect:         cfg,
		MaxDiagnostics:  g.maxDiagnostics,
		FS:              fs,
		Jobs:            pf.jobs,
		DiagnosticsOnly: pf.format == "pretty" || pf.format == "short",
	}
	if g.timings {
		opts.Timer = observ.NewTimer()
	}

	var fileSet *source.FileSet
	var results []*driver.ParseResult
	if info.IsDir() {
		if !pf.noCache && opts.DiagnosticsOnly {
			cache, err := driver.OpenDiskCache("xqfront")
			if err != nil {
				fmt.Fprintf(stderr, "xqfront: cache disabled: %v\n", err)
			}
			opts.Cache = cache
		}
		if pf.format == "pretty" && shouldUseTUI(pf.ui, stdout) {
			files, err := driver.ListQueryFiles(fs, target)
			if err != nil {
				return err
			}
			fileSet, results, err = parseDirWithUI(cmd.Context(), stdout, target, files, opts)
		} else {
			fileSet, results, err = driver.ParseDir(cmd.Context(), target, opts)
		}
	} else {
		var res *driver.ParseResult
		res, err = driver.Parse(cmd.Context(), target, opts)
		if res != nil {
			fileSet, results = res.FileSet, []*driver.ParseResult{res}
		}
	}
	if err != nil {
		return err
	}

	floor := pf.floor
	if g.quiet && floor < diag.SevWarning {
		floor = diag.SevWarning
	}
	for _, res := range results {
		res.Bag = diag.Filter(res.Bag, floor)
	}

	switch pf.format {
	case "json":
		err = renderParseJSON(stdout, fileSet, results, cfg, origin, opts.Timer, info.IsDir())
	case "tree":
		err = renderParseTree(cmd, fileSet, results, pf.trivia)
	case "short":
		err = renderParseShort(stdout, fileSet, results)
	default:
		err = renderParsePretty(cmd, fileSet, results, g.quiet)
	}
	if err != nil {
		return err
	}
	if info.IsDir() && g.timings && !g.quiet && pf.format != "json" {
		fmt.Fprint(stderr, opts.Timer.Summary())
	}
	for _, res := range results {
		if res.Bag.HasErrors() {
			return errHadErrors
		}
	}
	return nil
}

// renderParseShort prints every diagnostic on one line, for editors and CI
// problem matchers.
func renderParseShort(w io.Writer, fileSet *source.FileSet, results []*driver.ParseResult) error {
	for _, res := range results {
		if err := diag.WriteShort(w, res.Bag.Items(), fileSet, true); err != nil {
			return err
		}
	}
	return nil
}

func renderParsePretty(cmd *cobra.Command, fileSet *source.FileSet, results []*driver.ParseResult, quiet bool) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	errColor, err := useColor(cmd, stderr)
	if err != nil {
		return err
	}
	failed := 0
	for _, res := range results {
		if res.Bag.Len() > 0 {
			diagfmt.Pretty(stderr, res.Bag, fileSet, diagfmt.PrettyOpts{
				Color:     errColor,
				Context:   1,
				PathMode:  diagfmt.PathModeAuto,
				ShowNotes: true,
				ShowFixes: true,
			})
		}
		if res.Bag.HasErrors() {
			failed++
		}
		if !quiet {
			fmt.Fprintln(stdout, summaryLine(res))
		}
	}
	if !quiet && len(results) > 1 {
		fmt.Fprintf(stdout, "%d files, %d with errors\n", len(results), failed)
	}
	return nil
}

func summaryLine(res *driver.ParseResult) string {
	errs, warns := res.Bag.Count(diag.SevError), res.Bag.Count(diag.SevWarning)
	status := "ok"
	if errs > 0 || warns > 0 {
		status = fmt.Sprintf("%s, %s", plural(errs, "error"), plural(warns, "warning"))
	}
	detail := "xquery " + res.Version.String()
	if res.Cached {
		detail += ", cached"
	}
	return fmt.Sprintf("%s: %s (%s)", res.Path, status, detail)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

func renderParseTree(cmd *cobra.Command, fileSet *source.FileSet, results []*driver.ParseResult, trivia bool) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()
	outColor, err := useColor(cmd, stdout)
	if err != nil {
		return err
	}
	errColor, err := useColor(cmd, stderr)
	if err != nil {
		return err
	}
	for _, res := range results {
		diagfmt.Pretty(stderr, res.Bag, fileSet, diagfmt.PrettyOpts{Color: errColor, Context: 1})
		if res.Tree == nil {
			continue
		}
		if err := diagfmt.FormatTree(stdout, res.Tree, fileSet, diagfmt.TreeOpts{Color: outColor, Trivia: trivia, Annotate: true}); err != nil {
			return err
		}
	}
	return nil
}

type fileJSON struct {
	Path     string `json:"path"`
	Version  string `json:"version"`
	Encoding string `json:"encoding,omitempty"`
	Cached   bool   `json:"cached,omitempty"`
	diagfmt.DiagnosticsOutput
	Tree *diagfmt.NodeJSON `json:"tree,omitempty"`
}

type parseJSON struct {
	Dialect       string         `json:"dialect"`
	DialectSource string         `json:"dialect_source"`
	Files         []fileJSON     `json:"files"`
	Errors        int            `json:"errors"`
	Warnings      int            `json:"warnings"`
	Timings       *observ.Report `json:"timings,omitempty"`
}

func renderParseJSON(w io.Writer, fileSet *source.FileSet, results []*driver.ParseResult, cfg dialect.Config, origin string, timer *observ.Timer, dir bool) error {
	doc := parseJSON{Dialect: cfg.String(), DialectSource: origin, Files: make([]fileJSON, 0, len(results))}
	for _, res := range results {
		fj := fileJSON{
			Path:     res.Path,
			Version:  res.Version.String(),
			Encoding: res.Encoding,
			Cached:   res.Cached,
			DiagnosticsOutput: diagfmt.BuildDiagnosticsOutput(res.Bag, fileSet, diagfmt.JSONOpts{
				IncludePositions: true,
				PathMode:         diagfmt.PathModeRelative,
				IncludeNotes:     true,
				IncludeFixes:     true,
			}),
		}
		if res.Tree != nil {
			tree := diagfmt.BuildTreeJSON(res.Tree, res.Tree.Root, diagfmt.TreeOpts{})
			fj.Tree = &tree
		}
		doc.Errors += fj.Errors
		doc.Warnings += fj.Warnings
		doc.Files = append(doc.Files, fj)
	}
	if timer != nil && dir {
		report := timer.Report()
		doc.Timings = &report
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}
