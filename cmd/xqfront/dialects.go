package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"xqfront/internal/dialect"
)

func newDialectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dialects",
		Short: "List dialect presets and the features each one allows",
		Args:  cobra.NoArgs,
		RunE:  runDialects,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	return cmd
}

type presetJSON struct {
	Name       string          `json:"name"`
	Version    string          `json:"version"`
	Extensions []string        `json:"extensions"`
	Features   map[string]bool `json:"features"`
}

func runDialects(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		return renderDialectsJSON(out)
	case "pretty":
		colored, err := useColor(cmd, out)
		if err != nil {
			return err
		}
		return renderDialectsPretty(out, colored)
	}
	return fmt.Errorf("unknown format: %s", format)
}

func renderDialectsJSON(w io.Writer) error {
	presets := make([]presetJSON, 0)
	for _, name := range dialect.PresetNames() {
		cfg, err := dialect.Preset(name)
		if err != nil {
			return err
		}
		p := presetJSON{
			Name:       name,
			Version:    cfg.Version.String(),
			Extensions: append([]string{}, cfg.Extensions.Names()...),
			Features:   make(map[string]bool),
		}
		for _, f := range dialect.Features() {
			p.Features[f.String()] = cfg.Allows(f)
		}
		presets = append(presets, p)
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(presets)
}

func renderDialectsPretty(w io.Writer, colored bool) error {
	names := dialect.PresetNames()
	configs := make([]dialect.Config, len(names))
	versionRow := []string{"version"}
	for i, name := range names {
		cfg, err := dialect.Preset(name)
		if err != nil {
			return err
		}
		configs[i] = cfg
		versionRow = append(versionRow, cfg.Version.String()+" "+cfg.Extensions.String())
	}

	rows := [][]string{versionRow}
	for _, f := range dialect.Features() {
		row := []string{f.String()}
		for _, cfg := range configs {
			if cfg.Allows(f) {
				row = append(row, "yes")
			} else {
				row = append(row, "-")
			}
		}
		rows = append(rows, row)
	}

	plain := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(append([]string{"feature"}, names...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			// row 0 is the header, row 1 the version line
			if !colored || row == table.HeaderRow || row <= 1 || row > len(rows) || col == 0 {
				return plain
			}
			if rows[row-1][col] == "yes" {
				return plain.Foreground(lipgloss.Color("2"))
			}
			return plain.Faint(true)
		})
	_, err := fmt.Fprintln(w, t.String())
	return err
}
