package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-yaml"

	"github.com/ecatools/ecaplugin"
)

// OutputFormat represents the output format of the list command
type OutputFormat string

const (
	// FormatTable outputs one table per session (default)
	FormatTable OutputFormat = "table"
	// FormatYAML outputs as YAML
	FormatYAML OutputFormat = "yaml"
	// FormatJSON outputs as JSON
	FormatJSON OutputFormat = "json"
)

// sessionReport is the serialized view of an opened session.
type sessionReport struct {
	Path     string        `yaml:"path" json:"path"`
	Format   string        `yaml:"format" json:"format"`
	Tracks   []trackReport `yaml:"tracks" json:"tracks"`
	Warnings []string      `yaml:"warnings,omitempty" json:"warnings,omitempty"`
}

type trackReport struct {
	Name       string         `yaml:"name" json:"name"`
	Channels   int            `yaml:"channels" json:"channels"`
	SampleRate int            `yaml:"sample_rate" json:"sample_rate"`
	Plugins    []pluginReport `yaml:"plugins" json:"plugins"`
}

type pluginReport struct {
	Index   int      `yaml:"index" json:"index"`
	Kind    string   `yaml:"kind" json:"kind"`
	ID      string   `yaml:"id" json:"id"`
	Name    string   `yaml:"name,omitempty" json:"name,omitempty"`
	Enabled bool     `yaml:"enabled" json:"enabled"`
	Values  []string `yaml:"values" json:"values"`
}

func newSessionReport(s *ecaplugin.Session) sessionReport {
	report := sessionReport{
		Path:   s.Path,
		Format: s.Format.String(),
		Tracks: make([]trackReport, 0, len(s.Tracks)),
	}
	for _, t := range s.Tracks {
		tr := trackReport{
			Name:       t.Name,
			Channels:   t.Channels,
			SampleRate: t.SampleRate,
			Plugins:    make([]pluginReport, 0, len(t.Plugins)),
		}
		for i, p := range t.Plugins {
			tr.Plugins = append(tr.Plugins, pluginReport{
				Index:   i,
				Kind:    p.Kind.String(),
				ID:      p.Identity(),
				Name:    p.Name,
				Enabled: p.Enabled,
				Values:  p.Values,
			})
		}
		report.Tracks = append(report.Tracks, tr)
	}
	for _, w := range s.Warnings {
		report.Warnings = append(report.Warnings, w.String())
	}
	return report
}

// writeReports renders the sessions in the requested format.
func writeReports(w io.Writer, sessions []*ecaplugin.Session, format OutputFormat) error {
	reports := make([]sessionReport, 0, len(sessions))
	for _, s := range sessions {
		reports = append(reports, newSessionReport(s))
	}

	switch format {
	case FormatTable, "":
		return writeTables(w, reports)
	case FormatYAML:
		data, err := yaml.Marshal(reports)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	disabledStyle = cellStyle.
			Foreground(lipgloss.Color("241"))
)

func writeTables(w io.Writer, reports []sessionReport) error {
	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", r.Path, r.Format))); err != nil {
			return err
		}

		var rows [][]string
		var disabled []bool
		for _, t := range r.Tracks {
			name := t.Name
			if name == "" {
				name = "-"
			}
			if len(t.Plugins) == 0 {
				rows = append(rows, []string{name, "", "", "", "", "", ""})
				disabled = append(disabled, false)
				continue
			}
			for _, p := range t.Plugins {
				rows = append(rows, []string{
					name,
					strconv.Itoa(p.Index),
					p.Kind,
					p.ID,
					p.Name,
					strconv.FormatBool(p.Enabled),
					strings.Join(p.Values, ","),
				})
				disabled = append(disabled, !p.Enabled)
			}
		}

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers("TRACK", "#", "KIND", "ID", "NAME", "ENABLED", "VALUES").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				case row >= 0 && row < len(disabled) && disabled[row]:
					return disabledStyle
				default:
					return cellStyle
				}
			})
		if _, err := fmt.Fprintln(w, t.Render()); err != nil {
			return err
		}

		for _, warning := range r.Warnings {
			if _, err := fmt.Fprintf(w, "skipped: %s\n", warning); err != nil {
				return err
			}
		}
	}
	return nil
}
