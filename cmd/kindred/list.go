package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

type listOptions struct {
	format string
}

func (o listOptions) validate() error {
	switch o.format {
	case formatText, formatYAML, formatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want text, yaml or json)", o.format)
	}
}

func newPaletteCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "List the colors available to both layers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			app, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			palette, err := app.Config.BuildPalette()
			if err != nil {
				return err
			}
			return writePalette(cmd.OutOrStdout(), palette, opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text, yaml or json")
	return cmd
}

type paletteDocument struct {
	Palette []string `yaml:"palette" json:"palette"`
}

func writePalette(w io.Writer, palette *logo.Palette, format string) error {
	colors := palette.Colors()
	doc := paletteDocument{Palette: make([]string, len(colors))}
	for i, c := range colors {
		doc.Palette[i] = string(c)
	}

	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode palette: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "INDEX\tCOLOR\tSWATCH")
	for i, c := range colors {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(string(c))).Render("████")
		fmt.Fprintf(writer, "%d\t%s\t%s\n", i, c, swatch)
	}
	return writer.Flush()
}

func newShapesCmd(flags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Load the shape catalog and list its accent shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			app, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, logger := app.CommandContext(cmd, "command.shapes")
			svc, err := app.Studio(logger, nil)
			if err != nil {
				return err
			}
			if err := svc.Load(ctx); err != nil {
				return err
			}
			catalog, err := svc.Catalog()
			if err != nil {
				return err
			}
			return writeShapes(cmd.OutOrStdout(), catalog, app.Config.AccentNames(), opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", formatText, "Output format: text, yaml or json")
	return cmd
}

type shapeEntry struct {
	Index int    `yaml:"index" json:"index"`
	Asset string `yaml:"asset" json:"asset"`
	Path  string `yaml:"path" json:"path"`
}

type shapesDocument struct {
	Base    string       `yaml:"base" json:"base"`
	Count   int          `yaml:"count" json:"count"`
	Accents []shapeEntry `yaml:"accents" json:"accents"`
}

const shapePreviewWidth = 48

func writeShapes(w io.Writer, catalog *logo.Catalog, names []string, format string) error {
	doc := shapesDocument{
		Base:  string(catalog.BasePath()),
		Count: catalog.Count(),
	}
	for i := 0; i < catalog.Count(); i++ {
		path, err := catalog.AccentPath(logo.ShapeRef(i))
		if err != nil {
			return err
		}
		entry := shapeEntry{Index: i, Path: string(path)}
		if i < len(names) {
			entry.Asset = names[i]
		}
		doc.Accents = append(doc.Accents, entry)
	}

	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("encode shapes: %w", err)
		}
		return enc.Close()
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	writer := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "INDEX\tASSET\tPATH")
	for _, e := range doc.Accents {
		fmt.Fprintf(writer, "%d\t%s\t%s\n", e.Index, e.Asset, preview(e.Path, shapePreviewWidth))
	}
	return writer.Flush()
}

func preview(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
