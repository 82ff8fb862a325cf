// Package svg converts between logo compositions and SVG documents.
package svg

import (
	"strings"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

const (
	// Namespace is the SVG XML namespace.
	Namespace = "http://www.w3.org/2000/svg"
	// ViewBox is the fixed logical coordinate space shapes are authored in.
	ViewBox = "0 0 100 100"
	// Width and Height are the nominal rendering size of an exported document.
	Width  = "200"
	Height = "200"

	xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`
)

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// Serialize renders a two-layer logo. The base path comes first so the
// accent paints on top. Output depends only on the arguments.
func Serialize(base logo.PathData, baseColor logo.Color, accent logo.PathData, accentColor logo.Color) string {
	var b strings.Builder
	b.Grow(len(base) + len(accent) + 256)

	b.WriteString(xmlHeader)
	b.WriteByte('\n')
	b.WriteString(`<svg width="` + Width + `" height="` + Height + `" viewBox="` + ViewBox + `" xmlns="` + Namespace + `">`)
	b.WriteByte('\n')
	writePath(&b, base, baseColor)
	writePath(&b, accent, accentColor)
	b.WriteString("</svg>\n")

	return b.String()
}

func writePath(b *strings.Builder, d logo.PathData, fill logo.Color) {
	b.WriteString(`  <path d="`)
	b.WriteString(attrEscaper.Replace(string(d)))
	b.WriteString(`" fill="`)
	b.WriteString(attrEscaper.Replace(string(fill)))
	b.WriteString(`"/>`)
	b.WriteByte('\n')
}

// Render serializes the composition currently held by state.
func Render(state *logo.State) (string, error) {
	comp, base, accent, err := state.Layers()
	if err != nil {
		return "", err
	}
	return Serialize(base, comp.BaseColor, accent, comp.AccentColor), nil
}
