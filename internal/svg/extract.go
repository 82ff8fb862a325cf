package svg

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/kindred/internal/domain/logo"
)

var (
	// ErrNotSVG is returned when the document root is not an <svg> element.
	ErrNotSVG = errors.New("document root is not <svg>")
	// ErrNoPath is returned when no <path> with a non-empty d attribute exists.
	ErrNoPath = errors.New("document contains no <path d=...>")
)

// ExtractPath returns the d attribute of the first <path> element, in
// document order, that carries one. Surrounding whitespace is trimmed; the
// geometry itself is not validated.
func ExtractPath(r io.Reader) (logo.PathData, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	sawRoot := false
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode svg: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}

		if !sawRoot {
			if start.Name.Local != "svg" {
				return "", fmt.Errorf("%w: found <%s>", ErrNotSVG, start.Name.Local)
			}
			sawRoot = true
			continue
		}

		if start.Name.Local != "path" {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local != "d" {
				continue
			}
			if d := strings.TrimSpace(attr.Value); d != "" {
				return logo.PathData(d), nil
			}
		}
	}

	if !sawRoot {
		return "", ErrNotSVG
	}
	return "", ErrNoPath
}
