package logo

// PathData is an SVG path "d" attribute, treated as opaque geometry.
type PathData string

// ShapeRef addresses an accent shape in a Catalog.
type ShapeRef int

// Catalog holds the base shape and the ordered accent shapes. It is
// immutable once built.
type Catalog struct {
	base    PathData
	accents []PathData
}

// NewCatalog builds a catalog from already-extracted path data.
func NewCatalog(base PathData, accents []PathData) (*Catalog, error) {
	if base == "" {
		return nil, NewConfigurationError("base shape path is empty", nil)
	}
	if len(accents) == 0 {
		return nil, NewConfigurationError("catalog requires at least one accent shape", nil)
	}
	for i, a := range accents {
		if a == "" {
			return nil, NewConfigurationError("accent shape path is empty", map[string]interface{}{"index": i})
		}
	}

	owned := make([]PathData, len(accents))
	copy(owned, accents)
	return &Catalog{base: base, accents: owned}, nil
}

// Count returns the number of accent shapes.
func (c *Catalog) Count() int {
	return len(c.accents)
}

// BasePath returns the base shape's path data.
func (c *Catalog) BasePath() PathData {
	return c.base
}

// AccentPath returns the path data for ref, failing with INDEX_OUT_OF_RANGE
// outside [0, Count()).
func (c *Catalog) AccentPath(ref ShapeRef) (PathData, error) {
	if ref < 0 || int(ref) >= len(c.accents) {
		return "", newIndexError(ref, len(c.accents))
	}
	return c.accents[ref], nil
}
