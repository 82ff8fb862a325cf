package logo

import "sync"

// Composition is the current selection: two distinct colors and one accent
// shape.
type Composition struct {
	BaseColor   Color
	AccentColor Color
	AccentIndex ShapeRef
}

// State owns the Composition and every transition over it. Each transition
// computes the next value in full and publishes it under the lock, so a
// reader never sees BaseColor == AccentColor or an out-of-range index.
type State struct {
	mu       sync.Mutex
	palette  *Palette
	catalogs CatalogProvider
	rng      RandomSource
	current  Composition
}

// NewState seeds a State with the palette's first two colors and accent 0.
func NewState(palette *Palette, catalogs CatalogProvider, rng RandomSource) (*State, error) {
	if palette == nil || palette.Len() < 2 {
		return nil, NewConfigurationError("state requires a palette with at least two colors", nil)
	}
	if catalogs == nil {
		return nil, NewConfigurationError("state requires a catalog provider", nil)
	}
	if rng == nil {
		return nil, NewConfigurationError("state requires a random source", nil)
	}

	return &State{
		palette:  palette,
		catalogs: catalogs,
		rng:      rng,
		current: Composition{
			BaseColor:   palette.At(0),
			AccentColor: palette.At(1),
			AccentIndex: 0,
		},
	}, nil
}

// Palette returns the palette the state draws from.
func (s *State) Palette() *Palette {
	return s.palette
}

// Snapshot returns the current composition by value.
func (s *State) Snapshot() Composition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetBaseColor sets the base color. When c equals the current accent color
// the accent is redrawn from the palette excluding c in the same transition.
func (s *State) SetBaseColor(c Color) error {
	if !s.palette.Contains(c) {
		return newInvalidColorError(c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current
	next.BaseColor = c
	if next.AccentColor == c {
		accent, err := s.palette.PickExcluding(s.rng, c)
		if err != nil {
			return err
		}
		next.AccentColor = accent
	}
	s.current = next
	return nil
}

// SetAccentColor sets the accent color unless it equals the base color, in
// which case the state is left unchanged and COLOR_CONFLICT is returned.
func (s *State) SetAccentColor(c Color) error {
	if !s.palette.Contains(c) {
		return newInvalidColorError(c)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c == s.current.BaseColor {
		return newColorConflictError(c)
	}
	s.current.AccentColor = c
	return nil
}

// AccentAllowed reports whether c could be applied as the accent color right
// now. Presentation layers use it to disable conflicting swatches.
func (s *State) AccentAllowed(c Color) bool {
	if !s.palette.Contains(c) {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return c != s.current.BaseColor
}

// NextShape advances the accent index by one, wrapping to 0 after the last.
func (s *State) NextShape() error {
	return s.step(1)
}

// PreviousShape moves the accent index back by one, wrapping to the last
// shape before 0.
func (s *State) PreviousShape() error {
	return s.step(-1)
}

func (s *State) step(delta int) error {
	catalog, err := s.catalogs.Catalog()
	if err != nil {
		return err
	}
	n := catalog.Count()

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := (int(s.current.AccentIndex) + delta) % n
	if idx < 0 {
		idx += n
	}
	s.current.AccentIndex = ShapeRef(idx)
	return nil
}

// SelectShape jumps directly to ref.
func (s *State) SelectShape(ref ShapeRef) error {
	catalog, err := s.catalogs.Catalog()
	if err != nil {
		return err
	}
	if _, err := catalog.AccentPath(ref); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.AccentIndex = ref
	return nil
}

// Randomize draws a base color from the full palette, an accent color from
// the palette without the new base, and an accent index from [0, N). The
// draws ignore the previous composition.
func (s *State) Randomize() error {
	catalog, err := s.catalogs.Catalog()
	if err != nil {
		return err
	}
	n := catalog.Count()

	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.palette.Pick(s.rng)
	accent, err := s.palette.PickExcluding(s.rng, base)
	if err != nil {
		return err
	}
	s.current = Composition{
		BaseColor:   base,
		AccentColor: accent,
		AccentIndex: ShapeRef(s.rng.IntN(n)),
	}
	return nil
}

// Layers resolves the current composition against the loaded catalog.
func (s *State) Layers() (Composition, PathData, PathData, error) {
	catalog, err := s.catalogs.Catalog()
	if err != nil {
		return Composition{}, "", "", err
	}
	snap := s.Snapshot()
	accent, err := catalog.AccentPath(snap.AccentIndex)
	if err != nil {
		return Composition{}, "", "", err
	}
	return snap, catalog.BasePath(), accent, nil
}
