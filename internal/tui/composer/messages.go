package composer

// Picker identifies which swatch list receives cursor movement.
type Picker int

const (
	PickerBase Picker = iota
	PickerAccent
)

func (p Picker) String() string {
	if p == PickerAccent {
		return "accent"
	}
	return "base"
}

// CatalogLoadedMsg reports the outcome of a catalog load.
type CatalogLoadedMsg struct {
	Err error
}

// ExportedMsg reports the outcome of an export.
type ExportedMsg struct {
	Location string
	Err      error
}
