package class

// Index is a 15 bit lowest level error classification.
// It is the most precise division, i.e. major 'Encoding', minor 'Marshal',
// index 'Depth Exceeded'.
type Index struct {
	value uint16
	minor Minor
}

// Class gets the index related class.
func (i Index) Class() Class {
	if !i.valid() {
		return Class(0)
	}
	return compose(i.minor.major, i.minor.value, i.value)
}

// Description gets the index registered description.
func (i Index) Description() string {
	if e := i.entry(); e != nil {
		return e.description
	}
	return ""
}

// InBounds checks if the index value is in the possible 15-bit range.
func (i Index) InBounds() bool {
	return i.value != 0 && i.value <= maxIndexValue
}

// Name gets the index stored name.
func (i Index) Name() string {
	if e := i.entry(); e != nil {
		return e.name
	}
	return ""
}

// Minor returns index related Minor.
func (i Index) Minor() Minor {
	return i.minor
}

// Valid checks if the provided index is registered.
func (i Index) Valid() bool {
	return i.valid()
}

// Value gets the index uint16 value.
func (i Index) Value() uint16 {
	return i.value
}

func (i Index) entry() *entry {
	if !i.InBounds() {
		return nil
	}
	minor := i.minor.entry()
	if minor == nil {
		return nil
	}
	return minor.children.get(i.value)
}

func (i Index) valid() bool {
	return i.entry() != nil
}
