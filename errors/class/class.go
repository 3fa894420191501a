package class

import (
	"errors"
	"strings"
)

const (
	majorBitSize = 7
	minorBitSize = 10
	indexBitSize = 32 - majorBitSize - minorBitSize

	maxIndexValue = (2 << (indexBitSize - 1)) - 1
	maxMinorValue = (2 << (minorBitSize - 1)) - 1
	maxMajorValue = (2 << (majorBitSize - 1)) - 1

	majorMinorMask = uint32((2<<(majorBitSize+minorBitSize-1) - 1) << indexBitSize)
)

func init() {
	registerClasses()
}

func registerClasses() {
	registerCommonClasses()
	registerConfigClasses()
	registerSchemaClasses()
	registerEncodingClasses()
	registerQueryClasses()
	registerHeadersClasses()
	registerLanguageClasses()
}

// Class is the error classification composed of the major, minor and index
// subclassifications. The major takes the highest 7 bits, the minor the next 10
// and the index the lowest 15 bits, i.e. the class 'EncodingMarshalDepthExceeded'
// is the major 'Encoding', its minor 'Marshal' and the minor's index 'Depth Exceeded'.
type Class uint32

// Index is the lowest level classification unique within given minor.
func (c Class) Index() Index {
	return Index{value: uint16(uint32(c) & maxIndexValue), minor: c.Minor()}
}

// IsMajor checks if the given class is composed of provided major 'm'.
func (c Class) IsMajor(m Major) bool {
	return c.Major() == m
}

// Major is the top level classification.
func (c Class) Major() Major {
	return Major(uint32(c) >> (32 - majorBitSize))
}

// Minor is the mid level classification unique within given major.
func (c Class) Minor() Minor {
	return Minor{value: uint16(uint32(c) >> indexBitSize & maxMinorValue), major: c.Major()}
}

// MjrMnrMasked returns the class value masked by the major and minor value only.
func (c Class) MjrMnrMasked() uint32 {
	return uint32(c) & majorMinorMask
}

// String implements fmt.Stringer interface. The names of the class levels
// are concatenated without the spaces.
func (c Class) String() string {
	sb := &strings.Builder{}
	writeName(sb, c.Major().Name())

	minor := c.Minor()
	if !minor.InBounds() {
		return sb.String()
	}
	writeName(sb, minor.Name())

	if index := c.Index(); index.Valid() {
		writeName(sb, index.Name())
	}
	return sb.String()
}

func writeName(sb *strings.Builder, name string) {
	for _, part := range strings.Fields(name) {
		sb.WriteString(part)
	}
}

func compose(major Major, minor, index uint16) Class {
	return Class(uint32(major)<<(32-majorBitSize) | uint32(minor)<<indexBitSize | uint32(index))
}

// MustNewMinorClass creates new minor class for provided argument.
// If the minor value is not valid the function panics.
func MustNewMinorClass(minor Minor) Class {
	c, err := NewMinorClass(minor)
	if err != nil {
		panic(err)
	}
	return c
}

// NewClass gets the class for the provided 'index'.
// If the index or any of its parents is not registered the function returns an error.
func NewClass(index Index) (Class, error) {
	if _, err := NewMinorClass(index.Minor()); err != nil {
		return Class(0), err
	}
	if !index.valid() {
		return Class(0), errors.New("provided invalid index")
	}
	return index.Class(), nil
}

// NewMinorClass gets the major / minor class from provided 'minor'.
func NewMinorClass(minor Minor) (Class, error) {
	if !minor.Major().InBounds() {
		return Class(0), errors.New("provided invalid major")
	}
	if !minor.valid() {
		return Class(0), errors.New("provided invalid minor")
	}
	return compose(minor.major, minor.value, 0), nil
}
