package dimex

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Dimension is a category of extractable values, e.g. numerals or ordinals.
//
// The set of dimensions is closed: rule tables may only refer to dimensions
// known to this package (see Registered).
type Dimension int8

// Dimensions known to the engine.
// RegexMatch is used internally for tokens which carry the capture groups
// of a regular expression item. AnyDimension is not a dimension, but may be
// used by clients to ask for all the dimensions produced.
const (
	AnyDimension Dimension = iota - 1
	RegexMatch
	Numeral
	Ordinal
	dimensionCount
)

var dimensionNames = [...]string{"regex", "numeral", "ordinal"}

func (d Dimension) String() string {
	if d == AnyDimension {
		return "any"
	}
	if d < 0 || d >= dimensionCount {
		return fmt.Sprintf("dimension(%d)", int8(d))
	}
	return dimensionNames[d]
}

// Registered returns true if d is one of the dimensions known to the engine.
// AnyDimension is not registered.
func Registered(d Dimension) bool {
	return d >= RegexMatch && d < dimensionCount
}

// ParseDimension finds a dimension by name (case does not matter).
func ParseDimension(name string) (Dimension, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "any" {
		return AnyDimension, nil
	}
	for i, n := range dimensionNames {
		if n == name {
			return Dimension(i), nil
		}
	}
	return AnyDimension, fmt.Errorf("%w: %q", ErrUnknownDimension, name)
}

// MarshalJSON writes a dimension by name.
func (d Dimension) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON reads a dimension by name.
func (d *Dimension) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	dim, err := ParseDimension(s)
	if err != nil {
		return err
	}
	*d = dim
	return nil
}

// dependencies lists for each dimension the dimensions whose rules have to
// run as well, because its rules consume their tokens.
var dependencies = map[Dimension][]Dimension{
	Numeral: nil,
	Ordinal: nil,
}

// Dependencies returns the dimensions d depends on, in the order their rule
// sets should be activated. The slice is a copy.
func Dependencies(d Dimension) []Dimension {
	deps := dependencies[d]
	if len(deps) == 0 {
		return nil
	}
	return append([]Dimension(nil), deps...)
}
