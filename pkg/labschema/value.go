package labschema

import "strconv"

// Value is a normalized cell value. Boolean fields carry IsBool; everything
// else is text. An empty cell is always the empty text value.
type Value struct {
	Text   string
	Bool   bool
	IsBool bool
}

// TextValue wraps a string.
func TextValue(s string) Value {
	return Value{Text: s}
}

// BoolValue wraps a boolean.
func BoolValue(b bool) Value {
	return Value{Bool: b, IsBool: true}
}

// IsEmpty reports whether the value came from an empty cell.
func (v Value) IsEmpty() bool {
	return !v.IsBool && v.Text == ""
}

// Truth returns the boolean reading of v. Text values read as false.
func (v Value) Truth() bool {
	return v.IsBool && v.Bool
}

func (v Value) String() string {
	if v.IsBool {
		return strconv.FormatBool(v.Bool)
	}
	return v.Text
}
