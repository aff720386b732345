package shared

import "fmt"

// Value is an optional 32-bit score value. The zero value is "unknown",
// which is distinct from a known zero.
type Value struct {
	value int32
	known bool
}

// NewValue creates a known Value
func NewValue(v int32) Value {
	return Value{value: v, known: true}
}

// NoValue creates an unknown Value
func NoValue() Value {
	return Value{}
}

// IsKnown reports whether the value is present
func (v Value) IsKnown() bool {
	return v.known
}

// Get returns the value and whether it is present
func (v Value) Get() (int32, bool) {
	return v.value, v.known
}

// OrElse returns the value, or the given default if unknown
func (v Value) OrElse(def int32) int32 {
	if !v.known {
		return def
	}
	return v.value
}

// Add combines two optional values. The result is known if at least one
// operand is known; unknown operands contribute zero.
func (v Value) Add(other Value) Value {
	if !v.known && !other.known {
		return NoValue()
	}
	return NewValue(v.value + other.value)
}

// Scale multiplies a known value by the given factor. Unknown stays unknown.
func (v Value) Scale(factor int32) Value {
	if !v.known {
		return NoValue()
	}
	return NewValue(v.value * factor)
}

// Equals checks if two Values are equal (both unknown, or both known and equal)
func (v Value) Equals(other Value) bool {
	if v.known != other.known {
		return false
	}
	return !v.known || v.value == other.value
}

// String returns a string representation for diagnostics
func (v Value) String() string {
	if !v.known {
		return "-"
	}
	return fmt.Sprintf("%d", v.value)
}
