package shared

import "fmt"

// TimestampLength is the fixed width of an encoded host timestamp
const TimestampLength = 18

// Timestamp is a value object holding a host-generated date/time stamp in
// the fixed "MM-DD-YYYYhh:mm:ss" layout. The zero Timestamp is invalid and
// compares unequal to every valid stamp. Timestamps are assigned wholesale,
// never mutated in place.
type Timestamp struct {
	value string
}

// MakeTimestamp creates a Timestamp from explicit date/time components
func MakeTimestamp(year, month, day, hour, minute, second int) Timestamp {
	return Timestamp{
		value: fmt.Sprintf("%02d-%02d-%04d%02d:%02d:%02d", month, day, year, hour, minute, second),
	}
}

// ParseTimestamp creates a Timestamp from raw encoded bytes.
// Input that is not exactly TimestampLength bytes yields the invalid stamp.
func ParseTimestamp(raw []byte) Timestamp {
	if len(raw) != TimestampLength {
		return Timestamp{}
	}
	return Timestamp{value: string(raw)}
}

// IsValid reports whether this is a real timestamp
func (t Timestamp) IsValid() bool {
	return t.value != ""
}

// Equals checks if two Timestamps are identical
func (t Timestamp) Equals(other Timestamp) bool {
	return t.value == other.value
}

// IsEarlierThan reports whether this timestamp precedes the other.
// Invalid stamps sort before all valid ones.
func (t Timestamp) IsEarlierThan(other Timestamp) bool {
	return t.sortKey() < other.sortKey()
}

// DateString returns the date part ("MM-DD-YYYY"), empty if invalid
func (t Timestamp) DateString() string {
	if !t.IsValid() {
		return ""
	}
	return t.value[:10]
}

// TimeString returns the time part ("hh:mm:ss"), empty if invalid
func (t Timestamp) TimeString() string {
	if !t.IsValid() {
		return ""
	}
	return t.value[10:]
}

// String returns the full encoded stamp
func (t Timestamp) String() string {
	return t.value
}

// sortKey rearranges the stamp into year-month-day-time order so that
// plain string comparison yields chronological order.
func (t Timestamp) sortKey() string {
	if !t.IsValid() {
		return ""
	}
	return t.value[6:10] + t.value[0:2] + t.value[3:5] + t.value[10:]
}
