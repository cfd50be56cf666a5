package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Grocy stringifies most scalar values on its generic object endpoints: ids
// arrive as "12", amounts as "1.5", booleans as "0"/"1". The types below
// decode either representation. The Null* variants additionally treat JSON
// null, a missing key, and the empty string as one uniform absent value.

var grocyTimeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

const (
	grocyTimeLayout = "2006-01-02 15:04:05"
	grocyDateLayout = "2006-01-02"
)

// FormatTime renders a time in the format Grocy expects in request bodies.
func FormatTime(t time.Time) string {
	return t.Format(grocyTimeLayout)
}

// FormatDate renders a date-only value for request bodies.
func FormatDate(t time.Time) string {
	return t.Format(grocyDateLayout)
}

// unquote decodes a quoted JSON string, resolving escape sequences (PHP's
// json_encode escapes every "/" as "\/"). The bool reports whether b was a
// string at all; unquoted input passes through verbatim.
func unquote(b []byte) (string, bool, error) {
	if len(b) == 0 || b[0] != '"' {
		return string(b), false, nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", true, err
	}
	return s, true, nil
}

func isNull(b []byte) bool {
	return bytes.Equal(b, []byte("null"))
}

// Int is an integer that decodes from a JSON number or a numeric string.
type Int int

func (i *Int) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*i = 0
		return nil
	}
	raw, _, err := unquote(b)
	if err != nil {
		return invalidf("invalid integer %s", string(b))
	}
	if len(raw) == 0 {
		*i = 0
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return invalidf("invalid integer %q", string(b))
	}
	*i = Int(n)
	return nil
}

// Float is a float that decodes from a JSON number or a numeric string.
type Float float64

func (f *Float) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*f = 0
		return nil
	}
	raw, _, err := unquote(b)
	if err != nil {
		return invalidf("invalid number %s", string(b))
	}
	if len(raw) == 0 {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return invalidf("invalid number %q", string(b))
	}
	*f = Float(v)
	return nil
}

// Bool decodes from a JSON bool, 0/1, or the strings "0", "1", "true",
// "false".
type Bool bool

func (v *Bool) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		*v = false
		return nil
	}
	raw, _, err := unquote(b)
	if err != nil {
		return invalidf("invalid boolean %s", string(b))
	}
	switch raw {
	case "", "0", "false":
		*v = false
	case "1", "true":
		*v = true
	default:
		return invalidf("invalid boolean %q", string(b))
	}
	return nil
}

// Time decodes Grocy's datetime representations. The zero value means the
// field was absent; required-field checks test IsZero.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(b []byte) error {
	if isNull(b) {
		t.Time = time.Time{}
		return nil
	}
	raw, quoted, err := unquote(b)
	if err != nil || !quoted {
		return invalidf("invalid datetime %s", string(b))
	}
	if len(raw) == 0 {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := parseGrocyTime(raw)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(strconv.Quote(FormatTime(t.Time))), nil
}

func parseGrocyTime(s string) (time.Time, error) {
	for _, layout := range grocyTimeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, invalidf("unparseable datetime %q", s)
}

// NullInt is an optional integer. Valid is false when the server omitted the
// field or sent null or "".
type NullInt struct {
	Int   int
	Valid bool
}

func (n *NullInt) UnmarshalJSON(b []byte) error {
	n.Int, n.Valid = 0, false
	if isNull(b) {
		return nil
	}
	raw, _, err := unquote(b)
	if err != nil {
		return invalidf("invalid integer %s", string(b))
	}
	if len(raw) == 0 {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return invalidf("invalid integer %q", string(b))
	}
	n.Int, n.Valid = v, true
	return nil
}

// Pointer returns the value as *int, nil when absent.
func (n NullInt) Pointer() *int {
	if !n.Valid {
		return nil
	}
	v := n.Int
	return &v
}

// NullFloat is an optional float. Valid is false when the server omitted the
// field or sent null or "".
type NullFloat struct {
	Float64 float64
	Valid   bool
}

func (n *NullFloat) UnmarshalJSON(b []byte) error {
	n.Float64, n.Valid = 0, false
	if isNull(b) {
		return nil
	}
	raw, _, err := unquote(b)
	if err != nil {
		return invalidf("invalid number %s", string(b))
	}
	if len(raw) == 0 {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return invalidf("invalid number %q", string(b))
	}
	n.Float64, n.Valid = v, true
	return nil
}

// Pointer returns the value as *float64, nil when absent.
func (n NullFloat) Pointer() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

// NullString is an optional string. The empty string decodes as absent, per
// the Grocy convention of sending "" for unset fields.
type NullString struct {
	String string
	Valid  bool
}

func (n *NullString) UnmarshalJSON(b []byte) error {
	n.String, n.Valid = "", false
	if isNull(b) {
		return nil
	}
	raw, quoted, err := unquote(b)
	if err != nil || !quoted {
		return invalidf("invalid string %s", string(b))
	}
	if len(raw) == 0 {
		return nil
	}
	n.String, n.Valid = raw, true
	return nil
}

// Pointer returns the value as *string, nil when absent.
func (n NullString) Pointer() *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}

// NullTime is an optional datetime. Valid is false when the server omitted
// the field or sent null or "".
type NullTime struct {
	Time  time.Time
	Valid bool
}

func (n *NullTime) UnmarshalJSON(b []byte) error {
	n.Time, n.Valid = time.Time{}, false
	if isNull(b) {
		return nil
	}
	raw, quoted, err := unquote(b)
	if err != nil || !quoted {
		return invalidf("invalid datetime %s", string(b))
	}
	if len(raw) == 0 {
		return nil
	}
	parsed, err := parseGrocyTime(raw)
	if err != nil {
		return err
	}
	n.Time, n.Valid = parsed, true
	return nil
}

// Pointer returns the value as *time.Time, nil when absent.
func (n NullTime) Pointer() *time.Time {
	if !n.Valid {
		return nil
	}
	v := n.Time
	return &v
}

// Userfields is the arbitrary custom key/value bag Grocy attaches to
// entities.
type Userfields map[string]any

func (u Userfields) String() string {
	return fmt.Sprintf("%v", map[string]any(u))
}
