package lessonui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

type lessonIDState uint8

const (
	lessonIDNull lessonIDState = iota
	lessonIDValue
	lessonIDNaN
)

// LessonID identifies a lesson on the wire. It is either an integer, null, or the
// not-a-number sentinel produced when a page attribute carries no leading digits.
// Both null and the sentinel encode as JSON null.
type LessonID struct {
	value int64
	state lessonIDState
}

// NewLessonID wraps an integer lesson identifier.
func NewLessonID(v int64) LessonID {
	return LessonID{value: v, state: lessonIDValue}
}

// NullLessonID is the absent identifier.
func NullLessonID() LessonID {
	return LessonID{}
}

// NaNLessonID is the sentinel for unparseable identifiers.
func NaNLessonID() LessonID {
	return LessonID{state: lessonIDNaN}
}

// Int64 returns the identifier and whether it holds an integer.
func (id LessonID) Int64() (int64, bool) {
	return id.value, id.state == lessonIDValue
}

// IsNull reports whether the identifier is absent.
func (id LessonID) IsNull() bool { return id.state == lessonIDNull }

// IsNaN reports whether the identifier is the not-a-number sentinel.
func (id LessonID) IsNaN() bool { return id.state == lessonIDNaN }

func (id LessonID) String() string {
	switch id.state {
	case lessonIDValue:
		return strconv.FormatInt(id.value, 10)
	case lessonIDNaN:
		return "NaN"
	default:
		return "null"
	}
}

// MarshalJSON writes the integer, or null for both the absent and NaN states.
func (id LessonID) MarshalJSON() ([]byte, error) {
	if id.state != lessonIDValue {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(id.value, 10)), nil
}

// UnmarshalJSON accepts an integer or null.
func (id *LessonID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = NullLessonID()
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("lessonui: decode lesson id: %w", err)
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("lessonui: lesson id %s is not an integer: %w", n, err)
	}
	*id = NewLessonID(v)
	return nil
}

// ParseLessonID reads an attribute value the way a browser's parseInt does without an
// explicit radix: leading whitespace is skipped, an optional sign is honored, a 0x
// prefix switches to base 16, and parsing stops at the first non-digit. Values with no
// leading digits yield the NaN sentinel.
//
// Unlike the browser, digit runs that overflow int64 also yield NaN and so go out as
// null; parseInt would return an imprecise finite number there.
func ParseLessonID(raw string) LessonID {
	s := strings.TrimLeftFunc(raw, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	})
	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}
	base := 10
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}
	end := 0
	for end < len(s) && isDigit(s[end], base) {
		end++
	}
	if end == 0 {
		return NaNLessonID()
	}
	digits := s[:end]
	if negative {
		digits = "-" + digits
	}
	v, err := strconv.ParseInt(digits, base, 64)
	if err != nil {
		return NaNLessonID()
	}
	return NewLessonID(v)
}

func isDigit(c byte, base int) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case base == 16 && c >= 'a' && c <= 'f':
		return true
	case base == 16 && c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// LessonIDFromNumber converts a number handed over by page script. Integral values
// within int64 range are kept; NaN, infinities, fractions and out-of-range values
// become the NaN sentinel, since LessonID only carries integers.
func LessonIDFromNumber(f float64) LessonID {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return NaNLessonID()
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return NaNLessonID()
	}
	return NewLessonID(int64(f))
}
