// Package clock detects the time format of a raw token and normalizes it to
// minutes since midnight.
package clock

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Format identifies which grammar a time token follows.
type Format int

const (
	// ClockFace is a 12-hour time such as "9:00am".
	ClockFace Format = iota
	// IsoLike is a date-time such as "2024-01-01 08:15".
	IsoLike
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case ClockFace:
		return "clock-face"
	case IsoLike:
		return "iso-like"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// MinutesPerDay bounds every normalized value: results lie in [0, MinutesPerDay).
const MinutesPerDay = 24 * 60

var (
	// ErrMalformedTime is returned when a token does not match its grammar.
	ErrMalformedTime = errors.New("malformed time")
	// ErrOutOfRange is returned when a field is numerically outside its grammar's range.
	ErrOutOfRange = errors.New("time field out of range")
)

var (
	clockFacePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})([aApP])[mM]?$`)
	isoLikePattern   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2}):(\d{1,2}):(\d{2})$`)
)

// Detect classifies a token. Any '-' selects IsoLike.
func Detect(token string) Format {
	if strings.ContainsRune(token, '-') {
		return IsoLike
	}
	return ClockFace
}

// Normalize converts token to minutes since midnight using the given format.
func Normalize(format Format, token string) (int, error) {
	switch format {
	case ClockFace:
		return ParseClockFace(token)
	case IsoLike:
		return ParseIsoLike(token)
	default:
		return 0, fmt.Errorf("unknown format %v", format)
	}
}

// ParseClockFace parses "h:mm am" style tokens. Whitespace anywhere is ignored.
func ParseClockFace(token string) (int, error) {
	m := clockFacePattern.FindStringSubmatch(stripSpace(token))
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not h:mm[am|pm]", ErrMalformedTime, token)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour %d in %q", ErrOutOfRange, hour, token)
	}
	if minute > 59 {
		return 0, fmt.Errorf("%w: minute %d in %q", ErrOutOfRange, minute, token)
	}

	switch m[3] {
	case "a", "A":
		if hour == 12 {
			hour = 0
		}
	default:
		if hour < 12 {
			hour += 12
		}
	}
	return hour*60 + minute, nil
}

// ParseIsoLike parses "YYYY-MM-DD hh:mm" tokens. The date is validated but
// does not contribute to the result.
func ParseIsoLike(token string) (int, error) {
	s := strings.TrimSpace(token)
	sep := strings.IndexFunc(s, unicode.IsSpace)
	if sep < 0 {
		return 0, fmt.Errorf("%w: %q has no space between date and time", ErrMalformedTime, token)
	}
	s = stripSpace(s[:sep] + ":" + s[sep+1:])

	m := isoLikePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q is not YYYY-MM-DD hh:mm", ErrMalformedTime, token)
	}

	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])
	switch {
	case month < 1 || month > 12:
		return 0, fmt.Errorf("%w: month %d in %q", ErrOutOfRange, month, token)
	case day < 1 || day > 31:
		return 0, fmt.Errorf("%w: day %d in %q", ErrOutOfRange, day, token)
	case hour > 23:
		return 0, fmt.Errorf("%w: hour %d in %q", ErrOutOfRange, hour, token)
	case minute > 59:
		return 0, fmt.Errorf("%w: minute %d in %q", ErrOutOfRange, minute, token)
	}
	return hour*60 + minute, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
