package rtsp

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimeKind tells how a TimeSpec is to be read.
type TimeKind int

const (
	TimeSeconds TimeKind = iota
	TimeNow
	TimeEnd
	TimeFrames
)

func (k TimeKind) String() string {
	switch k {
	case TimeSeconds:
		return "seconds"
	case TimeNow:
		return "now"
	case TimeEnd:
		return "end"
	case TimeFrames:
		return "frames"
	default:
		return "unknown"
	}
}

// TimeSpec is one endpoint of a TimeRange. Seconds is set for TimeSeconds
// and TimeFrames, Frames only for TimeFrames. Both are zero for TimeNow and
// TimeEnd.
type TimeSpec struct {
	Kind    TimeKind
	Seconds float64
	Frames  float64
}

// Duration converts a numeric endpoint to elapsed time, using the frame
// rate of unit for frames. It reports false for TimeNow and TimeEnd, and
// when the endpoint does not fit in a time.Duration.
func (t TimeSpec) Duration(unit RangeUnit) (time.Duration, bool) {
	seconds := t.Seconds
	switch t.Kind {
	case TimeSeconds:
	case TimeFrames:
		if rate := unit.FrameRate(); rate > 0 {
			seconds += t.Frames / rate
		}
	default:
		return 0, false
	}
	ns := math.Round(seconds * float64(time.Second))
	if ns >= math.MaxInt64 || ns <= math.MinInt64 {
		return 0, false
	}
	return time.Duration(ns), true
}

// TimeRange is a parsed Range header value. Min is not required to be
// before Max.
type TimeRange struct {
	Unit RangeUnit
	Min  TimeSpec
	Max  TimeSpec

	released bool
}

func newTimeRange(v TimeRange) *TimeRange {
	r := new(TimeRange)
	*r = v
	return r
}

// ParseRange parses a range such as "npt=10-" or "smpte=10:07:00-10:07:33:05.01".
// Every malformed input yields an error matching ErrInvalidSyntax; clock
// ranges yield ErrUnsupported.
func ParseRange(raw string) (*TimeRange, error) {
	name, value, ok := strings.Cut(raw, "=")
	if !ok {
		return nil, makeError(ErrInvalidSyntax, fmt.Sprintf("no unit in range %q", raw))
	}

	unit, ok := parseRangeUnit(name)
	if !ok {
		return nil, makeError(ErrInvalidSyntax, fmt.Sprintf("unknown range unit %q", name))
	}

	v := TimeRange{Unit: unit}

	var err error
	switch unit {
	case RangeNPT:
		err = parseNPTRange(value, &v)
	case RangeClock:
		err = makeError(ErrUnsupported, "clock ranges")
	default:
		err = parseSMPTERange(value, &v)
	}
	if err != nil {
		return nil, err
	}

	return newTimeRange(v), nil
}

// Release drops every field of r. r must not be used afterwards.
// Releasing nil or an already released range does nothing.
func (r *TimeRange) Release() {
	if r == nil || r.released {
		return
	}
	*r = TimeRange{released: true}
}

func (r *TimeRange) Clone() *TimeRange {
	if r == nil {
		return nil
	}
	return newTimeRange(*r)
}

func splitInterval(value string) (string, string, error) {
	start, stop, ok := strings.Cut(value, "-")
	if !ok {
		return "", "", makeError(ErrInvalidSyntax, fmt.Sprintf("no interval in range %q", value))
	}
	return start, stop, nil
}

func parseNPTRange(value string, r *TimeRange) error {
	start, stop, err := splitInterval(value)
	if err != nil {
		return err
	}

	if start == "" {
		if stop == "" {
			return makeError(ErrInvalidSyntax, "empty npt range")
		}
		r.Min = TimeSpec{Kind: TimeEnd}
	} else if r.Min, err = parseNPTTime(start); err != nil {
		return err
	}

	if stop == "" {
		r.Max = TimeSpec{Kind: TimeEnd}
	} else if r.Max, err = parseNPTTime(stop); err != nil {
		return err
	}

	return nil
}

func parseNPTTime(s string) (TimeSpec, error) {
	if s == "now" {
		return TimeSpec{Kind: TimeNow}, nil
	}

	switch strings.Count(s, ":") {
	case 0:
		seconds, _, err := parseDecimal(s, true)
		if err != nil {
			return TimeSpec{}, err
		}
		return TimeSpec{Kind: TimeSeconds, Seconds: seconds}, nil
	case 2:
		fields := strings.Split(s, ":")

		hours, err := parseField(fields[0], 0, 0)
		if err != nil {
			return TimeSpec{}, err
		}
		mins, err := parseField(fields[1], 2, 60)
		if err != nil {
			return TimeSpec{}, err
		}
		seconds, digits, err := parseDecimal(fields[2], true)
		if err != nil {
			return TimeSpec{}, err
		}
		if digits > 2 || seconds >= 60 {
			return TimeSpec{}, makeError(ErrInvalidSyntax, fmt.Sprintf("npt seconds %q out of range", fields[2]))
		}

		return TimeSpec{
			Kind:    TimeSeconds,
			Seconds: float64(hours)*3600 + float64(mins)*60 + seconds,
		}, nil
	default:
		return TimeSpec{}, makeError(ErrInvalidSyntax, fmt.Sprintf("npt time %q needs zero or two colons", s))
	}
}

func parseSMPTERange(value string, r *TimeRange) error {
	start, stop, err := splitInterval(value)
	if err != nil {
		return err
	}

	if start == "" {
		return makeError(ErrInvalidSyntax, "smpte range without start")
	}
	if r.Min, err = parseSMPTETime(start); err != nil {
		return err
	}

	if stop == "" {
		r.Max = TimeSpec{Kind: TimeEnd}
	} else if r.Max, err = parseSMPTETime(stop); err != nil {
		return err
	}

	return nil
}

func parseSMPTETime(s string) (TimeSpec, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 && len(fields) != 4 {
		return TimeSpec{}, makeError(ErrInvalidSyntax, fmt.Sprintf("smpte time %q needs hh:mm:ss[:ff]", s))
	}

	hours, err := parseField(fields[0], 2, 0)
	if err != nil {
		return TimeSpec{}, err
	}
	mins, err := parseField(fields[1], 2, 60)
	if err != nil {
		return TimeSpec{}, err
	}
	secs, err := parseField(fields[2], 2, 60)
	if err != nil {
		return TimeSpec{}, err
	}

	t := TimeSpec{
		Kind:    TimeFrames,
		Seconds: float64(hours*3600 + mins*60 + secs),
	}

	if len(fields) == 4 {
		frames, digits, err := parseDecimal(fields[3], false)
		if err != nil {
			return TimeSpec{}, err
		}
		if digits > 2 {
			return TimeSpec{}, makeError(ErrInvalidSyntax, fmt.Sprintf("smpte frames %q out of range", fields[3]))
		}
		t.Frames = frames
	}

	return t, nil
}

// parseField parses an unsigned decimal field of at most maxDigits digits
// (unlimited when 0) whose value must stay below limit (unlimited when 0).
func parseField(s string, maxDigits, limit int) (int, error) {
	if s == "" || (maxDigits > 0 && len(s) > maxDigits) {
		return 0, makeError(ErrInvalidSyntax, fmt.Sprintf("bad time field %q", s))
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, makeError(ErrInvalidSyntax, fmt.Sprintf("bad time field %q", s))
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || (limit > 0 && n >= limit) {
		return 0, makeError(ErrInvalidSyntax, fmt.Sprintf("time field %q out of range", s))
	}
	return n, nil
}

// parseDecimal parses 1*DIGIT [ "." *DIGIT ], also accepting ',' as the
// decimal point when comma is set. It returns the value and the number of
// digits before the point.
func parseDecimal(s string, comma bool) (float64, int, error) {
	digits := 0
	for digits < len(s) && isDigit(s[digits]) {
		digits++
	}
	if digits == 0 {
		return 0, 0, makeError(ErrInvalidSyntax, fmt.Sprintf("bad decimal %q", s))
	}

	if digits < len(s) {
		point := s[digits]
		if point != '.' && !(comma && point == ',') {
			return 0, 0, makeError(ErrInvalidSyntax, fmt.Sprintf("bad decimal %q", s))
		}
		for i := digits + 1; i < len(s); i++ {
			if !isDigit(s[i]) {
				return 0, 0, makeError(ErrInvalidSyntax, fmt.Sprintf("bad decimal %q", s))
			}
		}
		if point == ',' {
			s = s[:digits] + "." + s[digits+1:]
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, 0, makeError(ErrInvalidSyntax, fmt.Sprintf("bad decimal %q", s))
	}
	return v, digits, nil
}
