package rtsp

// RangeUnit is the time format named before the '=' of a Range header.
type RangeUnit int

const (
	RangeSMPTE RangeUnit = iota
	RangeSMPTE30Drop
	RangeSMPTE25
	RangeNPT
	RangeClock
)

var rangeUnitNames = map[RangeUnit]string{
	RangeSMPTE:       "smpte",
	RangeSMPTE30Drop: "smpte-30-drop",
	RangeSMPTE25:     "smpte-25",
	RangeNPT:         "npt",
	RangeClock:       "clock",
}

func parseRangeUnit(name string) (RangeUnit, bool) {
	for unit, n := range rangeUnitNames {
		if n == name {
			return unit, true
		}
	}
	return 0, false
}

func (u RangeUnit) String() string {
	if name, ok := rangeUnitNames[u]; ok {
		return name
	}
	return "unknown"
}

// FrameRate is the number of frames per second of a SMPTE unit, 0 otherwise.
func (u RangeUnit) FrameRate() float64 {
	switch u {
	case RangeSMPTE:
		return 30
	case RangeSMPTE30Drop:
		return 29.97
	case RangeSMPTE25:
		return 25
	default:
		return 0
	}
}
