package rtsp

import "strings"

// LowerTrans is a set of lower transports a client may use for a stream.
type LowerTrans uint8

const (
	LowerTransTCP LowerTrans = 1 << iota
	LowerTransUDP
	LowerTransUDPMcast

	LowerTransUnknown LowerTrans = 0
	LowerTransAll                = LowerTransTCP | LowerTransUDP | LowerTransUDPMcast
)

var lowerTransNames = []struct {
	flag LowerTrans
	name string
}{
	{LowerTransTCP, "tcp"},
	{LowerTransUDP, "udp"},
	{LowerTransUDPMcast, "mcast"},
}

// Has reports whether every transport in f is present in t.
func (t LowerTrans) Has(f LowerTrans) bool {
	return f != LowerTransUnknown && t&f == f
}

func (t LowerTrans) String() string {
	if t == LowerTransUnknown {
		return "unknown"
	}

	names := make([]string, 0, len(lowerTransNames))
	for _, n := range lowerTransNames {
		if t.Has(n.flag) {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "+")
}
