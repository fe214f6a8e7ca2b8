package rtsp

import (
	"strconv"
	"strings"
	"sync"
)

type buffer struct {
	data []byte
}

func (b *buffer) writeUint(v uint64) *buffer {
	b.data = strconv.AppendUint(b.data, v, 10)
	return b
}

func (b *buffer) writeFloat(v float64) *buffer {
	b.data = strconv.AppendFloat(b.data, v, 'f', -1, 64)
	return b
}

func (b *buffer) writeString(v string) *buffer {
	b.data = append(b.data, v...)
	return b
}

func (b *buffer) writeChar(char byte) *buffer {
	b.data = append(b.data, char)
	return b
}

// twoDigits writes v zero padded to at least two digits.
func (b *buffer) twoDigits(v uint64) *buffer {
	if v < 10 {
		b.writeChar('0')
	}
	return b.writeUint(v)
}

var bufferPool = sync.Pool{
	New: func() interface{} { return &buffer{} },
}

func getBuffer() *buffer {
	return bufferPool.Get().(*buffer)
}

func (b *buffer) flush() string {
	s := string(b.data)
	b.data = b.data[:0]
	bufferPool.Put(b)
	return s
}

// String formats u so that ParseURL yields the same field values again,
// including the transport and family hints.
func (u *URL) String() string {
	b := getBuffer()

	b.writeString("rtsp")
	if u.Transports != LowerTransAll && u.Transports != LowerTransUnknown {
		b.writeChar('+').writeString(u.Transports.String())
	}
	if u.Family == FamilyINET6 && !strings.Contains(u.Host, ":") {
		b.writeString("+ipv6")
	}
	b.writeString("://")

	if u.User != nil {
		b.writeString(*u.User)
		if u.Password != nil {
			b.writeChar(':').writeString(*u.Password)
		}
		b.writeChar('@')
	}

	u.encodeRequestTarget(b)
	return b.flush()
}

// RequestURI is the form of u used on a request line: no userinfo and no
// transport hints.
func (u *URL) RequestURI() string {
	b := getBuffer()
	b.writeString("rtsp://")
	u.encodeRequestTarget(b)
	return b.flush()
}

func (u *URL) encodeRequestTarget(b *buffer) {
	if strings.Contains(u.Host, ":") {
		b.writeChar('[').writeString(u.Host).writeChar(']')
	} else {
		b.writeString(u.Host)
	}
	if u.Port != nil {
		b.writeChar(':').writeUint(uint64(*u.Port))
	}

	b.writeString(u.Abspath)
	if u.Query != nil {
		b.writeChar('?').writeString(*u.Query)
	}
}

// String formats r as Range header text. NPT seconds use the shortest
// decimal that parses back to the same value.
func (r *TimeRange) String() string {
	b := getBuffer()
	b.writeString(r.Unit.String()).writeChar('=')
	encodeTime(b, r.Min)
	b.writeChar('-')
	encodeTime(b, r.Max)
	return b.flush()
}

func encodeTime(b *buffer, t TimeSpec) {
	switch t.Kind {
	case TimeNow:
		b.writeString("now")
	case TimeEnd:
	case TimeSeconds:
		b.writeFloat(t.Seconds)
	case TimeFrames:
		total := uint64(t.Seconds)
		b.writeUint(total / 3600).writeChar(':')
		b.twoDigits(total / 60 % 60).writeChar(':')
		b.twoDigits(total % 60)
		if t.Frames > 0 {
			b.writeChar(':')
			if t.Frames < 10 {
				b.writeChar('0')
			}
			b.writeFloat(t.Frames)
		}
	}
}
