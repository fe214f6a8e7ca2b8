// Package sdp extracts the RTSP control URLs and time ranges of a session
// description (rfc4566) returned by DESCRIBE, rfc2326 appendix C.
package sdp

import "github.com/nostressdev/rtsp"

const (
	ControlAttribute = "control"
	RangeAttribute   = "range"
)

// Description holds the session level values. Control is the aggregate
// control URL, nil when the description has none.
type Description struct {
	Control *rtsp.URL
	Range   *rtsp.TimeRange
	Medias  []*Media
}

type Media struct {
	Type    string
	Control *rtsp.URL
	Range   *rtsp.TimeRange
}

// Release releases every URL and range held by d.
func (d *Description) Release() {
	if d == nil {
		return
	}

	d.Control.Release()
	d.Range.Release()
	for _, media := range d.Medias {
		media.Control.Release()
		media.Range.Release()
	}

	d.Control, d.Range, d.Medias = nil, nil, nil
}
