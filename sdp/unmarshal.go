package sdp

import (
	"fmt"
	"io"

	"github.com/nostressdev/rtsp"
	gosdp "github.com/pixelbender/go-sdp/sdp"
)

type Decoder struct {
	r    io.Reader
	base *rtsp.URL
}

// NewDecoder returns a decoder reading a session description from r.
// Relative control attributes are resolved against base, usually the
// request URL or Content-Base of the DESCRIBE response. base may be nil.
func NewDecoder(r io.Reader, base *rtsp.URL) *Decoder {
	return &Decoder{r: r, base: base}
}

func (d *Decoder) Decode() (*Description, error) {
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("error while reading from reader: %w", err)
	}

	session, err := gosdp.ParseString(string(data))
	if err != nil {
		return nil, fmt.Errorf("error while parsing: %w", err)
	}

	desc := &Description{}

	desc.Control, desc.Range, err = d.parseAttributes(session.Attributes, d.base)
	if err != nil {
		desc.Release()
		return nil, fmt.Errorf("session: %w", err)
	}

	// media controls are relative to the aggregate control when there is one
	base := d.base
	if desc.Control != nil {
		base = desc.Control
	}

	for i, m := range session.Media {
		media := &Media{Type: m.Type}
		desc.Medias = append(desc.Medias, media)

		media.Control, media.Range, err = d.parseAttributes(m.Attributes, base)
		if err != nil {
			desc.Release()
			return nil, fmt.Errorf("media %v: %w", i, err)
		}
	}

	return desc, nil
}

func (d *Decoder) parseAttributes(attrs gosdp.Attributes, base *rtsp.URL) (control *rtsp.URL, timeRange *rtsp.TimeRange, err error) {
	defer func() {
		if err != nil {
			control.Release()
			timeRange.Release()
			control, timeRange = nil, nil
		}
	}()

	hasControl := false
	for _, attr := range attrs {
		switch attr.Name {
		case ControlAttribute:
			if hasControl {
				return control, timeRange, fmt.Errorf("multiple control attributes")
			}
			hasControl = true
			control, err = d.parseControl(attr.Value, base)
			if err != nil {
				return control, timeRange, fmt.Errorf("wrong control format: %w", err)
			}
		case RangeAttribute:
			if timeRange != nil {
				return control, timeRange, fmt.Errorf("multiple range attributes")
			}
			timeRange, err = rtsp.ParseRange(attr.Value)
			if err != nil {
				return control, timeRange, fmt.Errorf("wrong range format: %w", err)
			}
		}
	}

	return control, timeRange, nil
}

func (d *Decoder) parseControl(value string, base *rtsp.URL) (*rtsp.URL, error) {
	if base == nil && (value == "" || value == "*") {
		return nil, nil
	}
	return base.Resolve(value)
}
