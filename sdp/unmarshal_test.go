package sdp

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/nostressdev/rtsp"
)

type testVector struct {
	Name        string
	Base        string
	Data        string
	Description *Description
}

func mustURL(raw string) *rtsp.URL {
	u, err := rtsp.ParseURL(raw)
	if err != nil {
		panic(err)
	}
	return u
}

func mustRange(raw string) *rtsp.TimeRange {
	r, err := rtsp.ParseRange(raw)
	if err != nil {
		panic(err)
	}
	return r
}

var testVectors = []*testVector{
	{
		Name: "Relative Track Controls",
		Base: "rtsp://example.com/movie.sdp",
		Data: `v=0
o=- 2890844256 2890842807 IN IP4 192.0.2.10
s=Movie
c=IN IP4 0.0.0.0
t=0 0
a=range:npt=0-7.741000
m=video 0 RTP/AVP 96
a=rtpmap:96 H264/90000
a=control:trackID=1
m=audio 0 RTP/AVP 97
a=rtpmap:97 mpeg4-generic/44100/2
a=control:trackID=2
`,
		Description: &Description{
			Range: mustRange("npt=0-7.741"),
			Medias: []*Media{
				{Type: "video", Control: mustURL("rtsp://example.com/movie.sdp/trackID=1")},
				{Type: "audio", Control: mustURL("rtsp://example.com/movie.sdp/trackID=2")},
			},
		},
	},
	{
		Name: "Aggregate Control",
		Base: "rtsp://camera.local:8554/live",
		Data: `v=0
o=- 0 0 IN IP4 127.0.0.1
s=Stream
c=IN IP4 0.0.0.0
t=0 0
a=control:rtsp://camera.local:8554/live/
a=range:npt=now-
m=video 0 RTP/AVP 96
a=control:stream=0
a=range:smpte=10:07:00-10:07:33:05.01
`,
		Description: &Description{
			Control: mustURL("rtsp://camera.local:8554/live/"),
			Range:   mustRange("npt=now-"),
			Medias: []*Media{
				{
					Type:    "video",
					Control: mustURL("rtsp://camera.local:8554/live/stream=0"),
					Range:   mustRange("smpte=10:07:00-10:07:33:05.01"),
				},
			},
		},
	},
	{
		Name: "Star Control Without Base",
		Data: `v=0
o=- 0 0 IN IP4 127.0.0.1
s=-
c=IN IP4 0.0.0.0
t=0 0
a=control:*
m=audio 0 RTP/AVP 0
a=control:rtsp://media.example.com/audio
`,
		Description: &Description{
			Medias: []*Media{
				{Type: "audio", Control: mustURL("rtsp://media.example.com/audio")},
			},
		},
	},
}

type T struct {
	*testing.T
}

var ignoreReleaseState = cmpopts.IgnoreUnexported(rtsp.URL{}, rtsp.TimeRange{})

func TestDecode(t *testing.T) {
	for _, v := range testVectors {
		v := v
		t.Run(v.Name, func(inner *testing.T) {
			t := &T{inner}

			var base *rtsp.URL
			if v.Base != "" {
				base = mustURL(v.Base)
				defer base.Release()
			}

			desc, err := NewDecoder(strings.NewReader(v.Data), base).Decode()
			if err != nil {
				t.Fatal(err)
			}
			defer desc.Release()

			if !cmp.Equal(desc, v.Description, ignoreReleaseState) {
				t.Fatalf("bad Description, got: %s, expected: %s, diff: %v", dump(desc), dump(v.Description), cmp.Diff(desc, v.Description, ignoreReleaseState))
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		err  error
	}{
		{
			name: "Bad Range",
			data: "v=0\no=- 0 0 IN IP4 127.0.0.1\ns=-\nc=IN IP4 0.0.0.0\nt=0 0\na=range:npt=20:34.23-\n",
			err:  rtsp.ErrInvalidSyntax,
		},
		{
			name: "Clock Range",
			data: "v=0\no=- 0 0 IN IP4 127.0.0.1\ns=-\nc=IN IP4 0.0.0.0\nt=0 0\na=range:clock=19961108T142300Z-\n",
			err:  rtsp.ErrUnsupported,
		},
		{
			name: "Bad Media Control",
			data: "v=0\no=- 0 0 IN IP4 127.0.0.1\ns=-\nc=IN IP4 0.0.0.0\nt=0 0\nm=video 0 RTP/AVP 96\na=control:rtsp://:554/x\n",
			err:  rtsp.ErrMissingHost,
		},
		{
			name: "Relative Control Without Base",
			data: "v=0\no=- 0 0 IN IP4 127.0.0.1\ns=-\nc=IN IP4 0.0.0.0\nt=0 0\nm=video 0 RTP/AVP 96\na=control:trackID=1\n",
			err:  rtsp.ErrMissingHost,
		},
	}

	for _, test := range tests {
		desc, err := NewDecoder(strings.NewReader(test.data), nil).Decode()
		if desc != nil {
			t.Errorf("%s: expected no description, got %s", test.name, dump(desc))
		}
		if !errors.Is(err, test.err) {
			t.Errorf("%s: expected %v, got %v", test.name, test.err, err)
		}
	}
}

func TestDecodeDuplicateAttributes(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "Star Control Twice Without Base",
			data: "v=0\no=- 0 0 IN IP4 127.0.0.1\ns=-\nc=IN IP4 0.0.0.0\nt=0 0\na=control:*\na=control:*\n",
			want: "multiple control attributes",
		},
		{
			name: "Star Then Absolute Control",
			data: "v=0\no=- 0 0 IN IP4 127.0.0.1\ns=-\nc=IN IP4 0.0.0.0\nt=0 0\na=control:*\na=control:rtsp://host/x\n",
			want: "multiple control attributes",
		},
		{
			name: "Range Twice",
			data: "v=0\no=- 0 0 IN IP4 127.0.0.1\ns=-\nc=IN IP4 0.0.0.0\nt=0 0\na=range:npt=0-\na=range:npt=0-\n",
			want: "multiple range attributes",
		},
	}

	for _, test := range tests {
		desc, err := NewDecoder(strings.NewReader(test.data), nil).Decode()
		if desc != nil {
			t.Errorf("%s: expected no description, got %s", test.name, dump(desc))
		}
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("%s: expected %q, got %v", test.name, test.want, err)
		}
	}
}

func TestDescriptionReleaseNil(t *testing.T) {
	var desc *Description
	desc.Release()
}

func dump(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		panic(err)
	}

	return string(b)
}
