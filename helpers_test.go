package rtsp

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

type T struct {
	*testing.T
}

var ignoreReleaseState = cmpopts.IgnoreUnexported(URL{}, TimeRange{})

func ptr[V any](v V) *V {
	return &v
}

func diff(got, want interface{}) string {
	return cmp.Diff(want, got, ignoreReleaseState)
}

func dump(v interface{}) string {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		panic(err)
	}

	return string(b)
}
