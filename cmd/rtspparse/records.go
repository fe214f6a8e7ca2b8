package main

import (
	"strconv"

	"github.com/nostressdev/rtsp"
)

type urlRecord struct {
	Input      string   `json:"input"`
	Transports string   `json:"transports"`
	Family     string   `json:"family"`
	User       *string  `json:"user,omitempty"`
	Password   *string  `json:"password,omitempty"`
	Host       string   `json:"host"`
	Port       *uint16  `json:"port,omitempty"`
	Abspath    string   `json:"abspath"`
	Query      *string  `json:"query,omitempty"`
	Components []string `json:"components,omitempty"`
	RequestURI string   `json:"request_uri"`
}

func newURLRecord(input string, u *rtsp.URL, components bool) urlRecord {
	rec := urlRecord{
		Input:      input,
		Transports: u.Transports.String(),
		Family:     u.Family.String(),
		User:       u.User,
		Password:   u.Password,
		Host:       u.Host,
		Port:       u.Port,
		Abspath:    u.Abspath,
		Query:      u.Query,
		RequestURI: u.RequestURI(),
	}
	if components {
		rec.Components = u.DecodePathComponents()
	}
	return rec
}

type urlRecords []urlRecord

func (r urlRecords) headers() []string {
	return []string{"Input", "Host", "Port", "Path", "Transports", "Family"}
}

func (r urlRecords) rows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, rec := range r {
		port := "-"
		if rec.Port != nil {
			port = strconv.FormatUint(uint64(*rec.Port), 10)
		}
		rows = append(rows, []string{rec.Input, rec.Host, port, rec.Abspath, rec.Transports, rec.Family})
	}
	return rows
}

type timeRecord struct {
	Kind     string   `json:"kind"`
	Seconds  *float64 `json:"seconds,omitempty"`
	Frames   *float64 `json:"frames,omitempty"`
	Duration string   `json:"duration,omitempty"`
}

func newTimeRecord(unit rtsp.RangeUnit, t rtsp.TimeSpec) timeRecord {
	rec := timeRecord{Kind: t.Kind.String()}

	switch t.Kind {
	case rtsp.TimeSeconds:
		seconds := t.Seconds
		rec.Seconds = &seconds
	case rtsp.TimeFrames:
		seconds, frames := t.Seconds, t.Frames
		rec.Seconds, rec.Frames = &seconds, &frames
	}

	if d, ok := t.Duration(unit); ok {
		rec.Duration = d.String()
	}
	return rec
}

func (t timeRecord) String() string {
	if t.Duration != "" {
		return t.Duration
	}
	return t.Kind
}

type rangeRecord struct {
	Input     string     `json:"input"`
	Unit      string     `json:"unit"`
	Min       timeRecord `json:"min"`
	Max       timeRecord `json:"max"`
	Canonical string     `json:"canonical"`
}

func newRangeRecord(input string, r *rtsp.TimeRange) rangeRecord {
	return rangeRecord{
		Input:     input,
		Unit:      r.Unit.String(),
		Min:       newTimeRecord(r.Unit, r.Min),
		Max:       newTimeRecord(r.Unit, r.Max),
		Canonical: r.String(),
	}
}

type rangeRecords []rangeRecord

func (r rangeRecords) headers() []string {
	return []string{"Input", "Unit", "Min", "Max", "Canonical"}
}

func (r rangeRecords) rows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, rec := range r {
		rows = append(rows, []string{rec.Input, rec.Unit, rec.Min.String(), rec.Max.String(), rec.Canonical})
	}
	return rows
}

type mediaRecord struct {
	Type    string       `json:"type"`
	Control string       `json:"control,omitempty"`
	Range   *rangeRecord `json:"range,omitempty"`
}

func newMediaRecord(typ string, control *rtsp.URL, r *rtsp.TimeRange) mediaRecord {
	rec := mediaRecord{Type: typ}
	if control != nil {
		rec.Control = control.String()
	}
	if r != nil {
		rr := newRangeRecord(r.String(), r)
		rec.Range = &rr
	}
	return rec
}

// mediaRecords lists the session itself first, with type "session".
type mediaRecords []mediaRecord

func (r mediaRecords) headers() []string {
	return []string{"Type", "Control", "Range"}
}

func (r mediaRecords) rows() [][]string {
	rows := make([][]string, 0, len(r))
	for _, rec := range r {
		rng := ""
		if rec.Range != nil {
			rng = rec.Range.Canonical
		}
		rows = append(rows, []string{rec.Type, rec.Control, rng})
	}
	return rows
}
