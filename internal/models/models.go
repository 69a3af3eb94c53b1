package models

import (
	json "github.com/goccy/go-json"
)

// RankItem is one category of a ranking (country -> value).
type RankItem struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// YearValue is one point of a per-country series.
type YearValue struct {
	Year  int64   `json:"year"`
	Value float64 `json:"value"`
}

// Figure is a chart specification in the shape Plotly.js consumes.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is a single bar series. Categories go on the category axis and
// Values on the numeric axis; MarshalJSON maps them onto x/y according
// to Orientation.
type Trace struct {
	Type        string
	Orientation string // "v" or "h"
	Name        string
	Categories  []string
	Values      []float64
}

type Layout struct {
	Title    Title  `json:"title"`
	Template string `json:"template,omitempty"`
	Height   int    `json:"height,omitempty"`
	XAxis    *Axis  `json:"xaxis,omitempty"`
	YAxis    *Axis  `json:"yaxis,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Title  `json:"title"`
	Type  string `json:"type,omitempty"`
}

func (t Trace) MarshalJSON() ([]byte, error) {
	out := struct {
		Type        string      `json:"type"`
		Orientation string      `json:"orientation,omitempty"`
		Name        string      `json:"name,omitempty"`
		X           interface{} `json:"x"`
		Y           interface{} `json:"y"`
	}{
		Type:        t.Type,
		Orientation: t.Orientation,
		Name:        t.Name,
	}
	cats := t.Categories
	if cats == nil {
		cats = []string{}
	}
	vals := t.Values
	if vals == nil {
		vals = []float64{}
	}
	if t.Orientation == "h" {
		out.X, out.Y = vals, cats
	} else {
		out.X, out.Y = cats, vals
	}
	return json.Marshal(out)
}

// Text is a rendered text output (the report heading).
type Text struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// Update is a per-output optional result. The zero value means "leave the
// output as it is"; Replace marks a value that overwrites the output.
type Update[T any] struct {
	value T
	set   bool
}

func Replace[T any](v T) Update[T] {
	return Update[T]{value: v, set: true}
}

func NoUpdate[T any]() Update[T] {
	return Update[T]{}
}

// Get returns the value and whether the output should be replaced.
func (u Update[T]) Get() (T, bool) {
	return u.value, u.set
}

func (u Update[T]) IsSet() bool {
	return u.set
}

// Option is a dropdown entry.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CallbackRequest is the body of POST /api/callbacks/:id. A null or missing
// input means the control has no selection.
type CallbackRequest struct {
	Inputs map[string]*string `json:"inputs"`
}

// CallbackResponse carries only the outputs that were replaced.
type CallbackResponse struct {
	Outputs map[string]interface{} `json:"outputs"`
}

// CallbackSpec describes a callback's wiring for the browser.
type CallbackSpec struct {
	ID      string   `json:"id"`
	Inputs  []string `json:"inputs"`
	Outputs []string `json:"outputs"`
}
