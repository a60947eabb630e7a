// pkg/api/reports_v1.go
package api

// SequenceV1 is the stable JSON/YAML schema for a Fibonacci run.
// Terms are decimal strings so int32 and big widths share one schema.
type SequenceV1 struct {
	N     int      `json:"n" yaml:"n"`
	Width string   `json:"width" yaml:"width"` // "int32" | "big"
	Terms []string `json:"terms" yaml:"terms"`
}

// TermV1 is one addend 1/order! of the series.
type TermV1 struct {
	Order int     `json:"order" yaml:"order"`
	Value float64 `json:"value" yaml:"value"`
}

// SeriesV1 is the stable schema for a Taylor-series estimate of e.
type SeriesV1 struct {
	Order      int      `json:"order" yaml:"order"`
	Terms      []TermV1 `json:"terms" yaml:"terms"`
	Estimate   float64  `json:"estimate" yaml:"estimate"`
	Reference  float64  `json:"reference" yaml:"reference"`
	Difference float64  `json:"difference" yaml:"difference"`
}

// ElementV1 is one indexed buffer slot.
type ElementV1 struct {
	Index int `json:"index" yaml:"index"`
	Value int `json:"value" yaml:"value"`
}

// ArrayV1 is the stable schema for the array demo.
type ArrayV1 struct {
	Size     int         `json:"size" yaml:"size"`
	Elements []ElementV1 `json:"elements" yaml:"elements"`
}
