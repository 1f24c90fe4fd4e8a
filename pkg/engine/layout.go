package engine

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/plotgrid/plotgrid/pkg/scale"
	"github.com/plotgrid/plotgrid/pkg/stack"
)

// =============================================================================
// Layout - Render-Ready Coordinate Set
// =============================================================================

// Layout is the serializable output of one normalization call.
//
// This is a discriminated union type - check Kind to determine which fields
// are populated:
//
//	line, point:
//	  - Points: one screen position per input point, input order preserved
//
//	bar:
//	  - Bars: one sign-aware bar extent per input point
//
//	stackedbar:
//	  - Groups: one slot per distinct x-key, first-seen order
//
// Shared fields (all kinds):
//   - Width, Height: the geometry the layout was computed for
//   - Baseline: screen y of domain value zero, clamped to [0, Height]
//
// The JSON form round-trips: a layout written with WriteFile and read back
// with ReadFile compares equal field by field.
type Layout struct {
	// Discriminator
	Kind Kind `json:"kind" bson:"kind"`

	// Geometry echo
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	// Baseline is shared by every kind; renderers draw the zero line here.
	Baseline float64 `json:"baseline" bson:"baseline"`

	// Kind-specific payloads
	Points []Position     `json:"points,omitempty" bson:"points,omitempty"`
	Bars   []BarMark      `json:"bars,omitempty" bson:"bars,omitempty"`
	Groups []StackedGroup `json:"groups,omitempty" bson:"groups,omitempty"`
}

// Position is a screen-space point. Origin is the top-left corner and y
// increases downward.
type Position struct {
	X  float64 `json:"x" bson:"x"`
	Y  float64 `json:"y" bson:"y"`
	ID string  `json:"id,omitempty" bson:"id,omitempty"`
}

// BarMark is one bar's screen extent: centered at X, extending Length
// screen units from the layout baseline, upward when Up is true.
type BarMark struct {
	X      float64 `json:"x" bson:"x"`
	Length float64 `json:"length" bson:"length"`
	Up     bool    `json:"up" bson:"up"`
}

// Top returns the smaller screen y of the bar.
func (b BarMark) Top(baseline float64) float64 {
	return scale.Bar{Length: b.Length, Up: b.Up}.Top(baseline)
}

// Bottom returns the larger screen y of the bar.
func (b BarMark) Bottom(baseline float64) float64 {
	return scale.Bar{Length: b.Length, Up: b.Up}.Bottom(baseline)
}

// StackedGroup is one x-key's aggregate in a stacked-bar layout. Offset is
// the left edge of the group's bar and Width its horizontal size, both in
// screen units. Segments carry each contribution's vertical screen extent.
type StackedGroup struct {
	Key      float64       `json:"key" bson:"key"`
	Sum      float64       `json:"sum" bson:"sum"`
	Width    float64       `json:"width" bson:"width"`
	Offset   float64       `json:"offset" bson:"offset"`
	Segments []SegmentMark `json:"segments,omitempty" bson:"segments,omitempty"`
}

// SegmentMark is one stacked segment's vertical screen extent. Y0 is the
// screen y of the segment's cumulative start, Y1 of its cumulative end;
// because the y axis is inverted, Y1 < Y0 for positive values.
type SegmentMark struct {
	Value float64 `json:"value" bson:"value"`
	Y0    float64 `json:"y0" bson:"y0"`
	Y1    float64 `json:"y1" bson:"y1"`
}

// =============================================================================
// Serialization
// =============================================================================

// Marshal encodes a layout as indented JSON.
func Marshal(l Layout) ([]byte, error) {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode layout: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a layout from JSON and validates its kind.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	if _, err := ParseKind(string(l.Kind)); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteFile writes a layout to a JSON file at path.
func WriteFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadFile reads a layout from a JSON file at path.
func ReadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Unmarshal(data)
}

// segmentsFromStack converts cumulative domain segments into screen extents.
func segmentsFromStack(segs []stack.Segment, ly scale.Linear) []SegmentMark {
	marks := make([]SegmentMark, len(segs))
	for i, s := range segs {
		marks[i] = SegmentMark{
			Value: s.Value,
			Y0:    ly.Y(s.Start),
			Y1:    ly.Y(s.End),
		}
	}
	return marks
}
