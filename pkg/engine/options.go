package engine

import (
	"math"

	"github.com/plotgrid/plotgrid/pkg/errors"
	"github.com/plotgrid/plotgrid/pkg/stack"
)

// =============================================================================
// Chart Kinds
// =============================================================================

// Kind selects which normalization strategy the engine applies.
type Kind string

// Supported chart kinds.
const (
	KindLine       Kind = "line"
	KindPoint      Kind = "point"
	KindBar        Kind = "bar"
	KindStackedBar Kind = "stackedbar"
)

// ValidKinds is the set of supported chart kinds.
var ValidKinds = map[Kind]bool{
	KindLine:       true,
	KindPoint:      true,
	KindBar:        true,
	KindStackedBar: true,
}

// ParseKind validates a kind string.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !ValidKinds[k] {
		return "", errors.New(errors.ErrCodeInvalidKind, "invalid chart kind: %q (must be one of: line, point, bar, stackedbar)", s)
	}
	return k, nil
}

// =============================================================================
// Geometry
// =============================================================================

// Geometry is the target drawing-area size in screen units.
type Geometry struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Validate checks that both dimensions are finite and non-negative.
func (g Geometry) Validate() error {
	for _, d := range []struct {
		name string
		v    float64
	}{{"width", g.Width}, {"height", g.Height}} {
		if math.IsNaN(d.v) || math.IsInf(d.v, 0) {
			return errors.New(errors.ErrCodeInvalidGeometry, "%s must be finite, got %v", d.name, d.v)
		}
		if d.v < 0 {
			return errors.New(errors.ErrCodeInvalidGeometry, "%s must be >= 0, got %v", d.name, d.v)
		}
	}
	return nil
}

// =============================================================================
// Options
// =============================================================================

// DefaultSlotFill is the fraction of each stacked-bar slot occupied by the
// group; the remainder becomes symmetric padding around it.
const DefaultSlotFill = 0.8

// Option configures a normalization call.
type Option func(*config)

type config struct {
	stackKey stack.KeyFunc
	slotFill float64
}

func newConfig(opts ...Option) config {
	cfg := config{slotFill: DefaultSlotFill}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithStackKey sets the key-extraction function used to group points for
// stacked charts. Use this to quantize floating-point x domains instead of
// relying on exact numeric equality.
func WithStackKey(fn stack.KeyFunc) Option {
	return func(c *config) { c.stackKey = fn }
}

// WithSlotFill sets the fraction of each stacked-bar slot occupied by the
// group, clamped to (0, 1].
func WithSlotFill(f float64) Option {
	return func(c *config) {
		if f > 0 && f <= 1 {
			c.slotFill = f
		}
	}
}
