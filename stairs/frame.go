package stairs

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/staircase/domain"
)

// Interval is one constant piece of a step function.
type Interval struct {
	Start domain.Point `yaml:"start"`
	End   domain.Point `yaml:"end"`
	Value float64      `yaml:"value"`
}

// Frame is the tabular rendering of a step function: consecutive intervals
// from -∞ to +∞.
type Frame []Interval

// ToFrame returns every constant piece of s, including the unbounded first
// and last pieces.
func (s *Stairs) ToFrame() Frame {
	vs := s.cumulative()
	out := make(Frame, 0, len(s.points)+1)
	start, level := domain.NegInf(), s.initial
	for i, p := range s.points {
		end := domain.At(p)
		out = append(out, Interval{Start: start, End: end, Value: level})
		start, level = end, vs[i]
	}

	return append(out, Interval{Start: start, End: domain.PosInf(), Value: level})
}

// Decoded returns the frame with endpoints decoded through cfg: time.Time
// for finite datetime endpoints, float64 otherwise.
func (f Frame) Decoded(cfg domain.Config) [][3]any {
	rows := make([][3]any, len(f))
	for i, iv := range f {
		rows[i] = [3]any{cfg.Decode(iv.Start.Float()), cfg.Decode(iv.End.Float()), iv.Value}
	}

	return rows
}

// String renders s as its frame, one interval per line.
func (s *Stairs) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stairs(closed=%s)", s.closed)
	lb, rb := "[", ")"
	if s.closed == Right {
		lb, rb = "(", "]"
	}
	for _, iv := range s.ToFrame() {
		fmt.Fprintf(&b, "\n  %s%v, %v%s = %v", lb, iv.Start, iv.End, rb, iv.Value)
	}

	return b.String()
}

type yamlStep struct {
	At    float64 `yaml:"at"`
	Value float64 `yaml:"value"`
}

type yamlStairs struct {
	Closed  string     `yaml:"closed"`
	Initial float64    `yaml:"initial"`
	Steps   []yamlStep `yaml:"steps,omitempty"`
}

// MarshalYAML encodes s by its value view.
func (s *Stairs) MarshalYAML() (interface{}, error) {
	doc := yamlStairs{Closed: s.closed.String(), Initial: s.initial}
	vs := s.cumulative()
	for i, p := range s.points {
		doc.Steps = append(doc.Steps, yamlStep{At: p, Value: vs[i]})
	}

	return doc, nil
}

// UnmarshalYAML decodes the form written by MarshalYAML. The domain
// configuration and logger are reset to their defaults.
func (s *Stairs) UnmarshalYAML(node *yaml.Node) error {
	var doc yamlStairs
	if err := node.Decode(&doc); err != nil {
		return errors.Wrap(err, "stairs: decode yaml")
	}
	closed := DefaultClosed
	if doc.Closed != "" {
		var err error
		if closed, err = ParseClosed(doc.Closed); err != nil {
			return err
		}
	}
	ps := make([]float64, len(doc.Steps))
	vs := make([]float64, len(doc.Steps))
	for i, st := range doc.Steps {
		ps[i], vs[i] = st.At, st.Value
	}
	decoded, err := FromValues(doc.Initial, ps, vs, WithClosed(closed))
	if err != nil {
		return err
	}
	*s = *decoded

	return nil
}
