// Public domain.

package protostar

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

var (
	// ErrTooFewMembers is returned by NewGroup for fewer than two members.
	ErrTooFewMembers = errors.New("group needs at least two protostars")
	// ErrReference is returned by NewGroup for a reference index that
	// does not select a member.
	ErrReference = errors.New("reference index out of range")
)

// Group holds protostars sharing a survey field.  Every member other than
// the reference member is compared against the reference member, giving
// derived arrays of length len(Protostars())-1 in member order.
type Group struct {
	protostars []Protostar
	ref        int
	field      int

	sep        []unit.Angle
	incDiff    []float64
	incDiffErr []float64
	rmaj       []float64
}

// NewGroup constructs a Group, comparing each member of ps against ps[ref].
//
// Regions build groups with Options.Reference, by default 0, the first
// member in table order.
func NewGroup(ps []Protostar, ref int) (*Group, error) {
	if len(ps) < 2 {
		return nil, fmt.Errorf("%w, have %d", ErrTooFewMembers, len(ps))
	}
	if ref < 0 || ref >= len(ps) {
		return nil, fmt.Errorf("%w: %d, group of %d", ErrReference, ref, len(ps))
	}
	n := len(ps) - 1
	g := &Group{
		protostars: append([]Protostar{}, ps...),
		ref:        ref,
		sep:        make([]unit.Angle, 0, n),
		incDiff:    make([]float64, 0, n),
		incDiffErr: make([]float64, 0, n),
		rmaj:       make([]float64, 0, n),
	}
	r := &g.protostars[ref]
	for i := range g.protostars {
		if i == ref {
			continue
		}
		p := &g.protostars[i]
		g.sep = append(g.sep, r.Location.Sep(p.Location))
		g.incDiff = append(g.incDiff, math.Abs(r.Inclination-p.Inclination))
		g.incDiffErr = append(g.incDiffErr,
			math.Hypot(r.InclinationError, p.InclinationError))
		g.rmaj = append(g.rmaj, math.Max(r.Rmaj, p.Rmaj))
	}
	return g, nil
}

// Len returns the number of members.
func (g *Group) Len() int { return len(g.protostars) }

// Protostars returns the members in insertion order.
func (g *Group) Protostars() []Protostar {
	return append([]Protostar{}, g.protostars...)
}

// Reference returns the index of the member the others are compared to.
func (g *Group) Reference() int { return g.ref }

// Field returns the survey field id the group was partitioned on.
// It is zero for groups not built from a table.
func (g *Group) Field() int { return g.field }

// Separation returns angular separations from the reference member.
func (g *Group) Separation() []unit.Angle {
	return append([]unit.Angle{}, g.sep...)
}

// InclinationDifference returns absolute inclination differences from the
// reference member.
func (g *Group) InclinationDifference() []float64 {
	return append([]float64{}, g.incDiff...)
}

// InclinationDifferenceError returns the uncertainty of each inclination
// difference, the member errors added in quadrature.
func (g *Group) InclinationDifferenceError() []float64 {
	return append([]float64{}, g.incDiffErr...)
}

// Rmaj returns for each comparison the larger of the two disk radii.
func (g *Group) Rmaj() []float64 {
	return append([]float64{}, g.rmaj...)
}
