// Public domain.

// Package protostar groups young stellar objects observed in the same survey
// field and computes pairwise comparison statistics within each group.
//
// The hierarchy is Catalog → Region → Group → Protostar.  A Region is read
// from one table (see RegionFromFile), a Catalog composes Regions from many
// tables, and flattened views over the whole hierarchy feed population
// statistics.  Everything is computed once at construction and never
// changes after.
package protostar

import (
	"math"

	"github.com/soniakeys/meeus/v3/angle"
	"github.com/soniakeys/unit"
)

// Location is an ICRS sky position.
type Location struct {
	RA, Dec unit.Angle
}

// NewLocation constructs a Location from right ascension and declination
// in degrees.
func NewLocation(raDeg, decDeg float64) Location {
	return Location{unit.AngleFromDeg(raDeg), unit.AngleFromDeg(decDeg)}
}

// Finite reports whether both coordinates are finite numbers.
func (l Location) Finite() bool {
	return finite(l.RA.Rad()) && finite(l.Dec.Rad())
}

// Sep returns the great circle distance between l and o.
//
// Arguments are passed to angle.Sep in a fixed order so that
// l.Sep(o) == o.Sep(l) exactly.
func (l Location) Sep(o Location) unit.Angle {
	if l == o {
		return 0
	}
	if o.RA < l.RA || o.RA == l.RA && o.Dec < l.Dec {
		l, o = o, l
	}
	return angle.Sep(l.RA, l.Dec, o.RA, o.Dec)
}

// Protostar is one young stellar object.
type Protostar struct {
	Name             string // <region>_<field>_<object>
	Location         Location
	Inclination      float64
	InclinationError float64
	Rmaj             float64 // disk major axis radius
	Tbol             float64 // bolometric temperature
}

// New constructs a Protostar.  All fields are required.
func New(name string, loc Location, inc, incErr, rmaj, tbol float64) Protostar {
	return Protostar{
		Name:             name,
		Location:         loc,
		Inclination:      inc,
		InclinationError: incErr,
		Rmaj:             rmaj,
		Tbol:             tbol,
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
