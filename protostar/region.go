// Public domain.

package protostar

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/soniakeys/protosep/internal/table"
)

// Options control how tables are turned into Regions.  A nil *Options is
// valid and selects the defaults.
type Options struct {
	// Log receives warnings about dropped fields.
	// Nil selects the logrus standard logger.
	Log logrus.FieldLogger
	// Reference is the member index each group compares against.
	Reference int
}

func (o *Options) log() logrus.FieldLogger {
	if o == nil || o.Log == nil {
		return logrus.StandardLogger()
	}
	return o.Log
}

func (o *Options) reference() int {
	if o == nil {
		return 0
	}
	return o.Reference
}

// Region is the collection of Groups read from one table.
type Region struct {
	name   string
	path   string
	groups []*Group
}

// Name returns the region label of the first row of the table, or "" for a
// table without rows.
func (r *Region) Name() string { return r.name }

// Path returns the file the region was read from, if any.
func (r *Region) Path() string { return r.path }

// Groups returns the groups in ascending field order.
func (r *Region) Groups() []*Group {
	return append([]*Group{}, r.groups...)
}

// GroupValues concatenates a group field over all groups.
func (r *Region) GroupValues(f GroupField) []float64 {
	return appendGroupValues([]float64{}, r.groups, f)
}

// ProtostarValues concatenates a protostar field over all members of all
// groups.
func (r *Region) ProtostarValues(f ProtostarField) []float64 {
	return appendProtostarValues([]float64{}, r.groups, f)
}

// RegionFromFile reads a Region from the table in file fn.
// See package table for the file format.
func RegionFromFile(fn string, opt *Options) (*Region, error) {
	rows, err := table.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	r, err := newRegion(rows, opt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	r.path = fn
	return r, nil
}

// ReadRegion reads a table and partitions its rows into Groups.
//
// Rows are partitioned by field id.  A field qualifies as a group only
// with more than one row, and only rows with a finite right ascension become
// members.  Fields left with fewer than two members are dropped with a
// warning.  Groups are ordered by ascending field id, members by table row.
//
// Table format errors are returned; nothing is returned for a table that
// does not read completely.
func ReadRegion(r io.Reader, opt *Options) (*Region, error) {
	rows, err := table.Read(r)
	if err != nil {
		return nil, err
	}
	return newRegion(rows, opt)
}

func newRegion(rows []table.Row, opt *Options) (*Region, error) {
	log := opt.log()
	reg := &Region{}
	if len(rows) > 0 {
		reg.name = rows[0].Name.Region
	}

	byField := map[int][]int{}
	for i, row := range rows {
		byField[row.Name.Field] = append(byField[row.Name.Field], i)
	}
	fields := make([]int, 0, len(byField))
	for f := range byField {
		fields = append(fields, f)
	}
	sort.Ints(fields)

	for _, f := range fields {
		ix := byField[f]
		if len(ix) < 2 {
			row := rows[ix[0]]
			log.WithFields(logrus.Fields{
				"region": row.Name.Region,
				"field":  f,
			}).Warnf("%s has a single object in field %d", row.Key, f)
			continue
		}
		var ps []Protostar
		var last table.Row
		for _, i := range ix {
			last = rows[i]
			if !finite(last.RA) {
				continue
			}
			ps = append(ps, fromRow(last))
		}
		if len(ps) < 2 {
			log.WithFields(logrus.Fields{
				"region": last.Name.Region,
				"field":  f,
			}).Warnf("%s must have contained NaNs", last.Name.Region)
			continue
		}
		g, err := NewGroup(ps, opt.reference())
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", f, err)
		}
		g.field = f
		reg.groups = append(reg.groups, g)
	}
	return reg, nil
}

func fromRow(row table.Row) Protostar {
	return New(row.Key, NewLocation(row.RA, row.Dec),
		row.Inc, row.IncErr, row.Rmaj, row.Tbol)
}
