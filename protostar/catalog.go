// Public domain.

package protostar

// Catalog is an ordered collection of Regions.
//
// The flattened views concatenate a field across the whole hierarchy in
// region, group (and protostar) order.  They are recomputed on every call.
type Catalog struct {
	regions []*Region
}

// NewCatalog constructs a Catalog of existing Regions.
func NewCatalog(regions ...*Region) *Catalog {
	return &Catalog{append([]*Region{}, regions...)}
}

// CatalogFromFiles reads one Region per file, in argument order.
// The first error is returned and no Catalog is constructed.
func CatalogFromFiles(opt *Options, files ...string) (*Catalog, error) {
	regions := make([]*Region, len(files))
	for i, fn := range files {
		r, err := RegionFromFile(fn, opt)
		if err != nil {
			return nil, err
		}
		regions[i] = r
	}
	return &Catalog{regions}, nil
}

// Regions returns the regions in construction order.
func (c *Catalog) Regions() []*Region {
	return append([]*Region{}, c.regions...)
}

// GroupValues concatenates a group field over every group of every region.
func (c *Catalog) GroupValues(f GroupField) []float64 {
	out := []float64{}
	for _, r := range c.regions {
		out = appendGroupValues(out, r.groups, f)
	}
	return out
}

// ProtostarValues concatenates a protostar field over every group member
// of every region.
func (c *Catalog) ProtostarValues(f ProtostarField) []float64 {
	out := []float64{}
	for _, r := range c.regions {
		out = appendProtostarValues(out, r.groups, f)
	}
	return out
}

// Separation returns all angular separations, in radians.
func (c *Catalog) Separation() []float64 {
	return c.GroupValues(GroupSeparation)
}

// InclinationDifference returns all inclination differences.
func (c *Catalog) InclinationDifference() []float64 {
	return c.GroupValues(GroupInclinationDifference)
}

// InclinationDifferenceError returns all inclination difference errors.
func (c *Catalog) InclinationDifferenceError() []float64 {
	return c.GroupValues(GroupInclinationDifferenceError)
}

// Rmaj returns the per-comparison maximum disk radii of all groups.
func (c *Catalog) Rmaj() []float64 {
	return c.GroupValues(GroupRmaj)
}

// AllRmaj returns the disk radius of every protostar in every group.
func (c *Catalog) AllRmaj() []float64 {
	return c.ProtostarValues(StarRmaj)
}

// AllTbol returns the bolometric temperature of every protostar in every
// group.
func (c *Catalog) AllTbol() []float64 {
	return c.ProtostarValues(StarTbol)
}
