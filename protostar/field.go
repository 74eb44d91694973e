// Public domain.

package protostar

// GroupField is a per-comparison array computed by Group, one value per
// non-reference member.
type GroupField struct {
	Name   string
	Values func(*Group) []float64
}

// ProtostarField is a numeric property of a single Protostar.
type ProtostarField struct {
	Name  string
	Value func(Protostar) float64
}

// Group fields.
var (
	GroupSeparation = GroupField{"separation", func(g *Group) []float64 {
		s := make([]float64, len(g.sep))
		for i, a := range g.sep {
			s[i] = a.Rad()
		}
		return s
	}}
	GroupInclinationDifference = GroupField{"inclination_difference",
		(*Group).InclinationDifference}
	GroupInclinationDifferenceError = GroupField{"inclination_difference_error",
		(*Group).InclinationDifferenceError}
	GroupRmaj = GroupField{"rmaj", (*Group).Rmaj}
)

// Protostar fields.
var (
	StarRmaj             = ProtostarField{"rmaj", func(p Protostar) float64 { return p.Rmaj }}
	StarTbol             = ProtostarField{"tbol", func(p Protostar) float64 { return p.Tbol }}
	StarInclination      = ProtostarField{"inclination", func(p Protostar) float64 { return p.Inclination }}
	StarInclinationError = ProtostarField{"inclination_error", func(p Protostar) float64 { return p.InclinationError }}
	StarRA               = ProtostarField{"ra", func(p Protostar) float64 { return p.Location.RA.Deg() }}
	StarDec              = ProtostarField{"dec", func(p Protostar) float64 { return p.Location.Dec.Deg() }}
)

// GroupFields lists every GroupField.
var GroupFields = []GroupField{
	GroupSeparation,
	GroupInclinationDifference,
	GroupInclinationDifferenceError,
	GroupRmaj,
}

// ProtostarFields lists every ProtostarField.
var ProtostarFields = []ProtostarField{
	StarRmaj,
	StarTbol,
	StarInclination,
	StarInclinationError,
	StarRA,
	StarDec,
}

// LookupGroupField finds a GroupField by name.
func LookupGroupField(name string) (GroupField, bool) {
	for _, f := range GroupFields {
		if f.Name == name {
			return f, true
		}
	}
	return GroupField{}, false
}

// LookupProtostarField finds a ProtostarField by name.
func LookupProtostarField(name string) (ProtostarField, bool) {
	for _, f := range ProtostarFields {
		if f.Name == name {
			return f, true
		}
	}
	return ProtostarField{}, false
}

func appendGroupValues(out []float64, groups []*Group, f GroupField) []float64 {
	for _, g := range groups {
		out = append(out, f.Values(g)...)
	}
	return out
}

func appendProtostarValues(out []float64, groups []*Group, f ProtostarField) []float64 {
	for _, g := range groups {
		for _, p := range g.protostars {
			out = append(out, f.Value(p))
		}
	}
	return out
}
