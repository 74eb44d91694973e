// Public domain.

package psprog

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/soniakeys/protosep/internal/stats"
	"github.com/soniakeys/protosep/protostar"
)

type regionReport struct {
	Name       string `json:"name" yaml:"name"`
	Path       string `json:"path" yaml:"path"`
	Groups     int    `json:"groups" yaml:"groups"`
	Protostars int    `json:"protostars" yaml:"protostars"`
}

// statistics are pointers so that NaN, which JSON cannot represent,
// encodes as null.
type fieldReport struct {
	Field    string   `json:"field" yaml:"field"`
	Level    string   `json:"level" yaml:"level"`
	N        int      `json:"n" yaml:"n"`
	Excluded int      `json:"excluded" yaml:"excluded"`
	Mean     *float64 `json:"mean" yaml:"mean"`
	Median   *float64 `json:"median" yaml:"median"`
	Std      *float64 `json:"std" yaml:"std"`
	Min      *float64 `json:"min" yaml:"min"`
	Max      *float64 `json:"max" yaml:"max"`
}

type intervalReport struct {
	Level     float64  `json:"level" yaml:"level"`
	Resamples int      `json:"resamples" yaml:"resamples"`
	Lo        *float64 `json:"lo" yaml:"lo"`
	Hi        *float64 `json:"hi" yaml:"hi"`
}

type summaryReport struct {
	Regions []regionReport `json:"regions" yaml:"regions"`
	Fields  []fieldReport  `json:"fields" yaml:"fields"`
	// bootstrap interval of the median separation, radians
	SeparationMedian intervalReport `json:"separation_median" yaml:"separation_median"`
}

func num(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}
	return &x
}

type summaryOptions struct {
	format    string
	resamples int
	level     float64
	seed      uint64
}

func (p *prog) summaryCommand() *cobra.Command {
	var o summaryOptions
	cmd := &cobra.Command{
		Use:   "summary FILE...",
		Short: "Summarize comparison statistics over all tables",
		Long: `Summary reads each table as a region and reports, for every flattened
field, the count of finite values with their mean, median, standard
deviation and range.  A bootstrap confidence interval of the median
separation is included.  Separations are in radians.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !stats.ValidLevel(o.level) {
				return fmt.Errorf("confidence level %g not between 0 and 1", o.level)
			}
			if o.resamples < 1 {
				return fmt.Errorf("bootstrap resamples %d, want at least 1", o.resamples)
			}
			c, err := p.catalog(args)
			if err != nil {
				return err
			}
			r := summarize(c, o)
			return writeSummary(cmd.OutOrStdout(), r, o.format)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.format, "format", "f", "text", "output format: text, yaml or json")
	f.IntVar(&o.resamples, "bootstrap", 1000, "bootstrap resamples of the median separation")
	f.Float64Var(&o.level, "level", .68, "confidence level of the bootstrap interval")
	f.Uint64Var(&o.seed, "seed", 0, "random seed, 0 for a repeatable default")
	return cmd
}

func summarize(c *protostar.Catalog, o summaryOptions) summaryReport {
	var r summaryReport
	for _, reg := range c.Regions() {
		rr := regionReport{Name: reg.Name(), Path: reg.Path()}
		for _, g := range reg.Groups() {
			rr.Groups++
			rr.Protostars += g.Len()
		}
		r.Regions = append(r.Regions, rr)
	}
	for _, v := range views() {
		s := stats.Summarize(v.get(c))
		r.Fields = append(r.Fields, fieldReport{
			Field:    v.name,
			Level:    v.level,
			N:        s.N,
			Excluded: s.NaN,
			Mean:     num(s.Mean),
			Median:   num(s.Median),
			Std:      num(s.Std),
			Min:      num(s.Min),
			Max:      num(s.Max),
		})
	}
	iv := stats.BootstrapMedian(c.Separation(), o.resamples, o.level,
		stats.NewRand(o.seed))
	r.SeparationMedian = intervalReport{
		Level:     iv.Level,
		Resamples: o.resamples,
		Lo:        num(iv.Lo),
		Hi:        num(iv.Hi),
	}
	return r
}

func writeSummary(w io.Writer, r summaryReport, format string) error {
	switch format {
	case "json":
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(r)
	case "yaml":
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = w.Write(b)
		return err
	case "text":
		return writeText(w, r)
	}
	return fmt.Errorf("unknown format %q, want text, yaml or json", format)
}

func fmtNum(x *float64) string {
	if x == nil {
		return "-"
	}
	return strconv.FormatFloat(*x, 'g', 5, 64)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func styled(t *table.Table) *table.Table {
	return t.Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func writeText(w io.Writer, r summaryReport) error {
	rt := styled(table.New()).Headers("Region", "File", "Groups", "Protostars")
	for _, rr := range r.Regions {
		rt.Row(rr.Name, rr.Path, strconv.Itoa(rr.Groups), strconv.Itoa(rr.Protostars))
	}
	ft := styled(table.New()).
		Headers("Field", "Level", "N", "Excl", "Mean", "Median", "Std", "Min", "Max")
	for _, f := range r.Fields {
		ft.Row(f.Field, f.Level, strconv.Itoa(f.N), strconv.Itoa(f.Excluded),
			fmtNum(f.Mean), fmtNum(f.Median), fmtNum(f.Std),
			fmtNum(f.Min), fmtNum(f.Max))
	}
	m := r.SeparationMedian
	_, err := fmt.Fprintf(w, "%s\n%s\nMedian separation %.0f%% interval (%d resamples): %s .. %s rad\n",
		rt, ft, m.Level*100, m.Resamples, fmtNum(m.Lo), fmtNum(m.Hi))
	return err
}
