// Public domain.

package psprog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/soniakeys/protosep/protostar"
)

// protostar level fields are named with this prefix on the command line,
// distinguishing for example the per-comparison rmaj from all_rmaj.
const allPrefix = "all_"

// view is a flattened catalog view selectable by name.
type view struct {
	name  string
	level string
	get   func(*protostar.Catalog) []float64
}

func groupView(f protostar.GroupField) view {
	return view{f.Name, "group", func(c *protostar.Catalog) []float64 {
		return c.GroupValues(f)
	}}
}

func protostarView(f protostar.ProtostarField) view {
	return view{allPrefix + f.Name, "protostar", func(c *protostar.Catalog) []float64 {
		return c.ProtostarValues(f)
	}}
}

func views() []view {
	var vs []view
	for _, f := range protostar.GroupFields {
		vs = append(vs, groupView(f))
	}
	for _, f := range protostar.ProtostarFields {
		vs = append(vs, protostarView(f))
	}
	return vs
}

func lookupView(name string) (view, error) {
	if fn, ok := strings.CutPrefix(name, allPrefix); ok {
		if f, ok := protostar.LookupProtostarField(fn); ok {
			return protostarView(f), nil
		}
	} else if f, ok := protostar.LookupGroupField(name); ok {
		return groupView(f), nil
	}
	var names []string
	for _, v := range views() {
		names = append(names, v.name)
	}
	return view{}, fmt.Errorf("unknown field %q, want one of %s",
		name, strings.Join(names, ", "))
}

func (p *prog) valuesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "values FIELD FILE...",
		Short: "Print one flattened field, one value per line",
		Long: `Values prints a field flattened over all tables, in table, group and
member order.  See "protosep fields" for field names.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := lookupView(args[0])
			if err != nil {
				return err
			}
			c, err := p.catalog(args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, x := range v.get(c) {
				if _, err := fmt.Fprintln(out, strconv.FormatFloat(x, 'g', -1, 64)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (p *prog) fieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List field names accepted by values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, v := range views() {
				fmt.Fprintf(out, "%-30s %s\n", v.name, v.level)
			}
			return nil
		},
	}
}
