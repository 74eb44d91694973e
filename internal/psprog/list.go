// Public domain.

package psprog

import (
	"fmt"
	"io"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
	"github.com/spf13/cobra"

	"github.com/soniakeys/protosep/protostar"
)

func (p *prog) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list FILE...",
		Short: "List groups and their members",
		Long: `List prints every kept group with its members in table order.  The
reference member is marked with *; other members show their separation
from it in arc seconds.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := p.catalog(args)
			if err != nil {
				return err
			}
			return writeList(cmd.OutOrStdout(), c)
		},
	}
}

func writeList(w io.Writer, c *protostar.Catalog) error {
	for _, r := range c.Regions() {
		if _, err := fmt.Fprintf(w, "Region %s (%s), %d groups\n",
			r.Name(), r.Path(), len(r.Groups())); err != nil {
			return err
		}
		for _, g := range r.Groups() {
			if _, err := fmt.Fprintf(w, "  Field %d, %d members\n",
				g.Field(), g.Len()); err != nil {
				return err
			}
			sep := g.Separation()
			k := 0
			for i, ps := range g.Protostars() {
				mark := " "
				sepCol := ""
				if i == g.Reference() {
					mark = "*"
				} else {
					sepCol = fmt.Sprintf(" sep %8.2f\"", sep[k].Deg()*3600)
					k++
				}
				ra := unit.RAFromDeg(ps.Location.RA.Deg())
				if _, err := fmt.Fprintf(w, "   %s %-16s %.2d %+.1d inc %g±%g rmaj %g tbol %g%s\n",
					mark, ps.Name,
					sexa.FmtRA(ra), sexa.FmtAngle(ps.Location.Dec),
					ps.Inclination, ps.InclinationError, ps.Rmaj, ps.Tbol,
					sepCol); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
