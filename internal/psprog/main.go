// Public domain.

// Package psprog implements the protosep command.
package psprog

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/soniakeys/exit"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/soniakeys/protosep/config"
	"github.com/soniakeys/protosep/protostar"
)

const versionString = "protosep version 0.1 Go source."
const copyrightString = "Public domain."

// Main runs the command with os.Args and terminates the program on error.
func Main() {
	defer exit.Handler()
	if err := NewCommand(afero.NewOsFs(), os.Stdout, os.Stderr).Execute(); err != nil {
		exit.Log(err)
	}
}

// prog is state shared by the subcommands.  Settings are loaded once,
// before any subcommand runs.
type prog struct {
	fs        afero.Fs // settings filesystem
	cfgPath   string
	reference int

	settings config.Settings
	log      *logrus.Logger
}

// NewCommand returns the root protosep command.  Settings are read from
// fs; tables are always read from the OS filesystem.
func NewCommand(fs afero.Fs, out, errOut io.Writer) *cobra.Command {
	p := &prog{fs: fs}
	root := &cobra.Command{
		Use:   "protosep",
		Short: "Pairwise statistics of protostars sharing survey fields",
		Long: `Protosep reads protostar survey tables, groups objects observed in the
same field, and compares every group member against a reference member:
angular separation, inclination difference and its error, and the larger
disk radius.  Results are summarized over all tables given.

Tables are comma separated with a heading line and columns
Name, RA, DEC, Inc, Inc_err, Rmaj, Tbol0.  Names have the form
<region>_<field>_<object>.`,
		Version:       versionString,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return p.setup(cmd.ErrOrStderr())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetVersionTemplate(versionString + "\n" + copyrightString + "\n")
	pf := root.PersistentFlags()
	pf.StringVar(&p.cfgPath, "config", config.DefaultPath(), "settings file")
	pf.IntVarP(&p.reference, "reference", "r", 0,
		"index of the group member others are compared to")
	root.AddCommand(
		p.summaryCommand(),
		p.listCommand(),
		p.valuesCommand(),
		p.fieldsCommand(),
		p.configCommand(),
	)
	return root
}

func (p *prog) setup(logOut io.Writer) error {
	s, err := config.Load(p.fs, p.cfgPath)
	if err != nil {
		return err
	}
	log, err := config.NewLogger(s.Logging)
	if err != nil {
		return err
	}
	if s.Logging.On {
		log.SetOutput(logOut)
	}
	p.settings, p.log = s, log
	log.WithField("path", p.cfgPath).Debug("settings loaded")
	return nil
}

func (p *prog) catalog(files []string) (*protostar.Catalog, error) {
	return protostar.CatalogFromFiles(&protostar.Options{
		Log:       p.log,
		Reference: p.reference,
	}, files...)
}

func (p *prog) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Settings file:", p.cfgPath)
			_, err := fmt.Fprintln(out, config.Show(p.settings))
			return err
		},
	}
}
