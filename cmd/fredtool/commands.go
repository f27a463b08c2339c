/*
 * commands.go, part of gofred.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package main

import (
	"fmt"
	"strconv"

	fred "github.com/rmera/gofred"
	"github.com/rmera/gofred/fredplot"
	"github.com/urfave/cli/v2"
	"gonum.org/v1/plot/vg"
)

func (T *tool) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:      "normalize",
			Usage:     "read a fred file and write it back sorted and renumbered",
			ArgsUsage: "IN OUT",
			Action:    T.normalize,
		},
		{
			Name:      "complete",
			Usage:     "print the namelist with the values derived from the fragments",
			ArgsUsage: "IN",
			Action:    T.complete,
		},
		{
			Name:      "check",
			Usage:     "report skipped lines and consistency problems",
			ArgsUsage: "IN",
			Action:    T.check,
		},
		{
			Name:      "stats",
			Usage:     "print fragment statistics",
			ArgsUsage: "IN",
			Action:    T.stats,
		},
		{
			Name:      "plot",
			Usage:     "draw a bar chart of the fragment sizes (or charges)",
			ArgsUsage: "IN OUT",
			Flags:     []cli.Flag{&cli.BoolFlag{Name: "charge", Usage: "plot charges instead of sizes"}},
			Action:    T.plot,
		},
		{
			Name:      "addfrag",
			Usage:     "add a fragment given as a fragment table row, taking its atoms from the others",
			ArgsUsage: "IN ROW OUT",
			Action:    T.addfrag,
		},
		{
			Name:      "placeholders",
			Usage:     "append N placeholder connections",
			ArgsUsage: "IN N OUT",
			Action:    T.placeholders,
		},
	}
}

func needArgs(c *cli.Context, n int) error {
	if c.Args().Len() != n {
		return cli.Exit(fmt.Sprintf("%s: expected arguments %s", c.Command.Name, c.Command.ArgsUsage), 2)
	}
	return nil
}

//read reads the fred file name, logs the skipped lines and, in strict mode, fails if
//there are any.
func (T *tool) read(name string) (*fred.Fred, error) {
	F := fred.New()
	var err error
	if T.cfg.Strict {
		err = F.ReadFileStrict(name)
	} else {
		err = F.ReadFile(name)
	}
	for _, d := range F.Diagnostics() {
		T.log.Debug("skipped line", "file", name, "line", d.Line, "reason", d.Reason, "text", d.Text)
	}
	if err != nil {
		return nil, err
	}
	T.log.Info("read fred file", "file", name, "fragments", F.NFragments(), "atoms", F.NAtoms(), "charge", F.Charge())
	return F, nil
}

func (T *tool) write(F *fred.Fred, name string) error {
	if err := F.WriteFile(name, T.cfg.Indent); err != nil {
		return err
	}
	T.log.Info("wrote fred file", "file", name, "fragments", F.NFragments())
	return nil
}

func (T *tool) normalize(c *cli.Context) error {
	if err := needArgs(c, 2); err != nil {
		return err
	}
	F, err := T.read(c.Args().Get(0))
	if err != nil {
		return err
	}
	return T.write(F, c.Args().Get(1))
}

func (T *tool) complete(c *cli.Context) error {
	if err := needArgs(c, 1); err != nil {
		return err
	}
	F, err := T.read(c.Args().Get(0))
	if err != nil {
		return err
	}
	N := F.CompleteParameters()
	if err := fred.WriteNamelist(c.App.Writer, N, T.cfg.Indent); err != nil {
		return err
	}
	if N.Has(fred.FragmentGroup) {
		return nil
	}
	//the regenerated &FRAGMENT is printed even if the file had none.
	extra := fred.NewNamelist()
	extra.Open(fred.FragmentGroup)
	extra.SetGroup(N.Group(fred.FragmentGroup))
	return fred.WriteNamelist(c.App.Writer, extra, T.cfg.Indent)
}

func (T *tool) check(c *cli.Context) error {
	if err := needArgs(c, 1); err != nil {
		return err
	}
	F := fred.New()
	name := c.Args().Get(0)
	if err := F.ReadFile(name); err != nil {
		return err
	}
	diags := F.Diagnostics()
	for _, d := range diags {
		fmt.Fprintln(c.App.Writer, d)
	}
	issues := F.Check()
	for _, i := range issues {
		fmt.Fprintln(c.App.Writer, i)
	}
	T.log.Info("checked fred file", "file", name, "skipped", len(diags), "issues", len(issues))
	if T.cfg.Strict && len(diags)+len(issues) > 0 {
		return cli.Exit(fmt.Sprintf("%s: %d skipped lines, %d issues", name, len(diags), len(issues)), 1)
	}
	return nil
}

func (T *tool) stats(c *cli.Context) error {
	if err := needArgs(c, 1); err != nil {
		return err
	}
	F, err := T.read(c.Args().Get(0))
	if err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, F.Summary())
	return nil
}

func (T *tool) plot(c *cli.Context) error {
	if err := needArgs(c, 2); err != nil {
		return err
	}
	F, err := T.read(c.Args().Get(0))
	if err != nil {
		return err
	}
	O := fredplot.DefaultOptions()
	O.Width = vg.Length(T.cfg.Plot.Width) * vg.Inch
	O.Height = vg.Length(T.cfg.Plot.Height) * vg.Inch
	out := c.Args().Get(1)
	if c.Bool("charge") {
		err = fredplot.SaveCharges(F, out, O)
	} else {
		err = fredplot.SaveSizes(F, out, O)
	}
	if err != nil {
		return err
	}
	T.log.Info("saved plot", "file", out)
	return nil
}

func (T *tool) addfrag(c *cli.Context) error {
	if err := needArgs(c, 3); err != nil {
		return err
	}
	F, err := T.read(c.Args().Get(0))
	if err != nil {
		return err
	}
	row := c.Args().Get(1)
	if !fred.MatchFragmentRow(row) {
		return cli.Exit(fmt.Sprintf("addfrag: %q is not a fragment row", row), 2)
	}
	frag, err := fred.ParseFragmentLine(row)
	if err != nil {
		return err
	}
	before := F.NFragments()
	F.AddFragment(frag)
	T.log.Debug("added fragment", "atoms", frag.Len(), "dropped", before+1-F.NFragments())
	return T.write(F, c.Args().Get(2))
}

func (T *tool) placeholders(c *cli.Context) error {
	if err := needArgs(c, 3); err != nil {
		return err
	}
	n, err := strconv.Atoi(c.Args().Get(1))
	if err != nil || n < 0 {
		return cli.Exit(fmt.Sprintf("placeholders: invalid number %q", c.Args().Get(1)), 2)
	}
	F, err := T.read(c.Args().Get(0))
	if err != nil {
		return err
	}
	F.AddPlaceholders(n)
	return T.write(F, c.Args().Get(2))
}
