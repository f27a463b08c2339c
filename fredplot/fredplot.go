/*
 * fredplot.go, part of gofred.
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

//Package fredplot draws bar charts of the fragments in a fred file, one bar per fragment.
package fredplot

import (
	"fmt"
	"image/color"
	"strconv"

	fred "github.com/rmera/gofred"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Options for the charts. The zero value is not useful, use DefaultOptions.
type Options struct {
	Title  string
	Width  vg.Length
	Height vg.Length
	Color  color.Color
}

//DefaultOptions returns a 6x4 inch chart with blue bars.
func DefaultOptions() *Options {
	return &Options{Width: 6 * vg.Inch, Height: 4 * vg.Inch, Color: color.RGBA{R: 40, G: 90, B: 200, A: 255}}
}

func basicPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Fragment"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//barLabels returns the labels 1..n. They match the indexes written for a
//normalized Fred, and don't depend on the indexes stored in the fragments.
func barLabels(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = strconv.Itoa(i + 1)
	}
	return names
}

//barPlot builds a bar chart with one bar per value, labeled by position.
func barPlot(values plotter.Values, ylabel string, O *Options) (*plot.Plot, error) {
	if O == nil {
		O = DefaultOptions()
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("fredplot: no fragments to plot")
	}
	title := O.Title
	if title == "" {
		title = ylabel + " per fragment"
	}
	p := basicPlot(title, ylabel)
	width := O.Width / vg.Length(2*len(values))
	if width > vg.Points(20) {
		width = vg.Points(20)
	}
	bars, err := plotter.NewBarChart(values, width)
	if err != nil {
		return nil, err
	}
	bars.Color = O.Color
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(barLabels(len(values))...)
	return p, nil
}

//SizePlot returns a bar chart with the number of atoms in each fragment, in the
//current fragment order.
func SizePlot(F *fred.Fred, O *Options) (*plot.Plot, error) {
	return barPlot(plotter.Values(F.Sizes()), "Atoms", O)
}

//ChargePlot returns a bar chart with the charge of each fragment. Fragments with an
//unset charge get a zero-height bar.
func ChargePlot(F *fred.Fred, O *Options) (*plot.Plot, error) {
	frags := F.Fragments()
	values := make(plotter.Values, len(frags))
	for i, v := range frags {
		q, _ := v.Charge().Int()
		values[i] = float64(q)
	}
	return barPlot(values, "Charge", O)
}

//SaveSizes normalizes F and saves the chart from SizePlot to filename. The image format
//is taken from the extension (png, svg, pdf, ...).
func SaveSizes(F *fred.Fred, filename string, O *Options) error {
	return save(F, filename, O, SizePlot)
}

//SaveCharges normalizes F and saves the chart from ChargePlot to filename.
func SaveCharges(F *fred.Fred, filename string, O *Options) error {
	return save(F, filename, O, ChargePlot)
}

func save(F *fred.Fred, filename string, O *Options, builder func(*fred.Fred, *Options) (*plot.Plot, error)) error {
	if O == nil {
		O = DefaultOptions()
	}
	F.Normalize()
	p, err := builder(F, O)
	if err != nil {
		return err
	}
	//here I  intentionally shadow err.
	if err := p.Save(O.Width, O.Height, filename); err != nil {
		return err
	}
	return nil
}
