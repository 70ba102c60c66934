/*
Package viz renders the transient diagnostic plots of the pipeline: the
principal-component scatters and the split-gain feature ranking.
*/
package viz

import (
	"fmt"

	"go-ml.dev/pkg/zorros"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/go-ml-lab/harboost/boost"
	"github.com/go-ml-lab/harboost/dataset"
	"github.com/go-ml-lab/harboost/fu"
	"github.com/go-ml-lab/harboost/pca"
)

/*
ScatterComponents renders the ci-th vs cj-th principal component
(zero-based) as one scatter series per class. Labels are zero-based and
classNames[label] names the series. A relative path lands in the user
cache dir.
*/
func ScatterComponents(p *pca.Projection, labels []int, classNames []string, ci, cj int, path string) error {
	if ci < 0 || cj < 0 || ci >= p.Coords.Cols || cj >= p.Coords.Cols {
		return zorros.Errorf("projection has %v components, want %v and %v", p.Coords.Cols, ci+1, cj+1)
	}
	if p.Coords.Rows != len(labels) {
		return zorros.Errorf("%v coordinates vs %v labels", p.Coords.Rows, len(labels))
	}
	plt := plot.New()
	plt.Title.Text = "Principal components of the training features"
	plt.X.Label.Text = fmt.Sprintf("%s (%.1f%%)", p.Coords.Names[ci], 100*p.Explained[ci])
	plt.Y.Label.Text = fmt.Sprintf("%s (%.1f%%)", p.Coords.Names[cj], 100*p.Explained[cj])
	plt.Add(plotter.NewGrid())

	for k, name := range classNames {
		pts := make(plotter.XYs, 0, len(labels))
		for i, label := range labels {
			if label != k {
				continue
			}
			pts = append(pts, plotter.XY{X: p.Coords.At(i, ci), Y: p.Coords.At(i, cj)})
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return zorros.Trace(err)
		}
		s.GlyphStyle.Color = plotutil.Color(k)
		s.GlyphStyle.Radius = vg.Points(1.5)
		plt.Add(s)
		plt.Legend.Add(name, s)
	}
	if err := plt.Save(8*vg.Inch, 6*vg.Inch, fu.PlotPath(path)); err != nil {
		return zorros.Trace(err)
	}
	return nil
}

/*
GainBars renders the top-N features by split-gain contribution as a
horizontal bar ranking, substituting human-readable sensor names for the
internal feature identifiers.
*/
func GainBars(imp []boost.Importance, names dataset.NameTable, topN int, path string) error {
	if len(imp) == 0 {
		return zorros.Errorf("nothing to rank: no feature was ever split on")
	}
	n := fu.Mini(topN, len(imp))
	// reversed so the highest gain lands on top of the chart
	values := make(plotter.Values, n)
	labels := make([]string, n)
	for i := 0; i < n; i++ {
		q := imp[n-1-i]
		label := q.Name
		if names != nil {
			resolved, err := names.Resolve([]string{q.Name})
			if err != nil {
				return err
			}
			label = resolved[0]
		}
		values[i] = q.Gain
		labels[i] = label
	}

	plt := plot.New()
	plt.Title.Text = fmt.Sprintf("Top %v features by split gain", n)
	plt.X.Label.Text = "total split gain"
	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return zorros.Trace(err)
	}
	bars.Horizontal = true
	bars.Color = plotutil.Color(0)
	plt.Add(bars)
	plt.NominalY(labels...)
	if err := plt.Save(8*vg.Inch, 6*vg.Inch, fu.PlotPath(path)); err != nil {
		return zorros.Trace(err)
	}
	return nil
}
