package render

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"silver_site/models"
)

// Fixed choropleth styling: a grey ramp for matched states, a distinct
// neutral fill for states with no purchase data, black outlines.
var (
	noDataFill   = color.RGBA{R: 211, G: 211, B: 211, A: 255}
	outlineColor = color.RGBA{A: 255}
)

// Choropleth shades each joined state by its purchase value, darker
// meaning more silver purchased. Axes are hidden; the map caption goes in
// the title.
func Choropleth(title string, states []models.JoinedState) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.HideAxes()

	if len(states) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return encodePNG(p, 10*vg.Inch, 10*vg.Inch)
	}

	lo, hi := valueRange(states)
	for _, st := range states {
		fill := color.Color(noDataFill)
		if st.PurchaseKg != nil {
			fill = greyRamp(*st.PurchaseKg, lo, hi)
		}
		for _, ring := range st.Rings {
			xys := make(plotter.XYs, len(ring))
			for i, pt := range ring {
				xys[i].X = pt.X
				xys[i].Y = pt.Y
			}
			poly, err := plotter.NewPolygon(xys)
			if err != nil {
				return nil, fmt.Errorf("building polygon for %s: %w", st.Name, err)
			}
			poly.Color = fill
			poly.LineStyle = draw.LineStyle{Color: outlineColor, Width: vg.Points(0.7)}
			p.Add(poly)
		}
	}

	return encodePNG(p, 10*vg.Inch, 10*vg.Inch)
}

// greyRamp maps v in [lo,hi] to a grey between light and near-black. The
// low end stays visibly darker than the no-data fill's neighborhood on a
// white background.
func greyRamp(v, lo, hi float64) color.Color {
	t := 0.5
	if hi > lo {
		t = (v - lo) / (hi - lo)
	}
	g := uint8(230 - t*200)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

func valueRange(states []models.JoinedState) (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range states {
		if s.PurchaseKg == nil {
			continue
		}
		if *s.PurchaseKg < lo {
			lo = *s.PurchaseKg
		}
		if *s.PurchaseKg > hi {
			hi = *s.PurchaseKg
		}
	}
	if lo > hi {
		return 0, 0
	}
	return lo, hi
}
