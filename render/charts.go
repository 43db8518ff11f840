package render

import (
	"bytes"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"silver_site/models"
)

// PriceLine renders a Year-indexed line chart of price rows as a PNG.
// An empty row set still renders, as an empty chart.
func PriceLine(title string, rows []models.PriceRecord) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Silver Price (INR per kg)"
	p.Add(plotter.NewGrid())

	if len(rows) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return encodePNG(p, 10*vg.Inch, 5*vg.Inch)
	}

	pts := make(plotter.XYs, len(rows))
	for i, r := range rows {
		pts[i].X = float64(r.Year)
		pts[i].Y = r.SilverPriceINRPerKg
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("building line: %w", err)
	}
	line.Width = vg.Points(2)
	line.Color = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	p.Add(line)

	return encodePNG(p, 10*vg.Inch, 5*vg.Inch)
}

// PurchaseBars renders a state-labelled bar chart of purchase rows as a PNG.
func PurchaseBars(title string, rows []models.PurchaseRecord) ([]byte, error) {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.Text = "Silver Purchased (kg)"

	if len(rows) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return encodePNG(p, 10*vg.Inch, 5*vg.Inch)
	}

	values := make(plotter.Values, len(rows))
	labels := make([]string, len(rows))
	for i, r := range rows {
		values[i] = r.SilverPurchasedKg
		labels[i] = r.State
	}
	bars, err := plotter.NewBarChart(values, vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("building bars: %w", err)
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = color.RGBA{R: 105, G: 105, B: 105, A: 255}
	p.Add(bars)
	p.NominalX(labels...)

	return encodePNG(p, 10*vg.Inch, 5*vg.Inch)
}

func encodePNG(p *plot.Plot, w, h vg.Length) ([]byte, error) {
	wt, err := p.WriterTo(w, h, "png")
	if err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	return buf.Bytes(), nil
}
