package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ExportProfileDiagram exports the cable profile to an image file. The
// format follows the file extension (png, svg or pdf).
func ExportProfileDiagram(data ProfileData, filename string) error {
	p := plot.New()
	p.Title.Text = "Suspended Cable Profile"
	p.X.Label.Text = "Horizontal distance from TDP (m)"
	p.Y.Label.Text = "Elevation (m)"

	// Cable profile
	profile := make(plotter.XYs, len(data.X))
	for i := range data.X {
		profile[i] = plotter.XY{X: data.X[i], Y: data.Y[i]}
	}
	cableLine, err := plotter.NewLine(profile)
	if err != nil {
		return err
	}
	cableLine.LineStyle.Width = vg.Points(2)
	cableLine.LineStyle.Color = color.Black
	p.Add(cableLine)
	p.Legend.Add("cable", cableLine)

	xMax := data.X[len(data.X)-1]

	// Sea surface
	seaLine, err := plotter.NewLine(plotter.XYs{
		{X: -0.05 * xMax, Y: 0},
		{X: 1.05 * xMax, Y: 0},
	})
	if err != nil {
		return err
	}
	seaLine.LineStyle.Width = vg.Points(1)
	seaLine.LineStyle.Color = color.RGBA{R: 30, G: 144, B: 255, A: 255}
	seaLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(seaLine)
	p.Legend.Add("sea level", seaLine)

	// Seabed
	bedLine, err := plotter.NewLine(plotter.XYs{
		{X: -0.05 * xMax, Y: -data.Depth},
		{X: 1.05 * xMax, Y: -data.Depth},
	})
	if err != nil {
		return err
	}
	bedLine.LineStyle.Width = vg.Points(1.5)
	bedLine.LineStyle.Color = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	p.Add(bedLine)
	p.Legend.Add("seabed", bedLine)

	// Touchdown and departure markers
	ends, err := plotter.NewScatter(plotter.XYs{
		{X: data.X[0], Y: data.Y[0]},
		{X: data.X[len(data.X)-1], Y: data.Y[len(data.Y)-1]},
	})
	if err != nil {
		return err
	}
	ends.GlyphStyle.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	ends.GlyphStyle.Radius = vg.Points(4)
	ends.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(ends)

	// Sea surface crossing marker
	if data.Crossed {
		cross, err := plotter.NewScatter(plotter.XYs{
			{X: xAtArcLength(data.S, data.X, data.SurfaceCrossingS), Y: 0},
		})
		if err != nil {
			return err
		}
		cross.GlyphStyle.Color = color.RGBA{R: 30, G: 144, B: 255, A: 255}
		cross.GlyphStyle.Radius = vg.Points(4)
		cross.GlyphStyle.Shape = draw.RingGlyph{}
		p.Add(cross)
		p.Legend.Add("surface crossing", cross)
	}

	// Annotations
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: data.X[0], Y: data.Y[0]},
			{X: data.X[len(data.X)-1], Y: data.Y[len(data.Y)-1]},
		},
		Labels: []string{
			"TDP",
			fmt.Sprintf("departure %.1f°", data.ExitAngleDeg),
		},
	})
	if err != nil {
		return err
	}
	p.Add(labels)

	width := 8 * vg.Inch
	height := 5 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		os.MkdirAll(dir, 0755)
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
