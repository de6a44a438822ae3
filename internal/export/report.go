package export

import (
	"fmt"
	"math"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/k-mcmonagle/gocable/internal/catenary"
)

// WriteReportPDF writes an A4 calculation report for one solved cable case.
func WriteReportPDF(cfg *catenary.Config, shape *catenary.Shape, filename string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	title := cfg.Name
	if title == "" {
		title = "Suspended Cable Catenary Calculation"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	if cfg.Description != "" {
		pdf.MultiCell(0, 6, cfg.Description, "", "L", false)
	}
	pdf.Ln(6)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(90, 7, label)
		pdf.Cell(0, 7, value)
		pdf.Ln(7)
	}
	section := func(name string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 9, name)
		pdf.Ln(9)
	}

	section("Input")
	row("Water depth", fmt.Sprintf("%.2f m", cfg.Depth))
	row("Chute exit height", fmt.Sprintf("%.2f m", cfg.ChuteExitHeight))
	row("Chute radius", fmt.Sprintf("%.2f m", cfg.ChuteRadius))
	row("Weight in water", fmt.Sprintf("%.2f N/m", cfg.QWater))
	row("Weight in air", fmt.Sprintf("%.2f N/m", cfg.QAir))
	row("Integration step", fmt.Sprintf("%.3f m", cfg.DS))
	row("Solve mode", string(cfg.Mode))
	row("Target", fmt.Sprintf("%g", cfg.Target))
	if len(cfg.Assembly) > 0 {
		row("Assembly items", fmt.Sprintf("%d", len(cfg.Assembly)))
	}
	if len(cfg.Components) > 0 {
		row("Attached components", fmt.Sprintf("%d", len(cfg.Components)))
	}
	pdf.Ln(4)

	section("Results")
	row("Horizontal tension H", fmt.Sprintf("%.1f N", shape.H))
	row("Bottom tension", fmt.Sprintf("%.3f kN", shape.BottomTensionKN))
	row("Top tension", fmt.Sprintf("%.3f kN", shape.TopTensionKN))
	row("Exit angle", fmt.Sprintf("%.2f deg", shape.ExitAngleDeg))
	row("Free span", fmt.Sprintf("%.2f m", shape.FreeSpan))
	row("Chute contact length", fmt.Sprintf("%.2f m", shape.ChuteContactLen))
	row("Total suspended length", fmt.Sprintf("%.2f m", shape.STotal))
	row("Layback", fmt.Sprintf("%.2f m", shape.Layback))
	if math.IsInf(shape.MinBendRadius, 1) {
		row("Minimum bend radius", "straight profile")
	} else {
		row("Minimum bend radius", fmt.Sprintf("%.1f m", shape.MinBendRadius))
	}
	if shape.Crossed {
		row("Sea surface crossing", fmt.Sprintf("s = %.2f m", shape.SurfaceCrossingS))
	}

	return pdf.OutputFileAndClose(filename)
}
