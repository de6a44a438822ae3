// Package export writes solved cable cases to engineering deliverable
// formats: spreadsheet profile tables and PDF calculation reports.
package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/k-mcmonagle/gocable/internal/catenary"
)

// WriteProfileWorkbook writes the solved profile and a scalar summary to an
// xlsx workbook: a Summary sheet with inputs and results, and a Profile
// sheet with one row per integration sample.
func WriteProfileWorkbook(cfg *catenary.Config, shape *catenary.Shape, filename string) error {
	f := excelize.NewFile()
	defer f.Close()

	const summary = "Summary"
	if err := f.SetSheetName("Sheet1", summary); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Input", ""},
		{"Water depth (m)", cfg.Depth},
		{"Chute exit height (m)", cfg.ChuteExitHeight},
		{"Chute radius (m)", cfg.ChuteRadius},
		{"Weight in water (N/m)", cfg.QWater},
		{"Weight in air (N/m)", cfg.QAir},
		{"Integration step (m)", cfg.DS},
		{"Solve mode", string(cfg.Mode)},
		{"Target", cfg.Target},
		{"", ""},
		{"Result", ""},
		{"Horizontal tension H (N)", shape.H},
		{"Bottom tension (kN)", shape.BottomTensionKN},
		{"Top tension (kN)", shape.TopTensionKN},
		{"Exit angle (deg)", shape.ExitAngleDeg},
		{"Free span (m)", shape.FreeSpan},
		{"Chute contact (m)", shape.ChuteContactLen},
		{"Total suspended length (m)", shape.STotal},
		{"Layback (m)", shape.Layback},
	}
	if math.IsInf(shape.MinBendRadius, 1) {
		rows = append(rows, []interface{}{"Minimum bend radius (m)", "straight"})
	} else {
		rows = append(rows, []interface{}{"Minimum bend radius (m)", shape.MinBendRadius})
	}
	if shape.Crossed {
		rows = append(rows, []interface{}{"Surface crossing at s (m)", shape.SurfaceCrossingS})
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(summary, cell, &row); err != nil {
			return err
		}
	}

	const profile = "Profile"
	if _, err := f.NewSheet(profile); err != nil {
		return err
	}
	header := []interface{}{"s (m)", "x (m)", "y (m)"}
	if err := f.SetSheetRow(profile, "A1", &header); err != nil {
		return err
	}
	for i := range shape.S {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{shape.S[i], shape.X[i], shape.Y[i]}
		if err := f.SetSheetRow(profile, cell, &row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(filename); err != nil {
		return fmt.Errorf("write workbook %s: %w", filename, err)
	}
	return nil
}
