package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/k-mcmonagle/gocable/internal/catenary"
)

var (
	batchFile   string
	batchOutput string
	batchDS     float64
)

var catenaryBatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Solve a spreadsheet of cable cases",
	Long: `Solve every cable case listed in a spreadsheet, one case per row,
and write a results workbook.

The input sheet needs a header row followed by case rows with columns:

  depth_m, chute_height_m, chute_radius_m, qwater_npm, qair_npm, mode, target

Rows that fail to parse or to solve are skipped and reported in the
result sheet's status column.

Example:
  gocable catenary batch --file cases.xlsx --output results.xlsx`,
	Run: runCatenaryBatch,
}

func init() {
	catenaryCmd.AddCommand(catenaryBatchCmd)

	catenaryBatchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "Input xlsx with one case per row [required]")
	catenaryBatchCmd.Flags().StringVarP(&batchOutput, "output", "o", "results.xlsx", "Output xlsx for results")
	catenaryBatchCmd.Flags().Float64Var(&batchDS, "ds", 0.5, "Integration step (m) for every case")

	catenaryBatchCmd.MarkFlagRequired("file")
}

// parseCaseRow builds a Config from one spreadsheet row.
func parseCaseRow(row []string, ds float64) (*catenary.Config, error) {
	if len(row) < 7 {
		return nil, fmt.Errorf("want 7 columns, got %d", len(row))
	}
	vals := make([]float64, 5)
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return nil, fmt.Errorf("column %d: %v", i+1, err)
		}
		vals[i] = v
	}
	target, err := strconv.ParseFloat(strings.TrimSpace(row[6]), 64)
	if err != nil {
		return nil, fmt.Errorf("target column: %v", err)
	}

	return &catenary.Config{
		Depth:           vals[0],
		ChuteExitHeight: vals[1],
		ChuteRadius:     vals[2],
		QWater:          vals[3],
		QAir:            vals[4],
		DS:              ds,
		Mode:            catenary.Mode(strings.TrimSpace(row[5])),
		Target:          target,
	}, nil
}

func runCatenaryBatch(cmd *cobra.Command, args []string) {
	f, err := excelize.OpenFile(batchFile)
	if err != nil {
		fmt.Printf("Error opening %s: %v\n", batchFile, err)
		return
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		fmt.Println("Error: input sheet is empty")
		return
	}

	out := excelize.NewFile()
	defer out.Close()
	const results = "Results"
	if err := out.SetSheetName("Sheet1", results); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	header := []interface{}{
		"depth_m", "chute_height_m", "chute_radius_m", "qwater_npm", "qair_npm",
		"mode", "target",
		"H_N", "bottom_kN", "top_kN", "exit_angle_deg", "free_span_m",
		"chute_contact_m", "total_length_m", "layback_m", "min_bend_radius_m",
		"status",
	}
	if err := out.SetSheetRow(results, "A1", &header); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	solved := 0
	for i := 1; i < len(rows); i++ {
		row := make([]interface{}, 0, len(header))
		for j := 0; j < 7 && j < len(rows[i]); j++ {
			row = append(row, rows[i][j])
		}
		for len(row) < 7 {
			row = append(row, "")
		}

		cfg, err := parseCaseRow(rows[i], batchDS)
		if err == nil {
			var shape *catenary.Shape
			shape, err = catenary.Solve(cfg)
			if err == nil {
				solved++
				bend := interface{}(shape.MinBendRadius)
				if math.IsInf(shape.MinBendRadius, 1) {
					bend = "straight"
				}
				row = append(row,
					shape.H, shape.BottomTensionKN, shape.TopTensionKN,
					shape.ExitAngleDeg, shape.FreeSpan, shape.ChuteContactLen,
					shape.STotal, shape.Layback, bend, "ok")
			}
		}
		if err != nil {
			for len(row) < len(header)-1 {
				row = append(row, "")
			}
			row = append(row, err.Error())
		}

		cell, cellErr := excelize.CoordinatesToCellName(1, i+1)
		if cellErr != nil {
			fmt.Printf("Error: %v\n", cellErr)
			return
		}
		if err := out.SetSheetRow(results, cell, &row); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	if err := out.SaveAs(batchOutput); err != nil {
		fmt.Printf("Error writing %s: %v\n", batchOutput, err)
		return
	}
	fmt.Printf("Solved %d of %d cases; results written to %s\n", solved, len(rows)-1, batchOutput)
}
