package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/k-mcmonagle/gocable/internal/catenary"
	"github.com/k-mcmonagle/gocable/internal/diagram"
	"github.com/k-mcmonagle/gocable/internal/export"
	"github.com/k-mcmonagle/gocable/internal/units"
)

var (
	// Case inputs
	solveFile        string
	solveDepth       float64
	solveChuteHeight float64
	solveChuteRadius float64
	solveQWater      float64
	solveQAir        float64
	solveWeightUnit  string
	solveDS          float64
	solveMaxSteps    int
	solveMode        string
	solveTarget      float64

	// Output options
	solveShowDiagram bool
	solveOutputFile  string
	solveXLSXFile    string
)

var catenarySolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one suspended cable case",
	Long: `Solve the suspended cable shape for a single target value.

The solve mode picks which scalar is given; the solver finds the unique
consistent shape and reports geometry, tensions and minimum bend radius.

Modes:
  bottom-tension  horizontal tension H is given directly (N)
  top-tension     tension at the departure point (kN)
  exit-angle      departure angle from horizontal (degrees)
  length          total suspended length, free span + chute contact (m)
  layback         horizontal distance TDP to chute top (m)

Cable assemblies (multiple segments, point loads) are defined in a JSON
file passed with --file; the simple uniform-cable case needs flags only.

Examples:
  # 100 m depth, uniform cable, bottom tension of 50 kN
  gocable catenary solve --depth 100 --qwater 22 --qair 28 \
      --mode bottom-tension --target 50000

  # Assembly case from a file, with a terminal profile plot
  gocable catenary solve --file cable.json --diagram

  # Layback-driven solve with a png profile export
  gocable catenary solve --depth 150 --chute-height 12 --chute-radius 5 \
      --qwater 18 --qair 24 --mode layback --target 400 -o profile.png`,
	Run: runCatenarySolve,
}

func init() {
	catenaryCmd.AddCommand(catenarySolveCmd)

	catenarySolveCmd.Flags().StringVarP(&solveFile, "file", "f", "", "Path to cable case JSON file")

	// Geometry flags
	catenarySolveCmd.Flags().Float64VarP(&solveDepth, "depth", "d", 0, "Water depth (m) [required unless --file]")
	catenarySolveCmd.Flags().Float64Var(&solveChuteHeight, "chute-height", 0, "Chute exit height above sea level (m)")
	catenarySolveCmd.Flags().Float64Var(&solveChuteRadius, "chute-radius", 0, "Chute radius (m), 0 for no chute")

	// Cable weight flags
	catenarySolveCmd.Flags().Float64Var(&solveQWater, "qwater", 0, "Cable weight per length in water [required unless --file]")
	catenarySolveCmd.Flags().Float64Var(&solveQAir, "qair", 0, "Cable weight per length in air [required unless --file]")
	catenarySolveCmd.Flags().StringVar(&solveWeightUnit, "weight-unit", "n/m", "Unit of --qwater/--qair (n/m, kgf/m, lbf/ft)")

	// Integration flags
	catenarySolveCmd.Flags().Float64Var(&solveDS, "ds", 0.5, "Integration step (m)")
	catenarySolveCmd.Flags().IntVar(&solveMaxSteps, "max-steps", catenary.DefaultMaxSteps, "Integration step limit")

	// Target flags
	catenarySolveCmd.Flags().StringVarP(&solveMode, "mode", "m", string(catenary.ModeBottomTension), "Solve mode")
	catenarySolveCmd.Flags().Float64VarP(&solveTarget, "target", "t", 0, "Target value for the solve mode")

	// Output flags
	catenarySolveCmd.Flags().BoolVar(&solveShowDiagram, "diagram", false, "Show terminal profile plot")
	catenarySolveCmd.Flags().StringVarP(&solveOutputFile, "output", "o", "", "Export profile diagram to file (png, svg, pdf)")
	catenarySolveCmd.Flags().StringVar(&solveXLSXFile, "xlsx", "", "Export profile and summary to an xlsx workbook")
}

// solveConfigFromFlags builds the cable case from CLI flags, converting the
// weight inputs to N/m.
func solveConfigFromFlags() (*catenary.Config, error) {
	unit, err := units.ParseWeightUnit(solveWeightUnit)
	if err != nil {
		return nil, err
	}
	qWater, err := units.ToNewtonsPerMetre(solveQWater, unit)
	if err != nil {
		return nil, err
	}
	qAir, err := units.ToNewtonsPerMetre(solveQAir, unit)
	if err != nil {
		return nil, err
	}

	return &catenary.Config{
		Depth:           solveDepth,
		ChuteExitHeight: solveChuteHeight,
		ChuteRadius:     solveChuteRadius,
		QWater:          qWater,
		QAir:            qAir,
		DS:              solveDS,
		MaxSteps:        solveMaxSteps,
		Mode:            catenary.Mode(solveMode),
		Target:          solveTarget,
	}, nil
}

func runCatenarySolve(cmd *cobra.Command, args []string) {
	var cfg *catenary.Config
	var err error
	if solveFile != "" {
		cfg, err = catenary.LoadFromFile(solveFile)
	} else {
		cfg, err = solveConfigFromFlags()
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	shape, err := catenary.Solve(cfg)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	printSolveReport(cfg, shape)

	if solveShowDiagram {
		fmt.Println(diagram.DrawASCIIProfile(profileData(cfg, shape)))
	}
	if solveOutputFile != "" {
		if err := diagram.ExportProfileDiagram(profileData(cfg, shape), solveOutputFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
			return
		}
		fmt.Printf("  Profile diagram written to %s\n\n", solveOutputFile)
	}
	if solveXLSXFile != "" {
		if err := export.WriteProfileWorkbook(cfg, shape, solveXLSXFile); err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
			return
		}
		fmt.Printf("  Profile workbook written to %s\n\n", solveXLSXFile)
	}
}

func profileData(cfg *catenary.Config, shape *catenary.Shape) diagram.ProfileData {
	return diagram.ProfileData{
		S:                shape.S,
		X:                shape.X,
		Y:                shape.Y,
		Depth:            cfg.Depth,
		ChuteRadius:      cfg.ChuteRadius,
		ChuteContactLen:  shape.ChuteContactLen,
		FreeSpan:         shape.FreeSpan,
		Layback:          shape.Layback,
		ExitAngleDeg:     shape.ExitAngleDeg,
		TopTensionKN:     shape.TopTensionKN,
		BottomTensionKN:  shape.BottomTensionKN,
		MinBendRadius:    shape.MinBendRadius,
		SurfaceCrossingS: shape.SurfaceCrossingS,
		Crossed:          shape.Crossed,
	}
}

func printSolveReport(cfg *catenary.Config, shape *catenary.Shape) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SUSPENDED CABLE CATENARY SOLVE")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if cfg.Name != "" {
		fmt.Printf("  Case: %s\n", cfg.Name)
		fmt.Println()
	}

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Water depth:\t%.2f m\n", cfg.Depth)
	fmt.Fprintf(w, "  Chute exit height:\t%.2f m\n", cfg.ChuteExitHeight)
	fmt.Fprintf(w, "  Chute radius:\t%.2f m\n", cfg.ChuteRadius)
	fmt.Fprintf(w, "  Weight in water:\t%.2f N/m\n", cfg.QWater)
	fmt.Fprintf(w, "  Weight in air:\t%.2f N/m\n", cfg.QAir)
	fmt.Fprintf(w, "  Integration step:\t%.3f m\n", cfg.DS)
	fmt.Fprintf(w, "  Solve mode:\t%s\n", cfg.Mode)
	fmt.Fprintf(w, "  Target:\t%g\n", cfg.Target)
	if len(cfg.Assembly) > 0 {
		fmt.Fprintf(w, "  Assembly items:\t%d\n", len(cfg.Assembly))
	}
	if len(cfg.Components) > 0 {
		fmt.Fprintf(w, "  Attached components:\t%d\n", len(cfg.Components))
	}
	w.Flush()
	fmt.Println()

	fmt.Println("SOLVED SHAPE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Free span:\t%.2f m\n", shape.FreeSpan)
	fmt.Fprintf(w, "  Chute contact length:\t%.2f m\n", shape.ChuteContactLen)
	fmt.Fprintf(w, "  Total suspended length:\t%.2f m\n", shape.STotal)
	fmt.Fprintf(w, "  Layback:\t%.2f m\n", shape.Layback)
	fmt.Fprintf(w, "  Exit angle:\t%.2f°\n", shape.ExitAngleDeg)
	if math.IsInf(shape.MinBendRadius, 1) {
		fmt.Fprintf(w, "  Minimum bend radius:\tstraight profile\n")
	} else {
		fmt.Fprintf(w, "  Minimum bend radius:\t%.1f m\n", shape.MinBendRadius)
	}
	if shape.Crossed {
		fmt.Fprintf(w, "  Sea surface crossing:\ts = %.2f m\n", shape.SurfaceCrossingS)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("TENSIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Horizontal tension (H):\t%.1f N\n", shape.H)
	fmt.Fprintf(w, "  Bottom tension:\t%.3f kN\n", shape.BottomTensionKN)
	w.Flush()
	fmt.Println()

	fmt.Printf("  ╔═════════════════════════════════════════╗\n")
	fmt.Printf("  ║  TOP TENSION = %.3f kN     \n", shape.TopTensionKN)
	fmt.Printf("  ╚═════════════════════════════════════════╝\n")
	fmt.Println()
}
