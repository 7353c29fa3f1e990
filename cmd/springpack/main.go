package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/coilworks/springpack/internal/audit"
	"github.com/coilworks/springpack/internal/config"
	"github.com/coilworks/springpack/internal/optimize"
	"github.com/coilworks/springpack/internal/report"
	"github.com/coilworks/springpack/internal/spring"
	"github.com/coilworks/springpack/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	material   string
	jsonOut    string
	svgOut     string
	jsonStdout bool
	saveRun    bool
	fullView   bool

	logger *slog.Logger
)

func main() {
	logger = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	}))

	rootCmd := &cobra.Command{
		Use:   "springpack",
		Short: "spring pack design-space optimizer",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springpack", "data directory")

	optimizeCmd := &cobra.Command{
		Use:   "optimize",
		Short: "search the design space for a config or preset",
		RunE:  runOptimize,
	}
	optimizeCmd.Flags().StringVar(&configFile, "config", "", "job config file (yaml)")
	optimizeCmd.Flags().StringVar(&preset, "preset", "", "use a named preset job")
	optimizeCmd.Flags().StringVar(&material, "material", "", "override material grade")
	optimizeCmd.Flags().StringVar(&jsonOut, "out", "", "write full result as JSON to file")
	optimizeCmd.Flags().BoolVar(&jsonStdout, "json", false, "write full result as JSON to stdout")
	optimizeCmd.Flags().StringVar(&svgOut, "svg", "", "write the best candidate's pack layout as SVG")
	optimizeCmd.Flags().BoolVar(&saveRun, "save", false, "save the run under the data directory")
	optimizeCmd.Flags().BoolVar(&fullView, "full", false, "include marginal and infeasible candidates in the table")

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "interactive browser over a fresh optimization run",
		RunE:  runBrowse,
	}
	browseCmd.Flags().StringVar(&configFile, "config", "", "job config file (yaml)")
	browseCmd.Flags().StringVar(&preset, "preset", "", "use a named preset job")
	browseCmd.Flags().StringVar(&material, "material", "", "override material grade")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset jobs",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				fmt.Printf("%-12s %s %s=%.0f tol=%.0f%%\n", name, cfg.Material,
					cfg.Request.Target.Kind, cfg.Request.Target.Value, cfg.Request.Target.TolerancePct)
			}
			return nil
		},
	}

	materialsCmd := &cobra.Command{
		Use:   "materials",
		Short: "list built-in material grades",
		RunE:  listMaterials,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default job config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(optimizeCmd, browseCmd, presetsCmd, materialsCmd, listCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func loadJob() (*config.Config, error) {
	switch {
	case preset != "":
		cfg := config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		return cfg, nil
	case configFile != "":
		return config.Load(configFile)
	default:
		return config.DefaultConfig(), nil
	}
}

func runJob() (*config.Config, *optimize.Result, error) {
	cfg, err := loadJob()
	if err != nil {
		return nil, nil, err
	}
	if material != "" {
		cfg.Material = material
	}

	mat := cfg.ResolveMaterial()
	opt := optimize.New(spring.NewEngine(mat), audit.NewRuleEngine())

	start := time.Now()
	result := opt.Optimize(context.Background(), cfg.Request)
	logger.Info("optimization done",
		"material", mat.Name,
		"candidates", len(result.Candidates),
		"elapsed", time.Since(start))
	if result.Reason != "" {
		logger.Warn(result.Reason)
	}
	return cfg, result, nil
}

func runOptimize(cmd *cobra.Command, args []string) error {
	cfg, result, err := runJob()
	if err != nil {
		return err
	}

	if jsonStdout {
		return report.ExportJSONStdout(cfg.Material, cfg.Request, result)
	}
	if jsonOut != "" {
		if err := report.ExportJSON(jsonOut, cfg.Material, cfg.Request, result); err != nil {
			return err
		}
		logger.Info("result written", "path", jsonOut)
	}
	if svgOut != "" && len(result.Candidates) > 0 {
		if err := report.ExportLayoutSVG(svgOut, result.Candidates[0].Geometry, 600); err != nil {
			return err
		}
		logger.Info("layout written", "path", svgOut)
	}

	rows := result.DefaultView()
	if fullView {
		rows = result.Candidates
	}
	printTable(rows)
	printErrorGraph(rows)

	if saveRun {
		store := report.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(cfg.Material, cfg.Request, result)
		if err != nil {
			return err
		}
		logger.Info("run saved", "id", runID)
	}
	return nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	_, result, err := runJob()
	if err != nil {
		return err
	}
	return tui.Browse(result)
}

func printTable(rows []optimize.Candidate) {
	if len(rows) == 0 {
		fmt.Println("no feasible design; relax constraints or widen ranges")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "rank\td\tDm\tNa\tN\trate\tload\terr%\tSF\taudit\tbucket")
	for i, c := range rows {
		fmt.Fprintf(w, "%d\t%.2f\t%.1f\t%.1f\t%d\t%.2f\t%.1f\t%.2f\t%.2f\t%s\t%s\n",
			i+1,
			c.Geometry.WireDiameter, c.Geometry.MeanDiameter, c.Geometry.ActiveCoils,
			c.Geometry.PackCount,
			c.Response.PackRate, c.Response.PackLoad,
			c.Score.TargetErrorPct, c.Response.SafetyFactor,
			c.Audit.Status, c.Score.Bucket)
	}
	w.Flush()

	fmt.Println()
	best := rows[0]
	for _, why := range best.Why {
		fmt.Println("  - " + why)
	}
}

func printErrorGraph(rows []optimize.Candidate) {
	if len(rows) < 2 {
		return
	}
	errs := make([]float64, len(rows))
	for i, c := range rows {
		errs[i] = c.Score.TargetErrorPct
	}
	fmt.Println()
	fmt.Println(asciigraph.Plot(errs,
		asciigraph.Height(8),
		asciigraph.Caption("target error % across ranked candidates")))
}

func listMaterials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "grade\tG (MPa)\tE (MPa)\tallowable shear (MPa)")
	for _, name := range spring.GradeNames() {
		m, _ := spring.Grade(name)
		fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\n", m.Name, m.ShearModulus, m.ElasticModulus, m.AllowableShear)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := report.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "id\ttime\tmaterial\ttarget\tcandidates")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s=%.0f\t%d\n",
			r.ID, r.Timestamp.Format(time.DateTime), r.Material, r.TargetKind, r.TargetValue, r.Candidates)
	}
	return w.Flush()
}
