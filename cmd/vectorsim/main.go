package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/epiforge/vectorsim/internal/analysis"
	"github.com/epiforge/vectorsim/internal/config"
	"github.com/epiforge/vectorsim/internal/models"
	"github.com/epiforge/vectorsim/internal/optim"
	"github.com/epiforge/vectorsim/internal/report"
	"github.com/epiforge/vectorsim/internal/sim"
	"github.com/epiforge/vectorsim/internal/storage"
	"github.com/epiforge/vectorsim/internal/sweep"
)

var (
	dataDir    string
	configFile string
	preset     string

	scenarios  []float64
	days       float64
	step       float64
	integrator string
	substeps   int
	workers    int

	bitingRate   float64
	scenarioP    float64
	targetAttack float64

	adaptive bool

	showPlot  bool
	plotWidth int
	noSave    bool

	jsonOut string

	compartment string
	scenarioIdx int
)

var compartmentIndex = map[string]int{
	"sh": models.SH,
	"ih": models.IH,
	"rh": models.RH,
	"sv": models.SV,
	"iv": models.IV,
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "vectorsim",
		Short: "host-vector epidemic simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vectorsim", "data directory")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run a protection-scenario sweep",
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	sweepCmd.Flags().Float64SliceVar(&scenarios, "scenarios", nil, "unprotected-fraction values")
	sweepCmd.Flags().Float64Var(&days, "days", config.DefaultEnd, "simulated days")
	sweepCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "output grid step (days)")
	sweepCmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	sweepCmd.Flags().IntVar(&substeps, "substeps", config.DefaultSubsteps, "sub-steps per grid interval")
	sweepCmd.Flags().BoolVar(&adaptive, "adaptive", false, "error-controlled sub-stepping (rk45)")
	sweepCmd.Flags().IntVar(&workers, "workers", config.DefaultWorkers, "parallel scenario workers")
	sweepCmd.Flags().Float64Var(&bitingRate, "biting-rate", 0.5, "baseline biting rate")
	sweepCmd.Flags().BoolVar(&showPlot, "plot", false, "plot infected humans per scenario")
	sweepCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "ascii plot width")
	sweepCmd.Flags().BoolVar(&noSave, "no-save", false, "skip persisting the run")
	sweepCmd.Flags().StringVar(&jsonOut, "json", "", "also export full sweep JSON to file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a single scenario",
		RunE:  runScenario,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().Float64Var(&scenarioP, "p", 1.0, "unprotected fraction")
	runCmd.Flags().Float64Var(&days, "days", config.DefaultEnd, "simulated days")
	runCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "output grid step (days)")
	runCmd.Flags().StringVar(&integrator, "integrator", config.DefaultIntegrator, "integrator")
	runCmd.Flags().BoolVar(&adaptive, "adaptive", false, "error-controlled sub-stepping (rk45)")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot infected humans")
	runCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "ascii plot width")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored sweep runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored scenario trajectory",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&scenarioIdx, "scenario", 0, "scenario index within the run")
	plotCmd.Flags().StringVar(&compartment, "compartment", "ih", "compartment (sh|ih|rh|sv|iv)")
	plotCmd.Flags().IntVar(&plotWidth, "plot-width", 80, "ascii plot width")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a stored sweep run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVar(&jsonOut, "out", "", "output file (default stdout)")

	thresholdCmd := &cobra.Command{
		Use:   "threshold",
		Short: "find the largest unprotected fraction meeting an attack-rate target",
		RunE:  runThreshold,
	}
	thresholdCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	thresholdCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	thresholdCmd.Flags().Float64Var(&targetAttack, "target", 0.1, "tolerated attack rate (fraction of initial SH)")
	thresholdCmd.Flags().Float64Var(&days, "days", config.DefaultEnd, "simulated days")
	thresholdCmd.Flags().Float64Var(&step, "step", config.DefaultStep, "output grid step (days)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(sweepCmd, runCmd, listCmd, plotCmd, exportCmd, thresholdCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers preset < config file < changed CLI flags; flags only
// override when explicitly set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("scenarios") {
		cfg.Scenarios = scenarios
	}
	if cmd.Flags().Changed("days") {
		cfg.Grid.End = cfg.Grid.Start + days
	}
	if cmd.Flags().Changed("step") {
		cfg.Grid.Step = step
	}
	if cmd.Flags().Changed("integrator") {
		cfg.Integrator = integrator
	}
	if cmd.Flags().Changed("substeps") {
		cfg.Substeps = substeps
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}
	if cmd.Flags().Changed("biting-rate") {
		cfg.Params.BitingRate = bitingRate
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newController(cfg *config.Config) (*sweep.Controller, error) {
	opts := sim.DefaultOptions()
	opts.Substeps = cfg.Substeps
	opts.Adaptive = adaptive

	return sweep.New(cfg.Params,
		sweep.WithIntegrator(cfg.Integrator),
		sweep.WithSimOptions(opts),
		sweep.WithWorkers(cfg.Workers),
	)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	grid, err := cfg.TimeGrid()
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("sweeping %d scenarios over %.0f days...\n", len(cfg.Scenarios), grid.End()-grid.Start())
	start := time.Now()

	results, err := ctrl.Run(context.Background(), cfg.Scenarios, cfg.InitialState(), grid)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))

	summaries, err := analysis.SummarizeAll(results)
	if err != nil {
		return err
	}
	if err := report.Table(os.Stdout, summaries); err != nil {
		return err
	}

	if showPlot {
		fmt.Println()
		fmt.Print(report.Plot(results, models.IH, plotWidth, 10))
	}

	if jsonOut != "" {
		f, err := os.Create(jsonOut)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := report.ExportJSON(f, cfg.Integrator, cfg.Params, results); err != nil {
			return err
		}
		fmt.Printf("\nexported: %s\n", jsonOut)
	}

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg.Integrator, cfg.Params, results)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	grid, err := cfg.TimeGrid()
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	result, err := ctrl.RunScenario(context.Background(), scenarioP, cfg.InitialState(), grid)
	if err != nil {
		return err
	}

	summary, err := analysis.Summarize(*result)
	if err != nil {
		return err
	}
	if err := report.Table(os.Stdout, []analysis.Summary{summary}); err != nil {
		return err
	}

	if showPlot {
		fmt.Println()
		fmt.Print(report.Plot([]sweep.Result{*result}, models.IH, plotWidth, 10))
	}

	return nil
}

func runThreshold(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	grid, err := cfg.TimeGrid()
	if err != nil {
		return err
	}
	ctrl, err := newController(cfg)
	if err != nil {
		return err
	}

	p, err := optim.ProtectionThreshold(context.Background(), ctrl, cfg.InitialState(), grid,
		targetAttack, optim.DefaultIterations)
	if err != nil {
		return err
	}

	fmt.Printf("largest unprotected fraction meeting attack rate <= %.4f: p = %.4f\n", targetAttack, p)
	fmt.Printf("required protection coverage: %.1f%%\n", (1-p)*100)
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tINTEG\tSCENARIOS\tBITING")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Integrator,
			len(run.Scenarios),
			run.Params.BitingRate,
		)
	}

	return w.Flush()
}

func exportRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	results := make([]sweep.Result, 0, len(meta.Scenarios))
	for i, rec := range meta.Scenarios {
		traj, err := st.LoadTrajectory(runID, i)
		if err != nil {
			return err
		}
		results = append(results, sweep.Result{
			Scenario:           sweep.Scenario{Value: rec.Value, Params: meta.Params.WithBitingRate(rec.BitingRate)},
			Trajectory:         traj,
			InfectedHumanDays:  rec.InfectedHumanDays,
			InfectedVectorDays: rec.InfectedVectorDays,
			TotalInfected:      rec.TotalInfected,
		})
	}

	out := os.Stdout
	if jsonOut != "" {
		f, err := os.Create(jsonOut)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return report.ExportJSON(out, meta.Integrator, meta.Params, results)
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	component, ok := compartmentIndex[compartment]
	if !ok {
		return fmt.Errorf("unknown compartment: %s", compartment)
	}

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	if scenarioIdx < 0 || scenarioIdx >= len(meta.Scenarios) {
		return fmt.Errorf("scenario index %d out of range (run has %d)", scenarioIdx, len(meta.Scenarios))
	}

	traj, err := st.LoadTrajectory(runID, scenarioIdx)
	if err != nil {
		return err
	}

	rec := meta.Scenarios[scenarioIdx]
	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: p=%.2f (biting rate %.4f)\n", rec.Value, rec.BitingRate)
	fmt.Printf("samples: %d\n\n", traj.Len())

	results := []sweep.Result{{
		Scenario:   sweep.Scenario{Value: rec.Value, Params: meta.Params.WithBitingRate(rec.BitingRate)},
		Trajectory: traj,
	}}
	fmt.Print(report.Plot(results, component, plotWidth, 10))

	return nil
}
