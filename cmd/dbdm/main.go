package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/dbdm"
	"github.com/san-kum/dbdm/internal/config"
	"github.com/san-kum/dbdm/internal/viz"
	"github.com/san-kum/dbdm/vegas"
)

var (
	tx     float64
	mx     float64
	sigma  float64
	tau    float64
	sigmaV float64
	tbh    float64
	rmax   float64
	rhalo  float64
	zmax   float64
	// source position: averaged over the disk unless --at is given
	position float64
	noSpike  bool
	noFit    bool
	// spectrum grid
	txMin  float64
	txMax  float64
	points int
	logTx  bool
	// sampler settings
	iterations int
	evals      int
	seed       uint64
	// output
	format string
	// Config file
	configFile string
	// Preset name
	preset string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dbdm",
		Short: "diffuse supernova-boosted dark matter flux calculator",
	}

	fluxCmd := &cobra.Command{
		Use:   "flux",
		Short: "compute the diffuse flux at one recoil energy",
		RunE:  runFlux,
	}
	addModelFlags(fluxCmd)
	fluxCmd.Flags().Float64Var(&tx, "tx", config.DefaultTx, "recoil energy (MeV)")

	eventCmd := &cobra.Command{
		Use:   "event",
		Short: "compute the recoil-integrated event rate",
		RunE:  runEvent,
	}
	addModelFlags(eventCmd)
	eventCmd.Flags().Float64Var(&txMin, "tx-min", 5.0, "lower recoil energy (MeV)")
	eventCmd.Flags().Float64Var(&txMax, "tx-max", 100.0, "upper recoil energy (MeV)")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "compute the flux over a recoil energy grid",
		RunE:  runSpectrum,
	}
	addModelFlags(spectrumCmd)
	spectrumCmd.Flags().Float64Var(&txMin, "tx-min", 5.0, "lower recoil energy (MeV)")
	spectrumCmd.Flags().Float64Var(&txMax, "tx-max", 100.0, "upper recoil energy (MeV)")
	spectrumCmd.Flags().IntVar(&points, "points", 20, "grid points")
	spectrumCmd.Flags().BoolVar(&logTx, "log", true, "log-spaced grid")
	spectrumCmd.Flags().StringVar(&format, "format", "table", "output format (table, plot, csv, json)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "compute the flux with a live convergence view",
		RunE:  runLiveFlux,
	}
	addModelFlags(liveCmd)
	liveCmd.Flags().Float64Var(&tx, "tx", config.DefaultTx, "recoil energy (MeV)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIGMA\tSPIKE\tSIGMAV\tPOSITION")
			for _, name := range config.ListPresets() {
				cfg := config.GetPreset(name)
				pos := "averaged"
				if !cfg.Average {
					pos = fmt.Sprintf("R=%.1f kpc", cfg.R)
				}
				fmt.Fprintf(w, "%s\t%.1e\t%v\t%.1f\t%s\n",
					name, cfg.Sigma, cfg.Spike, cfg.SigmaV, pos)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write a default config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Save(args[0], config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(fluxCmd, eventCmd, spectrumCmd, liveCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addModelFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&mx, "mx", config.DefaultMx, "dark matter mass (MeV)")
	cmd.Flags().Float64Var(&sigma, "sigma", config.DefaultSigma, "total cross section (cm^2)")
	cmd.Flags().Float64Var(&tau, "tau", config.DefaultTau, "neutrino burst duration (s)")
	cmd.Flags().Float64Var(&sigmaV, "sigma-v", 0, "annihilation cross section (1e-26 cm^3/s)")
	cmd.Flags().Float64Var(&tbh, "t-bh", 1e9, "black hole age (yr)")
	cmd.Flags().Float64Var(&rmax, "r-max", config.DefaultRMax, "supernova radius cut (kpc)")
	cmd.Flags().Float64Var(&rhalo, "r-halo", config.DefaultRHalo, "halo integration radius (kpc)")
	cmd.Flags().Float64Var(&zmax, "z-max", 8.0, "redshift cut")
	cmd.Flags().Float64Var(&position, "at", 0, "fixed galactocentric radius (kpc)")
	cmd.Flags().BoolVar(&noSpike, "no-spike", false, "disable the black hole spike")
	cmd.Flags().BoolVar(&noFit, "no-fit", false, "integrate the disk column numerically")
	cmd.Flags().IntVar(&iterations, "iterations", 10, "sampler iterations")
	cmd.Flags().IntVar(&evals, "evals", 50000, "samples per iteration")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// loadParams resolves the preset, config file and flags into final
// parameters. Flags win over the config file, which wins over the preset.
func loadParams(cmd *cobra.Command) (dbdm.Params, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		pc := config.GetPreset(preset)
		if pc == nil {
			return dbdm.Params{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *pc
		cfg = &c
	}

	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return dbdm.Params{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fc
	}

	if cmd.Flags().Changed("tx") {
		cfg.Tx = tx
	}
	if cmd.Flags().Changed("mx") {
		cfg.Mx = mx
	}
	if cmd.Flags().Changed("sigma") {
		cfg.Sigma = sigma
	}
	if cmd.Flags().Changed("tau") {
		cfg.Tau = tau
	}
	if cmd.Flags().Changed("sigma-v") {
		cfg.SigmaV = sigmaV
	}
	if cmd.Flags().Changed("t-bh") {
		cfg.TBH = tbh
	}
	if cmd.Flags().Changed("r-max") {
		cfg.RMax = rmax
	}
	if cmd.Flags().Changed("r-halo") {
		cfg.RHalo = rhalo
	}
	if cmd.Flags().Changed("z-max") {
		cfg.ZMax = zmax
	}
	if cmd.Flags().Changed("at") {
		cfg.Average = false
		cfg.R = position
	}
	if cmd.Flags().Changed("no-spike") {
		cfg.Spike = !noSpike
	}
	if cmd.Flags().Changed("no-fit") {
		cfg.UseFit = !noFit
	}
	if cmd.Flags().Changed("tx-min") {
		cfg.TxMin = txMin
	}
	if cmd.Flags().Changed("tx-max") {
		cfg.TxMax = txMax
	}
	if cmd.Flags().Changed("iterations") {
		cfg.MonteCarlo.Iterations = iterations
	}
	if cmd.Flags().Changed("evals") {
		cfg.MonteCarlo.Evals = evals
	}
	if cmd.Flags().Changed("seed") {
		cfg.MonteCarlo.Seed = seed
	}

	tx = cfg.Tx
	mx = cfg.Mx
	p := cfg.Params()
	return p, p.Validate()
}

func runFlux(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("computing flux at Tx=%.2f MeV, mx=%.2f MeV...\n", tx, mx)
	start := time.Now()

	res, err := dbdm.Flux(context.Background(), tx, mx, p)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))
	printResult(res, "MeV^-1 cm^-2 s^-1")
	return nil
}

func runEvent(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("computing event rate for mx=%.2f MeV over Tx in [%.1f, %.1f] MeV...\n",
		mx, p.TxMin, p.TxMax)
	start := time.Now()

	res, err := dbdm.Event(context.Background(), mx, p)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n\n", time.Since(start))
	printResult(res, "cm^-2 s^-1")
	return nil
}

func printResult(res dbdm.Result, unit string) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "value\t%.6e %s\n", res.Value, unit)
	fmt.Fprintf(w, "error\t%.2e (%.2f%%)\n", res.Err, 100*res.Err/math.Max(res.Value, 1e-300))
	fmt.Fprintf(w, "chi2/dof\t%.3f\n", res.ChiSq)
	fmt.Fprintf(w, "evals\t%d\n", res.Evals)
	w.Flush()
}

func txGrid(lo, hi float64, n int, logSpaced bool) []float64 {
	grid := make([]float64, n)
	if n == 1 {
		grid[0] = lo
		return grid
	}
	for i := range grid {
		t := float64(i) / float64(n-1)
		if logSpaced {
			grid[i] = lo * math.Pow(hi/lo, t)
		} else {
			grid[i] = lo + t*(hi-lo)
		}
	}
	return grid
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}
	if points < 1 {
		return fmt.Errorf("need at least one grid point")
	}

	grid := txGrid(p.TxMin, p.TxMax, points, logTx)

	fmt.Fprintf(os.Stderr, "computing %d-point spectrum for mx=%.2f MeV...\n", points, mx)
	start := time.Now()

	spec, err := dbdm.Spectrum(context.Background(), grid, mx, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "completed in %v\n", time.Since(start))

	switch format {
	case "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "TX\tFLUX\tERROR\tCHI2")
		for _, pt := range spec {
			fmt.Fprintf(w, "%.3f\t%.6e\t%.2e\t%.3f\n",
				pt.Tx, pt.Result.Value, pt.Result.Err, pt.Result.ChiSq)
		}
		return w.Flush()

	case "plot":
		data := make([]float64, len(spec))
		for i, pt := range spec {
			if pt.Result.Value > 0 {
				data[i] = math.Log10(pt.Result.Value)
			} else {
				data[i] = math.Inf(-1)
			}
		}
		// clip the empty tail so asciigraph gets finite data
		for len(data) > 0 && math.IsInf(data[len(data)-1], -1) {
			data = data[:len(data)-1]
		}
		if len(data) == 0 {
			return fmt.Errorf("no flux to plot")
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(15),
			asciigraph.Width(80),
			asciigraph.Caption(fmt.Sprintf("log10 flux, Tx in [%.1f, %.1f] MeV", spec[0].Tx, spec[len(data)-1].Tx)),
		)
		fmt.Println(graph)
		return nil

	case "csv":
		w := csv.NewWriter(os.Stdout)
		if err := w.Write([]string{"tx_mev", "flux", "error", "chi2"}); err != nil {
			return err
		}
		for _, pt := range spec {
			rec := []string{
				strconv.FormatFloat(pt.Tx, 'e', 6, 64),
				strconv.FormatFloat(pt.Result.Value, 'e', 6, 64),
				strconv.FormatFloat(pt.Result.Err, 'e', 6, 64),
				strconv.FormatFloat(pt.Result.ChiSq, 'f', 3, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()

	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(spec)

	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func runLiveFlux(cmd *cobra.Command, args []string) error {
	p, err := loadParams(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stats := make(chan vegas.IterationStat)
	done := make(chan viz.Outcome, 1)
	p.MonteCarlo.OnIteration = viz.FeedStats(ctx, stats)

	go func() {
		res, err := dbdm.Flux(ctx, tx, mx, p)
		close(stats)
		done <- viz.Outcome{Value: res.Value, Err: res.Err, Fail: err}
	}()

	title := fmt.Sprintf("dbdm flux  Tx=%.2f MeV  mx=%.2f MeV", tx, mx)
	prog := tea.NewProgram(viz.NewMonitor(title, stats, done))
	final, err := prog.Run()
	// quitting the view mid-run cancels the sampler so the goroutine
	// unwinds instead of blocking on the stats channel
	cancel()
	if err != nil {
		return err
	}

	if m, ok := final.(viz.Monitor); ok {
		if out := m.Result(); out != nil {
			if out.Fail != nil {
				return out.Fail
			}
			fmt.Printf("flux: %.6e +- %.2e MeV^-1 cm^-2 s^-1\n", out.Value, out.Err)
		}
	}
	return nil
}
