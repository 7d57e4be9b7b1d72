package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/baconshor/internal/code"
	"github.com/san-kum/baconshor/internal/config"
	"github.com/san-kum/baconshor/internal/export"
	"github.com/san-kum/baconshor/internal/gui"
	"github.com/san-kum/baconshor/internal/render"
	"github.com/san-kum/baconshor/internal/session"
	"github.com/san-kum/baconshor/internal/stats"
	"github.com/san-kum/baconshor/internal/tui"
)

var (
	dataDir    string
	rows       int
	cols       int
	preset     string
	configFile string
	format     string
	outFile    string
	plain      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "baconshor",
		Short: "interactive bacon-shor code lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the terminal UI when no command given
			return tui.Run(session.New(dataDir))
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".baconshor", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "replay a measurement schedule and save the session",
		RunE:  runSchedule,
	}
	runCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "lattice rows")
	runCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "lattice cols")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset schedule")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved sessions",
		RunE:  listSessions,
	}

	showCmd := &cobra.Command{
		Use:   "show [session_id]",
		Short: "show session details",
		Args:  cobra.ExactArgs(1),
		RunE:  showSession,
	}

	statsCmd := &cobra.Command{
		Use:   "stats [session_id]",
		Short: "plot group statistics over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotStats,
	}

	renderCmd := &cobra.Command{
		Use:   "render [session_id]",
		Short: "render the final lattice state to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  renderSession,
	}
	renderCmd.Flags().BoolVar(&plain, "plain", false, "disable colors")

	exportCmd := &cobra.Command{
		Use:   "export [session_id]",
		Short: "export the final lattice state as SVG or PNG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSession,
	}
	exportCmd.Flags().StringVar(&format, "format", "svg", "output format (svg or png)")
	exportCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default session_id.<format>)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available measurement presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the mouse-driven lattice window",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := code.NewLattice(rows, cols)
			if err != nil {
				return err
			}
			gui.Run(l, session.New(dataDir))
			return nil
		},
	}
	guiCmd.Flags().IntVar(&rows, "rows", config.DefaultRows, "lattice rows")
	guiCmd.Flags().IntVar(&cols, "cols", config.DefaultCols, "lattice cols")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "open the terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(session.New(dataDir))
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, showCmd, statsCmd, renderCmd, exportCmd, presetsCmd, guiCmd, tuiCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// schedule resolves the measurement history from --config or --preset.
func schedule(cmd *cobra.Command) (*code.Lattice, [][]code.Edge, error) {
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, nil, fmt.Errorf("load config: %w", err)
		}
		if !cmd.Flags().Changed("rows") {
			rows = cfg.Rows
		}
		if !cmd.Flags().Changed("cols") {
			cols = cfg.Cols
		}
		l, err := code.NewLattice(rows, cols)
		if err != nil {
			return nil, nil, err
		}
		steps, err := cfg.ScheduleEdges()
		if err != nil {
			return nil, nil, err
		}
		return l, steps, nil
	}

	l, err := code.NewLattice(rows, cols)
	if err != nil {
		return nil, nil, err
	}
	if preset == "" {
		return nil, nil, fmt.Errorf("need --preset or --config")
	}
	steps := config.GetPreset(preset, l)
	if steps == nil {
		return nil, nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	return l, steps, nil
}

func runSchedule(cmd *cobra.Command, args []string) error {
	l, steps, err := schedule(cmd)
	if err != nil {
		return err
	}

	st := session.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	tr := code.NewTracker(l)
	for _, res := range tr.Replay(steps) {
		fmt.Printf("step %d: %d measured, %d generators\n",
			res.Step, len(res.Applied), len(res.Stabilizers))
		for _, rej := range res.Rejected {
			fmt.Printf("  rejected: %s\n", rej)
		}
	}

	fmt.Println("\nstabilizer group:")
	for _, s := range tr.Stabilizers() {
		fmt.Printf("  %s\n", s)
	}

	id, err := st.Save(tr)
	if err != nil {
		return err
	}
	fmt.Printf("\nsession id: %s\n", id)
	return nil
}

func listSessions(cmd *cobra.Command, args []string) error {
	st := session.New(dataDir)
	sessions, err := st.List()
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		fmt.Println("no sessions found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLATTICE\tTIME\tSTEPS\tGENERATORS")
	for _, meta := range sessions {
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%d\t%d\n",
			meta.ID,
			meta.Rows, meta.Cols,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.Steps,
			len(meta.Stabilizers),
		)
	}
	return w.Flush()
}

func showSession(cmd *cobra.Command, args []string) error {
	st := session.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("session: %s\n", meta.ID)
	fmt.Printf("lattice: %dx%d\n", meta.Rows, meta.Cols)
	fmt.Printf("steps: %d\n", meta.Steps)
	fmt.Printf("composition: %d X, %d Z, %d mixed\n\n",
		meta.Composition["x"], meta.Composition["z"], meta.Composition["mixed"])

	fmt.Println("stabilizer group:")
	for _, key := range meta.Stabilizers {
		fmt.Printf("  %s\n", key)
	}
	return nil
}

func plotStats(cmd *cobra.Command, args []string) error {
	st := session.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	history, err := st.LoadHistory(args[0])
	if err != nil {
		return err
	}
	l, err := code.NewLattice(meta.Rows, meta.Cols)
	if err != nil {
		return err
	}

	series := stats.Collect(l, history)
	if series.Steps() < 2 {
		return fmt.Errorf("need at least 2 steps to plot, session has %d", series.Steps())
	}

	fmt.Printf("session: %s (%d steps)\n\n", meta.ID, series.Steps())

	plots := []struct {
		caption string
		data    []float64
	}{
		{"generator count", series.Count},
		{"mean generator weight", series.MeanWeight},
		{"x-type generators", series.XCount},
		{"z-type generators", series.ZCount},
	}
	for _, p := range plots {
		graph := asciigraph.Plot(p.data,
			asciigraph.Height(8),
			asciigraph.Width(60),
			asciigraph.Caption(p.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func replaySession(id string) (*code.Tracker, error) {
	st := session.New(dataDir)
	meta, err := st.Load(id)
	if err != nil {
		return nil, err
	}
	history, err := st.LoadHistory(id)
	if err != nil {
		return nil, err
	}
	l, err := code.NewLattice(meta.Rows, meta.Cols)
	if err != nil {
		return nil, err
	}
	tr := code.NewTracker(l)
	tr.Replay(history)
	return tr, nil
}

func renderSession(cmd *cobra.Command, args []string) error {
	tr, err := replaySession(args[0])
	if err != nil {
		return err
	}

	palette := render.DarkPalette()
	if plain {
		palette = render.PlainPalette()
	}

	snap := tr.Snapshot()
	scene := render.Scene{
		Lattice:     snap.Lattice,
		Step:        snap.Step,
		Current:     snap.Current,
		Previous:    snap.Previous,
		Stabilizers: snap.Stabilizers,
	}

	fmt.Printf("step %d\n\n", snap.Step)
	fmt.Println(render.Grid(scene, palette))
	fmt.Println(render.Stabilizers(snap.Stabilizers, palette))
	return nil
}

func exportSession(cmd *cobra.Command, args []string) error {
	tr, err := replaySession(args[0])
	if err != nil {
		return err
	}

	format = strings.ToLower(format)
	if format != "svg" && format != "png" {
		return fmt.Errorf("unknown format: %s (want svg or png)", format)
	}
	if outFile == "" {
		outFile = fmt.Sprintf("%s.%s", args[0], format)
	}

	f, err := os.Create(outFile)
	if err != nil {
		return err
	}
	defer f.Close()

	snap := tr.Snapshot()
	if format == "png" {
		err = export.WritePNG(f, snap)
	} else {
		err = export.WriteSVG(f, snap)
	}
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", outFile)
	return nil
}
