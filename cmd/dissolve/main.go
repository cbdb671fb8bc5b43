package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/benstone/3dmm-dissolve/internal/config"
	"github.com/benstone/3dmm-dissolve/internal/dissolve"
	"github.com/benstone/3dmm-dissolve/internal/export"
	"github.com/benstone/3dmm-dissolve/internal/imageio"
	"github.com/benstone/3dmm-dissolve/internal/tui"
)

var (
	duration   float64
	fps        float64
	seed       int64
	output     string
	configFile string
	preset     string
	// Headless plot dimensions
	plotWidth  int
	plotHeight int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dissolve",
		Short: "pixel-dissolve image transitions in the terminal",
	}

	playCmd := &cobra.Command{
		Use:   "play [source] [destination]",
		Short: "play the dissolve interactively",
		Args:  cobra.ExactArgs(2),
		RunE:  runPlay,
	}
	addTransitionFlags(playCmd)

	renderCmd := &cobra.Command{
		Use:   "render [source] [destination]",
		Short: "render the dissolve to an animated GIF",
		Args:  cobra.ExactArgs(2),
		RunE:  runRender,
	}
	addTransitionFlags(renderCmd)
	renderCmd.Flags().StringVarP(&output, "out", "o", config.DefaultOutput, "output gif path")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot the pacing staircase without images",
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 100, "grid width in pixels")
	plotCmd.Flags().IntVar(&plotHeight, "height", 100, "grid height in pixels")
	plotCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "transition duration in seconds")
	plotCmd.Flags().Float64Var(&fps, "fps", config.DefaultFPS, "frame rate")
	plotCmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s %.1fs at %.1f fps\n", name, p.Duration, p.FPS)
			}
		},
	}

	rootCmd.AddCommand(playCmd, renderCmd, plotCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTransitionFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "transition duration in seconds")
	cmd.Flags().Float64Var(&fps, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use a named preset")
}

// resolveConfig merges preset, config file, and flag values, in that
// order of increasing precedence, matching how the flags were declared.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("duration") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}

	return cfg, cfg.Validate()
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	buffers, err := imageio.Load(args[0], args[1])
	if err != nil {
		return err
	}
	tr, err := dissolve.New(cfg.TransitionDuration(), buffers.Width, buffers.Height, buffers, newRand(cfg.Seed))
	if err != nil {
		return err
	}

	return tui.Run(buffers, tr, cfg.FPS)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("out") && cfg.Output != "" {
		output = cfg.Output
	}

	buffers, err := imageio.Load(args[0], args[1])
	if err != nil {
		return err
	}
	tr, err := dissolve.New(cfg.TransitionDuration(), buffers.Width, buffers.Height, buffers, newRand(cfg.Seed))
	if err != nil {
		return err
	}

	log.Info("rendering dissolve",
		"size", fmt.Sprintf("%dx%d", buffers.Width, buffers.Height),
		"duration", cfg.TransitionDuration(),
		"fps", cfg.FPS)

	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer f.Close()

	start := time.Now()
	frames, err := export.GIF(f, buffers, tr, int(cfg.FPS))
	if err != nil {
		return err
	}

	log.Info("wrote gif", "path", output, "frames", frames, "took", time.Since(start).Round(time.Millisecond))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	if plotWidth < 1 || plotHeight < 1 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", plotWidth, plotHeight)
	}
	if duration <= 0 || fps <= 0 {
		return fmt.Errorf("duration and fps must be positive")
	}

	swapped := 0
	counter := dissolve.SwapperFunc(func(x, y int) { swapped++ })

	d := time.Duration(duration * float64(time.Second))
	tr, err := dissolve.New(d, plotWidth, plotHeight, counter, newRand(seed))
	if err != nil {
		return err
	}

	delta := time.Duration(float64(time.Second) / fps)
	series := []float64{0}
	for running := true; running; {
		running, err = tr.Update(delta)
		if err != nil {
			return err
		}
		series = append(series, float64(tr.Swapped()))
	}

	fmt.Println(asciigraph.Plot(series,
		asciigraph.Height(15),
		asciigraph.Width(70),
		asciigraph.Caption(fmt.Sprintf("pixels revealed: %dx%d over %.1fs at %.1f fps", plotWidth, plotHeight, duration, fps))))

	total := plotWidth * plotHeight
	fmt.Printf("\nframes: %d  pixels: %d  per frame: ~%.1f\n",
		len(series)-1, total, float64(total)/float64(len(series)-1))
	if swapped != total {
		return fmt.Errorf("coverage hole: swapped %d of %d pixels", swapped, total)
	}
	return nil
}
