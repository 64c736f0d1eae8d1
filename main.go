package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/decker502/lily/internal/particle"
	"github.com/decker502/lily/pkg/app"
	"github.com/decker502/lily/pkg/config"
	"github.com/decker502/lily/pkg/effects"
	"github.com/decker502/lily/pkg/embedded"
	"github.com/decker502/lily/pkg/render"
)

const Version = "v0.1.0"

var sceneFlags app.Config

func main() {
	embedded.Init(dataFS)

	rootCmd := &cobra.Command{
		Use:   "lily",
		Short: "Spider lilies under a night sky, with weather",
		RunE: func(cmd *cobra.Command, args []string) error {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Println(Version)
				return nil
			}
			return runWindow(sceneFlags)
		},
	}

	rootCmd.PersistentFlags().StringVar(&sceneFlags.ScenePath, "config", "", "Path to a YAML or TOML scene file")
	rootCmd.PersistentFlags().StringVar(&sceneFlags.Preset, "preset", "", "Embedded preset name (see 'lily presets')")
	rootCmd.PersistentFlags().BoolVar(&sceneFlags.Verbose, "verbose", false, "Enable verbose logging")
	rootCmd.Flags().BoolVar(&sceneFlags.Fullscreen, "fullscreen", false, "Start fullscreen")
	rootCmd.Flags().BoolVar(&sceneFlags.NoPersist, "no-persist", false, "Do not load or save preferences")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(svgCmd())
	rootCmd.AddCommand(presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runWindow(cfg app.Config) error {
	a, err := app.NewApp(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(a.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	runErr := ebiten.RunGame(a)
	if err := a.Shutdown(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		return runErr
	}
	return nil
}

type svgOptions struct {
	out      string
	palette  string
	wind     bool
	snow     bool
	rain     bool
	floating bool
	ocean    bool
}

func svgCmd() *cobra.Command {
	var opts svgOptions
	cmd := &cobra.Command{
		Use:   "svg",
		Short: "Write one frame of the scene as an animated SVG document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !sceneFlags.Verbose {
				log.SetOutput(io.Discard)
			}
			sceneCfg, err := app.LoadScene(sceneFlags)
			if err != nil {
				return fmt.Errorf("scene config: %w", err)
			}

			if opts.out == "" || opts.out == "-" {
				return writeSVG(cmd.OutOrStdout(), sceneCfg, opts)
			}
			return writeSVGFile(opts.out, sceneCfg, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "Palette name")
	cmd.Flags().BoolVar(&opts.wind, "wind", false, "Enable wind")
	cmd.Flags().BoolVar(&opts.snow, "snow", false, "Show snow")
	cmd.Flags().BoolVar(&opts.rain, "rain", false, "Show rain")
	cmd.Flags().BoolVar(&opts.floating, "floating", true, "Show floating particles")
	cmd.Flags().BoolVar(&opts.ocean, "ocean", false, "Enable the ocean")
	return cmd
}

// writeSVGFile writes the document to path. A failed close is reported,
// since it can mean the document never reached disk.
func writeSVGFile(path string, sceneCfg *config.SceneConfig, opts svgOptions) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := writeSVG(f, sceneCfg, opts); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func writeSVG(w io.Writer, sceneCfg *config.SceneConfig, opts svgOptions) error {
	c, err := app.NewController(sceneCfg, particle.RandSampler{}, nil, nil)
	if err != nil {
		return err
	}
	if opts.palette != "" {
		if err := c.SelectPalette(opts.palette); err != nil {
			return err
		}
	}
	if opts.wind {
		c.ToggleWind()
	}
	if opts.snow {
		c.ToggleSnow()
	}
	if opts.rain {
		c.ToggleRain()
	}
	if !opts.floating && c.Layer(effects.FloatingParticles).Visible() {
		c.ToggleFloating()
	}
	if opts.ocean {
		c.EnableOcean()
	}
	return render.WriteSVG(w, c.Frame(0), sceneCfg.Canvas.Width, sceneCfg.Canvas.Height)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the embedded scene presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := config.Presets()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(cmd.OutOrStdout(), n)
		}
		return nil
	},
}
