package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/ranger"
	"github.com/phanxgames/ranger/backend/software"
	"github.com/phanxgames/ranger/internal/demo"
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Run the demo offscreen and save the last frame",
	Long: `Runs the demo on the software backend for a fixed number of frames and
writes the final frame as a PNG. An optional JSON script drives input and
queues screenshots.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		frames, _ := cmd.Flags().GetInt("frames")
		out, _ := cmd.Flags().GetString("out")
		scriptPath, _ := cmd.Flags().GetString("script")
		shots, _ := cmd.Flags().GetString("screenshots")
		step, _ := cmd.Flags().GetDuration("frame-step")
		return renderDemo(cmd, renderOptions{
			frames: frames, step: step, out: out, script: scriptPath, screenshots: shots,
		})
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Int("frames", 120, "Number of frames to present")
	renderCmd.Flags().StringP("out", "o", "ranger.png", "PNG file for the last frame")
	renderCmd.Flags().String("script", "", "JSON input script")
	renderCmd.Flags().String("screenshots", "screenshots", "Directory for scripted screenshots")
	renderCmd.Flags().Duration("frame-step", ranger.FramePeriod, "Simulated time per frame; 0 uses the wall clock")
}

type renderOptions struct {
	frames      int
	step        time.Duration
	out         string
	script      string
	screenshots string
}

func renderDemo(cmd *cobra.Command, opts renderOptions) error {
	frames, out, scriptPath, shots := opts.frames, opts.out, opts.script, opts.screenshots
	if frames <= 0 && scriptPath == "" {
		return errors.New("render: --frames must be positive without a --script")
	}
	props, err := buildProperties(cmd)
	if err != nil {
		return err
	}
	props.FrameLimit = false

	w, err := ranger.NewWorld(props, software.Factory)
	if err != nil {
		return err
	}
	if _, err := w.Configure(); err != nil {
		return err
	}
	p := w.Platform().(*software.Platform)
	p.MaxFrames = frames
	p.ScreenshotDir = shots
	p.FrameStep = opts.step

	if scriptPath != "" {
		data, err := os.ReadFile(scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		script, err := software.LoadScript(data)
		if err != nil {
			return err
		}
		p.SetScript(script)
	}

	if _, err := w.LaunchContext(cmd.Context(), demo.Template0); err != nil {
		return err
	}
	if err := p.SavePNG(out); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rendered %d frames to %s\n", p.Frames(), out)
	return nil
}
