package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/phanxgames/ranger"
	ebitenbackend "github.com/phanxgames/ranger/backend/ebiten"
	"github.com/phanxgames/ranger/internal/demo"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open a window and run the demo",
	Long:  `Opens an ebiten window and runs the demo until it is closed, Escape is pressed, or the process is interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		props, err := buildProperties(cmd)
		if err != nil {
			return err
		}
		w, err := ranger.NewWorld(props, ebitenbackend.Factory)
		if err != nil {
			return err
		}
		if _, err := w.Configure(); err != nil {
			return err
		}

		if addr, _ := cmd.Flags().GetString("metrics-addr"); addr != "" {
			stop, err := startDiag(w, addr)
			if err != nil {
				return err
			}
			defer stop()
		}

		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		status, err := w.LaunchContext(ctx, demo.Template0)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), status)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().String("metrics-addr", "", "Serve /metrics, /tree, and /healthz on this address")

	rootCmd.RunE = runCmd.RunE
	rootCmd.Flags().AddFlagSet(runCmd.Flags())
}
