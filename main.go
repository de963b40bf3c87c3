package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oddlab/anomaly-radar/internal/app"
	"github.com/oddlab/anomaly-radar/internal/config"
)

var (
	flagDemo     bool
	flagMute     bool
	flagNearRSSI float64
	flagMagAlert float64
	flagRange    float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "anomaly-radar",
		Short: "Terminal anomaly scanner with radar sweep and audio spectrogram",
		Long: `anomaly-radar listens to the microphone, an optional magnetometer, and
nearby BLE advertisements, rendering a rotating radar sweep next to a
scrolling rainbow spectrogram.

Missing sensors degrade silently: whatever opens, feeds the display.
BLE scanning needs sudo or CAP_NET_ADMIN; use --demo for synthetic
feeds with no hardware at all.`,
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run with synthetic sensor feeds (no hardware required)")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable alert tones")
	rootCmd.Flags().Float64Var(&flagNearRSSI, "near-rssi", config.DefaultNearRSSI, "RSSI cutoff (dBm) for near-field contacts")
	rootCmd.Flags().Float64Var(&flagMagAlert, "mag-alert", config.DefaultMagAlert, "Field magnitude (µT) that triggers an alert")
	rootCmd.Flags().Float64Var(&flagRange, "range", config.DefaultMaxRange, "Maximum radar range in meters")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	model := app.New(flagDemo, app.Options{
		NearRSSI: flagNearRSSI,
		MagAlert: flagMagAlert,
		MaxRange: flagRange,
		Mute:     flagMute,
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	// Acquire sensors before the loop starts; whatever fails to open is
	// reported in the status bar and simply stays dark.
	model.StartSensors(p)
	for _, d := range model.Disabled() {
		fmt.Fprintf(os.Stderr, "sensor disabled: %s\n", d)
	}

	_, err := p.Run()
	return err
}
