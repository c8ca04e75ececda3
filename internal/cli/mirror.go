package cli

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/recorder"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

var scanTimeout time.Duration

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Mirror a GoCube smart cube",
	Long: `Connect to a GoCube over Bluetooth and animate every turn made on the
physical cube. Hold the cube solved when starting: the cube is told its
current state is solved so both start in sync.

The same keys as 'play' work while mirroring.`,
	RunE: runMirror,
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "List nearby GoCube devices",
	RunE:  runScan,
}

func init() {
	mirrorCmd.Flags().DurationVar(&scanTimeout, "scan-timeout", 5*time.Second, "How long to scan for devices")
	scanCmd.Flags().DurationVar(&scanTimeout, "scan-timeout", 5*time.Second, "How long to scan for devices")
	rootCmd.AddCommand(mirrorCmd)
	rootCmd.AddCommand(scanCmd)
}

// pickDevice prefers the last device used when it shows up in the scan.
func pickDevice(devices []gocube.Device, lastID string) gocube.Device {
	for _, d := range devices {
		if lastID != "" && d.UUID == lastID {
			return d
		}
	}
	return devices[0]
}

func scanDevices() ([]gocube.Device, error) {
	fmt.Println("Scanning for GoCube devices...")

	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout+time.Second)
	defer cancel()

	devices, err := gocube.Scan(ctx, scanTimeout)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	if len(devices) == 0 {
		fmt.Println("No GoCube devices found.")
		fmt.Println()
		fmt.Println("To fix this:")
		fmt.Println("  1. Rotate your cube to wake it up")
		fmt.Println("  2. Make sure it's not connected to your phone")
		fmt.Println("  3. Run this command again")
	}
	return devices, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	devices, err := scanDevices()
	if err != nil {
		return err
	}
	for _, d := range devices {
		fmt.Printf("  - %s (UUID: %s, RSSI: %d)\n", d.Name, d.UUID, d.RSSI)
	}
	return nil
}

func runMirror(cmd *cobra.Command, args []string) error {
	devices, err := scanDevices()
	if err != nil || len(devices) == 0 {
		return err
	}

	state, err := recorder.NewDefaultStateFile()
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}
	device := pickDevice(devices, state.State().LastDeviceID)
	fmt.Printf("Connecting to %s...\n", device.Name)

	run, err := newEngineRun(storage.SourceMirror, device.Name)
	if err != nil {
		return err
	}
	defer run.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	mirror, err := gocube.ConnectMirror(ctx, device, run.log.Logger)
	if err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer mirror.Close()

	mirror.OnBattery(func(level int) {
		run.log.Info("battery", zap.Int("level", level))
	})
	if err := state.SetLastDevice(device.UUID, device.Name); err != nil {
		run.log.Warn("save state", zap.Error(err))
	}
	if err := mirror.ResetSolved(); err != nil {
		return fmt.Errorf("failed to sync cube state: %w", err)
	}
	if err := mirror.FlashBacklight(); err != nil {
		run.log.Debug("flash backlight", zap.Error(err))
	}

	p := tea.NewProgram(newPlayModel(run, mirror), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
