package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/gocube_engine/internal/ble"
	"github.com/SeamusWaldron/gocube_engine/internal/protocol"
)

var framesDuration time.Duration

var framesCmd = &cobra.Command{
	Use:   "frames",
	Short: "Dump decoded BLE frames from a GoCube",
	Long: `Connect to the first GoCube found and print every frame it sends,
raw and decoded. Useful when a cube and the engine disagree.`,
	RunE: runFrames,
}

func init() {
	framesCmd.Flags().DurationVar(&framesDuration, "duration", 2*time.Minute, "How long to listen")
	rootCmd.AddCommand(framesCmd)
}

// describeFrame renders one frame as a single line.
func describeFrame(msg *protocol.Message) string {
	line := fmt.Sprintf("%-12s % X", protocol.MessageTypeName(msg.Type), msg.Payload)

	switch msg.Type {
	case protocol.MsgTypeRotation:
		rots, err := protocol.DecodeRotation(msg.Payload)
		if err != nil {
			return line + "  (" + err.Error() + ")"
		}
		for _, r := range rots {
			dir := "cw"
			if !r.Clockwise {
				dir = "ccw"
			}
			line += fmt.Sprintf("  %v %s", r.Color, dir)
		}
	case protocol.MsgTypeBattery:
		if b, err := protocol.DecodeBattery(msg.Payload); err == nil {
			line += fmt.Sprintf("  %d%%", b.Level)
		}
	}
	return line
}

func runFrames(cmd *cobra.Command, args []string) error {
	log, err := openLog()
	if err != nil {
		return err
	}
	defer log.Close()

	client, err := ble.NewClient(log.Logger)
	if err != nil {
		return fmt.Errorf("BLE not available: %w", err)
	}

	fmt.Println("Scanning for GoCube devices...")
	results, err := client.Scan(cmd.Context(), 5*time.Second)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}
	if len(results) == 0 {
		fmt.Println("No GoCube devices found")
		return nil
	}

	client.SetMessageCallback(func(msg *protocol.Message) {
		fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05.000"), describeFrame(msg))
	})

	ctx, cancel := context.WithTimeout(cmd.Context(), framesDuration)
	defer cancel()

	if err := client.ConnectToResult(ctx, results[0]); err != nil {
		return fmt.Errorf("connection failed: %w", err)
	}
	defer client.Disconnect()

	fmt.Printf("Connected to %s (%s)\n", results[0].Name, results[0].UUID)
	fmt.Println("Rotate the cube to see data, Ctrl+C to exit")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		fmt.Println("\nDisconnecting...")
	case <-ctx.Done():
		fmt.Println("\nTimeout, disconnecting...")
	}
	return nil
}
