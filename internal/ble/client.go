// Package ble provides low-level BLE communication with GoCube devices.
package ble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"tinygo.org/x/bluetooth"

	"github.com/SeamusWaldron/gocube_engine/internal/protocol"
)

// Errors
var (
	ErrNotConnected     = errors.New("ble: not connected to device")
	ErrAlreadyConnected = errors.New("ble: already connected to a device")
	ErrDeviceNotFound   = errors.New("ble: device not found")
)

// findTimeout bounds the scan that looks up a device by address.
const findTimeout = 10 * time.Second

var (
	serviceUUID = mustParseUUID(protocol.ServiceUUID)
	txCharUUID  = mustParseUUID(protocol.TxCharUUID)
	rxCharUUID  = mustParseUUID(protocol.RxCharUUID)
)

func mustParseUUID(s string) bluetooth.UUID {
	uuid, err := bluetooth.ParseUUID(s)
	if err != nil {
		panic(fmt.Sprintf("ble: bad uuid %q: %v", s, err))
	}
	return uuid
}

// ScanResult represents a discovered GoCube device.
type ScanResult struct {
	Name    string
	UUID    string
	RSSI    int16
	Address bluetooth.Address
}

// Client manages the BLE connection to one GoCube.
type Client struct {
	adapter *bluetooth.Adapter
	device  bluetooth.Device
	rxChar  bluetooth.DeviceCharacteristic
	logger  *zap.Logger

	mu         sync.RWMutex
	connected  bool
	deviceName string
	battery    int

	onMessage func(*protocol.Message)
}

// NewClient enables the default adapter and returns a client.
func NewClient(logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w", err)
	}

	return &Client{
		adapter: adapter,
		logger:  logger,
		battery: -1,
	}, nil
}

// SetMessageCallback sets the callback for decoded frames. It runs on the
// adapter's notification goroutine.
func (c *Client) SetMessageCallback(cb func(*protocol.Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = cb
}

// Scan collects GoCube devices advertising within timeout.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]ScanResult, error) {
	if c.IsConnected() {
		return nil, ErrAlreadyConnected
	}

	var (
		mu      sync.Mutex
		results []ScanResult
		seen    = make(map[string]bool)
		done    = make(chan error, 1)
	)

	go func() {
		done <- c.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			name := result.LocalName()
			if !strings.HasPrefix(strings.ToLower(name), "gocube") {
				return
			}

			addr := result.Address.String()
			mu.Lock()
			defer mu.Unlock()
			if seen[addr] {
				return
			}
			seen[addr] = true
			results = append(results, ScanResult{
				Name:    name,
				UUID:    addr,
				RSSI:    result.RSSI,
				Address: result.Address,
			})
		})
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	}

	if err := c.adapter.StopScan(); err != nil {
		c.logger.Warn("stop scan", zap.Error(err))
	}
	if err := <-done; err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	return results, nil
}

// Connect looks a device up by address and connects to it.
func (c *Client) Connect(ctx context.Context, deviceUUID string) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}

	found := make(chan ScanResult, 1)
	go func() {
		_ = c.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
			if result.Address.String() != deviceUUID {
				return
			}
			select {
			case found <- ScanResult{Name: result.LocalName(), UUID: deviceUUID, RSSI: result.RSSI, Address: result.Address}:
			default:
			}
		})
	}()

	var target ScanResult
	select {
	case target = <-found:
	case <-time.After(findTimeout):
		_ = c.adapter.StopScan()
		return ErrDeviceNotFound
	case <-ctx.Done():
		_ = c.adapter.StopScan()
		return ctx.Err()
	}
	_ = c.adapter.StopScan()

	return c.ConnectToResult(ctx, target)
}

// ConnectToResult connects directly to a device from a scan result and
// subscribes to its notifications.
func (c *Client) ConnectToResult(ctx context.Context, result ScanResult) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}

	device, err := c.adapter.Connect(result.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	rx, err := c.subscribe(device)
	if err != nil {
		_ = device.Disconnect()
		return err
	}

	c.mu.Lock()
	c.device = device
	c.rxChar = rx
	c.connected = true
	c.deviceName = result.Name
	c.mu.Unlock()

	c.logger.Info("connected", zap.String("device", result.Name), zap.String("address", result.UUID))

	if err := c.RequestBattery(); err != nil {
		c.logger.Warn("request battery", zap.Error(err))
	}
	return nil
}

// subscribe finds the GoCube service, enables notifications on TX and
// returns the RX characteristic used for commands.
func (c *Client) subscribe(device bluetooth.Device) (bluetooth.DeviceCharacteristic, error) {
	var rx bluetooth.DeviceCharacteristic

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil {
		return rx, fmt.Errorf("failed to discover services: %w", err)
	}
	if len(services) == 0 {
		return rx, fmt.Errorf("%w: GoCube service missing", ErrDeviceNotFound)
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		return rx, fmt.Errorf("failed to discover characteristics: %w", err)
	}

	var tx bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			tx = ch
		case rxCharUUID:
			rx = ch
		}
	}

	if err := tx.EnableNotifications(c.handleNotification); err != nil {
		return rx, fmt.Errorf("failed to enable notifications: %w", err)
	}
	return rx, nil
}

// Disconnect disconnects from the current device.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}

	err := c.device.Disconnect()
	c.connected = false
	c.deviceName = ""
	c.battery = -1
	return err
}

// IsConnected returns true if connected to a device.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// DeviceName returns the connected device name.
func (c *Client) DeviceName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.deviceName
}

// Battery returns the last known battery level (-1 if unknown).
func (c *Client) Battery() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.battery
}

// SendCommand writes a command frame to the cube.
func (c *Client) SendCommand(cmd byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected {
		return ErrNotConnected
	}

	data := protocol.BuildCommand(cmd)
	if _, err := c.rxChar.WriteWithoutResponse(data); err != nil {
		_, err = c.rxChar.Write(data)
		return err
	}
	return nil
}

// RequestBattery requests the battery level from the cube.
func (c *Client) RequestBattery() error {
	return c.SendCommand(protocol.CmdRequestBattery)
}

// ResetSolved tells the cube its current state is solved.
func (c *Client) ResetSolved() error {
	return c.SendCommand(protocol.CmdResetSolved)
}

// FlashBacklight flashes the cube backlight three times.
func (c *Client) FlashBacklight() error {
	return c.SendCommand(protocol.CmdFlashBacklight)
}

func (c *Client) handleNotification(data []byte) {
	msg, err := protocol.Parse(data)
	if err != nil {
		c.logger.Debug("dropped frame", zap.Binary("data", data), zap.Error(err))
		return
	}

	c.logger.Debug("frame",
		zap.String("type", protocol.MessageTypeName(msg.Type)),
		zap.Binary("payload", msg.Payload),
	)

	if msg.Type == protocol.MsgTypeBattery {
		if battery, err := protocol.DecodeBattery(msg.Payload); err == nil {
			c.mu.Lock()
			c.battery = battery.Level
			c.mu.Unlock()
		}
	}

	c.mu.RLock()
	cb := c.onMessage
	c.mu.RUnlock()

	if cb != nil {
		cb(msg)
	}
}
