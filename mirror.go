package gocube

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_engine/internal/ble"
	"github.com/SeamusWaldron/gocube_engine/internal/protocol"
)

// mirrorBuffer is how many turns a Mirror holds before dropping.
const mirrorBuffer = 64

// Device represents a discovered GoCube device.
// Devices are returned by Scan and can be passed to ConnectMirror.
type Device struct {
	Name string // Device name (e.g., "GoCube_XXXX")
	UUID string // Device address for connection
	RSSI int16  // Signal strength in dBm
	scan ble.ScanResult
}

// Rotation is a face turn reported by a physical cube, named by the color of
// the turned center.
type Rotation = protocol.Rotation

// Mirror forwards the turns of a physical GoCube so an Engine can replay
// them. Notifications arrive on the BLE goroutine; Turns hands them to the
// frame loop.
//
//	m, err := gocube.ConnectFirst(ctx, logger)
//	...
//	for {
//	    select {
//	    case rot := <-m.Turns():
//	        engine.PushRotation(rot)
//	    case <-ticker.C:
//	        engine.Tick(dt)
//	    }
//	}
type Mirror struct {
	client *ble.Client
	device Device
	logger *zap.Logger
	turns  chan Rotation

	mu      sync.Mutex
	dropped int
	onBatt  func(int)
}

// Scan discovers nearby GoCube devices via Bluetooth Low Energy.
// Ensure the cube is not connected to another device (e.g., phone app).
func Scan(ctx context.Context, timeout time.Duration) ([]Device, error) {
	client, err := ble.NewClient(nil)
	if err != nil {
		return nil, err
	}
	defer client.Disconnect()

	results, err := client.Scan(ctx, timeout)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, len(results))
	for i, r := range results {
		devices[i] = Device{Name: r.Name, UUID: r.UUID, RSSI: r.RSSI, scan: r}
	}
	return devices, nil
}

// ConnectMirror connects to a specific GoCube device.
func ConnectMirror(ctx context.Context, device Device, logger *zap.Logger) (*Mirror, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	client, err := ble.NewClient(logger)
	if err != nil {
		return nil, err
	}

	m := newMirror(device, logger)
	m.client = client
	client.SetMessageCallback(m.handleMessage)

	if device.scan.Name != "" {
		err = client.ConnectToResult(ctx, device.scan)
	} else {
		err = client.Connect(ctx, device.UUID)
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ConnectFirst scans for ten seconds and connects to the first GoCube found.
func ConnectFirst(ctx context.Context, logger *zap.Logger) (*Mirror, error) {
	devices, err := Scan(ctx, 10*time.Second)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, ErrDeviceNotFound
	}
	return ConnectMirror(ctx, devices[0], logger)
}

func newMirror(device Device, logger *zap.Logger) *Mirror {
	return &Mirror{
		device: device,
		logger: logger,
		turns:  make(chan Rotation, mirrorBuffer),
	}
}

// Turns delivers rotations in the order the cube reported them.
func (m *Mirror) Turns() <-chan Rotation {
	return m.turns
}

// Dropped returns how many rotations were lost because Turns was not drained.
func (m *Mirror) Dropped() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dropped
}

// OnBattery sets a callback for battery level updates.
func (m *Mirror) OnBattery(cb func(int)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onBatt = cb
}

// DeviceName returns the connected device name.
func (m *Mirror) DeviceName() string {
	return m.device.Name
}

// Battery returns the last known battery level (0-100), or -1 if unknown.
func (m *Mirror) Battery() int {
	if m.client == nil {
		return -1
	}
	return m.client.Battery()
}

// ResetSolved marks the physical cube as solved, matching a fresh engine.
func (m *Mirror) ResetSolved() error {
	if m.client == nil {
		return ErrNotConnected
	}
	return m.client.ResetSolved()
}

// FlashBacklight flashes the cube backlight.
func (m *Mirror) FlashBacklight() error {
	if m.client == nil {
		return ErrNotConnected
	}
	return m.client.FlashBacklight()
}

// Close disconnects from the cube.
func (m *Mirror) Close() error {
	if m.client == nil {
		return nil
	}
	return m.client.Disconnect()
}

func (m *Mirror) handleMessage(msg *protocol.Message) {
	switch msg.Type {
	case protocol.MsgTypeRotation:
		m.handleRotation(msg)
	case protocol.MsgTypeBattery:
		m.handleBattery(msg)
	}
}

func (m *Mirror) handleRotation(msg *protocol.Message) {
	rotations, err := protocol.DecodeRotation(msg.Payload)
	if err != nil {
		m.logger.Warn("bad rotation payload", zap.Error(err))
		return
	}

	for _, rot := range rotations {
		select {
		case m.turns <- rot:
		default:
			m.mu.Lock()
			m.dropped++
			m.mu.Unlock()
			m.logger.Warn("mirror buffer full, rotation dropped", zap.Stringer("color", rot.Color))
		}
	}
}

func (m *Mirror) handleBattery(msg *protocol.Message) {
	battery, err := protocol.DecodeBattery(msg.Payload)
	if err != nil {
		return
	}

	m.mu.Lock()
	cb := m.onBatt
	m.mu.Unlock()

	if cb != nil {
		cb(battery.Level)
	}
}

// PushRotation queues the engine turn matching a physical rotation.
func (e *Engine) PushRotation(rot Rotation) error {
	tok, err := e.TokenForColor(rot.Color, rot.Clockwise)
	if err != nil {
		return err
	}
	return e.Push(tok)
}
