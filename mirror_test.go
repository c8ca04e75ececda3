package gocube

import (
	"testing"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/internal/protocol"
)

func deliver(t *testing.T, m *Mirror, msgType byte, payload []byte) {
	t.Helper()
	msg, err := protocol.Parse(protocol.Build(msgType, payload))
	if err != nil {
		t.Fatal(err)
	}
	m.handleMessage(msg)
}

func TestMirrorForwardsRotations(t *testing.T) {
	m := newMirror(Device{Name: "GoCube_test"}, zap.NewNop())

	// Blue clockwise, red counter-clockwise.
	deliver(t, m, protocol.MsgTypeRotation, []byte{0x00, 0x00, 0x09, 0x00})

	e := NewEngine()
	var tokens []string
	for i := 0; i < 2; i++ {
		rot := <-m.Turns()
		tok, err := e.TokenForColor(rot.Color, rot.Clockwise)
		if err != nil {
			t.Fatal(err)
		}
		tokens = append(tokens, tok)
		if err := e.PushRotation(rot); err != nil {
			t.Fatal(err)
		}
	}

	if tokens[0] != "R" || tokens[1] != "F'" {
		t.Errorf("tokens = %v, want [R F']", tokens)
	}
	if e.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", e.Pending())
	}
}

func TestMirrorDropsWhenFull(t *testing.T) {
	m := newMirror(Device{}, zap.NewNop())
	for i := 0; i < mirrorBuffer+3; i++ {
		deliver(t, m, protocol.MsgTypeRotation, []byte{0x04, 0x00})
	}
	if m.Dropped() != 3 {
		t.Errorf("Dropped() = %d, want 3", m.Dropped())
	}
	rot := <-m.Turns()
	if rot.Color != cube.White || !rot.Clockwise {
		t.Errorf("unexpected rotation %+v", rot)
	}
}

func TestMirrorBattery(t *testing.T) {
	m := newMirror(Device{}, zap.NewNop())
	level := -1
	m.OnBattery(func(l int) { level = l })

	deliver(t, m, protocol.MsgTypeBattery, []byte{42})
	if level != 42 {
		t.Errorf("battery = %d, want 42", level)
	}
	if m.Battery() != -1 {
		t.Error("a mirror without a client should report unknown battery")
	}
	if err := m.FlashBacklight(); err != ErrNotConnected {
		t.Errorf("expected ErrNotConnected, got %v", err)
	}
}
