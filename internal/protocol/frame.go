// Package protocol implements the framing and payload decoding of the GoCube
// smart cube BLE protocol.
package protocol

import (
	"errors"
	"fmt"
)

// GoCube BLE service and characteristic UUIDs.
const (
	ServiceUUID = "6e400001-b5a3-f393-e0a9-e50e24dcca9e"
	TxCharUUID  = "6e400003-b5a3-f393-e0a9-e50e24dcca9e" // Notify
	RxCharUUID  = "6e400002-b5a3-f393-e0a9-e50e24dcca9e" // Write
)

// Message types sent by the cube.
const (
	MsgTypeRotation    byte = 0x01
	MsgTypeState       byte = 0x02
	MsgTypeOrientation byte = 0x03
	MsgTypeBattery     byte = 0x05
)

// Commands written to the RX characteristic.
const (
	CmdRequestBattery     byte = 0x32
	CmdRequestState       byte = 0x33
	CmdResetSolved        byte = 0x35
	CmdDisableOrientation byte = 0x37
	CmdEnableOrientation  byte = 0x38
	CmdFlashBacklight     byte = 0x41
)

// Frame layout: [0x2A] [length] [type] [payload...] [checksum] [0x0D 0x0A]
const (
	framePrefix  byte = 0x2A // '*'
	frameSuffix1 byte = 0x0D // CR
	frameSuffix2 byte = 0x0A // LF

	minFrameLen = 6 // prefix, length, type, checksum, CR, LF
)

var (
	ErrInvalidPrefix   = errors.New("protocol: invalid frame prefix")
	ErrInvalidSuffix   = errors.New("protocol: invalid frame suffix")
	ErrInvalidChecksum = errors.New("protocol: invalid checksum")
	ErrFrameTooShort   = errors.New("protocol: frame too short")
)

// Message is one decoded frame.
type Message struct {
	Type    byte
	Payload []byte
}

// Parse decodes a raw BLE notification.
//
// The length byte counts everything after itself: type, payload, checksum
// and the CRLF suffix. The checksum is the byte sum of everything before it.
func Parse(data []byte) (*Message, error) {
	if len(data) < minFrameLen {
		return nil, ErrFrameTooShort
	}
	if data[0] != framePrefix {
		return nil, ErrInvalidPrefix
	}

	total := 2 + int(data[1])
	if total < minFrameLen || len(data) < total {
		return nil, fmt.Errorf("%w: length byte %d, have %d bytes", ErrFrameTooShort, data[1], len(data))
	}

	sumAt := total - 3
	if data[sumAt+1] != frameSuffix1 || data[sumAt+2] != frameSuffix2 {
		return nil, ErrInvalidSuffix
	}

	if sum := checksum(data[:sumAt]); sum != data[sumAt] {
		return nil, fmt.Errorf("%w: frame says 0x%02X, computed 0x%02X", ErrInvalidChecksum, data[sumAt], sum)
	}

	payload := make([]byte, sumAt-3)
	copy(payload, data[3:sumAt])
	return &Message{Type: data[2], Payload: payload}, nil
}

// Build frames a message the way the cube sends it.
func Build(msgType byte, payload []byte) []byte {
	frame := make([]byte, 0, len(payload)+minFrameLen)
	frame = append(frame, framePrefix, byte(len(payload)+4), msgType)
	frame = append(frame, payload...)
	frame = append(frame, checksum(frame), frameSuffix1, frameSuffix2)
	return frame
}

// BuildCommand frames a command for the cube. Commands carry a length byte
// of 1 regardless of the suffix.
func BuildCommand(cmd byte) []byte {
	frame := []byte{framePrefix, 0x01, cmd}
	return append(frame, checksum(frame), frameSuffix1, frameSuffix2)
}

func checksum(b []byte) byte {
	var sum byte
	for _, v := range b {
		sum += v
	}
	return sum
}

// MessageTypeName returns a short name for the message type.
func MessageTypeName(msgType byte) string {
	switch msgType {
	case MsgTypeRotation:
		return "rotation"
	case MsgTypeState:
		return "state"
	case MsgTypeOrientation:
		return "orientation"
	case MsgTypeBattery:
		return "battery"
	default:
		return fmt.Sprintf("unknown_0x%02X", msgType)
	}
}
