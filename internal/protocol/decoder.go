package protocol

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_engine/internal/cube"
)

// Rotation is a single face turn reported by the cube. The face is named by
// the color of its center.
type Rotation struct {
	Code              byte       `json:"code"` // Raw face+direction code (0x00-0x0B)
	CenterOrientation byte       `json:"center_orientation"`
	Color             cube.Color `json:"color"`
	Clockwise         bool       `json:"clockwise"`
}

// Battery is a battery level notification.
type Battery struct {
	Level int `json:"level"` // 0-100 percentage
}

// Center colors in GoCube code order.
var codeColors = [...]cube.Color{
	cube.Blue,
	cube.Green,
	cube.White,
	cube.Yellow,
	cube.Red,
	cube.Orange,
}

// DecodeRotation decodes a rotation payload made of byte pairs:
// [face_dir] [center_orientation]. Even codes are clockwise turns and
// code/2 selects the center color.
func DecodeRotation(payload []byte) ([]Rotation, error) {
	if len(payload)%2 != 0 {
		return nil, fmt.Errorf("rotation payload must have even length, got %d", len(payload))
	}

	rotations := make([]Rotation, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		code := payload[i]
		idx := int(code / 2)
		if idx >= len(codeColors) {
			return nil, fmt.Errorf("unknown face code 0x%02X", code)
		}
		rotations = append(rotations, Rotation{
			Code:              code,
			CenterOrientation: payload[i+1],
			Color:             codeColors[idx],
			Clockwise:         code%2 == 0,
		})
	}
	return rotations, nil
}

// DecodeBattery decodes a battery payload.
func DecodeBattery(payload []byte) (*Battery, error) {
	if len(payload) < 1 {
		return nil, fmt.Errorf("battery payload too short")
	}
	return &Battery{Level: int(payload[0])}, nil
}
