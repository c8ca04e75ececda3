// Package recorder records engine sessions to the database and keeps the
// small amount of state that survives between runs.
package recorder

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppState represents the persistent application state.
type AppState struct {
	LastDeviceID   string `yaml:"last_device_id,omitempty"`
	LastDeviceName string `yaml:"last_device_name,omitempty"`
	LastSessionID  string `yaml:"last_session_id,omitempty"`
}

// StateFile manages the application state file.
type StateFile struct {
	path  string
	state AppState
}

// DefaultStatePath returns the default state file path.
func DefaultStatePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gocube_engine", "state.yaml"), nil
}

// NewStateFile loads the state at path. A missing file yields an empty state.
func NewStateFile(path string) (*StateFile, error) {
	sf := &StateFile{path: path}
	if err := sf.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return sf, nil
}

// NewDefaultStateFile creates a state file manager with the default path.
func NewDefaultStateFile() (*StateFile, error) {
	path, err := DefaultStatePath()
	if err != nil {
		return nil, err
	}
	return NewStateFile(path)
}

// Load reads the state from disk.
func (sf *StateFile) Load() error {
	data, err := os.ReadFile(sf.path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, &sf.state); err != nil {
		return fmt.Errorf("failed to parse state file: %w", err)
	}
	return nil
}

// Save writes the state to disk.
func (sf *StateFile) Save() error {
	if err := os.MkdirAll(filepath.Dir(sf.path), 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}
	data, err := yaml.Marshal(sf.state)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	return os.WriteFile(sf.path, data, 0644)
}

// State returns a copy of the current state.
func (sf *StateFile) State() AppState {
	return sf.state
}

// SetLastDevice remembers the device mirror connected to.
func (sf *StateFile) SetLastDevice(deviceID, deviceName string) error {
	sf.state.LastDeviceID = deviceID
	sf.state.LastDeviceName = deviceName
	return sf.Save()
}

// SetLastSession remembers the most recent session.
func (sf *StateFile) SetLastSession(sessionID string) error {
	sf.state.LastSessionID = sessionID
	return sf.Save()
}
