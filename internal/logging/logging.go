// Package logging builds the per-session JSONL event log.
package logging

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Session is a zap logger writing one JSON object per line to a session file.
type Session struct {
	*zap.Logger
	file  *os.File
	start time.Time
}

// New creates dir if needed and opens session_YYYYMMDD_HHMMSS.jsonl inside
// it. Debug events are only written when verbose is set.
func New(dir string, verbose bool) (*Session, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	start := time.Now()
	name := fmt.Sprintf("session_%s.jsonl", start.Format("20060102_150405"))
	file, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "timestamp"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(file), level)
	logger := zap.New(core).With(zap.Time("session_start", start))

	return &Session{Logger: logger, file: file, start: start}, nil
}

// Path returns the session file path.
func (s *Session) Path() string {
	return s.file.Name()
}

// Elapsed returns the time since the session was opened.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.start)
}

// Close flushes the logger and closes the file.
func (s *Session) Close() error {
	_ = s.Logger.Sync()
	return s.file.Close()
}

// Event is one decoded line of a session file.
type Event map[string]any

// Message returns the log message of the event.
func (e Event) Message() string {
	msg, _ := e["msg"].(string)
	return msg
}

// ReadEvents loads every event of a session file in order.
func ReadEvents(path string) ([]Event, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer file.Close()

	var events []Event
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		events = append(events, ev)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
