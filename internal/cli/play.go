package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_engine"
	"github.com/SeamusWaldron/gocube_engine/internal/cube"
	"github.com/SeamusWaldron/gocube_engine/internal/notation"
	"github.com/SeamusWaldron/gocube_engine/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively",
	Long: `Start an interactive TUI that animates the cube in the terminal.

Keyboard shortcuts:
  r l u d f b   - Face turn clockwise (Shift for counter-clockwise)
  m e s         - Middle slice turn (Shift inverts)
  SPACE         - Animated scramble
  i             - Instant scramble
  ENTER         - Solve with the configured solver
  BACKSPACE     - Discard queued turns
  0             - Reset to solved
  q/Esc         - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Messages
type frameMsg time.Time
type rotationMsg gocube.Rotation

// sliceKey is a middle slice turn bound to a key.
type sliceKey struct {
	axis      cube.Axis
	clockwise bool
}

// Middle slices turn like the face they follow: M like L, E like D, S like F.
var sliceKeys = map[string]sliceKey{
	"m": {cube.X, false},
	"M": {cube.X, true},
	"e": {cube.Y, false},
	"E": {cube.Y, true},
	"s": {cube.Z, true},
	"S": {cube.Z, false},
}

// tokenForKey maps a face key to its token: lower case turns clockwise,
// upper case counter-clockwise.
func tokenForKey(key string) (string, bool) {
	if len(key) != 1 {
		return "", false
	}
	switch key[0] {
	case 'r', 'l', 'u', 'd', 'f', 'b':
		return strings.ToUpper(key), true
	case 'R', 'L', 'U', 'D', 'F', 'B':
		return key + "'", true
	}
	return "", false
}

// maxFrameStep caps dt after a stall so a turn never jumps more than a
// fraction of its arc.
const maxFrameStep = 100 * time.Millisecond

type playModel struct {
	run    *engineRun
	mirror *gocube.Mirror

	interval  time.Duration
	lastFrame time.Time

	battery  int
	status   string
	err      error
	quitting bool
}

func newPlayModel(run *engineRun, mirror *gocube.Mirror) *playModel {
	return &playModel{
		run:      run,
		mirror:   mirror,
		interval: cfg.FrameInterval(),
		battery:  -1,
	}
}

func (m *playModel) Init() tea.Cmd {
	return tea.Batch(m.frameCmd(), m.listenMirror())
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *playModel) listenMirror() tea.Cmd {
	if m.mirror == nil {
		return nil
	}
	turns := m.mirror.Turns()
	return func() tea.Msg {
		rot, ok := <-turns
		if !ok {
			return nil
		}
		return rotationMsg(rot)
	}
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	engine := m.run.engine

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.run.log.Debug("key", zap.String("key", msg.String()))
		return m, m.handleKey(msg.String())

	case frameMsg:
		now := time.Time(msg)
		dt := m.interval
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		if dt > maxFrameStep {
			dt = maxFrameStep
		}
		m.lastFrame = now
		engine.Tick(float32(dt.Seconds()))

		if m.mirror != nil {
			m.battery = m.mirror.Battery()
		}
		return m, m.frameCmd()

	case rotationMsg:
		if err := engine.PushRotation(gocube.Rotation(msg)); err != nil {
			m.err = err
		}
		return m, m.listenMirror()
	}

	return m, nil
}

func (m *playModel) handleKey(key string) tea.Cmd {
	engine := m.run.engine
	m.err = nil

	if tok, ok := tokenForKey(key); ok {
		m.err = engine.Push(tok)
		return nil
	}
	if sk, ok := sliceKeys[key]; ok {
		if !engine.Request(sk.axis, 1, sk.clockwise) {
			m.err = gocube.ErrAnimating
		}
		return nil
	}

	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return tea.Quit

	case " ", "i":
		tokens, err := engine.Scramble(cfg.ScrambleLength, nil, key == "i")
		if err != nil {
			m.err = err
			return nil
		}
		m.status = "Scramble: " + strings.Join(tokens, " ")
		if err := m.run.session.RecordScramble(strings.Join(tokens, " ")); err != nil {
			m.run.log.Warn("record scramble", zap.Error(err))
		}

	case "enter":
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Solver.Timeout)
		defer cancel()
		sol, err := engine.Solve(ctx)
		if err != nil {
			m.err = err
			return nil
		}
		m.status = fmt.Sprintf("Solution (%d): %s", sol.Len(), sol)

	case "backspace":
		n := engine.Discard()
		m.status = fmt.Sprintf("Discarded %d queued turns", n)

	case "0":
		if err := engine.Reset(); err != nil {
			m.err = err
			return nil
		}
		if m.mirror != nil {
			m.err = m.mirror.ResetSolved()
		}
		m.status = "Reset"
	}
	return nil
}

func (m *playModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Goodbye!\nLog saved to: %s\n", m.run.log.Path())
	}

	engine := m.run.engine
	var b strings.Builder

	b.WriteString(titleStyle.Render("GoCube Engine"))
	b.WriteString("\n\n")

	if m.mirror != nil {
		status := fmt.Sprintf("Mirroring: %s", m.mirror.DeviceName())
		if m.battery >= 0 {
			status += fmt.Sprintf(" (Battery: %d%%)", m.battery)
		}
		if n := m.mirror.Dropped(); n > 0 {
			status += fmt.Sprintf(" [%d dropped]", n)
		}
		b.WriteString(statusStyle.Render(status))
		b.WriteString("\n\n")
	}

	b.WriteString(renderNet(engine.Cube()))
	b.WriteString("\n")

	if engine.IsSolved() {
		b.WriteString(phaseStyle.Render("SOLVED"))
	} else {
		tracker := engine.Tracker()
		b.WriteString(fmt.Sprintf("Phase: %s (best: %s)",
			phaseStyle.Render(tracker.CurrentPhase().DisplayName()),
			tracker.HighestPhase().DisplayName()))
	}
	b.WriteString("\n")

	line := fmt.Sprintf("Queued: %d", engine.Pending())
	if engine.Animating() {
		line += fmt.Sprintf("  Turning: %3.0f%%", engine.Progress()*100)
	}
	b.WriteString(statusStyle.Render(line))
	b.WriteString("\n")

	if history := engine.History(); len(history) > 0 {
		labels := make([]string, len(history))
		for i, c := range history {
			labels[i] = commitLabel(c)
		}
		b.WriteString(fmt.Sprintf("Moves (%d): %s\n", len(history), moveStyle.Render(recentTokens(labels, 20))))
		if compact, ok := compactHistory(history); ok && len(compact) < len(history) {
			b.WriteString(statusStyle.Render(fmt.Sprintf("Simplified (%d): %s", len(compact), recentTokens(compact, 20))))
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: rludfb/mes turn  SPACE scramble  ENTER solve  0 reset  q quit"))
	b.WriteString("\n")
	return b.String()
}

// commitLabel names a commit by its token, or by its slice request for
// middle slice turns.
func commitLabel(c gocube.Commit) string {
	if c.Token != "" {
		return c.Token
	}
	return "[" + c.Request.String() + "]"
}

// compactHistory returns the shortest equivalent of the committed face
// turns. Histories containing middle slice turns are not simplified.
func compactHistory(history []gocube.Commit) ([]string, bool) {
	tokens := make([]string, len(history))
	for i, c := range history {
		if c.Token == "" {
			return nil, false
		}
		tokens[i] = c.Token
	}
	compact, err := notation.SimplifyString(strings.Join(tokens, " "))
	if err != nil {
		return nil, false
	}
	return strings.Fields(compact), true
}

func runPlay(cmd *cobra.Command, args []string) error {
	run, err := newEngineRun(storage.SourcePlay, "")
	if err != nil {
		return err
	}
	defer run.Close()

	p := tea.NewProgram(newPlayModel(run, nil), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
