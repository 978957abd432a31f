// Package game holds the small example domain used to exercise the
// container: a shared logger, swappable audio managers and two entities that
// depend on them.
package game

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/km-arc/go-locator/framework/container"
)

// Audio manager names accepted by Register.
const (
	AudioTest       = "test"
	AudioProduction = "production"
)

// Prefix is the optional tag a Logger prints in front of every line.
type Prefix string

var loggerSeq atomic.Int64

// ── Logger ────────────────────────────────────────────────────────────────────

// Logger writes tagged lines to an io.Writer and keeps them in memory.
type Logger struct {
	id     int64
	prefix Prefix

	mu    sync.Mutex
	out   io.Writer
	lines []string
}

// NewLogger creates a Logger with a fresh ID.
func NewLogger(out io.Writer, prefix Prefix) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{id: loggerSeq.Add(1), prefix: prefix, out: out}
}

// Construct builds a Logger from an optional io.Writer and Prefix.
func (*Logger) Construct(r *container.Resolver) *Logger {
	out, _ := container.Resolve[io.Writer](r)
	prefix, _ := container.Resolve[Prefix](r)
	return NewLogger(out, prefix)
}

// ID identifies the instance; two Loggers never share one.
func (l *Logger) ID() int64 { return l.id }

// Log writes "[prefix#id] message".
func (l *Logger) Log(message string) {
	line := fmt.Sprintf("[%s#%d] %s", l.prefix, l.id, message)
	if l.prefix == "" {
		line = fmt.Sprintf("[#%d] %s", l.id, message)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	_, _ = fmt.Fprintln(l.out, line)
}

// Lines returns a copy of everything logged so far.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// ── Audio ─────────────────────────────────────────────────────────────────────

// AudioManager plays the game's sounds.
type AudioManager interface {
	Play() string
}

// TestAudioManager is the silent manager used in tests and local runs.
type TestAudioManager struct{}

func (*TestAudioManager) Play() string { return "TestAudioManager" }

func (*TestAudioManager) Construct(_ *container.Resolver) *TestAudioManager {
	return &TestAudioManager{}
}

func (m *TestAudioManager) ConstructAs(r *container.Resolver) AudioManager {
	return m.Construct(r)
}

// ProductionAudioManager is the real manager.
type ProductionAudioManager struct{}

func (*ProductionAudioManager) Play() string { return "ProductionAudioManager" }

func (*ProductionAudioManager) ConstructAs(_ *container.Resolver) AudioManager {
	return &ProductionAudioManager{}
}

// ── Entities ──────────────────────────────────────────────────────────────────

// Player jumps, which plays a sound.
type Player struct {
	audio AudioManager
}

func (*Player) Construct(r *container.Resolver) *Player {
	return &Player{audio: container.MustResolve[AudioManager](r)}
}

// Jump plays the jump sound and returns the name of the manager that played it.
func (p *Player) Jump() string { return p.audio.Play() }

// Boss reports what happens to it through the shared Logger.
type Boss struct {
	logger *Logger
	shots  int
}

func (*Boss) Construct(r *container.Resolver) *Boss {
	return &Boss{logger: container.MustResolve[*Logger](r)}
}

// Logger returns the Logger this Boss writes to.
func (b *Boss) Logger() *Logger { return b.logger }

func (b *Boss) Hit() { b.logger.Log("Boss was hit.") }

func (b *Boss) Fire() {
	b.shots++
	b.logger.Log(fmt.Sprintf("Boss fired (%d).", b.shots))
}

// ── Wiring ────────────────────────────────────────────────────────────────────

// Register wires the standard game graph into c: a singleton *Logger, an
// AudioManager chosen by name and transient *Player / *Boss. An unknown audio
// name is rejected before anything is registered.
func Register(c *container.Container, audio string) error {
	var registerAudio func(*container.Container) error
	switch audio {
	case AudioTest, "":
		registerAudio = container.RegisterDelegate[AudioManager, *TestAudioManager]
	case AudioProduction:
		registerAudio = container.RegisterDelegate[AudioManager, *ProductionAudioManager]
	default:
		return fmt.Errorf("game: unknown audio manager %q", audio)
	}
	return errors.Join(
		container.RegisterSingleton[*Logger](c),
		registerAudio(c),
		container.RegisterTransient[*Player](c),
		container.RegisterTransient[*Boss](c),
	)
}
