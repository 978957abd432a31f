package container_test

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/km-arc/go-locator/framework/container"
	"github.com/km-arc/go-locator/internal/game"
)

func TestScenario_CloneU32(t *testing.T) {
	c := container.New()
	if err := container.When[uint32](c).Clone(42); err != nil {
		t.Fatalf("Clone: %v", err)
	}
	r := c.Resolver()
	for i := 0; i < 5; i++ {
		if got, ok := container.Resolve[uint32](r); !ok || got != 42 {
			t.Fatalf("resolution %d: got %d, %v", i, got, ok)
		}
	}
}

func TestScenario_BossesShareSingletonLogger(t *testing.T) {
	var out bytes.Buffer
	c := container.New()
	_ = container.RegisterClone[io.Writer](c, &out)
	_ = container.RegisterSingleton[*game.Logger](c)
	_ = container.RegisterTransient[*game.Boss](c)

	r := c.Resolver()
	first := container.MustResolve[*game.Boss](r)
	second := container.MustResolve[*game.Boss](r)

	if first == second {
		t.Fatal("Boss is transient: expected two instances")
	}
	if first.Logger() != second.Logger() {
		t.Fatal("both bosses should hold the same Logger")
	}

	first.Hit()
	second.Fire()

	lines := first.Logger().Lines()
	if len(lines) != 2 {
		t.Fatalf("shared logger lines: got %v", lines)
	}
	if !strings.Contains(out.String(), "Boss was hit.") || !strings.Contains(out.String(), "Boss fired (1).") {
		t.Errorf("output: %q", out.String())
	}
}

func TestScenario_ChildScopeUsesParentLogger(t *testing.T) {
	parent := container.New()
	_ = container.RegisterSingleton[*game.Logger](parent)

	child := container.WithParent(parent)
	_ = container.RegisterTransient[*game.Boss](child)

	boss := container.MustResolve[*game.Boss](child.Resolver())
	if boss.Logger() != container.MustResolve[*game.Logger](parent.Resolver()) {
		t.Error("boss in child scope should use the parent's singleton logger")
	}
}

func TestScenario_AudioManagerDelegate(t *testing.T) {
	tests := []struct {
		audio string
		want  string
	}{
		{game.AudioTest, "TestAudioManager"},
		{game.AudioProduction, "ProductionAudioManager"},
	}
	for _, tt := range tests {
		t.Run(tt.audio, func(t *testing.T) {
			c := container.New()
			if err := game.Register(c, tt.audio); err != nil {
				t.Fatalf("Register: %v", err)
			}
			am, err := container.TryResolve[game.AudioManager](c.Resolver())
			if err != nil {
				t.Fatalf("TryResolve: %v", err)
			}
			if got := am.Play(); got != tt.want {
				t.Errorf("Play: got %q, want %q", got, tt.want)
			}
			player := container.MustResolve[*game.Player](c.Resolver())
			if got := player.Jump(); got != tt.want {
				t.Errorf("Jump: got %q, want %q", got, tt.want)
			}
		})
	}
}

// A container shared across goroutines behind a caller-owned lock, the way
// a long-lived application would hand it to workers.
func TestScenario_SharedAcrossGoroutines(t *testing.T) {
	c := container.New()
	if err := game.Register(c, game.AudioTest); err != nil {
		t.Fatalf("Register: %v", err)
	}

	var mu sync.Mutex
	shared := container.WithParent(container.UpstreamFunc(func(k container.TypeKey) (container.Constructor, bool) {
		mu.Lock()
		defer mu.Unlock()
		return c.Lookup(k)
	}))

	loggers := make(chan *game.Logger, 8)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			boss := container.MustResolve[*game.Boss](shared.Resolver())
			boss.Hit()
			loggers <- boss.Logger()
		}()
	}
	wg.Wait()
	close(loggers)

	var first *game.Logger
	for l := range loggers {
		if first == nil {
			first = l
		}
		if l != first {
			t.Fatal("all goroutines should share one logger")
		}
	}
	if n := len(first.Lines()); n != 8 {
		t.Errorf("logged %d lines, want 8", n)
	}
}
