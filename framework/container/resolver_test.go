package container_test

import (
	"errors"
	"testing"

	"github.com/km-arc/go-locator/framework/container"
)

type greeting string

type greeter struct{ text greeting }

func (*greeter) Construct(r *container.Resolver) *greeter {
	return &greeter{text: container.MustResolve[greeting](r)}
}

// ── Absent ────────────────────────────────────────────────────────────────────

func TestResolve_AbsentReturnsFalse(t *testing.T) {
	c := container.New()
	v, ok := container.Resolve[*widget](c.Resolver())
	if ok || v != nil {
		t.Errorf("got %v, %v; want nil, false", v, ok)
	}
}

func TestMustResolve_PanicsWithNotRegistered(t *testing.T) {
	c := container.New()
	defer func() {
		rec := recover()
		err, ok := rec.(error)
		if !ok || !errors.Is(err, container.ErrNotRegistered) {
			t.Errorf("recovered %v, want ErrNotRegistered", rec)
		}
	}()
	container.MustResolve[*widget](c.Resolver())
}

func TestTryResolve_Absent(t *testing.T) {
	c := container.New()
	_, err := container.TryResolve[*widget](c.Resolver())
	if !container.IsNotRegistered(err) {
		t.Errorf("got %v, want ErrNotRegistered", err)
	}
}

func TestTryResolve_MissingNestedDependency(t *testing.T) {
	c := container.New()
	_ = container.RegisterTransient[*greeter](c)

	r := c.Resolver()
	_, err := container.TryResolve[*greeter](r)
	var nre *container.NotRegisteredError
	if !errors.As(err, &nre) {
		t.Fatalf("got %v, want *NotRegisteredError", err)
	}
	if nre.Key != container.KeyOf[greeting]() {
		t.Errorf("missing key: got %s, want %s", nre.Key, container.KeyOf[greeting]())
	}

	// The resolver is still usable afterwards.
	_ = container.RegisterClone(c, greeting("hello"))
	g, err := container.TryResolve[*greeter](r)
	if err != nil || g.text != "hello" {
		t.Errorf("after fix: got %v, %v", g, err)
	}
}

func TestResolve_WrongTypeFromUpstreamIsAbsent(t *testing.T) {
	bad := container.UpstreamFunc(func(key container.TypeKey) (container.Constructor, bool) {
		return func(*container.Resolver) any { return "not an int" }, true
	})
	c := container.WithParent(bad)
	if v, ok := container.Resolve[int](c.Resolver()); ok {
		t.Errorf("mismatched strategy should read as absent, got %v", v)
	}
}

// ── Parent delegation ─────────────────────────────────────────────────────────

func TestWithParent_FallsBackToParent(t *testing.T) {
	parent := container.New()
	_ = container.RegisterClone(parent, greeting("from parent"))

	child := container.WithParent(parent)
	got, ok := container.Resolve[greeting](child.Resolver())
	if !ok || got != "from parent" {
		t.Errorf("got %q, %v", got, ok)
	}
}

func TestWithParent_ChildShadowsParent(t *testing.T) {
	parent := container.New()
	_ = container.RegisterClone(parent, greeting("from parent"))

	child := container.WithParent(parent)
	if err := container.RegisterClone(child, greeting("from child")); err != nil {
		t.Fatalf("shadowing a parent must not be a duplicate: %v", err)
	}

	if got := container.MustResolve[greeting](child.Resolver()); got != "from child" {
		t.Errorf("child: got %q", got)
	}
	if got := container.MustResolve[greeting](parent.Resolver()); got != "from parent" {
		t.Errorf("parent must be untouched: got %q", got)
	}
}

func TestWithParent_StrategyFromParentSeesChildScope(t *testing.T) {
	parent := container.New()
	_ = container.RegisterTransient[*greeter](parent)
	_ = container.RegisterClone(parent, greeting("parent"))

	child := container.WithParent(parent)
	_ = container.RegisterClone(child, greeting("child"))

	g := container.MustResolve[*greeter](child.Resolver())
	if g.text != "child" {
		t.Errorf("nested resolve should use the lowest scope: got %q", g.text)
	}
}

func TestWithParent_ThreeLevels(t *testing.T) {
	root := container.New()
	_ = container.RegisterClone(root, 1)
	mid := container.WithParent(root)
	_ = container.RegisterClone(mid, "mid")
	leaf := container.WithParent(mid)

	r := leaf.Resolver()
	if container.MustResolve[int](r) != 1 || container.MustResolve[string](r) != "mid" {
		t.Error("leaf should see every ancestor")
	}
}

func TestWithParent_UpstreamFuncMatchesContainer(t *testing.T) {
	parent := container.New()
	_ = container.RegisterClone(parent, greeting("shared"))

	// A caller-owned handle wrapping the parent resolves the same way as
	// passing the parent directly.
	handle := container.UpstreamFunc(parent.Lookup)

	direct := container.WithParent(parent)
	wrapped := container.WithParent(handle)

	a := container.MustResolve[greeting](direct.Resolver())
	b := container.MustResolve[greeting](wrapped.Resolver())
	if a != b {
		t.Errorf("direct %q != wrapped %q", a, b)
	}
}

func TestResolver_Container(t *testing.T) {
	c := container.New()
	if c.Resolver().Container() != c {
		t.Error("Resolver should be bound to its container")
	}
}
