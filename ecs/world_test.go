package ecs

import (
	"errors"
	"testing"

	"github.com/milk9111/climber/ecs/component"
)

type position struct{ X, Y float64 }
type velocity struct{ X, Y float64 }
type tag struct{}

var (
	positionComponent = component.NewComponent[position]()
	velocityComponent = component.NewComponent[velocity]()
	tagComponent      = component.NewComponent[tag]()
)

func TestEntityLifecycle(t *testing.T) {
	tests := []struct {
		name         string
		create       int
		destroyIndex int
	}{
		{name: "single", create: 1, destroyIndex: 0},
		{name: "destroy middle", create: 3, destroyIndex: 1},
		{name: "none destroyed", create: 2, destroyIndex: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, tt.create)
			for i := 0; i < tt.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			want := tt.create
			if tt.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[tt.destroyIndex]) {
					t.Fatal("DestroyEntity = false for a live entity")
				}
				if DestroyEntity(w, ents[tt.destroyIndex]) {
					t.Fatal("DestroyEntity = true twice")
				}
				want--
			}
			if got := len(Entities(w)); got != want {
				t.Fatalf("entities = %d, want %d", got, want)
			}
		})
	}
}

func TestRecycledIDsDoNotAlias(t *testing.T) {
	w := NewWorld()
	old := CreateEntity(w)
	if err := Add(w, old, positionComponent.Kind(), &position{X: 1}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() {
		t.Fatalf("id %d was not recycled (got %d)", old.id(), fresh.id())
	}
	if fresh == old {
		t.Fatal("recycled entity should carry a new generation")
	}
	if IsAlive(w, old) {
		t.Fatal("stale handle reported alive")
	}
	if Has(w, fresh, positionComponent.Kind()) {
		t.Fatal("components leaked into the recycled entity")
	}
	if fresh.String() != "e1.1" || old.String() != "e1" {
		t.Fatalf("String() = %q/%q, want e1.1/e1", fresh, old)
	}
}

func TestAddErrors(t *testing.T) {
	w := NewWorld()
	live := CreateEntity(w)
	dead := CreateEntity(w)
	DestroyEntity(w, dead)

	tests := []struct {
		name string
		add  func() error
		want error
	}{
		{name: "nil value", add: func() error { return Add[position](w, live, positionComponent.Kind(), nil) }, want: component.ErrNilComponent},
		{name: "dead entity", add: func() error { return Add(w, dead, positionComponent.Kind(), &position{}) }, want: component.ErrEntityNotAlive},
		{name: "zero kind", add: func() error { return Add(w, live, component.ComponentKind[position]{}, &position{}) }, want: component.ErrInvalidComponentKind},
		{name: "ok", add: func() error { return Add(w, live, positionComponent.Kind(), &position{}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.add(); !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGetRemoveReplace(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	if _, ok := Get(w, e, positionComponent.Kind()); ok {
		t.Fatal("Get on an empty store should fail")
	}
	_ = Add(w, e, positionComponent.Kind(), &position{X: 1})
	_ = Add(w, e, positionComponent.Kind(), &position{X: 2})

	p, ok := Get(w, e, positionComponent.Kind())
	if !ok || p.X != 2 {
		t.Fatalf("Get = %v, %v; want the replacement", p, ok)
	}
	if Count(w, positionComponent.Kind()) != 1 {
		t.Fatal("replacing should not add a second entry")
	}
	if !Remove(w, e, positionComponent.Kind()) || Has(w, e, positionComponent.Kind()) {
		t.Fatal("Remove did not remove the component")
	}
	if Remove(w, e, positionComponent.Kind()) {
		t.Fatal("Remove = true for a missing component")
	}
}

func TestFirstAndCount(t *testing.T) {
	w := NewWorld()
	if _, ok := First(w, tagComponent.Kind()); ok {
		t.Fatal("First on an empty world should fail")
	}

	a := CreateEntity(w)
	b := CreateEntity(w)
	_ = Add(w, a, tagComponent.Kind(), &tag{})
	_ = Add(w, b, tagComponent.Kind(), &tag{})
	DestroyEntity(w, a)

	first, ok := First(w, tagComponent.Kind())
	if !ok || first != b {
		t.Fatalf("First = %v, %v; want %v", first, ok, b)
	}
	if got := Count(w, tagComponent.Kind()); got != 1 {
		t.Fatalf("Count = %d, want 1", got)
	}
}

func TestForEachSurvivesDestroy(t *testing.T) {
	w := NewWorld()
	for i := 0; i < 5; i++ {
		e := CreateEntity(w)
		_ = Add(w, e, positionComponent.Kind(), &position{X: float64(i)})
	}

	visited := 0
	ForEach(w, positionComponent.Kind(), func(e Entity, _ *position) {
		visited++
		DestroyEntity(w, e)
	})

	if visited != 5 {
		t.Fatalf("visited = %d, want 5", visited)
	}
	if len(Entities(w)) != 0 {
		t.Fatalf("entities = %d, want 0", len(Entities(w)))
	}
}

func TestForEachJoins(t *testing.T) {
	w := NewWorld()
	both := CreateEntity(w)
	_ = Add(w, both, positionComponent.Kind(), &position{})
	_ = Add(w, both, velocityComponent.Kind(), &velocity{X: 1})
	_ = Add(w, both, tagComponent.Kind(), &tag{})
	onlyPos := CreateEntity(w)
	_ = Add(w, onlyPos, positionComponent.Kind(), &position{})
	posVel := CreateEntity(w)
	_ = Add(w, posVel, positionComponent.Kind(), &position{})
	_ = Add(w, posVel, velocityComponent.Kind(), &velocity{X: 2})

	t.Run("two", func(t *testing.T) {
		got := 0
		ForEach2(w, positionComponent.Kind(), velocityComponent.Kind(), func(_ Entity, p *position, v *velocity) {
			p.X += v.X
			got++
		})
		if got != 2 {
			t.Fatalf("visited = %d, want 2", got)
		}
		p, _ := Get(w, posVel, positionComponent.Kind())
		if p.X != 2 {
			t.Fatalf("x = %v, want 2", p.X)
		}
	})

	t.Run("three", func(t *testing.T) {
		var got []Entity
		ForEach3(w, positionComponent.Kind(), velocityComponent.Kind(), tagComponent.Kind(), func(e Entity, _ *position, _ *velocity, _ *tag) {
			got = append(got, e)
		})
		if len(got) != 1 || got[0] != both {
			t.Fatalf("visited = %v, want [%v]", got, both)
		}
	})
}

func TestScheduler(t *testing.T) {
	w := NewWorld()
	var order []string
	s := NewScheduler(
		SystemFunc(func(*World) { order = append(order, "a") }),
		nil,
		SystemFunc(func(*World) { order = append(order, "b") }),
	)
	s.Add(SystemFunc(func(*World) { order = append(order, "c") }))

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	s.Update(w)
	s.Update(nil)

	if len(order) != 3 || order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Fatalf("order = %v, want [a b c]", order)
	}
}
