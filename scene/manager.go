package scene

import (
	"log"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
)

// Manager hosts scenes inside a single ECS world. A reload destroys every
// entity not marked persistent and becomes active on the next Tick.
type Manager struct {
	world     *ecs.World
	active    ID
	pending   ID
	reloading bool
	onReload  func()
}

func NewManager(w *ecs.World, onReload func()) *Manager {
	return &Manager{world: w, active: 1, onReload: onReload}
}

func (m *Manager) Active() ID {
	return m.active
}

func (m *Manager) ReloadCurrentScene() ID {
	if !m.reloading {
		m.pending = m.active + 1
		m.reloading = true
	}
	return m.pending
}

func (m *Manager) IsSceneActive(id ID) bool {
	return !m.reloading && m.active == id
}

// Tick finishes a pending reload.
func (m *Manager) Tick() {
	if !m.reloading {
		return
	}

	destroyed := m.prune()
	if m.onReload != nil {
		m.onReload()
	}
	m.active = m.pending
	m.reloading = false
	log.Printf("[scene] reloaded scene %d (%d entities destroyed)", m.active, destroyed)
}

func (m *Manager) MarkPersistentAcrossReload(e ecs.Entity) {
	p, ok := ecs.Get(m.world, e, component.PersistentComponent.Kind())
	if !ok || p == nil {
		_ = ecs.Add(m.world, e, component.PersistentComponent.Kind(), &component.Persistent{KeepOnReload: true})
		return
	}
	p.KeepOnReload = true
}

// MoveIntoScene hands e back to scene id so the next reload may destroy
// it. Pinned entities stay persistent.
func (m *Manager) MoveIntoScene(e ecs.Entity, id ID) {
	if id != m.active {
		return
	}
	p, ok := ecs.Get(m.world, e, component.PersistentComponent.Kind())
	if !ok || p == nil || p.Pinned {
		return
	}
	p.KeepOnReload = false
}

func (m *Manager) prune() int {
	toDestroy := make([]ecs.Entity, 0)
	for _, e := range ecs.Entities(m.world) {
		p, ok := ecs.Get(m.world, e, component.PersistentComponent.Kind())
		if !ok || p == nil || !(p.KeepOnReload || p.Pinned) {
			toDestroy = append(toDestroy, e)
		}
	}
	for _, e := range toDestroy {
		ecs.DestroyEntity(m.world, e)
	}
	return len(toDestroy)
}
