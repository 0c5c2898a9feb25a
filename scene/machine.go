package scene

import (
	"errors"
	"fmt"

	"github.com/milk9111/climber/ecs"
)

// ID identifies one loaded instance of the scene. Every reload produces a
// new ID.
type ID uint64

var ErrRestartPending = errors.New("scene: restart already pending")

type State uint8

const (
	StateNone State = iota
	StatePendingTeardown
	StateWaitingForReload
	StateReattaching
	StateReinitializing
)

func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StatePendingTeardown:
		return "pending_teardown"
	case StateWaitingForReload:
		return "waiting_for_reload"
	case StateReattaching:
		return "reattaching"
	case StateReinitializing:
		return "reinitializing"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Host is the environment that owns scenes. Reloads are allowed to finish
// on a later frame.
type Host interface {
	ReloadCurrentScene() ID
	IsSceneActive(id ID) bool
	MoveIntoScene(e ecs.Entity, id ID)
	MarkPersistentAcrossReload(e ecs.Entity)
}

// Machine tears the scene down and rebuilds it across several frames. The
// root entity carries the state that must outlive the reload.
type Machine struct {
	host   Host
	root   ecs.Entity
	init   func() error
	state  State
	target ID
}

func NewMachine(host Host, root ecs.Entity, init func() error) *Machine {
	return &Machine{host: host, root: root, init: init}
}

func (m *Machine) State() State {
	return m.state
}

// Busy reports whether a restart is in flight. Gameplay must not run while
// it is.
func (m *Machine) Busy() bool {
	return m.state != StateNone
}

// Request starts a restart. It fails with ErrRestartPending while another
// restart has not finished.
func (m *Machine) Request() error {
	if m.state != StateNone {
		return ErrRestartPending
	}
	m.state = StatePendingTeardown
	return nil
}

// Advance moves the machine by at most one state. It is called once per
// frame.
func (m *Machine) Advance() error {
	switch m.state {
	case StatePendingTeardown:
		m.host.MarkPersistentAcrossReload(m.root)
		m.target = m.host.ReloadCurrentScene()
		m.state = StateWaitingForReload
	case StateWaitingForReload:
		if m.host.IsSceneActive(m.target) {
			m.state = StateReattaching
		}
	case StateReattaching:
		m.host.MoveIntoScene(m.root, m.target)
		m.state = StateReinitializing
	case StateReinitializing:
		if m.init != nil {
			if err := m.init(); err != nil {
				// Tear the partial scene down again and retry.
				m.state = StatePendingTeardown
				return fmt.Errorf("reinitialize scene %d: %w", m.target, err)
			}
		}
		m.state = StateNone
	}
	return nil
}
