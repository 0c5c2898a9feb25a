package system

import (
	"errors"
	"log"

	"github.com/milk9111/climber/ecs"
	"github.com/milk9111/climber/ecs/component"
	"github.com/milk9111/climber/scene"
)

// RestartSystem feeds restart requests into the scene machine and advances
// it once per frame.
type RestartSystem struct {
	machine *scene.Machine
}

func NewRestartSystem(machine *scene.Machine) *RestartSystem {
	return &RestartSystem{machine: machine}
}

func (r *RestartSystem) Busy() bool {
	return r.machine != nil && r.machine.Busy()
}

func (r *RestartSystem) Update(w *ecs.World) {
	if r.machine == nil {
		return
	}

	ecs.ForEach(w, component.RestartRequestComponent.Kind(), func(e ecs.Entity, req *component.RestartRequest) {
		ecs.DestroyEntity(w, e)
		if err := r.machine.Request(); err != nil && !errors.Is(err, scene.ErrRestartPending) {
			log.Printf("[restart] request %q: %v", req.Reason, err)
		}
	})

	if err := r.machine.Advance(); err != nil {
		log.Printf("[restart] %v", err)
	}
}
