package component

// Enemy pursues the player once inside the player's detection probe.
type Enemy struct {
	KillRadius float64
	Steering   float64
}

var EnemyComponent = NewComponent[Enemy]()
