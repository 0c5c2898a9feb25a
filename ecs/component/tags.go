package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type EnemyTag struct{}

var EnemyTagComponent = NewComponent[EnemyTag]()

type SpikeTag struct{}

var SpikeTagComponent = NewComponent[SpikeTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()

// WorldRootTag marks the entity that owns the world state and survives
// restarts.
type WorldRootTag struct{}

var WorldRootTagComponent = NewComponent[WorldRootTag]()
