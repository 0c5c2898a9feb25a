package ecs

import "fmt"

// Entity packs a 32-bit id with the generation it was issued under, so a
// handle to a destroyed entity never aliases its recycled id.
type Entity uint64

type entityID uint32
type generation uint32

const entityIDBits = 32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint32(e))
}

func (e Entity) generation() generation {
	return generation(uint32(uint64(e) >> entityIDBits))
}

func (e Entity) String() string {
	if e.generation() == 0 {
		return fmt.Sprintf("e%d", e.id())
	}
	return fmt.Sprintf("e%d.%d", e.id(), e.generation())
}
