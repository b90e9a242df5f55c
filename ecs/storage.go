package ecs

// Entity is a generational handle: the low 32 bits index a slot and the high
// 32 bits count how many times that slot was recycled. The zero Entity is
// never alive.
type Entity uint64

func newEntity(slot, gen uint32) Entity {
	return Entity(uint64(gen)<<32 | uint64(slot))
}

func (e Entity) slot() uint32 { return uint32(e) }

func (e Entity) gen() uint32 { return uint32(e >> 32) }

// entityStore hands out slots starting at 1 and recycles freed ones LIFO.
type entityStore struct {
	gens  []uint32
	alive []bool
	free  []uint32
}

func (s *entityStore) create() Entity {
	var slot uint32
	if n := len(s.free); n > 0 {
		slot = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gens = append(s.gens, 0)
		s.alive = append(s.alive, false)
		slot = uint32(len(s.gens))
	}
	s.alive[slot-1] = true
	return newEntity(slot, s.gens[slot-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	slot := e.slot()
	s.alive[slot-1] = false
	s.gens[slot-1]++
	s.free = append(s.free, slot)
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	slot := e.slot()
	if slot == 0 || int(slot) > len(s.gens) {
		return false
	}
	return s.alive[slot-1] && s.gens[slot-1] == e.gen()
}
