package scenegraph

import (
	"fmt"

	"github.com/Faultbox/midgard-avatar/internal/engine/model"
)

// Geometry is a mesh buffer owned by an Arena. It stands in for the GPU
// vertex/index buffers the renderer creates from it.
type Geometry struct {
	ID   uint32
	Mesh *model.Mesh

	arena    *Arena
	released bool
}

// Released reports whether the buffer has been returned to its arena.
func (g *Geometry) Released() bool {
	return g.released
}

// Release returns the buffer to the arena. Releasing twice panics in debug
// mode and is ignored otherwise.
func (g *Geometry) Release() {
	if g.released {
		if debug {
			panic(fmt.Sprintf("scenegraph debug: geometry %d released twice", g.ID))
		}
		return
	}
	g.released = true
	if g.arena != nil {
		g.arena.release(g)
	}
}

// ArenaStats summarizes arena usage.
type ArenaStats struct {
	Allocated int
	Released  int
	Live      int
	LiveBytes int
}

// Arena owns every geometry buffer of one avatar instance. Live counts let
// tests prove that rebuilds do not leak buffers.
type Arena struct {
	nextID    uint32
	live      map[uint32]*Geometry
	allocated int
	released  int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{live: make(map[uint32]*Geometry)}
}

// Upload registers a mesh and returns its buffer handle.
func (a *Arena) Upload(m *model.Mesh) *Geometry {
	a.nextID++
	g := &Geometry{ID: a.nextID, Mesh: m, arena: a}
	a.live[g.ID] = g
	a.allocated++
	return g
}

func (a *Arena) release(g *Geometry) {
	if _, ok := a.live[g.ID]; !ok {
		return
	}
	delete(a.live, g.ID)
	a.released++
	g.Mesh = nil
}

// Live returns the number of buffers not yet released.
func (a *Arena) Live() int {
	return len(a.live)
}

// Stats returns allocation counters and the estimated live footprint.
func (a *Arena) Stats() ArenaStats {
	s := ArenaStats{
		Allocated: a.allocated,
		Released:  a.released,
		Live:      len(a.live),
	}
	for _, g := range a.live {
		if g.Mesh != nil {
			s.LiveBytes += g.Mesh.SizeBytes()
		}
	}
	return s
}

// ReleaseAll frees every live buffer.
func (a *Arena) ReleaseAll() {
	for _, g := range a.live {
		g.released = true
		g.Mesh = nil
		a.released++
	}
	clear(a.live)
}
