// Package scene is the entity registry the remote locks onto.
// Entities are ark handles; holders must check Alive before trusting one.
package scene

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/lixenwraith/vi-remote/device"
	"github.com/lixenwraith/vi-remote/parameter"
	"github.com/lixenwraith/vi-remote/vmath"
)

// Entity is a generation-checked handle into the registry
type Entity = ecs.Entity

// Position is the world-space center of a target
type Position struct {
	vmath.Vec3F
}

// Target marks an entity the remote can lock onto
type Target struct {
	Name   string
	Radius float64
}

// Camera is a pinhole looking down +Z from Origin
// FOV is the half-extent of the view plane at unit depth
type Camera struct {
	Origin vmath.Vec3F
	FOV    float64
}

// Ray maps a normalized pointer onto a normalized world-space direction
func (c Camera) Ray(p device.Pointer) (origin, dir vmath.Vec3F) {
	return c.Origin, vmath.V3FNormalize(vmath.Vec3F{X: p.X * c.FOV, Y: p.Y * c.FOV, Z: 1})
}

// Project maps a world point back to pointer space
// Points at or behind the camera plane are not visible
func (c Camera) Project(p vmath.Vec3F) (device.Pointer, bool) {
	rel := vmath.V3FSub(p, c.Origin)
	if rel.Z <= 0 {
		return device.Pointer{}, false
	}
	return device.Pointer{X: rel.X / (rel.Z * c.FOV), Y: rel.Y / (rel.Z * c.FOV)}, true
}

// World owns target entities
// Not safe for concurrent use; it lives on the frame thread like the manager
type World struct {
	world       ecs.World
	targets     *ecs.Map2[Position, Target]
	filter      *ecs.Filter2[Position, Target]
	camera      Camera
	maxDistance float64
	count       int
}

// NewWorld creates an empty registry; maxDistance <= 0 selects the default
func NewWorld(camera Camera, maxDistance float64) *World {
	if maxDistance <= 0 {
		maxDistance = parameter.PickMaxDistance
	}
	if camera.FOV <= 0 {
		camera.FOV = parameter.PointerFOV
	}
	w := &World{
		world:       ecs.NewWorld(),
		camera:      camera,
		maxDistance: maxDistance,
	}
	w.targets = ecs.NewMap2[Position, Target](&w.world)
	w.filter = ecs.NewFilter2[Position, Target](&w.world)
	return w
}

// Spawn registers a target; radius <= 0 selects the default pick radius
func (w *World) Spawn(name string, pos vmath.Vec3F, radius float64) Entity {
	if radius <= 0 {
		radius = parameter.PickRadius
	}
	w.count++
	return w.targets.NewEntity(&Position{Vec3F: pos}, &Target{Name: name, Radius: radius})
}

// Despawn removes e; returns false if it was already gone
func (w *World) Despawn(e Entity) bool {
	if !w.Alive(e) {
		return false
	}
	w.world.RemoveEntity(e)
	w.count--
	return true
}

// Alive reports whether e still refers to a live target
func (w *World) Alive(e Entity) bool {
	return !e.IsZero() && w.world.Alive(e)
}

// Move relocates a live target
func (w *World) Move(e Entity, pos vmath.Vec3F) bool {
	if !w.Alive(e) {
		return false
	}
	p, _ := w.targets.Get(e)
	p.Vec3F = pos
	return true
}

// Position returns the center of a live target
func (w *World) Position(e Entity) (vmath.Vec3F, bool) {
	if !w.Alive(e) {
		return vmath.Vec3F{}, false
	}
	p, _ := w.targets.Get(e)
	return p.Vec3F, true
}

// Name returns the label of a live target, empty otherwise
func (w *World) Name(e Entity) string {
	if !w.Alive(e) {
		return ""
	}
	_, t := w.targets.Get(e)
	return t.Name
}

// Count returns the number of live targets
func (w *World) Count() int {
	return w.count
}

// Each calls fn for every live target in query order
// fn must not spawn or despawn
func (w *World) Each(fn func(e Entity, pos vmath.Vec3F, target Target)) {
	query := w.filter.Query()
	for query.Next() {
		pos, target := query.Get()
		fn(query.Entity(), pos.Vec3F, *target)
	}
}

// Camera returns the projection used by Pick
func (w *World) Camera() Camera {
	return w.camera
}

// Pick casts the pointer ray and returns the nearest target it passes through
// offset is the aim point relative to the target center
func (w *World) Pick(p device.Pointer) (hit Entity, offset vmath.Vec3F, ok bool) {
	origin, dir := w.camera.Ray(p)
	best := w.maxDistance

	query := w.filter.Query()
	for query.Next() {
		pos, target := query.Get()
		point, t := vmath.ClosestOnRay(origin, dir, pos.Vec3F)
		if t <= 0 || t > best {
			continue
		}
		delta := vmath.V3FSub(point, pos.Vec3F)
		if vmath.V3FMagSq(delta) > target.Radius*target.Radius {
			continue
		}
		best = t
		hit = query.Entity()
		offset = delta
		ok = true
	}
	return hit, offset, ok
}
