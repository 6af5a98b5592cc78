package archetypes

import (
	"github.com/automoto/pathtrace/components"
	cfg "github.com/automoto/pathtrace/config"
	"github.com/automoto/pathtrace/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Board = newArchetype(
		tags.Board,
		components.Board,
		components.Settings,
		components.Pointer,
		components.Clock,
	)
	Marker = newArchetype(
		tags.Marker,
		components.Marker,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
