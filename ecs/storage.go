package ecs

import (
	"errors"
	"fmt"
	"iter"

	"github.com/kamstrup/intmap"
	"github.com/plus3/orbitview/geom"
)

var (
	// ErrNoEntity is returned when a lookup matches no entity.
	ErrNoEntity = errors.New("no entity matches")
	// ErrAmbiguousEntity is returned when a single-entity lookup matches several.
	ErrAmbiguousEntity = errors.New("more than one entity matches")
)

type entityRecord struct {
	id        EntityId
	name      string
	tags      Tag
	transform geom.Transform
}

// Storage owns every entity and its transform. Entities are never removed, so
// iteration order is spawn order.
type Storage struct {
	entities *intmap.Map[EntityId, *entityRecord]
	order    []EntityId
	nextId   EntityId
}

// NewStorage creates an empty storage.
func NewStorage() *Storage {
	return &Storage{
		entities: intmap.New[EntityId, *entityRecord](16),
		nextId:   1,
	}
}

// Spawn creates a new entity with the given transform and tags.
func (s *Storage) Spawn(name string, transform geom.Transform, tags Tag) EntityId {
	id := s.nextId
	s.nextId++

	s.entities.Put(id, &entityRecord{
		id:        id,
		name:      name,
		tags:      tags,
		transform: transform,
	})
	s.order = append(s.order, id)
	return id
}

// Len returns the number of entities.
func (s *Storage) Len() int {
	return len(s.order)
}

// Transform returns a pointer to the entity's transform, or nil if id is unknown.
// The pointer stays valid for the lifetime of the storage.
func (s *Storage) Transform(id EntityId) *geom.Transform {
	rec, ok := s.entities.Get(id)
	if !ok {
		return nil
	}
	return &rec.transform
}

// Tags returns the entity's tags, or zero if id is unknown.
func (s *Storage) Tags(id EntityId) Tag {
	rec, ok := s.entities.Get(id)
	if !ok {
		return 0
	}
	return rec.tags
}

// Name returns the entity's debug name.
func (s *Storage) Name(id EntityId) string {
	rec, ok := s.entities.Get(id)
	if !ok {
		return ""
	}
	return rec.name
}

// Tagged iterates, in spawn order, over every entity carrying all flags in tag.
func (s *Storage) Tagged(tag Tag) iter.Seq2[EntityId, *geom.Transform] {
	return func(yield func(EntityId, *geom.Transform) bool) {
		for _, id := range s.order {
			rec, _ := s.entities.Get(id)
			if !rec.tags.Has(tag) {
				continue
			}
			if !yield(id, &rec.transform) {
				return
			}
		}
	}
}

// Single returns the only entity carrying tag.
func (s *Storage) Single(tag Tag) (EntityId, *geom.Transform, error) {
	var (
		found EntityId
		tr    *geom.Transform
	)
	for id, t := range s.Tagged(tag) {
		if found != 0 {
			return 0, nil, fmt.Errorf("tag %s: %w", tag, ErrAmbiguousEntity)
		}
		found, tr = id, t
	}
	if found == 0 {
		return 0, nil, fmt.Errorf("tag %s: %w", tag, ErrNoEntity)
	}
	return found, tr, nil
}

// Entities iterates over every entity id in spawn order.
func (s *Storage) Entities() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for _, id := range s.order {
			if !yield(id) {
				return
			}
		}
	}
}

// StorageStats summarises the storage for debug displays.
type StorageStats struct {
	TotalEntityCount int
	TagCounts        map[Tag]int
}

// CollectStats counts entities overall and per single-bit tag.
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		TotalEntityCount: len(s.order),
		TagCounts:        make(map[Tag]int),
	}
	for _, id := range s.order {
		rec, _ := s.entities.Get(id)
		for bit := Tag(1); bit != 0; bit <<= 1 {
			if rec.tags&bit != 0 {
				stats.TagCounts[bit]++
			}
		}
	}
	return stats
}
