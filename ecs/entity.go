package ecs

import (
	"math/bits"
	"strings"
)

// EntityId identifies an entity. Ids are assigned sequentially from 1; the
// zero value never names an entity.
type EntityId uint32

// Tag is a set of capability markers attached to an entity at spawn time.
// Tags are bit flags so an entity can carry several of them.
type Tag uint32

// Has reports whether every flag in other is present in t.
func (t Tag) Has(other Tag) bool {
	return other != 0 && t&other == other
}

var tagNames = map[Tag]string{}

// RegisterTagName gives a single-bit tag a printable name.
func RegisterTagName(tag Tag, name string) {
	if bits.OnesCount32(uint32(tag)) != 1 {
		panic("tag name must be registered for exactly one bit")
	}
	tagNames[tag] = name
}

func (t Tag) String() string {
	if t == 0 {
		return "none"
	}
	var names []string
	for bit := Tag(1); bit != 0; bit <<= 1 {
		if t&bit == 0 {
			continue
		}
		if name, ok := tagNames[bit]; ok {
			names = append(names, name)
		} else {
			names = append(names, "?")
		}
	}
	return strings.Join(names, "|")
}
