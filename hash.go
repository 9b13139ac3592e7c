package fdon

import (
	"github.com/cespare/xxhash/v2"

	"github.com/fdon-format/fdon/internal/zerocopy"
)

// objectPair is one key/value pair as encountered while scanning an
// O{...} body, before the final hash table is built. Grounded on
// jibby's convertObject, which likewise does a single forward scan
// recording one key/value pair at a time (there, straight into a BSON
// byte stream instead of a table).
type objectPair struct {
	key string
	val Value
}

// objectSlot is one entry of the arena-backed open-addressing table.
// A zero-value slot is empty; used distinguishes a real key/value pair
// (including an empty-string key, though spec.md forbids those) from
// an unoccupied probe position.
type objectSlot struct {
	key  string
	val  Value
	used bool
}

// objectMap is the hash table backing an Object value: open addressing
// with linear probing over an arena-allocated slot slice, keyed by
// xxhash.Sum64 of the borrowed key slice. Building it from a
// pre-scanned []objectPair (rather than inserting while scanning)
// means a later duplicate key simply overwrites its slot in place,
// which reproduces spec.md's last-wins rule without growing the table.
type objectMap struct {
	slots []objectSlot
	mask  uint64
	count int
}

const objectLoadFactorInverse = 2 // target ~50% load factor

func buildObjectMap(arena *Arena, pairs []objectPair) *objectMap {
	n := nextPow2(len(pairs)*objectLoadFactorInverse + 1)
	slots := arena.allocObjectSlots(n)
	m := &objectMap{slots: slots, mask: uint64(n - 1)}
	for _, p := range pairs {
		m.insert(p.key, p.val)
	}
	return m
}

func nextPow2(n int) int {
	p := 4
	for p < n {
		p *= 2
	}
	return p
}

func (m *objectMap) insert(key string, val Value) {
	h := xxhash.Sum64(zerocopy.Bytes(key))
	i := h & m.mask
	for {
		slot := &m.slots[i]
		if !slot.used {
			*slot = objectSlot{key: key, val: val, used: true}
			m.count++
			return
		}
		if slot.key == key {
			slot.val = val
			return
		}
		i = (i + 1) & m.mask
	}
}

func (m *objectMap) get(key string) (Value, bool) {
	if m == nil || len(m.slots) == 0 {
		return Value{}, false
	}
	h := xxhash.Sum64(zerocopy.Bytes(key))
	i := h & m.mask
	for probes := 0; probes <= int(m.mask); probes++ {
		slot := &m.slots[i]
		if !slot.used {
			return Value{}, false
		}
		if slot.key == key {
			return slot.val, true
		}
		i = (i + 1) & m.mask
	}
	return Value{}, false
}

// Object is a read-only handle onto a parsed Object value's key/value
// mapping. Key order is unspecified, per spec.md's Open Questions.
type Object objectMap

// Get returns the value bound to key and whether it was found.
func (o *Object) Get(key string) (Value, bool) {
	return (*objectMap)(o).get(key)
}

// Len returns the number of unique keys in the object.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return o.count
}

// Range calls fn for every key/value pair in unspecified order,
// stopping early if fn returns false.
func (o *Object) Range(fn func(key string, val Value) bool) {
	if o == nil {
		return
	}
	for _, slot := range o.slots {
		if !slot.used {
			continue
		}
		if !fn(slot.key, slot.val) {
			return
		}
	}
}
