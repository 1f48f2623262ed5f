// Package indexed stores a fixed-capacity array of optional payloads as a
// sparse list of entries.
//
// Each occupied slot becomes one entry compound in the list:
//
//	{ index: <Short>, stack: <Compound> }
//
// Empty slots produce no entry. The field names and the 16-bit index
// width are part of the persisted layout and must not change.
package indexed

import (
	"fmt"
	"math"

	"github.com/signadot/tagtree/debug"
	"github.com/signadot/tagtree/tag"
)

const (
	IndexField   = "index"
	PayloadField = "stack"

	// MaxCapacity is the largest array length whose indices fit the
	// persisted 16-bit index.
	MaxCapacity = math.MaxInt16 + 1
)

// Write encodes items as a list of entries. Slots for which empty
// returns true are skipped. write must return a compound.
func Write[T any](items []T, empty func(T) bool, write func(T) (*tag.Tag, error)) (*tag.Tag, error) {
	if len(items) > MaxCapacity {
		return nil, fmt.Errorf("%w: %d items exceed index capacity %d", tag.ErrInvalidArgument, len(items), MaxCapacity)
	}
	res := tag.NewList()
	for i, item := range items {
		if empty(item) {
			continue
		}
		payload, err := write(item)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if payload == nil || payload.Type != tag.CompoundType {
			return nil, fmt.Errorf("slot %d: %w: payload is %s, not Compound", i, tag.ErrTypeMismatch, typeOf(payload))
		}
		entry := tag.NewCompound()
		entry.Put(IndexField, tag.FromShort(int16(i)))
		entry.Put(PayloadField, payload)
		if err := res.Append(entry); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// Read decodes the entries of list into items and returns items. An entry
// whose index is outside [0, len(items)) is decoded and passed to
// overflow instead, so data persisted against a larger capacity is kept.
// A nil overflow drops such entries. Slots without an entry are left as
// they were.
func Read[T any](list *tag.Tag, items []T, read func(*tag.Tag) (T, error), overflow func(T)) ([]T, error) {
	if list == nil || list.Type != tag.ListType {
		return items, fmt.Errorf("%w: entries are %s, not List", tag.ErrTypeMismatch, typeOf(list))
	}
	for i, entry := range list.Values {
		index, payload, err := readEntry(entry)
		if err != nil {
			return items, fmt.Errorf("entry %d: %w", i, err)
		}
		v, err := read(payload)
		if err != nil {
			return items, fmt.Errorf("entry %d (index %d): %w", i, index, err)
		}
		if index >= 0 && index < len(items) {
			items[index] = v
			continue
		}
		if debug.Indexed() {
			debug.Logf("indexed: index %d outside capacity %d, diverting %v\n", index, len(items), payload)
		}
		if overflow != nil {
			overflow(v)
		}
	}
	return items, nil
}

func readEntry(entry *tag.Tag) (int, *tag.Tag, error) {
	if entry == nil {
		return 0, nil, fmt.Errorf("%w: entry is nil", tag.ErrTypeMismatch)
	}
	if entry.Type != tag.CompoundType {
		return 0, nil, fmt.Errorf("%w: entry is %s, not Compound", tag.ErrTypeMismatch, entry.Type)
	}
	idx := entry.Get(IndexField)
	if idx == nil {
		return 0, nil, fmt.Errorf("%w: entry has no %q", tag.ErrTypeMismatch, IndexField)
	}
	var index int
	switch idx.Type {
	case tag.ShortType:
		index = int(idx.Short)
	case tag.ByteType:
		index = int(idx.Byte)
	case tag.IntType:
		index = int(idx.Int)
	default:
		return 0, nil, fmt.Errorf("%w: %q is %s", tag.ErrTypeMismatch, IndexField, idx.Type)
	}
	payload := entry.Get(PayloadField)
	if payload == nil {
		payload = tag.NewCompound()
	}
	if payload.Type != tag.CompoundType {
		return 0, nil, fmt.Errorf("%w: %q is %s, not Compound", tag.ErrTypeMismatch, PayloadField, payload.Type)
	}
	return index, payload, nil
}

func typeOf(t *tag.Tag) tag.Type {
	if t == nil {
		return tag.EndType
	}
	return t.Type
}
