package store

import (
	"bytes"

	"github.com/google/btree"
)

// mergeOverlay combines a snapshot of cache-wrap overlay items with the
// iterator of the backing store. Overlay entries shadow backing entries
// with the same key; deleted overlay entries drop the backing entry.
//
// Both inputs must already be ordered in iteration direction. The result
// is materialized into a SliceIterator: under the engine's strictly
// serialized execution model no writes can interleave with an open
// iterator, so an eager snapshot observes exactly the same data a lazy
// merge would.
func mergeOverlay(overlay []btree.Item, parent Iterator, reverse bool) Iterator {
	defer parent.Close()

	before := func(a, b []byte) bool {
		if reverse {
			return bytes.Compare(a, b) > 0
		}
		return bytes.Compare(a, b) < 0
	}

	var out []Model
	i := 0
	for parent.Valid() {
		key := parent.Key()
		for i < len(overlay) && before(overlay[i].(keyer).Key(), key) {
			out = appendItem(out, overlay[i])
			i++
		}
		if i < len(overlay) && bytes.Equal(overlay[i].(keyer).Key(), key) {
			// overlay shadows the backing store
			out = appendItem(out, overlay[i])
			i++
		} else {
			out = append(out, Model{Key: key, Value: parent.Value()})
		}
		parent.Next()
	}
	for ; i < len(overlay); i++ {
		out = appendItem(out, overlay[i])
	}
	return NewSliceIterator(out)
}

// appendItem adds a set overlay entry to the result and skips deleted
// ones.
func appendItem(out []Model, item btree.Item) []Model {
	if set, ok := item.(setItem); ok {
		out = append(out, Model{Key: set.Key(), Value: set.value})
	}
	return out
}
