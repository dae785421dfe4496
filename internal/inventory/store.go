// Package inventory implements the slotted, stackable delivery inventory
// with a movable highlight cursor. The slot order carries age semantics:
// slots are never reordered by mutation, only compacted by an explicit
// shuffle. Empty tombstone slots preserve index layout until consolidation
// or removal drops them.
package inventory

import (
	"math/rand"

	"github.com/justinjohnso-itp/lane-courier/internal/content"
	"github.com/justinjohnso-itp/lane-courier/internal/core"
)

// Slot is either a tombstone (nil Item) or a stack of one item type.
type Slot struct {
	Item     *content.ItemType
	Quantity int
}

// Empty reports whether the slot is a tombstone.
func (s Slot) Empty() bool {
	return s.Item == nil
}

// Store is the player inventory. All methods are single-goroutine; the
// session owns the store and is its only mutator.
//
// Invariants held after every public mutation:
//   - non-tombstone slot count never exceeds capacity
//   - the highlight cursor is a valid index while slots exist, 0 otherwise
//   - no two non-tombstone slots of the same stackable type both have
//     spare capacity (stacks are greedily merged forward)
type Store struct {
	slots     []Slot
	capacity  int
	cursor    int
	observers []func()
}

// New creates an empty store with the given capacity.
func New(capacity int) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{capacity: capacity}
}

// OnChange registers an observer called exactly once per logical mutation,
// after all internal adjustments including consolidation are complete.
func (s *Store) OnChange(fn func()) {
	s.observers = append(s.observers, fn)
}

func (s *Store) notify() {
	for _, fn := range s.observers {
		fn()
	}
}

// Capacity returns the configured max number of non-tombstone slots.
func (s *Store) Capacity() int {
	return s.capacity
}

// Len returns the current slot-array length, tombstones included.
func (s *Store) Len() int {
	return len(s.slots)
}

// Count returns the number of non-tombstone slots.
func (s *Store) Count() int {
	n := 0
	for _, sl := range s.slots {
		if !sl.Empty() {
			n++
		}
	}
	return n
}

// Cursor returns the highlight cursor index.
func (s *Store) Cursor() int {
	return s.cursor
}

// Highlighted returns the slot under the highlight cursor.
// The second return is false when the store holds no items.
func (s *Store) Highlighted() (Slot, bool) {
	if s.cursor < 0 || s.cursor >= len(s.slots) {
		return Slot{}, false
	}
	sl := s.slots[s.cursor]
	if sl.Empty() {
		return Slot{}, false
	}
	return sl, true
}

// Slots returns a copy of the slot array, tombstones included.
func (s *Store) Slots() []Slot {
	out := make([]Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Add inserts quantity items of the given type. Existing non-full stacks
// are topped up first, then tombstone slots are refilled front to back,
// then new slots are appended while the capacity allows. Returns whether
// anything was added; leftover quantity is silently dropped once the store
// is full.
func (s *Store) Add(item *content.ItemType, qty int) bool {
	if item == nil || qty <= 0 {
		return false
	}

	remaining := qty
	added := false

	// Stacking pass: top up existing stacks of this type.
	for i := range s.slots {
		if remaining == 0 {
			break
		}
		sl := &s.slots[i]
		if sl.Empty() || sl.Item != item {
			continue
		}
		spare := item.MaxStack - sl.Quantity
		if spare <= 0 {
			continue
		}
		take := core.Min(spare, remaining)
		sl.Quantity += take
		remaining -= take
		added = true
	}

	// Tombstone pass: refill empty slots while capacity allows.
	count := s.Count()
	for i := range s.slots {
		if remaining == 0 || count >= s.capacity {
			break
		}
		if !s.slots[i].Empty() {
			continue
		}
		take := core.Min(item.MaxStack, remaining)
		s.slots[i] = Slot{Item: item, Quantity: take}
		remaining -= take
		count++
		added = true
	}

	// Append pass: grow the slot array, oldest first order untouched.
	for remaining > 0 && count < s.capacity {
		take := core.Min(item.MaxStack, remaining)
		s.slots = append(s.slots, Slot{Item: item, Quantity: take})
		remaining -= take
		count++
		added = true
	}

	if !added {
		return false
	}
	s.consolidate()
	s.fixupCursor(s.cursor)
	s.notify()
	return true
}

// RemoveAt removes the slot at index physically: later slots shift down by
// one, no tombstone is left behind. The removed stack is returned whole for
// scoring. Returns false for an out-of-range index or a tombstone.
func (s *Store) RemoveAt(index int) (Slot, bool) {
	if index < 0 || index >= len(s.slots) || s.slots[index].Empty() {
		return Slot{}, false
	}

	removed := s.slots[index]
	s.slots = append(s.slots[:index], s.slots[index+1:]...)

	switch {
	case len(s.slots) == 0:
		s.cursor = 0
	case s.cursor > index:
		// Keep the cursor on the item it was pointing at.
		s.cursor--
	case s.cursor >= len(s.slots):
		// Removed the last index while highlighted: move to the new last.
		s.cursor = len(s.slots) - 1
	}
	// Otherwise the same numeric index now refers to the next item.

	s.consolidate()
	s.fixupCursor(s.cursor)
	s.notify()
	return removed, true
}

// RemoveHighlighted removes the stack under the highlight cursor.
func (s *Store) RemoveHighlighted() (Slot, bool) {
	return s.RemoveAt(s.cursor)
}

// Cycle moves the highlight cursor by one step, forward or backward,
// modulo the current slot-array length, skipping tombstones. The walk is
// bounded by one full revolution so an all-tombstone store (which the
// capacity invariant should prevent) cannot loop forever.
func (s *Store) Cycle(forward bool) {
	n := len(s.slots)
	if n == 0 {
		return
	}

	step := 1
	if !forward {
		step = n - 1 // -1 mod n
	}

	idx := s.cursor
	for i := 0; i < n; i++ {
		idx = (idx + step) % n
		if !s.slots[idx].Empty() {
			if idx != s.cursor {
				s.cursor = idx
				s.notify()
			}
			return
		}
	}
}

// Shuffle compacts all tombstones out, shuffles the remaining stacks with
// the given RNG and resets the highlight cursor to the front.
func (s *Store) Shuffle(rng *rand.Rand) {
	compact := s.slots[:0]
	for _, sl := range s.slots {
		if !sl.Empty() {
			compact = append(compact, sl)
		}
	}
	s.slots = compact

	for i := len(s.slots) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		s.slots[i], s.slots[j] = s.slots[j], s.slots[i]
	}

	s.cursor = 0
	s.notify()
}

// Consolidate greedily merges partial stacks of the same type forward and
// reports whether any transfer occurred. Unlike the internal pass that
// mutators run, a direct call notifies observers when something changed.
func (s *Store) Consolidate() bool {
	changed := s.consolidate()
	if changed {
		s.fixupCursor(s.cursor)
		s.notify()
	}
	return changed
}

// consolidate pulls quantity into each earlier non-full stack from every
// later stack of the same type, tombstoning donors that empty. Slot order
// is never changed, so the visible layout stays dense from the front
// without reordering by recency.
func (s *Store) consolidate() bool {
	changed := false
	for i := range s.slots {
		dst := &s.slots[i]
		if dst.Empty() || dst.Quantity >= dst.Item.MaxStack {
			continue
		}
		for j := i + 1; j < len(s.slots); j++ {
			src := &s.slots[j]
			if src.Empty() || src.Item != dst.Item {
				continue
			}
			spare := dst.Item.MaxStack - dst.Quantity
			if spare == 0 {
				break
			}
			take := core.Min(spare, src.Quantity)
			dst.Quantity += take
			src.Quantity -= take
			changed = true
			if src.Quantity == 0 {
				*src = Slot{}
			}
		}
	}
	return changed
}

// fixupCursor defensively relocates the cursor: clamp into range, then, if
// it landed on a tombstone while items exist, walk forward to the nearest
// stack. State-invariant violations are repaired here rather than
// propagated, since failing mid-tick would corrupt a playable session.
func (s *Store) fixupCursor(preferred int) {
	if len(s.slots) == 0 {
		s.cursor = 0
		return
	}
	s.cursor = core.Clamp(preferred, 0, len(s.slots)-1)
	if !s.slots[s.cursor].Empty() {
		return
	}
	n := len(s.slots)
	for i := 1; i <= n; i++ {
		idx := (s.cursor + i) % n
		if !s.slots[idx].Empty() {
			s.cursor = idx
			return
		}
	}
}

// DistinctColors returns the distinct colors among non-tombstone slots in
// first-seen slot order. Deterministic ordering keeps the zone activator's
// uniform color pick reproducible for a given seed.
func (s *Store) DistinctColors() []string {
	seen := make(map[string]bool)
	var colors []string
	for _, sl := range s.slots {
		if sl.Empty() {
			continue
		}
		if !seen[sl.Item.Color] {
			seen[sl.Item.Color] = true
			colors = append(colors, sl.Item.Color)
		}
	}
	return colors
}

// Snapshot renders the slot array for state streaming and replay digests.
func (s *Store) Snapshot() []core.SlotSnapshot {
	out := make([]core.SlotSnapshot, len(s.slots))
	for i, sl := range s.slots {
		if sl.Empty() {
			continue
		}
		out[i] = core.SlotSnapshot{
			Item:     sl.Item.Name,
			Color:    sl.Item.Color,
			Quantity: sl.Quantity,
		}
	}
	return out
}
