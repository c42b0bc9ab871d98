/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package keys is the document-level keyboard listener registry. Components
// that need global key presses hold a Subscription for exactly as long as
// they need it and release it on every exit path.
package keys

import "strings"

// Key names a pressed key, using DOM-style names.
type Key string

const (
	Escape Key = "Escape"
	Enter  Key = "Enter"
)

// ParseKey normalises common spellings ("esc", "ESCAPE") to a Key.
func ParseKey(s string) Key {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "esc", "escape":
		return Escape
	case "enter", "return":
		return Enter
	default:
		return Key(strings.TrimSpace(s))
	}
}

// Bus fans key presses out to registered listeners in registration order.
// Like the state machines it serves, it is confined to the dispatch goroutine.
type Bus struct {
	next      uint64
	listeners map[uint64]func(Key)
	order     []uint64
}

// NewBus returns an empty bus.
func NewBus() *Bus { return &Bus{listeners: make(map[uint64]func(Key))} }

// Listen registers fn and returns the handle that removes it.
func (b *Bus) Listen(fn func(Key)) *Subscription {
	b.next++
	id := b.next
	b.listeners[id] = fn
	b.order = append(b.order, id)
	return &Subscription{bus: b, id: id}
}

// Dispatch delivers k to every listener registered when the call started and
// still registered when its turn comes. It returns how many were invoked.
func (b *Bus) Dispatch(k Key) int {
	ids := append([]uint64(nil), b.order...)
	n := 0
	for _, id := range ids {
		fn, ok := b.listeners[id]
		if !ok {
			continue
		}
		fn(k)
		n++
	}
	return n
}

// Len returns the number of registered listeners.
func (b *Bus) Len() int { return len(b.listeners) }

func (b *Bus) remove(id uint64) bool {
	if _, ok := b.listeners[id]; !ok {
		return false
	}
	delete(b.listeners, id)
	for i, v := range b.order {
		if v == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return true
}

// Subscription is a registered listener. The zero value and nil are inactive.
type Subscription struct {
	bus *Bus
	id  uint64
}

// Release unregisters the listener. It is idempotent and reports whether
// this call removed it.
func (s *Subscription) Release() bool {
	if s == nil || s.bus == nil {
		return false
	}
	ok := s.bus.remove(s.id)
	s.bus = nil
	return ok
}

// Active reports whether the listener is still registered.
func (s *Subscription) Active() bool {
	if s == nil || s.bus == nil {
		return false
	}
	_, ok := s.bus.listeners[s.id]
	return ok
}
