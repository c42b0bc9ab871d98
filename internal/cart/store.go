/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package cart holds the shopping cart and the slide-out panel that shows it.
package cart

import (
	"log/slog"
	"sync"

	"endgame/internal/domain"
	applog "endgame/internal/log"
)

// Store is an insertion-ordered set of cart items keyed by ID.
// Totals are derived on read and never cached. It is safe for concurrent use
// so a renderer may read it off the dispatch goroutine.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
	log   *slog.Logger
}

// NewStore returns an empty cart.
func NewStore() *Store {
	return &Store{log: applog.WithComponent("cart")}
}

// Add appends item unless an item with the same ID is already present.
// It reports whether the cart changed. Items with a negative price are
// ignored.
func (s *Store) Add(item domain.CartItem) bool {
	if item.Price < 0 {
		s.log.Warn("ignoring item with negative price", slog.Int("id", item.ID))
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(item.ID) >= 0 {
		return false
	}
	s.items = append(s.items, item)
	s.log.Debug("item added", slog.Int("id", item.ID), slog.Int("count", len(s.items)))
	return true
}

// Remove deletes the item with id. Unknown ids are ignored.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return false
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.log.Debug("item removed", slog.Int("id", id), slog.Int("count", len(s.items)))
	return true
}

// Contains reports whether id is in the cart.
func (s *Store) Contains(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexLocked(id) >= 0
}

// Total is the sum of all item prices.
func (s *Store) Total() domain.Price {
	s.mu.Lock()
	defer s.mu.Unlock()
	var sum domain.Price
	for _, it := range s.items {
		sum += it.Price
	}
	return sum
}

// Count is the number of items.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items returns a copy of the items in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.items...)
}

func (s *Store) indexLocked(id int) int {
	for i, it := range s.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
