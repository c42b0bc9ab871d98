/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package slides rotates the hero banner.
package slides

import (
	"errors"
	"log/slog"
	"time"

	applog "endgame/internal/log"
	"endgame/internal/sched"
)

// DefaultInterval is the auto-advance period.
const DefaultInterval = 8 * time.Second

// ErrNoSlides is returned when a rotator is built over zero slides.
var ErrNoSlides = errors.New("slides: at least one slide is required")

// Rotator owns a cyclic index over a fixed number of slides and advances it
// on a repeating timer started at construction.
//
// Select moves the index without touching the timer, so the next automatic
// advance still happens on the original schedule and may follow a manual
// pick almost immediately. This matches the shipped banner.
type Rotator struct {
	count  int
	active int
	ticker sched.Timer
	log    *slog.Logger
}

// NewRotator starts rotating count slides every interval. A non-positive
// interval means DefaultInterval.
func NewRotator(s sched.Scheduler, count int, interval time.Duration) (*Rotator, error) {
	if count < 1 {
		return nil, ErrNoSlides
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	r := &Rotator{count: count, log: applog.WithComponent("slides")}
	r.ticker = s.Every(interval, r.advance)
	return r, nil
}

func (r *Rotator) advance() {
	r.active = (r.active + 1) % r.count
	r.log.Debug("auto advance", slog.Int("active", r.active))
}

// Active returns the current index, always in [0, Count()).
func (r *Rotator) Active() int { return r.active }

// Count returns the number of slides.
func (r *Rotator) Count() int { return r.count }

// Select jumps to index i reduced modulo Count (negative values wrap) and
// returns the resulting index.
func (r *Rotator) Select(i int) int {
	r.active = ((i % r.count) + r.count) % r.count
	return r.active
}

// Running reports whether the auto-advance timer is armed.
func (r *Rotator) Running() bool { return r.ticker != nil }

// Stop cancels the auto-advance timer. Safe to call more than once.
func (r *Rotator) Stop() {
	if r.ticker == nil {
		return
	}
	r.ticker = sched.StopTimer(r.ticker)
	r.log.Debug("rotator stopped")
}
