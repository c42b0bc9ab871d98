/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package sched

import (
	"sort"
	"time"
)

// Manual is a virtual-time Scheduler. Nothing fires until Advance is called;
// due callbacks then run synchronously on the caller's goroutine in deadline
// order, ties broken by scheduling order. It is not safe for concurrent use,
// which matches the single dispatch goroutine it stands in for.
type Manual struct {
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	m      *Manual
	at     time.Duration
	period time.Duration
	seq    uint64
	f      func()
	done   bool
}

// NewManual returns a scheduler whose clock starts at zero.
func NewManual() *Manual { return &Manual{} }

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

// Pending returns the number of armed timers.
func (m *Manual) Pending() int { return len(m.pending) }

func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	return m.add(d, 0, f)
}

func (m *Manual) Every(d time.Duration, f func()) Timer {
	if d <= 0 {
		panic("sched: non-positive interval for Every")
	}
	return m.add(d, d, f)
}

func (m *Manual) add(d, period time.Duration, f func()) *manualTimer {
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, period: period, seq: m.seq, f: f}
	m.pending = append(m.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every timer that comes due on
// the way. Callbacks may schedule or stop timers; newly scheduled timers that
// fall inside the window fire in the same call. It returns the number of
// callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	target := m.now + d
	fired := 0
	for {
		t := m.next(target)
		if t == nil {
			break
		}
		m.now = t.at
		if t.period > 0 {
			t.at += t.period
			m.seq++
			t.seq = m.seq
		} else {
			t.done = true
			m.remove(t)
		}
		t.f()
		fired++
	}
	m.now = target
	return fired
}

func (m *Manual) next(limit time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		a, b := m.pending[i], m.pending[j]
		if a.at != b.at {
			return a.at < b.at
		}
		return a.seq < b.seq
	})
	if t := m.pending[0]; t.at <= limit {
		return t
	}
	return nil
}

func (m *Manual) remove(t *manualTimer) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}
