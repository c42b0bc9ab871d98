/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package sched provides the timers the UI state machines run on.
//
// Every state machine in this module is confined to a single dispatch
// goroutine. Timer callbacks never run concurrently with each other or with
// user actions: they are queued onto that same goroutine (Loop, Dispatched) or
// run synchronously from Advance (Manual). Stop is final: once Stop returns,
// the callback will not run, even if its deadline has already passed and the
// callback is sitting in the dispatch queue.
package sched

import (
	"errors"
	"time"
)

// ErrClosed is returned when posting to a loop that has been closed.
var ErrClosed = errors.New("sched: loop closed")

// Timer is a cancellable pending callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the call prevented a
	// pending run; it returns false if the timer already fired (one-shot)
	// or was stopped before.
	Stop() bool
}

// Scheduler creates timers whose callbacks run on the dispatch goroutine.
type Scheduler interface {
	// AfterFunc runs f once after d.
	AfterFunc(d time.Duration, f func()) Timer
	// Every runs f every d until stopped. d must be positive.
	Every(d time.Duration, f func()) Timer
}

// StopTimer stops t if it is non-nil and returns nil so callers can clear
// their handle in one statement: t = StopTimer(t).
func StopTimer(t Timer) Timer {
	if t != nil {
		t.Stop()
	}
	return nil
}
