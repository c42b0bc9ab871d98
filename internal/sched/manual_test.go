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
	"testing"
	"time"
)

func TestManualFiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var got []string
	m.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	if n := m.Advance(9 * time.Millisecond); n != 0 {
		t.Fatalf("nothing should fire before the deadline, fired %d", n)
	}
	if n := m.Advance(25 * time.Millisecond); n != 3 {
		t.Fatalf("expected 3 callbacks, got %d", n)
	}
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Fatalf("unexpected order: %v", got)
	}
	if m.Now() != 34*time.Millisecond {
		t.Fatalf("Now() = %v", m.Now())
	}
}

func TestManualStop(t *testing.T) {
	m := NewManual()
	ran := false
	tm := m.AfterFunc(time.Second, func() { ran = true })
	if !tm.Stop() {
		t.Fatalf("first Stop should report a prevented run")
	}
	if tm.Stop() {
		t.Fatalf("second Stop should report false")
	}
	m.Advance(2 * time.Second)
	if ran {
		t.Fatalf("stopped timer fired")
	}
	if m.Pending() != 0 {
		t.Fatalf("Pending() = %d after stop", m.Pending())
	}

	fired := m.AfterFunc(time.Millisecond, func() {})
	m.Advance(time.Millisecond)
	if fired.Stop() {
		t.Fatalf("Stop after firing should report false")
	}
}

func TestManualEvery(t *testing.T) {
	m := NewManual()
	n := 0
	tk := m.Every(8*time.Second, func() { n++ })
	m.Advance(24 * time.Second)
	if n != 3 {
		t.Fatalf("expected 3 ticks, got %d", n)
	}
	tk.Stop()
	m.Advance(time.Minute)
	if n != 3 {
		t.Fatalf("ticks after stop: %d", n)
	}
}

func TestManualCallbackMayScheduleAndStop(t *testing.T) {
	m := NewManual()
	var order []int
	var victim Timer
	m.AfterFunc(time.Millisecond, func() {
		order = append(order, 1)
		victim.Stop()
		m.AfterFunc(time.Millisecond, func() { order = append(order, 3) })
	})
	victim = m.AfterFunc(2*time.Millisecond, func() { order = append(order, 2) })

	m.Advance(5 * time.Millisecond)
	if len(order) != 2 || order[0] != 1 || order[1] != 3 {
		t.Fatalf("unexpected order: %v", order)
	}
}

func TestStopTimerClearsHandle(t *testing.T) {
	m := NewManual()
	var tm Timer = m.AfterFunc(time.Second, func() { t.Fatalf("should not fire") })
	tm = StopTimer(tm)
	if tm != nil {
		t.Fatalf("StopTimer should return nil")
	}
	if StopTimer(nil) != nil {
		t.Fatalf("StopTimer(nil) should be nil")
	}
	m.Advance(2 * time.Second)
}
