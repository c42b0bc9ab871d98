/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package modal drives the sign-in dialog through its animated phases:
//
//	Closed --Open--> Entering --enter delay--> Open
//	Entering|Open --RequestClose--> Exiting --exit delay--> Closed
//	Exiting --Open--> Entering (the pending exit timer is cancelled)
//
// While the dialog is Entering or Open it holds a keyboard subscription that
// turns the cancel key into RequestClose. The subscription is released on
// every way out of those two phases, including Teardown.
package modal

import (
	"log/slog"
	"time"

	"endgame/internal/domain"
	"endgame/internal/keys"
	applog "endgame/internal/log"
	"endgame/internal/sched"
)

const (
	// DefaultEnterDelay lets the renderer paint the start state before the
	// dialog switches to its end state, so the CSS transition is visible.
	DefaultEnterDelay = 10 * time.Millisecond
	// DefaultExitDelay matches the exit animation length.
	DefaultExitDelay = 300 * time.Millisecond
)

// Timings sets the transition delays. Zero fields mean the defaults.
type Timings struct {
	Enter time.Duration
	Exit  time.Duration
}

// Option configures a Lifecycle.
type Option func(*Lifecycle)

// WithTimings overrides the enter and exit delays.
func WithTimings(t Timings) Option {
	return func(l *Lifecycle) {
		if t.Enter > 0 {
			l.enter = t.Enter
		}
		if t.Exit > 0 {
			l.exit = t.Exit
		}
	}
}

// WithCancelKey changes the key that closes the dialog (default Escape).
func WithCancelKey(k keys.Key) Option {
	return func(l *Lifecycle) {
		if k != "" {
			l.cancelKey = k
		}
	}
}

// WithObserver registers fn to be called after every phase change.
func WithObserver(fn func(from, to domain.ModalPhase)) Option {
	return func(l *Lifecycle) { l.observe = fn }
}

// Lifecycle is the dialog state machine. It must only be used from the
// dispatch goroutine of its scheduler.
type Lifecycle struct {
	sched     sched.Scheduler
	bus       *keys.Bus
	cancelKey keys.Key
	enter     time.Duration
	exit      time.Duration

	phase    domain.ModalPhase
	form     domain.AuthForm
	pending  sched.Timer
	gen      uint64 // bumped whenever pending is replaced; stale callbacks compare against it
	listener *keys.Subscription
	observe  func(from, to domain.ModalPhase)
	done     bool
	log      *slog.Logger
}

// New returns a closed dialog. Key presses arrive through bus; a nil bus gets
// a private one.
func New(s sched.Scheduler, bus *keys.Bus, opts ...Option) *Lifecycle {
	if bus == nil {
		bus = keys.NewBus()
	}
	l := &Lifecycle{
		sched:     s,
		bus:       bus,
		cancelKey: keys.Escape,
		enter:     DefaultEnterDelay,
		exit:      DefaultExitDelay,
		log:       applog.WithComponent("modal"),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Open starts the enter sequence. It is a no-op unless the dialog is Closed
// or still Exiting; reopening during Exiting cancels the exit timer, so the
// sub-form is not reset.
func (l *Lifecycle) Open() bool {
	if l.done || (l.phase != domain.PhaseClosed && l.phase != domain.PhaseExiting) {
		return false
	}
	l.cancelPending()
	l.setPhase(domain.PhaseEntering)
	if !l.listener.Active() {
		l.listener = l.bus.Listen(l.onKey)
	}
	l.pending = l.schedule(l.enter, l.entered)
	return true
}

func (l *Lifecycle) entered() {
	if l.phase == domain.PhaseEntering {
		l.setPhase(domain.PhaseOpen)
	}
}

// RequestClose starts the exit sequence from Entering or Open. Other phases
// are left alone.
func (l *Lifecycle) RequestClose() bool {
	if l.phase != domain.PhaseEntering && l.phase != domain.PhaseOpen {
		return false
	}
	l.cancelPending()
	l.listener.Release()
	l.setPhase(domain.PhaseExiting)
	l.pending = l.schedule(l.exit, l.exited)
	return true
}

func (l *Lifecycle) exited() {
	if l.phase != domain.PhaseExiting {
		return
	}
	l.setPhase(domain.PhaseClosed)
	l.form = domain.FormLogin
}

// CancelKeyPressed behaves as RequestClose while the key listener is held.
func (l *Lifecycle) CancelKeyPressed() bool {
	if !l.listener.Active() {
		return false
	}
	return l.RequestClose()
}

func (l *Lifecycle) onKey(k keys.Key) {
	if k == l.cancelKey {
		l.CancelKeyPressed()
	}
}

// ToggleForm switches between the login and register forms while the dialog
// is Entering or Open.
func (l *Lifecycle) ToggleForm() bool {
	return l.SetForm(l.form.Other())
}

// SetForm shows f while the dialog is Entering or Open.
func (l *Lifecycle) SetForm(f domain.AuthForm) bool {
	if l.phase != domain.PhaseEntering && l.phase != domain.PhaseOpen {
		return false
	}
	if l.form == f {
		return false
	}
	l.form = f
	l.log.Debug("form switched", slog.String("form", f.String()))
	return true
}

// Teardown cancels any pending transition, releases the key listener and
// leaves the dialog Closed for good.
func (l *Lifecycle) Teardown() {
	if l.done {
		return
	}
	l.cancelPending()
	l.listener.Release()
	if l.phase != domain.PhaseClosed {
		l.setPhase(domain.PhaseClosed)
	}
	l.form = domain.FormLogin
	l.done = true
}

// Phase returns the current phase.
func (l *Lifecycle) Phase() domain.ModalPhase { return l.phase }

// Form returns the sub-form on display.
func (l *Lifecycle) Form() domain.AuthForm { return l.form }

// Visible reports whether the dialog is mounted at all.
func (l *Lifecycle) Visible() bool { return l.phase != domain.PhaseClosed }

// Shown reports whether the dialog is in its end visual state.
func (l *Lifecycle) Shown() bool { return l.phase == domain.PhaseOpen }

// ListenerActive reports whether the cancel-key listener is registered.
func (l *Lifecycle) ListenerActive() bool { return l.listener.Active() }

// TransitionPending reports whether a phase timer is armed.
func (l *Lifecycle) TransitionPending() bool { return l.pending != nil }

func (l *Lifecycle) cancelPending() {
	l.pending = sched.StopTimer(l.pending)
	l.gen++
}

func (l *Lifecycle) schedule(d time.Duration, f func()) sched.Timer {
	gen := l.gen
	return l.sched.AfterFunc(d, func() {
		if gen != l.gen {
			return
		}
		l.pending = nil
		f()
	})
}

func (l *Lifecycle) setPhase(to domain.ModalPhase) {
	from := l.phase
	l.phase = to
	l.log.Debug("phase changed", slog.String("from", from.String()), slog.String("to", to.String()))
	if l.observe != nil {
		l.observe(from, to)
	}
}
