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
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	applog "endgame/internal/log"
)

// Dispatched runs wall-clock timers and hands their callbacks to post, which
// must run them on the dispatch goroutine. Stop must be called from that same
// goroutine for the no-run-after-Stop guarantee to hold.
type Dispatched struct {
	post func(func())
}

// NewDispatched wraps an arbitrary dispatcher, e.g. a UI toolkit's
// run-on-main-thread function.
func NewDispatched(post func(func())) *Dispatched { return &Dispatched{post: post} }

type wallTimer struct {
	stopped atomic.Bool
	fired   atomic.Bool
	t       *time.Timer
	quit    chan struct{}
	once    sync.Once
}

func (d *Dispatched) AfterFunc(delay time.Duration, f func()) Timer {
	wt := &wallTimer{}
	wt.t = time.AfterFunc(delay, func() {
		d.post(func() {
			if wt.stopped.Load() || !wt.fired.CompareAndSwap(false, true) {
				return
			}
			f()
		})
	})
	return wt
}

func (d *Dispatched) Every(interval time.Duration, f func()) Timer {
	if interval <= 0 {
		panic("sched: non-positive interval for Every")
	}
	wt := &wallTimer{quit: make(chan struct{})}
	go func() {
		tk := time.NewTicker(interval)
		defer tk.Stop()
		for {
			select {
			case <-tk.C:
				d.post(func() {
					if !wt.stopped.Load() {
						f()
					}
				})
			case <-wt.quit:
				return
			}
		}
	}()
	return wt
}

func (wt *wallTimer) Stop() bool {
	if wt.fired.Load() || wt.stopped.Swap(true) {
		return false
	}
	if wt.t != nil {
		wt.t.Stop()
	}
	if wt.quit != nil {
		wt.once.Do(func() { close(wt.quit) })
	}
	return true
}

// Loop is the UI dispatch goroutine: a FIFO of closures executed one at a
// time. Its timers (via the embedded Dispatched) post onto the same queue.
type Loop struct {
	*Dispatched
	queue  chan func()
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
	log    *slog.Logger
}

// NewLoop starts a dispatch goroutine. Call Close to stop it.
func NewLoop() *Loop {
	l := &Loop{
		queue:  make(chan func(), 64),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
		log:    applog.WithComponent("sched"),
	}
	l.Dispatched = NewDispatched(func(f func()) { l.Post(f) })
	go l.run()
	return l
}

func (l *Loop) run() {
	defer close(l.exited)
	for {
		select {
		case f := <-l.queue:
			f()
		case <-l.done:
			return
		}
	}
}

// Post queues f. It reports false if the loop is closed.
func (l *Loop) Post(f func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}
	select {
	case l.queue <- f:
		return true
	case <-l.done:
		return false
	}
}

// Do runs f on the loop and waits for it to finish. It must not be called
// from the loop goroutine itself.
func (l *Loop) Do(ctx context.Context, f func()) error {
	ran := make(chan struct{})
	if !l.Post(func() { defer close(ran); f() }) {
		return ErrClosed
	}
	select {
	case <-ran:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.exited:
		select {
		case <-ran:
			return nil
		default:
			return ErrClosed
		}
	}
}

// Close stops the loop after the closure currently running, if any. Queued
// closures are dropped. It does not wait; use Done for that.
func (l *Loop) Close() {
	l.once.Do(func() {
		close(l.done)
		l.log.Debug("dispatch loop closed")
	})
}

// Done is closed once the loop goroutine has exited.
func (l *Loop) Done() <-chan struct{} { return l.exited }
