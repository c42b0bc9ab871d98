/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package nav owns the current page and resets the view on every navigation.
package nav

import (
	"log/slog"

	"endgame/internal/domain"
	applog "endgame/internal/log"
)

// ViewResetter performs the scroll-to-top side effect.
type ViewResetter interface {
	ResetView()
}

// ViewResetFunc adapts a function to ViewResetter.
type ViewResetFunc func()

func (f ViewResetFunc) ResetView() { f() }

// Router tracks the current page. It starts on Home without firing a reset.
type Router struct {
	current domain.Page
	reset   ViewResetter
	log     *slog.Logger
}

// NewRouter returns a router on Home. A nil reset disables the side effect.
func NewRouter(reset ViewResetter) *Router {
	if reset == nil {
		reset = ViewResetFunc(func() {})
	}
	return &Router{current: domain.PageHome, reset: reset, log: applog.WithComponent("nav")}
}

// Navigate makes p current and resets the view exactly once, also when p is
// already current. Unknown pages are ignored and reported as false.
func (r *Router) Navigate(p domain.Page) bool {
	if !p.Valid() {
		r.log.Warn("ignoring navigation to unknown page", slog.String("page", string(p)))
		return false
	}
	from := r.current
	r.current = p
	r.reset.ResetView()
	r.log.Debug("navigated", slog.String("from", from.String()), slog.String("to", p.String()))
	return true
}

// Current returns the current page.
func (r *Router) Current() domain.Page { return r.current }
