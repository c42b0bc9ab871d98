/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package domain holds the value types shared by the storefront state machines:
// pages, cart items, prices and the dialog phases.
package domain

import "strings"

// Page identifies one of the top-level storefront views.
type Page string

const (
	PageHome    Page = "Home"
	PageGames   Page = "Games"
	PageReviews Page = "Reviews"
	PageNews    Page = "News"
	PageContact Page = "Contact"
)

// Pages lists every page in header order.
var Pages = []Page{PageHome, PageGames, PageReviews, PageNews, PageContact}

// Valid reports whether p is one of the known pages.
func (p Page) Valid() bool {
	for _, known := range Pages {
		if p == known {
			return true
		}
	}
	return false
}

func (p Page) String() string { return string(p) }

// ParsePage matches s case-insensitively against the known pages.
func ParsePage(s string) (Page, bool) {
	s = strings.TrimSpace(s)
	for _, p := range Pages {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

// CartItem is what the shopper intends to buy. Identity is ID; the rest is
// payload copied from the catalog.
type CartItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageRef string `json:"imageRef,omitempty"`
	Price    Price  `json:"price"`
}

// ModalPhase is the animation phase of the sign-in dialog.
// Closed and Open are stable; Entering and Exiting always have a pending timer.
type ModalPhase int

const (
	PhaseClosed ModalPhase = iota
	PhaseEntering
	PhaseOpen
	PhaseExiting
)

func (p ModalPhase) String() string {
	switch p {
	case PhaseClosed:
		return "closed"
	case PhaseEntering:
		return "entering"
	case PhaseOpen:
		return "open"
	case PhaseExiting:
		return "exiting"
	default:
		return "unknown"
	}
}

// Transient reports whether the phase waits on a timer.
func (p ModalPhase) Transient() bool { return p == PhaseEntering || p == PhaseExiting }

// AuthForm selects which sub-form the sign-in dialog shows.
type AuthForm int

const (
	FormLogin AuthForm = iota
	FormRegister
)

func (f AuthForm) String() string {
	if f == FormRegister {
		return "register"
	}
	return "login"
}

// Other returns the form the toggle link switches to.
func (f AuthForm) Other() AuthForm {
	if f == FormRegister {
		return FormLogin
	}
	return FormRegister
}
