/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package ui

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"endgame/internal/app"
	"endgame/internal/domain"
)

// Lang is the locale prices are rendered in.
var Lang = language.AmericanEnglish

// HeaderLine renders the navigation bar: active page in brackets, dropdown
// pages marked with a caret, then the cart badge.
func HeaderLine(v app.View) string {
	var b strings.Builder
	for i, l := range v.Links {
		if i > 0 {
			b.WriteByte(' ')
		}
		label := l.Label
		if l.HasDropdown {
			label += "▾"
		}
		if l.Active {
			label = "[" + label + "]"
		}
		b.WriteString(label)
	}
	b.WriteString(" | cart")
	if v.CartBadge != "" {
		b.WriteString("(" + v.CartBadge + ")")
	}
	if v.MenuOpen {
		b.WriteString(" | menu open")
	}
	return b.String()
}

// DialogLine describes the sign-in dialog, or returns "" when it is unmounted.
func DialogLine(v app.View) string {
	if !v.ModalVisible {
		return ""
	}
	title := "Sign In"
	if v.AuthForm == domain.FormRegister {
		title = "Create Account"
	}
	return fmt.Sprintf("%s (%s)", title, v.Modal)
}

// SlideLine renders the banner with its position.
func SlideLine(v app.View) string {
	return fmt.Sprintf("%s %d/%d", v.Slide.Title, v.SlideIndex+1, v.SlideCount)
}

// CartLines renders one line per item plus the total; empty carts say so.
func CartLines(v app.View) []string {
	if len(v.Cart) == 0 {
		return []string{"Your cart is empty"}
	}
	out := make([]string, 0, len(v.Cart)+1)
	for _, it := range v.Cart {
		out = append(out, fmt.Sprintf("%d  %s  %s", it.ID, it.Title, it.Price.Format(Lang)))
	}
	return append(out, "Total: "+v.CartTotal.Format(Lang))
}

// GameCaption is the card text of one game.
func GameCaption(g app.GameView) string {
	s := fmt.Sprintf("%s  %s", g.Title, g.Price.Format(Lang))
	if g.InCart {
		s += "  (in cart)"
	}
	return s
}

// Describe renders a whole snapshot as text.
func Describe(v app.View) string {
	var b strings.Builder
	fmt.Fprintf(&b, "page:   %s\n", v.Page)
	fmt.Fprintf(&b, "header: %s\n", HeaderLine(v))
	fmt.Fprintf(&b, "slide:  %s\n", SlideLine(v))
	if d := DialogLine(v); d != "" {
		fmt.Fprintf(&b, "dialog: %s\n", d)
	}
	if v.CartOpen {
		for _, l := range CartLines(v) {
			fmt.Fprintf(&b, "cart:   %s\n", l)
		}
	}
	return b.String()
}
