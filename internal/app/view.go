/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package app

import (
	"endgame/internal/cart"
	"endgame/internal/catalog"
	"endgame/internal/domain"
	"endgame/internal/nav"
	"endgame/internal/slides"
)

// View is a read-only snapshot for rendering. It shares no memory with the
// controller.
type View struct {
	Session string
	Page    domain.Page
	Links   []nav.Link

	Modal        domain.ModalPhase
	ModalVisible bool
	ModalShown   bool
	AuthForm     domain.AuthForm

	Cart      []domain.CartItem
	CartTotal domain.Price
	CartCount int
	CartBadge string
	CartOpen  bool

	MenuOpen bool

	SlideIndex int
	SlideCount int
	Slide      slides.Slide

	Games []GameView
}

// GameView is a catalog entry plus whether it is already in the cart.
type GameView struct {
	catalog.Game
	InCart bool
}

// View returns the current snapshot.
func (c *Controller) View() View {
	v := View{
		Session:      c.id,
		Page:         c.router.Current(),
		Links:        nav.Links(c.router.Current()),
		Modal:        c.dialog.Phase(),
		ModalVisible: c.dialog.Visible(),
		ModalShown:   c.dialog.Shown(),
		AuthForm:     c.dialog.Form(),
		Cart:         c.cart.Items(),
		CartTotal:    c.cart.Total(),
		CartCount:    c.cart.Count(),
		CartOpen:     c.panel.IsOpen(),
		MenuOpen:     c.drawer.IsOpen(),
		SlideIndex:   c.deck.Active(),
		SlideCount:   c.deck.Count(),
		Slide:        c.deck.Current(),
	}
	v.CartBadge = cart.Badge(v.CartCount)
	v.Games = make([]GameView, 0, len(c.catalog.Games))
	for _, g := range c.catalog.Games {
		v.Games = append(v.Games, GameView{Game: g, InCart: c.cart.Contains(g.ID)})
	}
	return v
}
