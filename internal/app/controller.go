/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package app composes the storefront state machines into one session.
//
// A Controller owns exactly one cart, router, drawer, dialog and slide deck.
// It keeps no state of its own beyond that composition: every invariant lives
// in the child that owns it. All methods, and every timer callback, run on
// the dispatch goroutine behind Options.Scheduler.
package app

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"endgame/internal/cart"
	"endgame/internal/catalog"
	"endgame/internal/domain"
	"endgame/internal/forms"
	"endgame/internal/keys"
	applog "endgame/internal/log"
	"endgame/internal/menu"
	"endgame/internal/modal"
	"endgame/internal/nav"
	"endgame/internal/sched"
	"endgame/internal/slides"
	"endgame/internal/telemetry"
)

// ErrNoScheduler is returned by Start when Options.Scheduler is nil.
var ErrNoScheduler = errors.New("app: a scheduler is required")

// Origin says which affordance a user action came from. Only actions from
// the mobile drawer dismiss it; the footer never touches it.
type Origin int

const (
	FromHeader Origin = iota
	FromDrawer
	FromFooter
)

func (o Origin) String() string {
	switch o {
	case FromDrawer:
		return "drawer"
	case FromFooter:
		return "footer"
	default:
		return "header"
	}
}

// Options wires a session. Only Scheduler is required.
type Options struct {
	Scheduler     sched.Scheduler
	Keys          *keys.Bus
	Slides        []slides.Slide
	SlideInterval time.Duration
	Timings       modal.Timings
	CancelKey     keys.Key
	Catalog       *catalog.Catalog
	Forms         forms.Submitter
	Linker        forms.Linker
	Telemetry     *telemetry.Client
	ViewReset     nav.ViewResetter
	// OnChange runs after every action and every timer-driven transition.
	OnChange func()
}

// Controller is one running UI session.
type Controller struct {
	id      string
	bus     *keys.Bus
	cart    *cart.Store
	panel   cart.Panel
	drawer  menu.Drawer
	router  *nav.Router
	dialog  *modal.Lifecycle
	deck    *slides.Deck
	catalog *catalog.Catalog
	forms   forms.Submitter
	linker  forms.Linker
	tel     *telemetry.Client
	notify  func()
	ended   bool
	log     *slog.Logger
}

// Start begins a session: the slide deck starts rotating and the dialog is
// closed on the Home page with an empty cart.
func Start(opts Options) (*Controller, error) {
	if opts.Scheduler == nil {
		return nil, ErrNoScheduler
	}
	if opts.Keys == nil {
		opts.Keys = keys.NewBus()
	}
	if len(opts.Slides) == 0 {
		opts.Slides = slides.DefaultSlides()
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	stub := forms.NewStub()
	if opts.Forms == nil {
		opts.Forms = stub
	}
	if opts.Linker == nil {
		opts.Linker = stub
	}

	id := uuid.NewString()
	c := &Controller{
		id:      id,
		bus:     opts.Keys,
		cart:    cart.NewStore(),
		router:  nav.NewRouter(opts.ViewReset),
		catalog: opts.Catalog,
		forms:   opts.Forms,
		linker:  opts.Linker,
		tel:     opts.Telemetry,
		notify:  opts.OnChange,
		log:     applog.WithSession(applog.WithComponent("app"), id),
	}
	s := notifying{s: opts.Scheduler, after: c.changed}

	deck, err := slides.NewDeck(s, opts.Slides, opts.SlideInterval)
	if err != nil {
		return nil, err
	}
	c.deck = deck
	c.dialog = modal.New(s, c.bus,
		modal.WithTimings(opts.Timings),
		modal.WithCancelKey(opts.CancelKey),
		modal.WithObserver(c.dialogMoved),
	)
	c.log.Info("session started", slog.Int("slides", deck.Count()), slog.Int("games", len(c.catalog.Games)))
	return c, nil
}

// ID returns the session id.
func (c *Controller) ID() string { return c.id }

// End tears the session down: the rotation stops, the dialog releases its
// key listener and pending timer, and queued telemetry is flushed. Safe to
// call more than once.
func (c *Controller) End() {
	if c.ended {
		return
	}
	c.ended = true
	c.deck.Stop()
	c.dialog.Teardown()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	c.tel.Flush(ctx)
	c.log.Info("session ended", slog.Int("cart_items", c.cart.Count()))
}

// Navigate makes page current. From the drawer the drawer is closed as well,
// whether or not page is valid.
func (c *Controller) Navigate(page domain.Page, from Origin) bool {
	if from == FromDrawer {
		c.drawer.Close()
	}
	ok := c.router.Navigate(page)
	if ok {
		c.event("navigate", map[string]any{"page": page.String(), "origin": from.String()})
	}
	c.changed()
	return ok
}

// AddToCart adds item unless its id is already in the cart.
func (c *Controller) AddToCart(item domain.CartItem) bool {
	ok := c.cart.Add(item)
	if ok {
		c.event("cart_add", map[string]any{"id": item.ID})
	}
	c.changed()
	return ok
}

// AddGame adds the catalog game with id. Unknown ids are ignored.
func (c *Controller) AddGame(id int) bool {
	g, ok := c.catalog.Find(id)
	if !ok {
		c.log.Warn("add to cart: unknown game", slog.Int("id", id))
		return false
	}
	return c.AddToCart(g.Item())
}

// RemoveFromCart removes the item with id if present.
func (c *Controller) RemoveFromCart(id int) bool {
	ok := c.cart.Remove(id)
	if ok {
		c.event("cart_remove", map[string]any{"id": id})
	}
	c.changed()
	return ok
}

// InCart reports whether id is in the cart.
func (c *Controller) InCart(id int) bool { return c.cart.Contains(id) }

// OpenCart shows the cart panel and closes the drawer.
func (c *Controller) OpenCart() bool {
	c.drawer.Close()
	ok := c.panel.Open()
	c.changed()
	return ok
}

// CloseCart hides the cart panel.
func (c *Controller) CloseCart() bool {
	ok := c.panel.Close()
	c.changed()
	return ok
}

// OpenAuth opens the sign-in dialog. From the drawer the drawer is closed as well.
func (c *Controller) OpenAuth(from Origin) bool {
	if from == FromDrawer {
		c.drawer.Close()
	}
	ok := c.dialog.Open()
	c.changed()
	return ok
}

// CloseAuth starts the dialog's exit sequence (close button or backdrop).
func (c *Controller) CloseAuth() bool {
	ok := c.dialog.RequestClose()
	c.changed()
	return ok
}

// ToggleAuthForm switches between the login and register forms.
func (c *Controller) ToggleAuthForm() bool {
	ok := c.dialog.ToggleForm()
	c.changed()
	return ok
}

// KeyPressed forwards a document-level key press to whoever listens, which
// is the dialog only while it is Entering or Open. It returns the number of
// listeners reached.
func (c *Controller) KeyPressed(k keys.Key) int {
	n := c.bus.Dispatch(k)
	if n > 0 {
		c.changed()
	}
	return n
}

// ToggleMenu flips the mobile drawer and returns its new state.
func (c *Controller) ToggleMenu() bool {
	open := c.drawer.Toggle()
	c.changed()
	return open
}

// CloseMenu closes the drawer; it reports whether it was open.
func (c *Controller) CloseMenu() bool {
	was := c.drawer.Close()
	c.changed()
	return was
}

// SelectSlide jumps to slide i (reduced modulo the slide count) without
// rescheduling the automatic advance.
func (c *Controller) SelectSlide(i int) int {
	idx := c.deck.Select(i)
	c.changed()
	return idx
}

// SubmitAuth hands the dialog's current form to the submitter, then closes
// the dialog. The returned text is shown to the user; a submitter failure is
// logged and never stops the flow. Nothing happens while the dialog is closed.
func (c *Controller) SubmitAuth(ctx context.Context, fields map[string]string) string {
	if !c.dialog.Visible() {
		return ""
	}
	kind := forms.KindLogin
	if c.dialog.Form() == domain.FormRegister {
		kind = forms.KindRegister
	}
	c.submit(ctx, kind, fields)
	c.dialog.RequestClose()
	c.changed()
	return forms.Acknowledge(kind)
}

// SubmitContact hands the contact form to the submitter.
func (c *Controller) SubmitContact(ctx context.Context, fields map[string]string) string {
	c.submit(ctx, forms.KindContact, fields)
	c.changed()
	return forms.Acknowledge(forms.KindContact)
}

// Checkout submits the cart summary. The cart is left as it is.
func (c *Controller) Checkout(ctx context.Context) string {
	fields := map[string]string{
		"items": strconv.Itoa(c.cart.Count()),
		"total": c.cart.Total().String(),
	}
	c.submit(ctx, forms.KindCheckout, fields)
	c.event("checkout", map[string]any{"items": c.cart.Count()})
	c.changed()
	return forms.Acknowledge(forms.KindCheckout)
}

// BrowseCatalog follows the "view full catalog" link. The outcome is not
// reported to the user.
func (c *Controller) BrowseCatalog(ctx context.Context) {
	if err := c.linker.Open(ctx, "catalog"); err != nil && !errors.Is(err, forms.ErrNotImplemented) {
		c.log.Warn("open catalog link failed", slog.Any("err", err))
	}
}

func (c *Controller) submit(ctx context.Context, kind forms.Kind, fields map[string]string) {
	l := applog.WithOperation(c.log, "submit")
	err := c.forms.Submit(ctx, forms.Submission{Kind: kind, Fields: fields})
	switch {
	case err == nil:
	case errors.Is(err, forms.ErrNotImplemented):
		l.Debug("form handled by stub", slog.String("kind", string(kind)))
	default:
		l.Warn("form submission failed", slog.String("kind", string(kind)), slog.Any("err", err))
	}
	c.event("form_submit", map[string]any{"kind": string(kind)})
}

func (c *Controller) dialogMoved(from, to domain.ModalPhase) {
	switch to {
	case domain.PhaseEntering:
		c.event("modal_open", map[string]any{"reopen": from == domain.PhaseExiting})
	case domain.PhaseClosed:
		c.event("modal_close", nil)
	}
}

func (c *Controller) event(name string, props map[string]any) {
	if !c.tel.Enabled() {
		return
	}
	if props == nil {
		props = map[string]any{}
	}
	props["session"] = c.id
	c.tel.Event(name, props)
}

func (c *Controller) changed() {
	if c.notify != nil && !c.ended {
		c.notify()
	}
}

// notifying reports every timer callback to after once it has run.
type notifying struct {
	s     sched.Scheduler
	after func()
}

func (n notifying) AfterFunc(d time.Duration, f func()) sched.Timer {
	return n.s.AfterFunc(d, func() { f(); n.after() })
}

func (n notifying) Every(d time.Duration, f func()) sched.Timer {
	return n.s.Every(d, func() { f(); n.after() })
}
