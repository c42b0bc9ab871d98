//go:build fyne && cgo

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
	"context"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"endgame/internal/app"
	"endgame/internal/catalog"
	"endgame/internal/crash"
	"endgame/internal/domain"
	"endgame/internal/keys"
	applog "endgame/internal/log"
	"endgame/internal/nav"
	"endgame/internal/sched"
)

// Run opens the storefront window and blocks until it is closed. Timers are
// posted to the Fyne main goroutine, so every state change runs there.
func Run(opts app.Options) error {
	l := applog.WithComponent("ui")
	l.Info("starting UI")
	defer crash.Recover("")

	fyneApp := fyneapp.NewWithID("endgame")
	w := fyneApp.NewWindow("Endgame")
	prefs := fyneApp.Preferences()
	w.Resize(fyne.NewSize(
		float32(max(prefs.IntWithFallback("window.width", 1100), 640)),
		float32(max(prefs.IntWithFallback("window.height", 760), 480)),
	))

	var render func()

	header := widget.NewLabel("")
	slide := widget.NewLabel("")
	body := container.NewVBox()
	scroll := container.NewScroll(body)
	drawer := container.NewVBox()
	cartBox := container.NewVBox()
	dialogTitle := widget.NewLabel("")
	dialogState := widget.NewLabel("")

	opts.Scheduler = sched.NewDispatched(fyne.Do)
	opts.ViewReset = nav.ViewResetFunc(func() { scroll.ScrollToTop() })
	opts.OnChange = func() {
		if render != nil {
			render()
		}
	}
	ctrl, err := app.Start(opts)
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	w.SetOnClosed(func() {
		prefs.SetInt("window.width", int(w.Canvas().Size().Width))
		prefs.SetInt("window.height", int(w.Canvas().Size().Height))
		ctrl.End()
	})

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape:
			ctrl.KeyPressed(keys.Escape)
		case fyne.KeyReturn, fyne.KeyEnter:
			ctrl.KeyPressed(keys.Enter)
		default:
			ctrl.KeyPressed(keys.Key(ev.Name))
		}
	})

	email := widget.NewEntry()
	email.SetPlaceHolder("Email")
	password := widget.NewPasswordEntry()
	password.SetPlaceHolder("Password")
	submitBtn := widget.NewButton("Submit", func() {
		msg := ctrl.SubmitAuth(context.Background(), map[string]string{"email": email.Text, "password": password.Text})
		email.SetText("")
		password.SetText("")
		if msg != "" {
			dialog.ShowInformation("Endgame", msg, w)
		}
	})
	toggleBtn := widget.NewButton("", func() { ctrl.ToggleAuthForm() })
	closeBtn := widget.NewButton("Close", func() { ctrl.CloseAuth() })
	popup := widget.NewModalPopUp(container.NewVBox(dialogTitle, dialogState, email, password, submitBtn, toggleBtn, closeBtn), w.Canvas())

	navButtons := func(from app.Origin) []fyne.CanvasObject {
		var out []fyne.CanvasObject
		for _, link := range nav.Links(ctrl.View().Page) {
			page := link.Page
			label := link.Label
			if link.Active {
				label = "• " + label
			}
			out = append(out, widget.NewButton(label, func() { ctrl.Navigate(page, from) }))
		}
		return out
	}

	gameCard := func(g app.GameView) fyne.CanvasObject {
		id := g.ID
		add := widget.NewButton("Add to Cart", func() { ctrl.AddGame(id) })
		if g.InCart {
			add.SetText("In Cart")
			add.Disable()
		}
		return widget.NewCard(g.Title, fmt.Sprintf("%d comments · %s views", g.Comments, g.Views),
			container.NewHBox(widget.NewLabel(g.Price.Format(Lang)), add))
	}

	pageContent := func(v app.View) []fyne.CanvasObject {
		switch v.Page {
		case domain.PageGames:
			out := []fyne.CanvasObject{widget.NewLabelWithStyle("Latest Games", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})}
			for _, g := range v.Games {
				if g.Section != catalog.SectionPrerelease {
					out = append(out, gameCard(g))
				}
			}
			out = append(out, widget.NewLabelWithStyle("Pre-release", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
			for _, g := range v.Games {
				if g.Section == catalog.SectionPrerelease {
					out = append(out, gameCard(g))
				}
			}
			return append(out, widget.NewButton("View Full Catalog", func() { ctrl.BrowseCatalog(context.Background()) }))
		case domain.PageContact:
			name := widget.NewEntry()
			name.SetPlaceHolder("Name")
			msg := widget.NewMultiLineEntry()
			msg.SetPlaceHolder("Message")
			send := widget.NewButton("Send", func() {
				ack := ctrl.SubmitContact(context.Background(), map[string]string{"name": name.Text, "message": msg.Text})
				dialog.ShowInformation("Contact", ack, w)
			})
			return []fyne.CanvasObject{widget.NewLabel("Get in touch"), name, msg, send}
		default:
			return []fyne.CanvasObject{widget.NewLabel(v.Page.String())}
		}
	}

	render = func() {
		v := ctrl.View()
		header.SetText(HeaderLine(v))
		slide.SetText(SlideLine(v))

		body.Objects = pageContent(v)
		body.Refresh()

		drawer.Objects = nil
		if v.MenuOpen {
			drawer.Objects = append(navButtons(app.FromDrawer),
				widget.NewButton("Cart", func() { ctrl.OpenCart() }),
				widget.NewButton("Login", func() { ctrl.OpenAuth(app.FromDrawer) }))
		}
		drawer.Refresh()

		cartBox.Objects = nil
		if v.CartOpen {
			for _, line := range CartLines(v) {
				cartBox.Objects = append(cartBox.Objects, widget.NewLabel(line))
			}
			for _, it := range v.Cart {
				id := it.ID
				cartBox.Objects = append(cartBox.Objects, widget.NewButton(fmt.Sprintf("Remove %s", it.Title), func() { ctrl.RemoveFromCart(id) }))
			}
			cartBox.Objects = append(cartBox.Objects,
				widget.NewButton("Checkout", func() { dialog.ShowInformation("Checkout", ctrl.Checkout(context.Background()), w) }),
				widget.NewButton("Close", func() { ctrl.CloseCart() }))
		}
		cartBox.Refresh()

		dialogTitle.SetText(DialogLine(v))
		dialogState.SetText(fmt.Sprintf("phase: %s", v.Modal))
		if v.AuthForm == domain.FormRegister {
			toggleBtn.SetText("Already have an account? Sign in")
		} else {
			toggleBtn.SetText("Need an account? Register")
		}
		if v.ModalVisible {
			popup.Show()
		} else {
			popup.Hide()
		}
	}

	topBar := container.NewHBox(
		widget.NewButton("☰", func() { ctrl.ToggleMenu() }),
		header,
		widget.NewButton("Cart", func() { ctrl.OpenCart() }),
		widget.NewButton("Login", func() { ctrl.OpenAuth(app.FromHeader) }),
	)
	prev := widget.NewButton("‹", func() { ctrl.SelectSlide(ctrl.View().SlideIndex - 1) })
	next := widget.NewButton("›", func() { ctrl.SelectSlide(ctrl.View().SlideIndex + 1) })
	banner := container.NewHBox(prev, slide, next)

	var footer []fyne.CanvasObject
	for _, p := range domain.Pages {
		page := p
		footer = append(footer, widget.NewButton(page.String(), func() { ctrl.Navigate(page, app.FromFooter) }))
	}
	linkBar := container.NewHBox(headerLinks(ctrl)...)

	w.SetContent(container.NewBorder(
		container.NewVBox(topBar, linkBar, drawer, banner),
		container.NewHBox(footer...),
		nil,
		cartBox,
		scroll,
	))
	render()
	l.Info("window ready", slog.String("session", ctrl.ID()))
	w.ShowAndRun()
	return nil
}

// headerLinks builds the header links once; the active marker lives in the
// header label.
func headerLinks(ctrl *app.Controller) []fyne.CanvasObject {
	var out []fyne.CanvasObject
	for _, link := range nav.Links(domain.PageHome) {
		page := link.Page
		out = append(out, widget.NewButton(link.Label, func() { ctrl.Navigate(page, app.FromHeader) }))
	}
	return out
}
