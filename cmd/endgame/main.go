/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	lj "gopkg.in/natefinch/lumberjack.v2"

	"endgame/internal/app"
	"endgame/internal/catalog"
	"endgame/internal/config"
	"endgame/internal/crash"
	"endgame/internal/domain"
	"endgame/internal/export"
	"endgame/internal/keys"
	applog "endgame/internal/log"
	"endgame/internal/modal"
	"endgame/internal/sched"
	"endgame/internal/slides"
	"endgame/internal/telemetry"
	"endgame/internal/ui"
	"endgame/internal/version"
)

func usage(w io.Writer) {
	_, _ = fmt.Fprintln(w, "Endgame storefront")
	_, _ = fmt.Fprintf(w, "Version: %s\n", version.String())
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "Usage:")
	_, _ = fmt.Fprintln(w, "  endgame version|-v|--version         Show version")
	_, _ = fmt.Fprintln(w, "  endgame catalog [<file>]              List the game catalog (JSON or YAML)")
	_, _ = fmt.Fprintln(w, "  endgame demo                          Run a scripted session and print each snapshot")
	_, _ = fmt.Fprintln(w, "  endgame quote <out.pdf> <id>...       Write a PDF quote for the given game ids")
	_, _ = fmt.Fprintln(w, "  endgame ui                            Launch desktop UI (build with -tags fyne)")
}

func main() {
	cfg, cfgErr := config.Load()
	applog.Init(applog.Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.Source,
		File:      cfg.Logging.File,
	})
	l := applog.WithComponent("cli")
	if cfgErr != nil {
		l.Warn("config not loaded, using defaults", slog.Any("err", cfgErr))
	}
	defer crash.Recover("")

	tel, closeTel := newTelemetry(cfg)
	defer closeTel()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) < 2 {
		usage(os.Stdout)
		return
	}
	var err error
	switch args[1] {
	case "version", "--version", "-v":
		fmt.Println("Endgame storefront")
		fmt.Println(version.String())
		return
	case "catalog":
		path := cfg.Catalog.Path
		if len(args) >= 3 {
			path = args[2]
		}
		err = listCatalog(os.Stdout, path)
	case "demo":
		err = runDemo(os.Stdout, sessionOptions(cfg, nil, tel))
	case "quote":
		if len(args) < 4 {
			fmt.Println("quote requires <out.pdf> and at least one game id")
			usage(os.Stdout)
			os.Exit(2)
		}
		err = writeQuote(args[2], args[3:], cfg.Catalog.Path)
	case "ui":
		var cat *catalog.Catalog
		if cat, err = loadCatalog(cfg.Catalog.Path); err == nil {
			err = ui.Run(sessionOptions(cfg, cat, tel))
		}
	default:
		usage(os.Stdout)
		os.Exit(2)
	}
	if err != nil {
		l.Error("command failed", slog.String("cmd", args[1]), slog.Any("err", err))
		fmt.Println("Error:", err)
		closeTel()
		os.Exit(1)
	}
}

// newTelemetry installs the process-wide telemetry client. Events go to a
// rotated JSON-lines file when telemetry.file is set, else to the log.
func newTelemetry(cfg config.AppConfig) (*telemetry.Client, func()) {
	var sink telemetry.Sink = telemetry.NewLogSink()
	var file *lj.Logger
	if cfg.Telemetry.OptIn && cfg.Telemetry.File != "" {
		file = &lj.Logger{Filename: cfg.Telemetry.File, MaxSize: 5, MaxBackups: 2, MaxAge: 14}
		sink = telemetry.NewJSONLSink(file)
	}
	tc := telemetry.FromEnv()
	tc.OptIn = cfg.Telemetry.OptIn
	c := telemetry.New(tc, sink)
	telemetry.NewDefault(c)
	return c, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		c.Flush(ctx)
		c.Close()
		if file != nil {
			_ = file.Close()
		}
	}
}

func sessionOptions(cfg config.AppConfig, cat *catalog.Catalog, tel *telemetry.Client) app.Options {
	return app.Options{
		Slides:        cfg.Slides,
		SlideInterval: cfg.UI.SlideInterval(),
		Timings:       modal.Timings{Enter: cfg.UI.EnterDelay(), Exit: cfg.UI.ExitDelay()},
		CancelKey:     keys.ParseKey(cfg.UI.CancelKey),
		Catalog:       cat,
		Telemetry:     tel,
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

func listCatalog(w io.Writer, path string) error {
	cat, err := loadCatalog(path)
	if err != nil {
		return err
	}
	for _, section := range []catalog.Section{catalog.SectionLatest, catalog.SectionPrerelease} {
		games := cat.Section(section)
		if len(games) == 0 {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s:\n", section)
		for _, g := range games {
			_, _ = fmt.Fprintf(w, "  %3d  %-28s %10s\n", g.ID, g.Title, g.Price.Format(ui.Lang))
		}
	}
	return nil
}

func writeQuote(out string, ids []string, catalogPath string) error {
	cat, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}
	var items []domain.CartItem
	seen := map[int]bool{}
	for _, raw := range ids {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("game id %q: %w", raw, err)
		}
		g, ok := cat.Find(id)
		if !ok {
			return fmt.Errorf("game id %d: not in catalog", id)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		items = append(items, g.Item())
	}
	abs, _ := filepath.Abs(out)
	if err := export.ExportQuotePDF(items, abs, export.QuoteOptions{Lang: ui.Lang}); err != nil {
		return err
	}
	fmt.Println("Wrote quote to", abs)
	return nil
}

// runDemo drives a session on a virtual clock and prints the snapshot after
// each step.
func runDemo(w io.Writer, opts app.Options) error {
	clock := sched.NewManual()
	opts.Scheduler = clock
	c, err := app.Start(opts)
	if err != nil {
		return err
	}
	defer c.End()
	ctx := context.Background()
	enter, exit := opts.Timings.Enter, opts.Timings.Exit
	if enter <= 0 {
		enter = modal.DefaultEnterDelay
	}
	if exit <= 0 {
		exit = modal.DefaultExitDelay
	}
	cancelKey := opts.CancelKey
	if cancelKey == "" {
		cancelKey = keys.Escape
	}

	step := func(title string) {
		_, _ = fmt.Fprintf(w, "== %s (t=%s)\n%s\n", title, clock.Now(), ui.Describe(c.View()))
	}
	step("session started")

	c.Navigate(domain.PageGames, app.FromHeader)
	c.AddGame(1)
	c.AddGame(1)
	c.AddGame(4)
	c.OpenCart()
	step("two games added, cart open")

	c.CloseCart()
	c.ToggleMenu()
	c.OpenAuth(app.FromDrawer)
	clock.Advance(enter)
	c.ToggleAuthForm()
	step("dialog opened from the drawer")

	c.KeyPressed(cancelKey)
	step("cancel key pressed")
	clock.Advance(exit)
	step("exit animation finished")

	interval := opts.SlideInterval
	if interval <= 0 {
		interval = slides.DefaultInterval
	}
	clock.Advance(interval)
	step("banner advanced")
	c.SelectSlide(5)
	step("slide 5 selected")

	c.RemoveFromCart(1)
	msg := c.Checkout(ctx)
	c.OpenCart()
	step("checkout: " + msg)
	if c.View().CartCount != 1 {
		return errors.New("demo: unexpected cart contents")
	}
	return nil
}
