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

// Gated behind the "fyne" build tag so headless CI does not need a driver.
//
//	go test -tags fyne ./internal/ui
package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"endgame/internal/app"
	"endgame/internal/domain"
	"endgame/internal/sched"
)

func TestHeaderLinksNavigate(t *testing.T) {
	test.NewTempApp(t)
	c, err := app.Start(app.Options{Scheduler: sched.NewManual()})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer c.End()

	objs := headerLinks(c)
	if len(objs) != len(domain.Pages) {
		t.Fatalf("got %d links, want %d", len(objs), len(domain.Pages))
	}
	test.Tap(objs[1].(*widget.Button))
	if got := c.View().Page; got != domain.PageGames {
		t.Fatalf("page after tap = %s, want Games", got)
	}
}
