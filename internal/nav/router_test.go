/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package nav

import (
	"testing"

	"endgame/internal/domain"
)

func TestNavigateResetsEveryTime(t *testing.T) {
	resets := 0
	r := NewRouter(ViewResetFunc(func() { resets++ }))
	if r.Current() != domain.PageHome || resets != 0 {
		t.Fatalf("fresh router: page=%s resets=%d", r.Current(), resets)
	}
	if !r.Navigate(domain.PageGames) {
		t.Fatalf("Navigate(Games) failed")
	}
	if r.Current() != domain.PageGames || resets != 1 {
		t.Fatalf("after Games: page=%s resets=%d", r.Current(), resets)
	}
	r.Navigate(domain.PageGames)
	if resets != 2 {
		t.Fatalf("re-selecting the current page must still reset, resets=%d", resets)
	}
}

func TestNavigateRejectsUnknownPage(t *testing.T) {
	resets := 0
	r := NewRouter(ViewResetFunc(func() { resets++ }))
	if r.Navigate("Shop") {
		t.Fatalf("unknown page accepted")
	}
	if r.Current() != domain.PageHome || resets != 0 {
		t.Fatalf("unknown page changed state: page=%s resets=%d", r.Current(), resets)
	}
}

func TestNilResetter(t *testing.T) {
	r := NewRouter(nil)
	if !r.Navigate(domain.PageNews) || r.Current() != domain.PageNews {
		t.Fatalf("router without resetter should still navigate")
	}
}

func TestLinksMarkActive(t *testing.T) {
	ls := Links(domain.PageReviews)
	if len(ls) != len(domain.Pages) {
		t.Fatalf("expected %d links, got %d", len(domain.Pages), len(ls))
	}
	for _, l := range ls {
		if l.Active != (l.Page == domain.PageReviews) {
			t.Fatalf("wrong active flag on %s", l.Page)
		}
		if l.Page == domain.PageContact && l.HasDropdown {
			t.Fatalf("contact has no dropdown")
		}
	}
}
