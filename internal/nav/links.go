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

import "endgame/internal/domain"

// Link is a header navigation entry as the renderer needs it.
type Link struct {
	Page        domain.Page
	Label       string
	HasDropdown bool
	Active      bool
}

var links = []Link{
	{Page: domain.PageHome, Label: "Home", HasDropdown: true},
	{Page: domain.PageGames, Label: "Games", HasDropdown: true},
	{Page: domain.PageReviews, Label: "Reviews", HasDropdown: true},
	{Page: domain.PageNews, Label: "News", HasDropdown: true},
	{Page: domain.PageContact, Label: "Contact"},
}

// Links returns the header entries with Active set for current.
func Links(current domain.Page) []Link {
	out := make([]Link, len(links))
	for i, l := range links {
		l.Active = l.Page == current
		out[i] = l
	}
	return out
}
