/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package cart

import "strconv"

// Panel is the visibility flag of the slide-out cart.
type Panel struct {
	open bool
}

// Open shows the panel and reports whether it was hidden.
func (p *Panel) Open() bool {
	changed := !p.open
	p.open = true
	return changed
}

// Close hides the panel and reports whether it was shown.
func (p *Panel) Close() bool {
	changed := p.open
	p.open = false
	return changed
}

// IsOpen reports whether the panel is shown.
func (p *Panel) IsOpen() bool { return p.open }

// Badge is the header counter text; empty when the cart is empty.
func Badge(count int) string {
	if count <= 0 {
		return ""
	}
	return strconv.Itoa(count)
}
