/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package menu is the mobile navigation drawer.
package menu

// Drawer tracks whether the mobile menu is open. It knows nothing about what
// closes it; callers compose Close into their own actions.
type Drawer struct {
	open bool
}

// Toggle flips the drawer and returns the new state.
func (d *Drawer) Toggle() bool {
	d.open = !d.open
	return d.open
}

// Close hides the drawer. It reports whether the drawer was open.
func (d *Drawer) Close() bool {
	was := d.open
	d.open = false
	return was
}

// IsOpen reports whether the drawer is shown.
func (d *Drawer) IsOpen() bool { return d.open }
