/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package menu

import "testing"

func TestToggleAndClose(t *testing.T) {
	var d Drawer
	if d.IsOpen() {
		t.Fatalf("drawer starts closed")
	}
	if !d.Toggle() || !d.IsOpen() {
		t.Fatalf("toggle should open")
	}
	if d.Toggle() || d.IsOpen() {
		t.Fatalf("second toggle should close")
	}
	d.Toggle()
	if !d.Close() {
		t.Fatalf("Close should report the drawer was open")
	}
	if d.Close() || d.IsOpen() {
		t.Fatalf("Close must be idempotent")
	}
}
