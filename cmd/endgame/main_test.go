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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"endgame/internal/app"
)

func TestListCatalogDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := listCatalog(&buf, ""); err != nil {
		t.Fatalf("listCatalog: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "latest:\n") || !strings.Contains(out, "prerelease:\n") {
		t.Fatalf("sections missing:\n%s", out)
	}
	if strings.Count(out, "\n") != 9+2 {
		t.Fatalf("expected nine games in two sections:\n%s", out)
	}
}

func TestListCatalogMissingFile(t *testing.T) {
	if err := listCatalog(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing catalog")
	}
}

func TestRunDemo(t *testing.T) {
	var buf bytes.Buffer
	if err := runDemo(&buf, app.Options{}); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"== session started",
		"[Games▾]",
		"cart(2)",
		"dialog: Create Account (open)",
		"dialog: Create Account (exiting)",
		"slide:  New World! 2/2",
		"Checkout is not implemented in this demo.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("demo output missing %q:\n%s", want, out)
		}
	}
	last := out[strings.LastIndex(out, "== exit animation finished"):]
	if strings.Contains(last[:strings.Index(last[1:], "==")+1], "dialog:") {
		t.Fatalf("dialog still mounted after the exit delay:\n%s", last)
	}
}

func TestWriteQuote(t *testing.T) {
	out := filepath.Join(t.TempDir(), "q.pdf")
	if err := writeQuote(out, []string{"1", "2", "1"}, ""); err != nil {
		t.Fatalf("writeQuote: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Fatalf("quote not written: %v", err)
	}
	if err := writeQuote(out, []string{"x"}, ""); err == nil {
		t.Fatal("expected an error for a non-numeric id")
	}
	if err := writeQuote(out, []string{"999"}, ""); err == nil {
		t.Fatal("expected an error for an unknown id")
	}
}
