/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package domain

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestParsePrice(t *testing.T) {
	cases := map[string]Price{"59.99": 5999, "$19.99": 1999, "0": 0, " 69.990 ": 6999}
	for in, want := range cases {
		got, err := ParsePrice(in)
		if err != nil {
			t.Fatalf("ParsePrice(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePrice(%q) = %d, want %d", in, got, want)
		}
	}
	for _, bad := range []string{"-1", "abc", "NaN", "", "1e300", "+Inf"} {
		if _, err := ParsePrice(bad); !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("ParsePrice(%q) expected ErrInvalidPrice, got %v", bad, err)
		}
	}
}

func TestPriceStringAndFloat(t *testing.T) {
	p := PriceFromFloat(59.99) + PriceFromFloat(49.99)
	if p.String() != "109.98" {
		t.Fatalf("String() = %q", p.String())
	}
	if p.Float64() != 109.98 {
		t.Fatalf("Float64() = %v", p.Float64())
	}
	if Price(5).String() != "0.05" {
		t.Fatalf("small amounts need zero padding, got %q", Price(5).String())
	}
	if s := PriceFromFloat(59.99).Format(language.AmericanEnglish); !strings.Contains(s, "59.99") {
		t.Fatalf("Format() = %q, want amount in output", s)
	}
}

func TestCartItemJSONUsesDecimalPrice(t *testing.T) {
	var it CartItem
	if err := json.Unmarshal([]byte(`{"id":1,"title":"Cyberpunk Shield","price":59.99}`), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.Price != 5999 {
		t.Fatalf("price = %d, want 5999", it.Price)
	}
	b, err := json.Marshal(it)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"price":59.99`) {
		t.Fatalf("unexpected json: %s", b)
	}
	if err := json.Unmarshal([]byte(`{"id":2,"price":-3}`), &it); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("negative price should be rejected, got %v", err)
	}
}

func TestParsePage(t *testing.T) {
	if p, ok := ParsePage("games"); !ok || p != PageGames {
		t.Fatalf("ParsePage(games) = %q, %v", p, ok)
	}
	if _, ok := ParsePage("Shop"); ok {
		t.Fatalf("unknown page accepted")
	}
	if Page("Shop").Valid() {
		t.Fatalf("Valid() accepted unknown page")
	}
}

func TestModalPhaseTransient(t *testing.T) {
	if PhaseClosed.Transient() || PhaseOpen.Transient() {
		t.Fatalf("stable phases reported transient")
	}
	if !PhaseEntering.Transient() || !PhaseExiting.Transient() {
		t.Fatalf("animated phases reported stable")
	}
	if FormLogin.Other() != FormRegister || FormRegister.Other() != FormLogin {
		t.Fatalf("Other() must flip the form")
	}
}

func TestUnmarshalRejectsOutOfRangePrice(t *testing.T) {
	var p Price
	if err := json.Unmarshal([]byte("1e300"), &p); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice for 1e300, got %v (value %d)", err, p)
	}
	if err := json.Unmarshal([]byte("1e17"), &p); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice for 1e17, got %v", err)
	}
	if err := json.Unmarshal([]byte("1e16"), &p); err != nil || p != Price(1e18) {
		t.Fatalf("1e16 dollars should fit, got %d, %v", p, err)
	}
}

func TestPriceFromFloatSaturates(t *testing.T) {
	if p := PriceFromFloat(1e300); p != Price(math.MaxInt64) {
		t.Fatalf("PriceFromFloat(1e300) = %d, want MaxInt64", p)
	}
	if p := PriceFromFloat(-1e300); p != Price(math.MinInt64) {
		t.Fatalf("PriceFromFloat(-1e300) = %d, want MinInt64", p)
	}
}
