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
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ErrInvalidPrice is returned for negative, non-finite, out-of-range or unparsable prices.
var ErrInvalidPrice = errors.New("invalid price")

// Price is an amount in US cents. Integer storage keeps cart totals exact.
type Price int64

// maxCents is 2^63 as a float64; every smaller whole value converts to int64.
const maxCents = float64(math.MaxInt64)

// PriceFromFloat rounds a dollar amount to the nearest cent. Amounts too
// large for a Price saturate; use ParsePrice for untrusted input.
func PriceFromFloat(f float64) Price {
	c := math.Round(f * 100)
	switch {
	case c >= maxCents:
		return math.MaxInt64
	case c <= -maxCents:
		return math.MinInt64
	}
	return Price(c)
}

// ParsePrice parses "59.99" or "$59.99".
func ParsePrice(s string) (Price, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, s)
	}
	return checkedPrice(f)
}

func checkedPrice(f float64) (Price, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || math.Round(f*100) >= maxCents {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, f)
	}
	return PriceFromFloat(f), nil
}

// Float64 returns the amount in dollars.
func (p Price) Float64() float64 { return float64(p) / 100 }

// String renders the amount with two decimals and no currency symbol.
func (p Price) String() string {
	sign := ""
	v := int64(p)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Format renders the amount as US dollars using the number conventions of tag.
func (p Price) Format(tag language.Tag) string {
	return message.NewPrinter(tag).Sprint(currency.Symbol(currency.USD.Amount(p.Float64())))
}

func (p Price) MarshalJSON() ([]byte, error) { return []byte(p.String()), nil }

func (p *Price) UnmarshalJSON(b []byte) error {
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidPrice, string(b))
	}
	v, err := checkedPrice(f)
	if err != nil {
		return err
	}
	*p = v
	return nil
}
