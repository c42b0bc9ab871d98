/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package export renders the cart as a printable quote.
package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/text/language"

	"endgame/internal/domain"
)

// ErrEmptyQuote is returned when there is nothing to put on a quote.
var ErrEmptyQuote = errors.New("quote has no items")

// QuoteOptions controls the quote layout. Units are points on an A4 page.
type QuoteOptions struct {
	Title string
	Lang  language.Tag
	Date  time.Time
}

// ExportQuotePDF writes a one-page quote listing items and their total to outPath.
func ExportQuotePDF(items []domain.CartItem, outPath string, opt QuoteOptions) error {
	if len(items) == 0 {
		return ErrEmptyQuote
	}
	if opt.Title == "" {
		opt.Title = "Endgame Quote"
	}
	if opt.Lang == language.Und {
		opt.Lang = language.AmericanEnglish
	}
	if opt.Date.IsZero() {
		opt.Date = time.Now()
	}

	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetTitle(opt.Title, false)
	pdf.SetAuthor("Endgame", false)
	pdf.AddPage()

	const (
		left   = 56.0
		idW    = 50.0
		titleW = 330.0
		priceW = 100.0
		rowH   = 20.0
	)

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetXY(left, 56)
	pdf.CellFormat(idW+titleW+priceW, 28, opt.Title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetX(left)
	pdf.CellFormat(idW+titleW+priceW, 16, opt.Date.Format("2006-01-02"), "", 1, "L", false, 0, "")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	pdf.SetX(left)
	pdf.CellFormat(idW, rowH, "#", "B", 0, "L", true, 0, "")
	pdf.CellFormat(titleW, rowH, "Game", "B", 0, "L", true, 0, "")
	pdf.CellFormat(priceW, rowH, "Price", "B", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	var total domain.Price
	for _, it := range items {
		total += it.Price
		pdf.SetX(left)
		pdf.CellFormat(idW, rowH, fmt.Sprintf("%d", it.ID), "", 0, "L", false, 0, "")
		pdf.CellFormat(titleW, rowH, it.Title, "", 0, "L", false, 0, "")
		pdf.CellFormat(priceW, rowH, it.Price.Format(opt.Lang), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetX(left)
	pdf.CellFormat(idW+titleW, rowH, fmt.Sprintf("Total (%d items)", len(items)), "T", 0, "L", false, 0, "")
	pdf.CellFormat(priceW, rowH, total.Format(opt.Lang), "T", 1, "R", false, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render quote: %w", err)
	}
	if dir := filepath.Dir(outPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure out dir: %w", err)
		}
	}
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
