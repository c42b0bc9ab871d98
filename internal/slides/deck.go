/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package slides

import (
	"time"

	"endgame/internal/sched"
)

// Slide is one hero banner.
type Slide struct {
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
}

// DefaultSlides are the banners shipped with the site.
func DefaultSlides() []Slide {
	return []Slide{
		{
			Title: "Game on!",
			Text:  "Fusce erat dui, venenatis et erat in, vulputate dignissim lacus. Donec vitae tempus dolor, sit amet elementum lorem. Ut cursus tempor turpis.",
		},
		{
			Title: "New World!",
			Text:  "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. Ut enim ad minim veniam.",
		},
	}
}

// Deck pairs banner content with a rotator over it.
type Deck struct {
	*Rotator
	slides []Slide
}

// NewDeck starts rotating slides.
func NewDeck(s sched.Scheduler, slides []Slide, interval time.Duration) (*Deck, error) {
	r, err := NewRotator(s, len(slides), interval)
	if err != nil {
		return nil, err
	}
	return &Deck{Rotator: r, slides: append([]Slide(nil), slides...)}, nil
}

// Current returns the active slide.
func (d *Deck) Current() Slide { return d.slides[d.Active()] }

// Slides returns a copy of all slides.
func (d *Deck) Slides() []Slide { return append([]Slide(nil), d.slides...) }
