/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

// Package catalog loads the list of games that can be put in the cart.
// Catalog files are JSON or YAML and are validated against an embedded JSON
// schema before they are decoded.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gojsonschema "github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"endgame/internal/domain"
)

//go:embed schema.json
var schemaJSON []byte

//go:embed games.json
var defaultJSON []byte

// ErrInvalid wraps every schema or consistency problem.
var ErrInvalid = errors.New("catalog: invalid")

// Section groups games on the Games page.
type Section string

const (
	SectionLatest     Section = "latest"
	SectionPrerelease Section = "prerelease"
)

// Game is a catalog entry.
type Game struct {
	ID       int          `json:"id"`
	Title    string       `json:"title"`
	ImageURL string       `json:"imageUrl,omitempty"`
	Comments int          `json:"comments,omitempty"`
	Views    string       `json:"views,omitempty"`
	Price    domain.Price `json:"price"`
	Section  Section      `json:"section,omitempty"`
}

// Item is the cart payload for g.
func (g Game) Item() domain.CartItem {
	return domain.CartItem{ID: g.ID, Title: g.Title, ImageRef: g.ImageURL, Price: g.Price}
}

// Catalog is an ordered list of games with unique ids.
type Catalog struct {
	Games []Game `json:"games"`
}

// Default returns the catalog shipped with the binary.
func Default() *Catalog {
	c, err := Parse(defaultJSON, ".json")
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// Load reads a catalog file; the extension picks JSON or YAML.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates catalog data. ext is a file extension such as
// ".yaml"; anything that is not YAML is read as JSON.
func Parse(data []byte, ext string) (*Catalog, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrInvalid, err)
		}
		b, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml to json: %v", ErrInvalid, err)
		}
		data = b
	}

	res, err := gojsonschema.Validate(gojsonschema.NewBytesLoader(schemaJSON), gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !res.Valid() {
		msgs := make([]string, 0, len(res.Errors()))
		for _, e := range res.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
	}

	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	seen := make(map[int]bool, len(c.Games))
	for i, g := range c.Games {
		if seen[g.ID] {
			return nil, fmt.Errorf("%w: duplicate game id %d", ErrInvalid, g.ID)
		}
		seen[g.ID] = true
		if g.Section == "" {
			c.Games[i].Section = SectionLatest
		}
	}
	return &c, nil
}

// Find looks a game up by id.
func (c *Catalog) Find(id int) (Game, bool) {
	for _, g := range c.Games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// Section returns the games in s, in catalog order.
func (c *Catalog) Section(s Section) []Game {
	var out []Game
	for _, g := range c.Games {
		if g.Section == s {
			out = append(out, g)
		}
	}
	return out
}
