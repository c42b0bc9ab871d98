/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the
 *  specific language governing permissions and limitations under the License.
 */

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"endgame/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	require.Len(t, c.Games, 9)
	require.Len(t, c.Section(SectionLatest), 6)
	require.Len(t, c.Section(SectionPrerelease), 3)

	g, ok := c.Find(1)
	require.True(t, ok)
	require.Equal(t, "Cyberpunk Shield", g.Title)

	it := g.Item()
	require.Equal(t, domain.CartItem{ID: 1, Title: "Cyberpunk Shield", ImageRef: g.ImageURL, Price: 5999}, it)

	_, ok = c.Find(99)
	require.False(t, ok)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.yaml")
	doc := `games:
  - id: 10
    title: Pixel Knights
    price: 9.5
  - id: 11
    title: Orbit Rush
    price: 0
    section: prerelease
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Len(t, c.Games, 2)
	require.Equal(t, domain.Price(950), c.Games[0].Price)
	require.Equal(t, SectionLatest, c.Games[0].Section, "section defaults to latest")
	require.Equal(t, SectionPrerelease, c.Games[1].Section)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	cases := map[string]string{
		"negative price": `{"games":[{"id":1,"title":"x","price":-1}]}`,
		"missing title":  `{"games":[{"id":1,"price":1}]}`,
		"unknown field":  `{"games":[{"id":1,"title":"x","price":1,"rating":5}]}`,
		"bad section":    `{"games":[{"id":1,"title":"x","price":1,"section":"sale"}]}`,
		"duplicate id":   `{"games":[{"id":1,"title":"x","price":1},{"id":1,"title":"y","price":2}]}`,
		"huge price":     `{"games":[{"id":1,"title":"x","price":1e300}]}`,
		"not json":       `games: [`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc), ".json")
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalid), "want ErrInvalid, got %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}
