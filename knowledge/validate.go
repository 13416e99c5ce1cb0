// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package knowledge

import (
	"fmt"
	"strings"
)

// Validate checks the base for structural defects and builds the internal
// lookup indices. It must be called once before the base is shared; after a
// successful Validate the base is read-only.
func (b *Base) Validate() error {
	seenCategories := make(map[string]bool, len(b.Categories))
	for i := range b.Categories {
		c := &b.Categories[i]
		if strings.TrimSpace(c.ID) == "" {
			return fmt.Errorf("category %d: %w", i, ErrEmptyCategoryID)
		}
		if seenCategories[c.ID] {
			return fmt.Errorf("category %q: %w", c.ID, ErrDuplicateCategory)
		}
		seenCategories[c.ID] = true
		if len(c.Keywords) == 0 {
			return fmt.Errorf("category %q: %w", c.ID, ErrEmptyKeywords)
		}
	}

	seenScenarios := make(map[string]bool, len(b.Scenarios))
	for i := range b.Scenarios {
		s := &b.Scenarios[i]
		if strings.TrimSpace(s.ID) == "" {
			return fmt.Errorf("scenario %d: %w", i, ErrEmptyScenarioID)
		}
		if seenScenarios[s.ID] {
			return fmt.Errorf("scenario %q: %w", s.ID, ErrDuplicateScenario)
		}
		seenScenarios[s.ID] = true
		if len(s.Keywords) == 0 {
			return fmt.Errorf("scenario %q: %w", s.ID, ErrEmptyKeywords)
		}
	}

	for i := range b.Rules {
		r := &b.Rules[i]
		if !seenCategories[r.Category] {
			return fmt.Errorf("rule %d (%q): %w", i, r.Category, ErrUnknownRuleCategory)
		}
		if len(r.Keywords) == 0 {
			return fmt.Errorf("rule %d (%q): %w", i, r.Category, ErrEmptyKeywords)
		}
	}

	for i := range b.Templates {
		t := &b.Templates[i]
		if !seenCategories[t.Category] {
			return fmt.Errorf("template %d (%q): %w", i, t.Category, ErrUnknownTemplateCategory)
		}
		for scenario := range t.ScenarioTips {
			if !seenScenarios[scenario] {
				return fmt.Errorf("template %q, scenario %q: %w",
					t.Category, scenario, ErrUnknownTemplateScenario)
			}
		}
	}

	b.index()
	return nil
}
