package knowledge

import "strings"

// Category is an academic subject grouping. Keywords are representative
// phrases used both to build the category's embedding text and as the
// substring filter on the rule-based retrieval path.
type Category struct {
	ID       string
	Keywords []string
}

// RepresentativeText returns the text embedded to produce the category's
// reference vector: the identifier followed by every keyword phrase.
func (c *Category) RepresentativeText() string {
	return c.ID + " " + strings.Join(c.Keywords, " ")
}

// Scenario is a detectable student context, such as starting a degree or
// writing a thesis. Keywords are the detection phrases matched against
// queries.
type Scenario struct {
	ID       string
	Keywords []string
}

// Rule maps a keyword set to a category for rule-based classification.
// Rules are evaluated in declaration order and the first match wins, so a
// rule's position in Base.Rules is part of its meaning.
type Rule struct {
	Category string
	Keywords []string
}

// Template holds the recommendation content for a category, plus tips keyed
// by scenario identifier.
type Template struct {
	Category        string
	RelatedSubjects []string
	TypicalProducts []string
	ScenarioTips    map[string][]string
}

// Recommendation is the structured bundle returned to callers. Lists are
// never nil so the bundle serializes as empty arrays rather than null.
type Recommendation struct {
	Category        string   `json:"category"`
	Scenario        string   `json:"scenario,omitempty"`
	Tips            []string `json:"tips"`
	RelatedSubjects []string `json:"related_subjects"`
	TypicalProducts []string `json:"typical_products"`
}

// Base is the complete academic knowledge base. It is built once, validated,
// and treated as read-only for the process lifetime.
type Base struct {
	Categories []Category
	Scenarios  []Scenario
	Rules      []Rule
	Templates  []Template

	categoryIndex map[string]*Category
	templateIndex map[string]*Template
}

// index builds the lookup maps. Called by Validate; lookups on an
// unvalidated base fall back to a linear scan.
func (b *Base) index() {
	b.categoryIndex = make(map[string]*Category, len(b.Categories))
	for i := range b.Categories {
		b.categoryIndex[b.Categories[i].ID] = &b.Categories[i]
	}
	b.templateIndex = make(map[string]*Template, len(b.Templates))
	for i := range b.Templates {
		b.templateIndex[b.Templates[i].Category] = &b.Templates[i]
	}
}

// Category returns the category with the given identifier, or nil if the
// identifier is unknown.
func (b *Base) Category(id string) *Category {
	if b.categoryIndex != nil {
		return b.categoryIndex[id]
	}
	for i := range b.Categories {
		if b.Categories[i].ID == id {
			return &b.Categories[i]
		}
	}
	return nil
}

// HasScenario reports whether the scenario identifier is defined.
func (b *Base) HasScenario(id string) bool {
	for i := range b.Scenarios {
		if b.Scenarios[i].ID == id {
			return true
		}
	}
	return false
}

func (b *Base) template(category string) *Template {
	if b.templateIndex != nil {
		return b.templateIndex[category]
	}
	for i := range b.Templates {
		if b.Templates[i].Category == category {
			return &b.Templates[i]
		}
	}
	return nil
}

// Recommend assembles the recommendation bundle for a category and optional
// scenario. An unknown category yields a bundle with empty lists rather than
// an error; the operation is advisory and never blocks a response. When no
// scenario-specific tips exist for the pair, the category-level content is
// returned with an empty tip list.
func (b *Base) Recommend(category, scenario string) Recommendation {
	rec := Recommendation{
		Category:        category,
		Scenario:        scenario,
		Tips:            []string{},
		RelatedSubjects: []string{},
		TypicalProducts: []string{},
	}

	if b.Category(category) == nil {
		return rec
	}

	tmpl := b.template(category)
	if tmpl == nil {
		return rec
	}

	rec.RelatedSubjects = append(rec.RelatedSubjects, tmpl.RelatedSubjects...)
	rec.TypicalProducts = append(rec.TypicalProducts, tmpl.TypicalProducts...)
	if scenario != "" {
		if tips, ok := tmpl.ScenarioTips[scenario]; ok {
			rec.Tips = append(rec.Tips, tips...)
		}
	}
	return rec
}
