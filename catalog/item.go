package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Item is a catalog entry (a book or other academic product) as exposed by
// the catalog provider. Items are passed by value through the matching
// pipeline, so callers' slices are never mutated.
type Item struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	CategoryName string  `json:"categoryName"`
	Price        float64 `json:"price"`
}

// RepresentativeText combines name and description into the text used for
// similarity matching. The result may be blank when both fields are empty;
// callers skip such items.
func (i Item) RepresentativeText() string {
	return strings.TrimSpace(i.Name + " " + i.Description)
}

// UnmarshalJSON decodes an item leniently. The provider has been observed
// sending numeric ids and numeric prices as strings, so both forms are
// accepted; missing fields decode to zero values.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           json.RawMessage `json:"id"`
		Name         string          `json:"name"`
		Description  string          `json:"description"`
		CategoryName string          `json:"categoryName"`
		Price        json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	i.Name = raw.Name
	i.Description = raw.Description
	i.CategoryName = raw.CategoryName
	i.ID = flexibleString(raw.ID)
	i.Price = flexibleFloat(raw.Price)
	return nil
}

func flexibleString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func flexibleFloat(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return 0
}
