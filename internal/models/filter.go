package models

import (
	json "github.com/goccy/go-json"
	"slices"
	"strings"
)

type FilterSet struct {
	Drivers    []string   `json:"drivers"`
	Teams      []string   `json:"teams"`
	Categories []Category `json:"categories"`
}

func (f FilterSet) IsEmpty() bool {
	return len(f.Drivers) == 0 && len(f.Teams) == 0 && len(f.Categories) == 0
}

// Clone returns a deep copy so callers can hold the set without sharing
// backing arrays with the session.
func (f FilterSet) Clone() FilterSet {
	return FilterSet{
		Drivers:    append([]string{}, f.Drivers...),
		Teams:      append([]string{}, f.Teams...),
		Categories: append([]Category{}, f.Categories...),
	}
}

// Normalize drops empty and duplicate values, keeping first occurrence order.
func (f FilterSet) Normalize() FilterSet {
	cats := make([]string, 0, len(f.Categories))
	for _, c := range f.Categories {
		cats = append(cats, string(c))
	}
	out := FilterSet{
		Drivers: Dedupe(f.Drivers),
		Teams:   Dedupe(f.Teams),
	}
	for _, c := range Dedupe(cats) {
		out.Categories = append(out.Categories, Category(c))
	}
	if out.Categories == nil {
		out.Categories = []Category{}
	}
	return out
}

// Toggle adds value to the named dimension or removes it if already present.
func (f FilterSet) Toggle(dimension, value string) (FilterSet, error) {
	out := f.Clone()
	switch dimension {
	case "drivers":
		out.Drivers = toggle(out.Drivers, value)
	case "teams":
		out.Teams = toggle(out.Teams, value)
	case "categories":
		c, err := ParseCategory(value)
		if err != nil {
			return f, err
		}
		cats := make([]string, 0, len(out.Categories))
		for _, v := range out.Categories {
			cats = append(cats, string(v))
		}
		out.Categories = out.Categories[:0]
		for _, v := range toggle(cats, string(c)) {
			out.Categories = append(out.Categories, Category(v))
		}
	default:
		return f, ErrUnknownDimension
	}
	return out, nil
}

// Sorted returns a copy with every dimension in ascending order.
func (f FilterSet) Sorted() FilterSet {
	out := f.Clone()
	slices.Sort(out.Drivers)
	slices.Sort(out.Teams)
	slices.Sort(out.Categories)
	return out
}

// Key is a stable string form of the set, independent of selection order.
// Values are JSON encoded so separators inside a value cannot collide.
func (f FilterSet) Key() string {
	key, _ := json.Marshal(f.Sorted())
	return string(key)
}

// Matches reports whether a single record passes every active clause.
// Records without a driver or team are never excluded on those grounds.
func (f FilterSet) Matches(r StatRecord) bool {
	if len(f.Drivers) > 0 && r.Driver != "" && !slices.Contains(f.Drivers, r.Driver) {
		return false
	}
	if len(f.Teams) > 0 && r.Team != "" && !slices.Contains(f.Teams, r.Team) {
		return false
	}
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, r.Category) {
		return false
	}
	return true
}

// Filter returns the records that match f, in their original order.
// It never mutates records and never allocates when f is empty.
func Filter(records []StatRecord, f FilterSet) []StatRecord {
	if f.IsEmpty() {
		return records
	}
	out := make([]StatRecord, 0, len(records))
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Dedupe removes empty strings and repeats, keeping first occurrence order.
func Dedupe(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func toggle(values []string, value string) []string {
	if i := slices.Index(values, value); i >= 0 {
		return slices.Delete(values, i, i+1)
	}
	return append(values, value)
}
