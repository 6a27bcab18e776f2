package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleFeed() []StatRecord {
	return []StatRecord{
		{ID: "1", Driver: "Max Verstappen", Team: "Red Bull Racing", Category: CategoryTiming},
		{ID: "2", Driver: "Lewis Hamilton", Team: "Mercedes", Category: CategoryPosition},
		{ID: "3", Driver: "Lando Norris", Team: "McLaren", Category: CategoryGeneral},
		{ID: "4", Driver: "Max Verstappen", Team: "Red Bull Racing", Category: CategoryTelemetry},
		{ID: "5", Category: CategoryWeather},
		{ID: "6", Category: CategoryGeneral},
	}
}

func ids(records []StatRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

// isSubsequence reports whether sub appears in full in the same relative order.
func isSubsequence(sub, full []StatRecord) bool {
	i := 0
	for _, r := range full {
		if i < len(sub) && sub[i].ID == r.ID {
			i++
		}
	}
	return i == len(sub)
}

func filterSets() []FilterSet {
	return []FilterSet{
		{},
		{Drivers: []string{"Max Verstappen"}},
		{Drivers: []string{"Lewis Hamilton", "Lando Norris"}},
		{Categories: []Category{CategoryTiming, CategoryWeather}},
		{Teams: []string{"Mercedes"}},
		{Drivers: []string{"Max Verstappen"}, Categories: []Category{CategoryTelemetry}},
		{Drivers: []string{"Nobody"}, Teams: []string{"Nobody"}, Categories: []Category{CategoryGeneral}},
	}
}

func TestFilter_ScenarioDriverOnly(t *testing.T) {
	feed := []StatRecord{
		{ID: "a", Driver: "Max Verstappen", Category: CategoryTiming},
		{ID: "b", Driver: "Lewis Hamilton", Category: CategoryPosition},
	}
	got := Filter(feed, FilterSet{Drivers: []string{"Max Verstappen"}, Teams: []string{}, Categories: []Category{}})

	require.Len(t, got, 1)
	assert.Equal(t, "Max Verstappen", got[0].Driver)
	assert.Equal(t, CategoryTiming, got[0].Category)
}

func TestFilter_IsOrderedSubsequence(t *testing.T) {
	feed := sampleFeed()
	for _, f := range filterSets() {
		got := Filter(feed, f)
		assert.True(t, isSubsequence(got, feed), "filter %+v", f)
		seen := map[string]bool{}
		for _, r := range got {
			assert.False(t, seen[r.ID], "duplicate %s", r.ID)
			seen[r.ID] = true
		}
	}
}

func TestFilter_Idempotent(t *testing.T) {
	feed := sampleFeed()
	for _, f := range filterSets() {
		once := Filter(feed, f)
		twice := Filter(once, f)
		assert.Equal(t, ids(once), ids(twice), "filter %+v", f)
	}
}

func TestFilter_EmptyDriversExcludesNothingOnDriver(t *testing.T) {
	feed := sampleFeed()
	got := Filter(feed, FilterSet{Categories: []Category{CategoryTiming, CategoryPosition, CategoryTelemetry, CategoryWeather, CategoryGeneral}})
	assert.Equal(t, ids(feed), ids(got))
}

func TestFilter_EmptyCategoriesExcludesNothingOnCategory(t *testing.T) {
	feed := sampleFeed()
	got := Filter(feed, FilterSet{Drivers: []string{"Max Verstappen", "Lewis Hamilton", "Lando Norris"}})
	assert.Equal(t, ids(feed), ids(got))
}

func TestFilter_RecordsWithoutDriverPassDriverClause(t *testing.T) {
	got := Filter(sampleFeed(), FilterSet{Drivers: []string{"Lewis Hamilton"}})
	assert.Equal(t, []string{"2", "5", "6"}, ids(got))
}

func TestFilter_TeamClause(t *testing.T) {
	got := Filter(sampleFeed(), FilterSet{Teams: []string{"Red Bull Racing"}})
	assert.Equal(t, []string{"1", "4", "5", "6"}, ids(got))
}

func TestFilter_CombinedClauses(t *testing.T) {
	got := Filter(sampleFeed(), FilterSet{
		Drivers:    []string{"Max Verstappen"},
		Categories: []Category{CategoryTelemetry, CategoryWeather},
	})
	assert.Equal(t, []string{"4", "5"}, ids(got))
}

func TestFilter_EmptyFeed(t *testing.T) {
	assert.Empty(t, Filter(nil, FilterSet{Drivers: []string{"Max Verstappen"}}))
}

func TestFilterSet_Toggle(t *testing.T) {
	f := FilterSet{}.Clone()

	f, err := f.Toggle("drivers", "Max Verstappen")
	require.NoError(t, err)
	assert.Equal(t, []string{"Max Verstappen"}, f.Drivers)

	f, err = f.Toggle("categories", "weather")
	require.NoError(t, err)
	assert.Equal(t, []Category{CategoryWeather}, f.Categories)

	f, err = f.Toggle("drivers", "Max Verstappen")
	require.NoError(t, err)
	assert.Empty(t, f.Drivers)
}

func TestFilterSet_ToggleDoesNotMutateReceiver(t *testing.T) {
	orig := FilterSet{Teams: []string{"Mercedes", "Ferrari"}}
	_, err := orig.Toggle("teams", "Mercedes")
	require.NoError(t, err)
	assert.Equal(t, []string{"Mercedes", "Ferrari"}, orig.Teams)
}

func TestFilterSet_ToggleErrors(t *testing.T) {
	_, err := FilterSet{}.Toggle("categories", "rumours")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = FilterSet{}.Toggle("tyres", "soft")
	assert.ErrorIs(t, err, ErrUnknownDimension)
}

func TestFilterSet_KeyIgnoresOrder(t *testing.T) {
	a := FilterSet{Drivers: []string{"A", "B"}, Categories: []Category{CategoryWeather, CategoryTiming}}
	b := FilterSet{Drivers: []string{"B", "A"}, Categories: []Category{CategoryTiming, CategoryWeather}}
	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), FilterSet{}.Key())
}

func TestFilterSet_KeyDoesNotCollideOnSeparators(t *testing.T) {
	two := FilterSet{Drivers: []string{"Max Verstappen", "Lewis Hamilton"}}
	one := FilterSet{Drivers: []string{"Lewis Hamilton,Max Verstappen"}}
	assert.NotEqual(t, two.Key(), one.Key())

	driver := FilterSet{Drivers: []string{"Ferrari"}}
	team := FilterSet{Teams: []string{"Ferrari"}}
	assert.NotEqual(t, driver.Key(), team.Key())

	piped := FilterSet{Drivers: []string{"A|B"}}
	split := FilterSet{Drivers: []string{"A"}, Teams: []string{"B"}}
	assert.NotEqual(t, piped.Key(), split.Key())
}

func TestFilterSet_Sorted(t *testing.T) {
	f := FilterSet{
		Drivers:    []string{"Max Verstappen", "Lewis Hamilton"},
		Categories: []Category{CategoryWeather, CategoryTiming},
	}
	sorted := f.Sorted()
	assert.Equal(t, []string{"Lewis Hamilton", "Max Verstappen"}, sorted.Drivers)
	assert.Equal(t, []Category{CategoryTiming, CategoryWeather}, sorted.Categories)
	assert.Equal(t, []string{}, sorted.Teams)
	// receiver untouched
	assert.Equal(t, "Max Verstappen", f.Drivers[0])
}

func TestFilterSet_Normalize(t *testing.T) {
	f := FilterSet{
		Drivers:    []string{"Max Verstappen", "", "Max Verstappen", "Lando Norris"},
		Categories: []Category{CategoryTiming, CategoryTiming},
	}.Normalize()

	assert.Equal(t, []string{"Max Verstappen", "Lando Norris"}, f.Drivers)
	assert.Equal(t, []string{}, f.Teams)
	assert.Equal(t, []Category{CategoryTiming}, f.Categories)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("telemetry")
	require.NoError(t, err)
	assert.Equal(t, CategoryTelemetry, c)

	_, err = ParseCategory("Telemetry")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}
