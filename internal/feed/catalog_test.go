package feed

import (
	"os"
	"path/filepath"
	"pitwall/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_Valid(t *testing.T) {
	c := DefaultCatalog()
	require.NoError(t, c.Validate())
	assert.Len(t, c.Entries, 5)
	assert.Len(t, c.Drivers, 8)
	assert.Len(t, c.Teams, 8)
}

func TestLoadCatalog_EmptyPath(t *testing.T) {
	c, err := LoadCatalog("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), c)
}

func TestLoadCatalog_ExampleFile(t *testing.T) {
	c, err := LoadCatalog("../../catalog.example.yaml")
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	require.Len(t, c.Entries, 4)
	assert.Equal(t, "Max Verstappen", c.Entries[0].Driver)
	assert.Equal(t, models.KindChart, c.Entries[0].Kind)
	assert.Contains(t, c.Teams, "McLaren")
}

func TestLoadCatalog_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
entries:
  - title: Safety Car
    content: Safety car deployed after debris at Turn 1.
    category: general
  - title: Tyre Delta
    content: Softs 0.8s faster than mediums on a single lap.
    category: telemetry
    driver: Charles Leclerc
    team: Ferrari
    kind: chart
teams: [Ferrari]
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, c.Entries, 2)
	assert.Equal(t, models.CategoryTelemetry, c.Entries[1].Category)
	assert.Equal(t, models.KindChart, c.Entries[1].Kind)
	assert.Equal(t, []string{"Ferrari"}, c.Teams)
	assert.Equal(t, DefaultCatalog().Drivers, c.Drivers)
}

func TestLoadCatalog_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("entries:\n  - title: X\n    category: gossip\n"), 0644))
	_, err := LoadCatalog(bad)
	assert.ErrorIs(t, err, models.ErrUnknownCategory)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("drivers: [A]\n"), 0644))
	_, err = LoadCatalog(empty)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = LoadCatalog(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
