package feed

import (
	"errors"
	"fmt"
	"os"
	"pitwall/internal/models"
	"pitwall/internal/structures"

	"gopkg.in/yaml.v3"
)

// Entry is one canned stat the generator can emit.
type Entry struct {
	Title    string          `yaml:"title" json:"title"`
	Content  string          `yaml:"content" json:"content"`
	Category models.Category `yaml:"category" json:"category"`
	Driver   string          `yaml:"driver,omitempty" json:"driver,omitempty"`
	Team     string          `yaml:"team,omitempty" json:"team,omitempty"`
	Kind     models.Kind     `yaml:"kind,omitempty" json:"type,omitempty"`
}

// Catalog holds the canned stats plus the driver and team lists offered
// in filter and profile pickers.
type Catalog struct {
	Entries []Entry  `yaml:"entries" json:"entries"`
	Drivers []string `yaml:"drivers" json:"drivers"`
	Teams   []string `yaml:"teams" json:"teams"`
}

var ErrEmptyCatalog = errors.New("catalog has no entries")

func DefaultCatalog() *Catalog {
	return &Catalog{
		Entries: []Entry{
			{
				Title:    "Fastest Lap Alert",
				Content:  "Max Verstappen sets fastest lap with 1:31.456 - 0.3s faster than previous best!",
				Category: models.CategoryTiming,
				Driver:   "Max Verstappen",
				Team:     "Red Bull Racing",
				Kind:     models.KindChart,
			},
			{
				Title:    "Position Change",
				Content:  "Hamilton overtakes Leclerc for P2! Brilliant move at Turn 3.",
				Category: models.CategoryPosition,
				Driver:   "Lewis Hamilton",
				Team:     "Mercedes",
				Kind:     models.KindVideo,
			},
			{
				Title:    "Pit Stop Strategy",
				Content:  "McLaren calls Norris in for fresh mediums. Undercut attempt in progress.",
				Category: models.CategoryGeneral,
				Driver:   "Lando Norris",
				Team:     "McLaren",
				Kind:     models.KindText,
			},
			{
				Title:    "Sector Analysis",
				Content:  "Verstappen dominates Sector 1 with purple times - 0.2s advantage over the field.",
				Category: models.CategoryTelemetry,
				Driver:   "Max Verstappen",
				Team:     "Red Bull Racing",
				Kind:     models.KindChart,
			},
			{
				Title:    "Weather Update",
				Content:  "Light rain detected at Turn 7. Teams monitoring conditions closely.",
				Category: models.CategoryWeather,
				Kind:     models.KindImage,
			},
		},
		Drivers: []string{
			"Max Verstappen", "Lewis Hamilton", "Charles Leclerc", "Lando Norris",
			"George Russell", "Carlos Sainz", "Sergio Perez", "Fernando Alonso",
		},
		Teams: []string{
			"Red Bull Racing", "Mercedes", "Ferrari", "McLaren",
			"Aston Martin", "Alpine", "Williams", "AlphaTauri",
		},
	}
}

func (c *Catalog) Validate() error {
	if len(c.Entries) == 0 {
		return ErrEmptyCatalog
	}
	for i, e := range c.Entries {
		if e.Title == "" {
			return fmt.Errorf("entry %d: title is required", i)
		}
		if _, err := models.ParseCategory(string(e.Category)); err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if e.Kind != "" {
			if _, err := models.ParseKind(string(e.Kind)); err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
		}
	}
	return nil
}

// LoadCatalog reads a YAML catalog. An empty path yields the built-in one.
// Driver and team lists missing from the file fall back to the defaults.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	def := DefaultCatalog()
	if len(c.Drivers) == 0 {
		c.Drivers = def.Drivers
	}
	if len(c.Teams) == 0 {
		c.Teams = def.Teams
	}
	return &c, nil
}

func NewCatalog(conf *structures.Config) (*Catalog, error) {
	return LoadCatalog(conf.Feed.CatalogPath)
}
