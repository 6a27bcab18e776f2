package models

import (
	"errors"
	"fmt"
	"time"
)

type Kind string

const (
	KindText  Kind = "text"
	KindChart Kind = "chart"
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Kinds lists every record kind in display order.
var Kinds = []Kind{KindText, KindChart, KindImage, KindVideo}

type Category string

const (
	CategoryTiming    Category = "timing"
	CategoryPosition  Category = "position"
	CategoryTelemetry Category = "telemetry"
	CategoryWeather   Category = "weather"
	CategoryGeneral   Category = "general"
)

var Categories = []Category{CategoryTiming, CategoryPosition, CategoryTelemetry, CategoryWeather, CategoryGeneral}

var (
	ErrUnknownCategory  = errors.New("unknown category")
	ErrUnknownDimension = errors.New("unknown filter dimension")
)

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown kind: %q", s)
}

// StatRecord is one entry of the dashboard feed. Records are immutable once
// appended, so they are passed around by value.
type StatRecord struct {
	ID        string    `json:"id"`
	Kind      Kind      `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp string    `json:"timestamp"`
	Driver    string    `json:"driver,omitempty"`
	Team      string    `json:"team,omitempty"`
	Category  Category  `json:"category"`
	CreatedAt time.Time `json:"-"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
