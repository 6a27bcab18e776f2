package feed

import (
	"fmt"
	"pitwall/internal/models"
	"time"

	"github.com/google/uuid"
)

const (
	ResponseTitle    = "AI Response"
	responseTemplate = "Based on your query \"%s\", here's what I found: This is a mock response that would contain relevant F1 data and insights."
)

// Respond turns free-text input into a canned general/text record. There is
// no query understanding: the prompt is only echoed into the template.
func Respond(prompt string, now time.Time) models.StatRecord {
	return models.StatRecord{
		ID:        uuid.NewString(),
		Kind:      models.KindText,
		Title:     ResponseTitle,
		Content:   fmt.Sprintf(responseTemplate, prompt),
		Timestamp: models.FormatTimestamp(now),
		Category:  models.CategoryGeneral,
		CreatedAt: now,
	}
}
