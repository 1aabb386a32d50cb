package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReferencePhrase is the canonical text a user is asked to write down,
// stored per (ID, Language).
type ReferencePhrase struct {
	ID        uuid.UUID
	Language  string
	Text      string
	LessonID  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}
