package dictation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
)

// DefaultLimit is the page size used when a listing does not set one.
const DefaultLimit = 50

var languagePattern = regexp.MustCompile(`^[a-z]{2,3}(-[A-Za-z]{2,4})?$`)

// SubmitAttemptInput holds the parameters for scoring and storing an attempt.
// UserText is a pointer so a missing field can be told apart from an empty
// transcription, which is valid and scores 0.
type SubmitAttemptInput struct {
	LessonID uuid.UUID
	PhraseID uuid.UUID
	Language string
	UserText *string
}

// Validate checks all fields and collects all errors.
func (i SubmitAttemptInput) Validate(maxInput int) error {
	var errs []domain.FieldError

	if i.LessonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lesson_id", Message: "required"})
	}
	errs = validatePhraseRef(errs, i.PhraseID, i.Language)
	errs = validateUserText(errs, i.UserText, maxInput)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// PreviewAttemptInput holds the parameters for scoring without storing.
type PreviewAttemptInput struct {
	PhraseID uuid.UUID
	Language string
	UserText *string
}

// Validate checks all fields and collects all errors.
func (i PreviewAttemptInput) Validate(maxInput int) error {
	var errs []domain.FieldError

	errs = validatePhraseRef(errs, i.PhraseID, i.Language)
	errs = validateUserText(errs, i.UserText, maxInput)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListAttemptsInput holds the parameters for listing attempt history.
type ListAttemptsInput struct {
	LessonID *uuid.UUID
	PhraseID *uuid.UUID
	Limit    int
	Offset   int
}

// Validate checks all fields and collects all errors.
func (i ListAttemptsInput) Validate(maxLimit int) error {
	errs := validatePage(nil, i.Limit, i.Offset, maxLimit)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListMasteryInput holds the parameters for listing word mastery.
type ListMasteryInput struct {
	Language          string
	NeedsPracticeOnly bool
	Limit             int
	Offset            int
}

// Validate checks all fields and collects all errors.
func (i ListMasteryInput) Validate(maxLimit int) error {
	var errs []domain.FieldError
	if i.Language != "" && !languagePattern.MatchString(i.Language) {
		errs = append(errs, domain.FieldError{Field: "language", Message: "invalid language code"})
	}
	errs = validatePage(errs, i.Limit, i.Offset, maxLimit)
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// CreatePhraseInput holds the parameters for storing a reference phrase.
type CreatePhraseInput struct {
	ID       uuid.UUID
	Language string
	Text     string
	LessonID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreatePhraseInput) Validate(maxReference int) error {
	var errs []domain.FieldError

	errs = validatePhraseRef(errs, i.ID, i.Language)

	text := strings.TrimSpace(i.Text)
	switch {
	case text == "":
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	case !utf8.ValidString(text):
		errs = append(errs, domain.FieldError{Field: "text", Message: "must be valid UTF-8"})
	case utf8.RuneCountInString(text) > maxReference:
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", maxReference)})
	}

	if i.LessonID != nil && *i.LessonID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "lesson_id", Message: "must not be the nil UUID"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validatePhraseRef(errs []domain.FieldError, phraseID uuid.UUID, language string) []domain.FieldError {
	if phraseID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "phrase_id", Message: "required"})
	}
	switch {
	case language == "":
		errs = append(errs, domain.FieldError{Field: "language", Message: "required"})
	case !languagePattern.MatchString(language):
		errs = append(errs, domain.FieldError{Field: "language", Message: "invalid language code"})
	}
	return errs
}

func validateUserText(errs []domain.FieldError, text *string, maxInput int) []domain.FieldError {
	switch {
	case text == nil:
		errs = append(errs, domain.FieldError{Field: "user_text", Message: "required"})
	case !utf8.ValidString(*text):
		errs = append(errs, domain.FieldError{Field: "user_text", Message: "must be valid UTF-8"})
	case utf8.RuneCountInString(*text) > maxInput:
		errs = append(errs, domain.FieldError{Field: "user_text", Message: fmt.Sprintf("max %d characters", maxInput)})
	}
	return errs
}

func validatePage(errs []domain.FieldError, limit, offset, maxLimit int) []domain.FieldError {
	if limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if limit > maxLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("max %d", maxLimit)})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	return errs
}
