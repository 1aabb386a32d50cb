package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation"
)

type dictationService interface {
	SubmitAttempt(ctx context.Context, input dictation.SubmitAttemptInput) (*dictation.SubmitResult, error)
	PreviewAttempt(ctx context.Context, input dictation.PreviewAttemptInput) (*dictation.PreviewResult, error)
	GetAttempt(ctx context.Context, attemptID uuid.UUID) (*domain.DictationAttempt, error)
	ListAttempts(ctx context.Context, input dictation.ListAttemptsInput) ([]domain.DictationAttempt, int, error)
	ListMastery(ctx context.Context, input dictation.ListMasteryInput) ([]domain.WordMasteryRecord, int, error)
}

// DictationHandler serves the /dictation endpoints.
type DictationHandler struct {
	svc      dictationService
	maxBytes int64
	log      *slog.Logger
}

// NewDictationHandler creates a DictationHandler. Request bodies larger than
// maxBytes are rejected with 413.
func NewDictationHandler(svc dictationService, maxBytes int64, logger *slog.Logger) *DictationHandler {
	return &DictationHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "dictation")}
}

type submitRequest struct {
	LessonID uuid.UUID `json:"lesson_id"`
	PhraseID uuid.UUID `json:"phrase_id"`
	Language string    `json:"language"`
	UserText *string   `json:"user_text"`
}

type previewRequest struct {
	PhraseID uuid.UUID `json:"phrase_id"`
	Language string    `json:"language"`
	UserText *string   `json:"user_text"`
}

type submitResponse struct {
	Attempt     attemptResponse   `json:"attempt"`
	IsCorrect   bool              `json:"is_correct"`
	WER         werResponse       `json:"wer"`
	Mastery     []masteryResponse `json:"mastery"`
	FailedWords []string          `json:"failed_words"`
}

type previewResponse struct {
	ReferenceText string             `json:"reference_text"`
	OverallScore  float64            `json:"overall_score"`
	IsCorrect     bool               `json:"is_correct"`
	Feedback      []feedbackResponse `json:"feedback"`
	WER           werResponse        `json:"wer"`
	Mastery       []masteryResponse  `json:"mastery"`
}

// Submit handles POST /dictation/attempts.
func (h *DictationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.SubmitAttempt(r.Context(), dictation.SubmitAttemptInput{
		LessonID: req.LessonID,
		PhraseID: req.PhraseID,
		Language: req.Language,
		UserText: req.UserText,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, submitResponse{
		Attempt:     toAttemptResponse(res.Attempt),
		IsCorrect:   res.IsCorrect,
		WER:         toWERResponse(res.WER),
		Mastery:     toMasteryResponse(res.Mastery),
		FailedWords: res.FailedWords,
	})
}

// Preview handles POST /dictation/attempts/preview.
func (h *DictationHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	res, err := h.svc.PreviewAttempt(r.Context(), dictation.PreviewAttemptInput{
		PhraseID: req.PhraseID,
		Language: req.Language,
		UserText: req.UserText,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, previewResponse{
		ReferenceText: res.ReferenceText,
		OverallScore:  res.OverallScore,
		IsCorrect:     res.IsCorrect,
		Feedback:      toFeedbackResponse(res.Feedback),
		WER:           toWERResponse(res.WER),
		Mastery:       toMasteryResponse(res.Mastery),
	})
}

// GetAttempt handles GET /dictation/attempts/{id}.
func (h *DictationHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	attempt, err := h.svc.GetAttempt(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAttemptResponse(attempt))
}

// ListAttempts handles GET /dictation/attempts.
func (h *DictationHandler) ListAttempts(w http.ResponseWriter, r *http.Request) {
	var (
		in   dictation.ListAttemptsInput
		errs []domain.FieldError
	)
	in.LessonID, errs = queryUUID(r, "lesson_id", errs)
	in.PhraseID, errs = queryUUID(r, "phrase_id", errs)
	in.Limit, errs = queryInt(r, "limit", errs)
	in.Offset, errs = queryInt(r, "offset", errs)
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	attempts, total, err := h.svc.ListAttempts(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]attemptResponse, len(attempts))
	for i := range attempts {
		items[i] = toAttemptResponse(&attempts[i])
	}
	writeJSON(w, http.StatusOK, listResponse[attemptResponse]{Items: items, Total: total})
}

// ListMastery handles GET /dictation/mastery.
func (h *DictationHandler) ListMastery(w http.ResponseWriter, r *http.Request) {
	var (
		in   dictation.ListMasteryInput
		errs []domain.FieldError
	)
	q := r.URL.Query()
	in.Language = q.Get("language")
	switch q.Get("needs_practice") {
	case "", "false", "0":
	case "true", "1":
		in.NeedsPracticeOnly = true
	default:
		errs = append(errs, domain.FieldError{Field: "needs_practice", Message: "must be a boolean"})
	}
	in.Limit, errs = queryInt(r, "limit", errs)
	in.Offset, errs = queryInt(r, "offset", errs)
	if len(errs) > 0 {
		handleError(h.log, w, r, domain.NewValidationErrors(errs))
		return
	}

	records, total, err := h.svc.ListMastery(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse[masteryResponse]{Items: toMasteryResponse(records), Total: total})
}
