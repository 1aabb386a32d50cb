package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation"
)

type phraseService interface {
	GetPhrase(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, error)
	CreatePhrase(ctx context.Context, input dictation.CreatePhraseInput) (*domain.ReferencePhrase, error)
	ListLessonPhrases(ctx context.Context, lessonID uuid.UUID, language string) ([]domain.ReferencePhrase, error)
}

// PhraseHandler serves reference phrase lookup and storage.
type PhraseHandler struct {
	svc      phraseService
	maxBytes int64
	log      *slog.Logger
}

// NewPhraseHandler creates a PhraseHandler.
func NewPhraseHandler(svc phraseService, maxBytes int64, logger *slog.Logger) *PhraseHandler {
	return &PhraseHandler{svc: svc, maxBytes: maxBytes, log: logger.With("handler", "phrase")}
}

type putPhraseRequest struct {
	Language string     `json:"language"`
	Text     string     `json:"text"`
	LessonID *uuid.UUID `json:"lesson_id"`
}

// Get handles GET /phrases/{id}?language=.
func (h *PhraseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	phrase, err := h.svc.GetPhrase(r.Context(), id, r.URL.Query().Get("language"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPhraseResponse(phrase))
}

// Put handles PUT /phrases/{id}.
func (h *PhraseHandler) Put(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req putPhraseRequest
	if err := decodeJSON(w, r, h.maxBytes, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	phrase, err := h.svc.CreatePhrase(r.Context(), dictation.CreatePhraseInput{
		ID:       id,
		Language: req.Language,
		Text:     req.Text,
		LessonID: req.LessonID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPhraseResponse(phrase))
}

// ListByLesson handles GET /lessons/{id}/phrases?language=.
func (h *PhraseHandler) ListByLesson(w http.ResponseWriter, r *http.Request) {
	lessonID, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	phrases, err := h.svc.ListLessonPhrases(r.Context(), lessonID, r.URL.Query().Get("language"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	items := make([]phraseResponse, len(phrases))
	for i := range phrases {
		items[i] = toPhraseResponse(&phrases[i])
	}
	writeJSON(w, http.StatusOK, listResponse[phraseResponse]{Items: items, Total: len(items)})
}
