package rest

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation/scoring"
)

type feedbackResponse struct {
	ReferenceWord    string  `json:"reference_word"`
	WrittenWord      string  `json:"written_word"`
	SimilarityScore  float64 `json:"similarity_score"`
	PositionInPhrase int     `json:"position_in_phrase"`
	SoundsAlike      bool    `json:"sounds_alike"`
}

type attemptResponse struct {
	ID            uuid.UUID          `json:"id"`
	LessonID      uuid.UUID          `json:"lesson_id"`
	PhraseID      uuid.UUID          `json:"phrase_id"`
	Language      string             `json:"language"`
	AttemptNumber int                `json:"attempt_number"`
	ReferenceText string             `json:"reference_text"`
	UserText      string             `json:"user_text"`
	OverallScore  float64            `json:"overall_score"`
	IsCorrect     bool               `json:"is_correct"`
	Feedback      []feedbackResponse `json:"feedback"`
	CreatedAt     time.Time          `json:"created_at"`
}

type werResponse struct {
	WER            float64 `json:"wer"`
	Substitutions  int     `json:"substitutions"`
	Insertions     int     `json:"insertions"`
	Deletions      int     `json:"deletions"`
	Matches        int     `json:"matches"`
	ReferenceWords int     `json:"reference_words"`
}

type masteryResponse struct {
	Word                  string     `json:"word"`
	Language              string     `json:"language"`
	Occurrences           int        `json:"occurrences"`
	ErrorCount            int        `json:"error_count"`
	AverageScore          float64    `json:"average_score"`
	LastScore             float64    `json:"last_score"`
	NeedsSpellingPractice bool       `json:"needs_spelling_practice"`
	UpdatedAt             *time.Time `json:"updated_at,omitempty"`
}

type phraseResponse struct {
	ID        uuid.UUID  `json:"id"`
	Language  string     `json:"language"`
	Text      string     `json:"text"`
	LessonID  *uuid.UUID `json:"lesson_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func toFeedbackResponse(in []domain.WordFeedback) []feedbackResponse {
	out := make([]feedbackResponse, len(in))
	for i, f := range in {
		out[i] = feedbackResponse{
			ReferenceWord:    f.ReferenceWord,
			WrittenWord:      f.WrittenWord,
			SimilarityScore:  scoring.RoundScore(f.SimilarityScore),
			PositionInPhrase: f.Position,
			SoundsAlike:      f.SoundsAlike,
		}
	}
	return out
}

func toAttemptResponse(a *domain.DictationAttempt) attemptResponse {
	return attemptResponse{
		ID:            a.ID,
		LessonID:      a.LessonID,
		PhraseID:      a.PhraseID,
		Language:      a.Language,
		AttemptNumber: a.AttemptNumber,
		ReferenceText: a.ReferenceText,
		UserText:      a.UserText,
		OverallScore:  a.OverallScore,
		IsCorrect:     a.IsCorrect,
		Feedback:      toFeedbackResponse(a.Feedback),
		CreatedAt:     a.CreatedAt,
	}
}

func toWERResponse(w scoring.WERResult) werResponse {
	return werResponse{
		WER:            math.Round(w.WER*10000) / 10000,
		Substitutions:  w.Substitutions,
		Insertions:     w.Insertions,
		Deletions:      w.Deletions,
		Matches:        w.Matches,
		ReferenceWords: w.RefWords,
	}
}

func toMasteryResponse(in []domain.WordMasteryRecord) []masteryResponse {
	out := make([]masteryResponse, len(in))
	for i, m := range in {
		out[i] = masteryResponse{
			Word:                  m.Word,
			Language:              m.Language,
			Occurrences:           m.Occurrences,
			ErrorCount:            m.ErrorCount,
			AverageScore:          scoring.RoundScore(m.AverageScore()),
			LastScore:             scoring.RoundScore(m.LastScore),
			NeedsSpellingPractice: m.NeedsPractice,
		}
		if !m.UpdatedAt.IsZero() {
			t := m.UpdatedAt
			out[i].UpdatedAt = &t
		}
	}
	return out
}

func toPhraseResponse(p *domain.ReferencePhrase) phraseResponse {
	return phraseResponse{
		ID:        p.ID,
		Language:  p.Language,
		Text:      p.Text,
		LessonID:  p.LessonID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
