package dictation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"sync"
)

var _ masteryRepo = &masteryRepoMock{}

type masteryRepoMock struct {
	ApplyScoreFunc func(ctx context.Context, userID uuid.UUID, word string, language string, score float64) (*domain.WordMasteryRecord, error)

	GetByWordsFunc func(ctx context.Context, userID uuid.UUID, language string, words []string) ([]domain.WordMasteryRecord, error)

	ListFunc func(ctx context.Context, userID uuid.UUID, f domain.MasteryFilter) ([]domain.WordMasteryRecord, int, error)

	calls struct {
		ApplyScore []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Word     string
			Language string
			Score    float64
		}
		GetByWords []struct {
			Ctx      context.Context
			UserID   uuid.UUID
			Language string
			Words    []string
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.MasteryFilter
		}
	}
	lockApplyScore sync.RWMutex
	lockGetByWords sync.RWMutex
	lockList sync.RWMutex
}

func (mock *masteryRepoMock) ApplyScore(ctx context.Context, userID uuid.UUID, word string, language string, score float64) (*domain.WordMasteryRecord, error) {
	if mock.ApplyScoreFunc == nil {
		panic("masteryRepoMock.ApplyScoreFunc: method is nil but masteryRepo.ApplyScore was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Word     string
		Language string
		Score    float64
	}{Ctx: ctx, UserID: userID, Word: word, Language: language, Score: score}
	mock.lockApplyScore.Lock()
	mock.calls.ApplyScore = append(mock.calls.ApplyScore, callInfo)
	mock.lockApplyScore.Unlock()
	return mock.ApplyScoreFunc(ctx, userID, word, language, score)
}

func (mock *masteryRepoMock) ApplyScoreCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Word     string
	Language string
	Score    float64
} {
	mock.lockApplyScore.RLock()
	calls := mock.calls.ApplyScore
	mock.lockApplyScore.RUnlock()
	return calls
}

func (mock *masteryRepoMock) GetByWords(ctx context.Context, userID uuid.UUID, language string, words []string) ([]domain.WordMasteryRecord, error) {
	if mock.GetByWordsFunc == nil {
		panic("masteryRepoMock.GetByWordsFunc: method is nil but masteryRepo.GetByWords was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UserID   uuid.UUID
		Language string
		Words    []string
	}{Ctx: ctx, UserID: userID, Language: language, Words: words}
	mock.lockGetByWords.Lock()
	mock.calls.GetByWords = append(mock.calls.GetByWords, callInfo)
	mock.lockGetByWords.Unlock()
	return mock.GetByWordsFunc(ctx, userID, language, words)
}

func (mock *masteryRepoMock) GetByWordsCalls() []struct {
	Ctx      context.Context
	UserID   uuid.UUID
	Language string
	Words    []string
} {
	mock.lockGetByWords.RLock()
	calls := mock.calls.GetByWords
	mock.lockGetByWords.RUnlock()
	return calls
}

func (mock *masteryRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.MasteryFilter) ([]domain.WordMasteryRecord, int, error) {
	if mock.ListFunc == nil {
		panic("masteryRepoMock.ListFunc: method is nil but masteryRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.MasteryFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *masteryRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.MasteryFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
