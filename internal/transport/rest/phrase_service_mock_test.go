package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation"
	"sync"
)

var _ phraseService = &phraseServiceMock{}

type phraseServiceMock struct {
	CreatePhraseFunc func(ctx context.Context, input dictation.CreatePhraseInput) (*domain.ReferencePhrase, error)

	GetPhraseFunc func(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, error)

	ListLessonPhrasesFunc func(ctx context.Context, lessonID uuid.UUID, language string) ([]domain.ReferencePhrase, error)

	calls struct {
		CreatePhrase []struct {
			Ctx   context.Context
			Input dictation.CreatePhraseInput
		}
		GetPhrase []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Language string
		}
		ListLessonPhrases []struct {
			Ctx      context.Context
			LessonID uuid.UUID
			Language string
		}
	}
	lockCreatePhrase sync.RWMutex
	lockGetPhrase sync.RWMutex
	lockListLessonPhrases sync.RWMutex
}

func (mock *phraseServiceMock) CreatePhrase(ctx context.Context, input dictation.CreatePhraseInput) (*domain.ReferencePhrase, error) {
	if mock.CreatePhraseFunc == nil {
		panic("phraseServiceMock.CreatePhraseFunc: method is nil but phraseService.CreatePhrase was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictation.CreatePhraseInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePhrase.Lock()
	mock.calls.CreatePhrase = append(mock.calls.CreatePhrase, callInfo)
	mock.lockCreatePhrase.Unlock()
	return mock.CreatePhraseFunc(ctx, input)
}

func (mock *phraseServiceMock) CreatePhraseCalls() []struct {
	Ctx   context.Context
	Input dictation.CreatePhraseInput
} {
	mock.lockCreatePhrase.RLock()
	calls := mock.calls.CreatePhrase
	mock.lockCreatePhrase.RUnlock()
	return calls
}

func (mock *phraseServiceMock) GetPhrase(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, error) {
	if mock.GetPhraseFunc == nil {
		panic("phraseServiceMock.GetPhraseFunc: method is nil but phraseService.GetPhrase was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Language string
	}{Ctx: ctx, Id: id, Language: language}
	mock.lockGetPhrase.Lock()
	mock.calls.GetPhrase = append(mock.calls.GetPhrase, callInfo)
	mock.lockGetPhrase.Unlock()
	return mock.GetPhraseFunc(ctx, id, language)
}

func (mock *phraseServiceMock) GetPhraseCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Language string
} {
	mock.lockGetPhrase.RLock()
	calls := mock.calls.GetPhrase
	mock.lockGetPhrase.RUnlock()
	return calls
}

func (mock *phraseServiceMock) ListLessonPhrases(ctx context.Context, lessonID uuid.UUID, language string) ([]domain.ReferencePhrase, error) {
	if mock.ListLessonPhrasesFunc == nil {
		panic("phraseServiceMock.ListLessonPhrasesFunc: method is nil but phraseService.ListLessonPhrases was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
		Language string
	}{Ctx: ctx, LessonID: lessonID, Language: language}
	mock.lockListLessonPhrases.Lock()
	mock.calls.ListLessonPhrases = append(mock.calls.ListLessonPhrases, callInfo)
	mock.lockListLessonPhrases.Unlock()
	return mock.ListLessonPhrasesFunc(ctx, lessonID, language)
}

func (mock *phraseServiceMock) ListLessonPhrasesCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
	Language string
} {
	mock.lockListLessonPhrases.RLock()
	calls := mock.calls.ListLessonPhrases
	mock.lockListLessonPhrases.RUnlock()
	return calls
}
