package dictation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"sync"
)

var _ phraseRepo = &phraseRepoMock{}

type phraseRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, error)

	ListByLessonFunc func(ctx context.Context, lessonID uuid.UUID, language string) ([]domain.ReferencePhrase, error)

	UpsertFunc func(ctx context.Context, p domain.ReferencePhrase) (*domain.ReferencePhrase, error)

	calls struct {
		GetByID []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Language string
		}
		ListByLesson []struct {
			Ctx      context.Context
			LessonID uuid.UUID
			Language string
		}
		Upsert []struct {
			Ctx context.Context
			P   domain.ReferencePhrase
		}
	}
	lockGetByID sync.RWMutex
	lockListByLesson sync.RWMutex
	lockUpsert sync.RWMutex
}

func (mock *phraseRepoMock) GetByID(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, error) {
	if mock.GetByIDFunc == nil {
		panic("phraseRepoMock.GetByIDFunc: method is nil but phraseRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Language string
	}{Ctx: ctx, Id: id, Language: language}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id, language)
}

func (mock *phraseRepoMock) GetByIDCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Language string
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *phraseRepoMock) ListByLesson(ctx context.Context, lessonID uuid.UUID, language string) ([]domain.ReferencePhrase, error) {
	if mock.ListByLessonFunc == nil {
		panic("phraseRepoMock.ListByLessonFunc: method is nil but phraseRepo.ListByLesson was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		LessonID uuid.UUID
		Language string
	}{Ctx: ctx, LessonID: lessonID, Language: language}
	mock.lockListByLesson.Lock()
	mock.calls.ListByLesson = append(mock.calls.ListByLesson, callInfo)
	mock.lockListByLesson.Unlock()
	return mock.ListByLessonFunc(ctx, lessonID, language)
}

func (mock *phraseRepoMock) ListByLessonCalls() []struct {
	Ctx      context.Context
	LessonID uuid.UUID
	Language string
} {
	mock.lockListByLesson.RLock()
	calls := mock.calls.ListByLesson
	mock.lockListByLesson.RUnlock()
	return calls
}

func (mock *phraseRepoMock) Upsert(ctx context.Context, p domain.ReferencePhrase) (*domain.ReferencePhrase, error) {
	if mock.UpsertFunc == nil {
		panic("phraseRepoMock.UpsertFunc: method is nil but phraseRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.ReferencePhrase
	}{Ctx: ctx, P: p}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, p)
}

func (mock *phraseRepoMock) UpsertCalls() []struct {
	Ctx context.Context
	P   domain.ReferencePhrase
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}
