package dictation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"sync"
)

var _ phraseCache = &phraseCacheMock{}

type phraseCacheMock struct {
	DeleteFunc func(ctx context.Context, id uuid.UUID, language string) error

	GetFunc func(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, bool, error)

	SetFunc func(ctx context.Context, p domain.ReferencePhrase) error

	calls struct {
		Delete []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Language string
		}
		Get []struct {
			Ctx      context.Context
			Id       uuid.UUID
			Language string
		}
		Set []struct {
			Ctx context.Context
			P   domain.ReferencePhrase
		}
	}
	lockDelete sync.RWMutex
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *phraseCacheMock) Delete(ctx context.Context, id uuid.UUID, language string) error {
	if mock.DeleteFunc == nil {
		panic("phraseCacheMock.DeleteFunc: method is nil but phraseCache.Delete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Language string
	}{Ctx: ctx, Id: id, Language: language}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id, language)
}

func (mock *phraseCacheMock) DeleteCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Language string
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *phraseCacheMock) Get(ctx context.Context, id uuid.UUID, language string) (*domain.ReferencePhrase, bool, error) {
	if mock.GetFunc == nil {
		panic("phraseCacheMock.GetFunc: method is nil but phraseCache.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Id       uuid.UUID
		Language string
	}{Ctx: ctx, Id: id, Language: language}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id, language)
}

func (mock *phraseCacheMock) GetCalls() []struct {
	Ctx      context.Context
	Id       uuid.UUID
	Language string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *phraseCacheMock) Set(ctx context.Context, p domain.ReferencePhrase) error {
	if mock.SetFunc == nil {
		panic("phraseCacheMock.SetFunc: method is nil but phraseCache.Set was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   domain.ReferencePhrase
	}{Ctx: ctx, P: p}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, p)
}

func (mock *phraseCacheMock) SetCalls() []struct {
	Ctx context.Context
	P   domain.ReferencePhrase
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
