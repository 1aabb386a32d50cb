package dictation

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"sync"
)

var _ attemptRepo = &attemptRepoMock{}

type attemptRepoMock struct {
	CreateFunc func(ctx context.Context, a domain.DictationAttempt) (*domain.DictationAttempt, error)

	GetByIDFunc func(ctx context.Context, userID uuid.UUID, attemptID uuid.UUID) (*domain.DictationAttempt, error)

	ListFunc func(ctx context.Context, userID uuid.UUID, f domain.AttemptFilter) ([]domain.DictationAttempt, int, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			A   domain.DictationAttempt
		}
		GetByID []struct {
			Ctx       context.Context
			UserID    uuid.UUID
			AttemptID uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.AttemptFilter
		}
	}
	lockCreate sync.RWMutex
	lockGetByID sync.RWMutex
	lockList sync.RWMutex
}

func (mock *attemptRepoMock) Create(ctx context.Context, a domain.DictationAttempt) (*domain.DictationAttempt, error) {
	if mock.CreateFunc == nil {
		panic("attemptRepoMock.CreateFunc: method is nil but attemptRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		A   domain.DictationAttempt
	}{Ctx: ctx, A: a}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, a)
}

func (mock *attemptRepoMock) CreateCalls() []struct {
	Ctx context.Context
	A   domain.DictationAttempt
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *attemptRepoMock) GetByID(ctx context.Context, userID uuid.UUID, attemptID uuid.UUID) (*domain.DictationAttempt, error) {
	if mock.GetByIDFunc == nil {
		panic("attemptRepoMock.GetByIDFunc: method is nil but attemptRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		UserID    uuid.UUID
		AttemptID uuid.UUID
	}{Ctx: ctx, UserID: userID, AttemptID: attemptID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, attemptID)
}

func (mock *attemptRepoMock) GetByIDCalls() []struct {
	Ctx       context.Context
	UserID    uuid.UUID
	AttemptID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *attemptRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.AttemptFilter) ([]domain.DictationAttempt, int, error) {
	if mock.ListFunc == nil {
		panic("attemptRepoMock.ListFunc: method is nil but attemptRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.AttemptFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *attemptRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.AttemptFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
