package rest

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/myenglish-dictation/internal/domain"
	"github.com/heartmarshall/myenglish-dictation/internal/service/dictation"
	"sync"
)

var _ dictationService = &dictationServiceMock{}

type dictationServiceMock struct {
	GetAttemptFunc func(ctx context.Context, attemptID uuid.UUID) (*domain.DictationAttempt, error)

	ListAttemptsFunc func(ctx context.Context, input dictation.ListAttemptsInput) ([]domain.DictationAttempt, int, error)

	ListMasteryFunc func(ctx context.Context, input dictation.ListMasteryInput) ([]domain.WordMasteryRecord, int, error)

	PreviewAttemptFunc func(ctx context.Context, input dictation.PreviewAttemptInput) (*dictation.PreviewResult, error)

	SubmitAttemptFunc func(ctx context.Context, input dictation.SubmitAttemptInput) (*dictation.SubmitResult, error)

	calls struct {
		GetAttempt []struct {
			Ctx       context.Context
			AttemptID uuid.UUID
		}
		ListAttempts []struct {
			Ctx   context.Context
			Input dictation.ListAttemptsInput
		}
		ListMastery []struct {
			Ctx   context.Context
			Input dictation.ListMasteryInput
		}
		PreviewAttempt []struct {
			Ctx   context.Context
			Input dictation.PreviewAttemptInput
		}
		SubmitAttempt []struct {
			Ctx   context.Context
			Input dictation.SubmitAttemptInput
		}
	}
	lockGetAttempt sync.RWMutex
	lockListAttempts sync.RWMutex
	lockListMastery sync.RWMutex
	lockPreviewAttempt sync.RWMutex
	lockSubmitAttempt sync.RWMutex
}

func (mock *dictationServiceMock) GetAttempt(ctx context.Context, attemptID uuid.UUID) (*domain.DictationAttempt, error) {
	if mock.GetAttemptFunc == nil {
		panic("dictationServiceMock.GetAttemptFunc: method is nil but dictationService.GetAttempt was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		AttemptID uuid.UUID
	}{Ctx: ctx, AttemptID: attemptID}
	mock.lockGetAttempt.Lock()
	mock.calls.GetAttempt = append(mock.calls.GetAttempt, callInfo)
	mock.lockGetAttempt.Unlock()
	return mock.GetAttemptFunc(ctx, attemptID)
}

func (mock *dictationServiceMock) GetAttemptCalls() []struct {
	Ctx       context.Context
	AttemptID uuid.UUID
} {
	mock.lockGetAttempt.RLock()
	calls := mock.calls.GetAttempt
	mock.lockGetAttempt.RUnlock()
	return calls
}

func (mock *dictationServiceMock) ListAttempts(ctx context.Context, input dictation.ListAttemptsInput) ([]domain.DictationAttempt, int, error) {
	if mock.ListAttemptsFunc == nil {
		panic("dictationServiceMock.ListAttemptsFunc: method is nil but dictationService.ListAttempts was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictation.ListAttemptsInput
	}{Ctx: ctx, Input: input}
	mock.lockListAttempts.Lock()
	mock.calls.ListAttempts = append(mock.calls.ListAttempts, callInfo)
	mock.lockListAttempts.Unlock()
	return mock.ListAttemptsFunc(ctx, input)
}

func (mock *dictationServiceMock) ListAttemptsCalls() []struct {
	Ctx   context.Context
	Input dictation.ListAttemptsInput
} {
	mock.lockListAttempts.RLock()
	calls := mock.calls.ListAttempts
	mock.lockListAttempts.RUnlock()
	return calls
}

func (mock *dictationServiceMock) ListMastery(ctx context.Context, input dictation.ListMasteryInput) ([]domain.WordMasteryRecord, int, error) {
	if mock.ListMasteryFunc == nil {
		panic("dictationServiceMock.ListMasteryFunc: method is nil but dictationService.ListMastery was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictation.ListMasteryInput
	}{Ctx: ctx, Input: input}
	mock.lockListMastery.Lock()
	mock.calls.ListMastery = append(mock.calls.ListMastery, callInfo)
	mock.lockListMastery.Unlock()
	return mock.ListMasteryFunc(ctx, input)
}

func (mock *dictationServiceMock) ListMasteryCalls() []struct {
	Ctx   context.Context
	Input dictation.ListMasteryInput
} {
	mock.lockListMastery.RLock()
	calls := mock.calls.ListMastery
	mock.lockListMastery.RUnlock()
	return calls
}

func (mock *dictationServiceMock) PreviewAttempt(ctx context.Context, input dictation.PreviewAttemptInput) (*dictation.PreviewResult, error) {
	if mock.PreviewAttemptFunc == nil {
		panic("dictationServiceMock.PreviewAttemptFunc: method is nil but dictationService.PreviewAttempt was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictation.PreviewAttemptInput
	}{Ctx: ctx, Input: input}
	mock.lockPreviewAttempt.Lock()
	mock.calls.PreviewAttempt = append(mock.calls.PreviewAttempt, callInfo)
	mock.lockPreviewAttempt.Unlock()
	return mock.PreviewAttemptFunc(ctx, input)
}

func (mock *dictationServiceMock) PreviewAttemptCalls() []struct {
	Ctx   context.Context
	Input dictation.PreviewAttemptInput
} {
	mock.lockPreviewAttempt.RLock()
	calls := mock.calls.PreviewAttempt
	mock.lockPreviewAttempt.RUnlock()
	return calls
}

func (mock *dictationServiceMock) SubmitAttempt(ctx context.Context, input dictation.SubmitAttemptInput) (*dictation.SubmitResult, error) {
	if mock.SubmitAttemptFunc == nil {
		panic("dictationServiceMock.SubmitAttemptFunc: method is nil but dictationService.SubmitAttempt was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input dictation.SubmitAttemptInput
	}{Ctx: ctx, Input: input}
	mock.lockSubmitAttempt.Lock()
	mock.calls.SubmitAttempt = append(mock.calls.SubmitAttempt, callInfo)
	mock.lockSubmitAttempt.Unlock()
	return mock.SubmitAttemptFunc(ctx, input)
}

func (mock *dictationServiceMock) SubmitAttemptCalls() []struct {
	Ctx   context.Context
	Input dictation.SubmitAttemptInput
} {
	mock.lockSubmitAttempt.RLock()
	calls := mock.calls.SubmitAttempt
	mock.lockSubmitAttempt.RUnlock()
	return calls
}
