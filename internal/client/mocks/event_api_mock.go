package mocks

import (
	"context"

	"eventhub/internal/model"

	"github.com/stretchr/testify/mock"
)

type EventAPIMock struct {
	mock.Mock
}

func NewEventAPIMock() *EventAPIMock {
	return &EventAPIMock{}
}

func (m *EventAPIMock) Join(ctx context.Context, eventID int, token string) (*model.Event, error) {
	args := m.Called(ctx, eventID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *EventAPIMock) Leave(ctx context.Context, eventID int, token string) error {
	args := m.Called(ctx, eventID, token)
	return args.Error(0)
}

func (m *EventAPIMock) GetEvent(ctx context.Context, eventID int) (*model.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}
