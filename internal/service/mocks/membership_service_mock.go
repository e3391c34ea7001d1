package mocks

import (
	"context"

	"eventhub/internal/model"

	"github.com/stretchr/testify/mock"
)

type MembershipServiceMock struct {
	mock.Mock
}

func NewMembershipServiceMock() *MembershipServiceMock {
	return &MembershipServiceMock{}
}

func (m *MembershipServiceMock) GetEvent(ctx context.Context, eventID int, viewerID int) (*model.Event, error) {
	args := m.Called(ctx, eventID, viewerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MembershipServiceMock) Join(ctx context.Context, eventID int, user *model.User) (*model.Event, error) {
	args := m.Called(ctx, eventID, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MembershipServiceMock) Leave(ctx context.Context, eventID int, user *model.User) error {
	args := m.Called(ctx, eventID, user)
	return args.Error(0)
}

func (m *MembershipServiceMock) CreateEvent(ctx context.Context, data model.EventFormData, creator *model.User) (*model.Event, error) {
	args := m.Called(ctx, data, creator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Event), args.Error(1)
}

func (m *MembershipServiceMock) IssueToken(ctx context.Context, name, email string) (string, *model.User, error) {
	args := m.Called(ctx, name, email)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}
