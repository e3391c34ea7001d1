package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"eventhub/internal/auth"
	"eventhub/internal/model"
	"eventhub/internal/repository"
	"eventhub/internal/validation"
	apperrors "eventhub/pkg/app_errors"
)

// MembershipService 本機開發 API：實作遠端服務的活動與成員契約
type MembershipService interface {
	GetEvent(ctx context.Context, eventID int, viewerID int) (*model.Event, error)
	// 加入後回傳更新過的活動
	Join(ctx context.Context, eventID int, user *model.User) (*model.Event, error)
	Leave(ctx context.Context, eventID int, user *model.User) error
	// 建立活動，欄位規則與建立表單的第一步相同
	CreateEvent(ctx context.Context, data model.EventFormData, creator *model.User) (*model.Event, error)
	// 發放開發用 token
	IssueToken(ctx context.Context, name, email string) (string, *model.User, error)
}

type MembershipServiceImpl struct {
	events repository.EventRepository
	users  repository.UserRepository
	issuer *auth.Issuer
}

func NewMembershipService(events repository.EventRepository, users repository.UserRepository, issuer *auth.Issuer) MembershipService {
	return &MembershipServiceImpl{events: events, users: users, issuer: issuer}
}

func (s *MembershipServiceImpl) GetEvent(ctx context.Context, eventID int, viewerID int) (*model.Event, error) {
	return s.events.FindByID(ctx, eventID, viewerID)
}

func (s *MembershipServiceImpl) Join(ctx context.Context, eventID int, user *model.User) (*model.Event, error) {
	if err := s.events.AddParticipant(ctx, eventID, user.ID); err != nil {
		return nil, err
	}
	return s.events.FindByID(ctx, eventID, user.ID)
}

func (s *MembershipServiceImpl) Leave(ctx context.Context, eventID int, user *model.User) error {
	return s.events.RemoveParticipant(ctx, eventID, user.ID)
}

func (s *MembershipServiceImpl) CreateEvent(ctx context.Context, data model.EventFormData, creator *model.User) (*model.Event, error) {
	for _, field := range validation.RuleFields {
		if msg := validation.ValidateField(field, data.Get(field)); msg != "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, msg)
		}
	}

	event := &model.Event{
		Title:       strings.TrimSpace(data.Get(model.FieldTitle)),
		Category:    model.Category(data.Get(model.FieldCategory)),
		Description: data.Description,
		Location:    data.Location,
		Creator:     model.Creator{ID: creator.ID, Name: creator.Name},
	}
	if err := applyScheduleFields(event, data); err != nil {
		return nil, err
	}
	created, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, err
	}
	return s.events.FindByID(ctx, created.ID, creator.ID)
}

func (s *MembershipServiceImpl) IssueToken(ctx context.Context, name, email string) (string, *model.User, error) {
	name, email = strings.TrimSpace(name), strings.TrimSpace(email)
	if name == "" || email == "" {
		return "", nil, apperrors.ErrInvalidInput
	}
	user, err := s.users.Upsert(ctx, &model.User{Name: name, Email: email})
	if err != nil {
		return "", nil, err
	}
	token, err := s.issuer.Issue(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// applyScheduleFields 其他步驟的欄位：有填才解析
func applyScheduleFields(event *model.Event, data model.EventFormData) error {
	for field, dst := range map[string]**time.Time{
		model.FieldStartDate: &event.StartDate,
		model.FieldEndDate:   &event.EndDate,
	} {
		raw := strings.TrimSpace(data.Get(field))
		if raw == "" {
			continue
		}
		t, err := parseDate(raw)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", apperrors.ErrInvalidInput, field, err)
		}
		*dst = &t
	}
	if event.StartDate != nil && event.EndDate != nil && event.EndDate.Before(*event.StartDate) {
		return fmt.Errorf("%w: end date before start date", apperrors.ErrInvalidInput)
	}

	if raw := strings.TrimSpace(data.Get(model.FieldMaxParticipants)); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: maxParticipants must be a positive number", apperrors.ErrInvalidInput)
		}
		event.MaxParticipants = &n
	}
	return nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse(time.DateOnly, raw)
}
