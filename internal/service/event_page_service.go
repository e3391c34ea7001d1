package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"eventhub/internal/client"
	"eventhub/internal/controller"
	"eventhub/internal/credential"
	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/logger"

	"go.uber.org/zap"
)

type EventPageService interface {
	// 首次載入：任何失敗都視為找不到活動
	Load(ctx context.Context, rawID string) (*model.Event, error)
	// 載入後建立該活動的 controller
	Open(ctx context.Context, rawID string, opts ...controller.Option) (controller.EventController, error)
	// 從已儲存的 token 推導目前使用者，未登入時回傳 nil
	CurrentUser(ctx context.Context) *model.User
}

type EventPageServiceImpl struct {
	api        client.EventAPI
	tokens     credential.Store
	userParser func(token string) (*model.User, error)
}

func NewEventPageService(api client.EventAPI, tokens credential.Store, userParser func(token string) (*model.User, error)) EventPageService {
	return &EventPageServiceImpl{api: api, tokens: tokens, userParser: userParser}
}

func (s *EventPageServiceImpl) Load(ctx context.Context, rawID string) (*model.Event, error) {
	log := logger.WithComponent("service").With(zap.String("operation", "Load"), zap.String("raw_id", rawID))

	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil || id <= 0 {
		log.Warn("invalid event id")
		return nil, apperrors.ErrEventNotFound
	}

	event, err := s.api.GetEvent(ctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrEventNotFound) {
			log.Error("load event failed", zap.Error(err))
		}
		return nil, apperrors.ErrEventNotFound
	}
	return event, nil
}

func (s *EventPageServiceImpl) Open(ctx context.Context, rawID string, opts ...controller.Option) (controller.EventController, error) {
	event, err := s.Load(ctx, rawID)
	if err != nil {
		return nil, err
	}
	return controller.NewEventController(event, s.api, s.tokens, opts...)
}

func (s *EventPageServiceImpl) CurrentUser(ctx context.Context) *model.User {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		return nil
	}
	user, err := s.userParser(token)
	if err != nil {
		logger.WithComponent("service").Warn("stored token has no usable user", zap.Error(err))
		return nil
	}
	return user
}
