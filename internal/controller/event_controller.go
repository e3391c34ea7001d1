// Package controller 管理單一活動的成員操作，並讓本地快照與伺服器保持一致。
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"eventhub/internal/client"
	"eventhub/internal/credential"
	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/logger"

	"go.uber.org/zap"
)

type EventController interface {
	// 目前快照的深拷貝
	Snapshot() *model.Event
	// 由目前使用者與目前快照推導，每次呼叫重新計算
	IsOwner(user *model.User) bool
	Join(ctx context.Context) error
	Leave(ctx context.Context) error
	// 只回傳導向編輯頁的意圖，不改變狀態
	Edit() EditIntent
	// 頁面重新取得資料時整個替換快照；進行中的操作結果會被丟棄
	Replace(event *model.Event)
	// 頁面離開後呼叫，之後抵達的結果一律丟棄
	Close()
}

type EditIntent struct {
	EventID int
	Path    string
}

type Option func(*EventControllerImpl)

// WithSnapshotHook 快照被替換後通知（在鎖外呼叫）
func WithSnapshotHook(fn func(event *model.Event)) Option {
	return func(c *EventControllerImpl) { c.onSnapshot = fn }
}

type EventControllerImpl struct {
	api        client.EventAPI
	tokens     credential.Store
	log        *zap.Logger
	onSnapshot func(event *model.Event)

	mu         sync.Mutex
	event      *model.Event
	generation uint64
	inFlight   bool
	closed     bool
}

func NewEventController(initial *model.Event, api client.EventAPI, tokens credential.Store, opts ...Option) (EventController, error) {
	if initial == nil {
		return nil, fmt.Errorf("%w: initial event snapshot is required", apperrors.ErrInvalidInput)
	}
	c := &EventControllerImpl{
		api:    api,
		tokens: tokens,
		log:    logger.WithComponent("controller").With(zap.Int("event_id", initial.ID)),
		event:  initial.Clone(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *EventControllerImpl) Snapshot() *model.Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.event.Clone()
}

func (c *EventControllerImpl) IsOwner(user *model.User) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return model.IsOwner(user, c.event)
}

func (c *EventControllerImpl) Join(ctx context.Context) error {
	return c.mutate(ctx, MutationJoin)
}

func (c *EventControllerImpl) Leave(ctx context.Context) error {
	return c.mutate(ctx, MutationLeave)
}

func (c *EventControllerImpl) Edit() EditIntent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return EditIntent{
		EventID: c.event.ID,
		Path:    fmt.Sprintf("/events/%d/edit", c.event.ID),
	}
}

func (c *EventControllerImpl) Replace(event *model.Event) {
	if event == nil {
		return
	}
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.event = event.Clone()
	c.generation++
	snapshot := c.event.Clone()
	c.mu.Unlock()

	c.notify(snapshot)
}

func (c *EventControllerImpl) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.generation++
}

// mutate 依 mutationPolicies 執行操作。失敗時快照維持不變，錯誤已記錄，
// 呼叫端可以直接忽略回傳值。
func (c *EventControllerImpl) mutate(ctx context.Context, m Mutation) error {
	policy, ok := mutationPolicies[m]
	if !ok {
		return fmt.Errorf("%w: unknown mutation %q", apperrors.ErrInvalidInput, m)
	}
	log := c.log.With(zap.String("operation", string(m)))

	token, err := c.credential(ctx, policy)
	if err != nil {
		log.Warn("no auth token found", zap.Error(err))
		return err
	}

	eventID, gen, err := c.begin()
	if err != nil {
		log.Warn("mutation rejected", zap.Error(err))
		return err
	}
	defer c.end()

	next, err := c.reconcile(ctx, m, policy, eventID, token)
	if err != nil {
		log.Error("mutation failed", zap.Error(err))
		return err
	}

	if err := c.apply(gen, next); err != nil {
		log.Info("late response discarded", zap.Error(err))
		return err
	}
	return nil
}

func (c *EventControllerImpl) credential(ctx context.Context, policy mutationPolicy) (string, error) {
	token, err := c.tokens.Get(ctx)
	if err == nil {
		return token, nil
	}
	if !policy.requiresCredential {
		if !errors.Is(err, apperrors.ErrCredentialNotFound) {
			c.log.Warn("credential store unavailable, continuing without token", zap.Error(err))
		}
		return "", nil
	}
	return "", fmt.Errorf("%w: %v", apperrors.ErrAuthenticationMissing, err)
}

// begin 同一時間只允許一個 mutation
func (c *EventControllerImpl) begin() (int, uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return 0, 0, apperrors.ErrStaleSnapshot
	}
	if c.inFlight {
		return 0, 0, apperrors.ErrMutationInFlight
	}
	c.inFlight = true
	return c.event.ID, c.generation, nil
}

func (c *EventControllerImpl) end() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false
}

func (c *EventControllerImpl) reconcile(ctx context.Context, m Mutation, policy mutationPolicy, eventID int, token string) (*model.Event, error) {
	switch policy.reconcile {
	case applyResponse:
		return c.api.Join(ctx, eventID, token)
	case refetch:
		if err := c.api.Leave(ctx, eventID, token); err != nil {
			return nil, err
		}
		event, err := c.api.GetEvent(ctx, eventID)
		if err != nil {
			return nil, fmt.Errorf("refresh after %s: %w", m, err)
		}
		return event, nil
	}
	return nil, fmt.Errorf("%w: no reconcile strategy for %q", apperrors.ErrInvalidInput, m)
}

// apply 只有在快照沒被替換、控制器仍存活時才寫入
func (c *EventControllerImpl) apply(gen uint64, next *model.Event) error {
	if next == nil {
		return fmt.Errorf("%w: empty event in response", apperrors.ErrTransportFailure)
	}
	c.mu.Lock()
	if c.closed || gen != c.generation {
		c.mu.Unlock()
		return apperrors.ErrStaleSnapshot
	}
	c.event = next.Clone()
	c.generation++
	snapshot := c.event.Clone()
	c.mu.Unlock()

	c.notify(snapshot)
	return nil
}

func (c *EventControllerImpl) notify(snapshot *model.Event) {
	if c.onSnapshot != nil {
		c.onSnapshot(snapshot)
	}
}
