package credential

import (
	"context"
	"sync"

	apperrors "eventhub/pkg/app_errors"
)

// Store 客戶端持久化的認證 token，固定存放在單一 key 下
type Store interface {
	// 讀取：沒有 token 時回傳 ErrCredentialNotFound
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

type MemoryStoreImpl struct {
	mu    sync.RWMutex
	key   string
	items map[string]string
}

func NewMemoryStore(key string) Store {
	return &MemoryStoreImpl{
		key:   key,
		items: make(map[string]string),
	}
}

func (s *MemoryStoreImpl) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.items[s.key]
	if !ok || token == "" {
		return "", apperrors.ErrCredentialNotFound
	}
	return token, nil
}

func (s *MemoryStoreImpl) Set(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrInvalidToken
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[s.key] = token
	return nil
}

func (s *MemoryStoreImpl) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, s.key)
	return nil
}
