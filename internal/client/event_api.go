package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"eventhub/internal/model"
	apperrors "eventhub/pkg/app_errors"
	"eventhub/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EventAPI 遠端活動服務
type EventAPI interface {
	// 加入活動：回應內容直接帶回更新後的活動
	Join(ctx context.Context, eventID int, token string) (*model.Event, error)
	// 離開活動：回應內容不保證帶完整活動，呼叫端需要再讀一次
	Leave(ctx context.Context, eventID int, token string) error
	GetEvent(ctx context.Context, eventID int) (*model.Event, error)
}

type HTTPEventAPIImpl struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewHTTPEventAPI(baseURL string, timeout time.Duration) EventAPI {
	return NewHTTPEventAPIWithClient(baseURL, &http.Client{Timeout: timeout})
}

func NewHTTPEventAPIWithClient(baseURL string, httpClient *http.Client) EventAPI {
	return &HTTPEventAPIImpl{
		baseURL: NormalizeBaseURL(baseURL),
		client:  httpClient,
		log:     logger.WithComponent("client"),
	}
}

// NormalizeBaseURL 去掉結尾的 "/"，並確保路徑以 /api 結尾
func NormalizeBaseURL(raw string) string {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if !strings.HasSuffix(base, "/api") {
		base += "/api"
	}
	return base
}

func (c *HTTPEventAPIImpl) Join(ctx context.Context, eventID int, token string) (*model.Event, error) {
	if token == "" {
		return nil, apperrors.ErrAuthenticationMissing
	}

	var body model.JoinResponse
	status, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/join", eventID), token, &body)
	if err != nil {
		return nil, err
	}
	if !isSuccess(status) || body.Status != model.StatusSuccess || body.Data.Event == nil {
		c.log.Error("join rejected", zap.Int("event_id", eventID), zap.Int("status", status), zap.String("body_status", body.Status))
		return nil, statusError(status)
	}
	return body.Data.Event, nil
}

func (c *HTTPEventAPIImpl) Leave(ctx context.Context, eventID int, token string) error {
	var body model.LeaveResponse
	status, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/events/%d/leave", eventID), token, &body)
	if err != nil {
		return err
	}
	if !isSuccess(status) || !body.Success {
		c.log.Error("leave rejected", zap.Int("event_id", eventID), zap.Int("status", status))
		return statusError(status)
	}
	return nil
}

func (c *HTTPEventAPIImpl) GetEvent(ctx context.Context, eventID int) (*model.Event, error) {
	var body model.EventResponse
	status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/events/%d", eventID), "", &body)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, apperrors.ErrEventNotFound
	}
	if !isSuccess(status) || !body.Success || body.Data == nil {
		c.log.Error("get event rejected", zap.Int("event_id", eventID), zap.Int("status", status))
		return nil, statusError(status)
	}
	return body.Data, nil
}

// do 送出請求並解析 JSON；只有網路或解析失敗才回傳 error，狀態碼交給呼叫端判斷
func (c *HTTPEventAPIImpl) do(ctx context.Context, method, path, token string, out any) (int, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(nil))
	if err != nil {
		return 0, fmt.Errorf("%w: build request: %v", apperrors.ErrTransportFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("request failed", zap.String("method", method), zap.String("url", url), zap.Error(err))
		return 0, fmt.Errorf("%w: %v", apperrors.ErrTransportFailure, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read body: %v", apperrors.ErrTransportFailure, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		// 非成功狀態的錯誤頁面不一定是 JSON
		if !isSuccess(resp.StatusCode) {
			return resp.StatusCode, nil
		}
		c.log.Error("decode response failed", zap.String("url", url), zap.Error(err))
		return resp.StatusCode, fmt.Errorf("%w: decode response: %v", apperrors.ErrTransportFailure, err)
	}
	return resp.StatusCode, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func statusError(status int) error {
	return fmt.Errorf("%w: status %d", apperrors.ErrTransportFailure, status)
}
