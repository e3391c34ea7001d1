package apperrors

import "errors"

var (
	// 前置條件：需要 token 的操作在送出請求前就中止
	ErrAuthenticationMissing = errors.New("authentication credential missing")
	ErrCredentialNotFound    = errors.New("credential not found")
	ErrInvalidToken          = errors.New("invalid token")

	// 遠端呼叫失敗（網路錯誤或非成功狀態）
	ErrTransportFailure = errors.New("remote call did not complete")
	ErrEventNotFound    = errors.New("event not found")

	// 本地 snapshot 相關
	ErrMutationInFlight = errors.New("another event mutation is in flight")
	ErrStaleSnapshot    = errors.New("response discarded: snapshot changed or controller closed")

	ErrInvalidInput        = errors.New("invalid input")
	ErrAlreadyParticipant  = errors.New("user already joined event")
	ErrNotParticipant      = errors.New("user has not joined event")
	ErrEventFull           = errors.New("event is full")
	ErrUserNotFound        = errors.New("user not found")
	ErrInternalServerError = errors.New("internal server error")
)
