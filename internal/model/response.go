package model

// 遠端 API 的回應格式

const StatusSuccess = "success"

// JoinResponse POST /events/{id}/join
type JoinResponse struct {
	Status string `json:"status"`
	Data   struct {
		Event *Event `json:"event"`
	} `json:"data"`
}

// LeaveResponse POST /events/{id}/leave，內容中的活動資料一律忽略
type LeaveResponse struct {
	Success bool `json:"success"`
}

// EventResponse GET /events/{id}
type EventResponse struct {
	Success bool   `json:"success"`
	Data    *Event `json:"data"`
}

// ErrorResponse 非成功狀態時的錯誤內容
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}
