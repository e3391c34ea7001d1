package model

// 表單欄位名稱
const (
	FieldTitle           = "title"
	FieldCategory        = "category"
	FieldDescription     = "description"
	FieldLocation        = "location"
	FieldStartDate       = "startDate"
	FieldEndDate         = "endDate"
	FieldMaxParticipants = "maxParticipants"
)

// EventFormData 建立活動的多步驟表單資料；必填與否只由驗證器決定
type EventFormData struct {
	Title           *string `json:"title,omitempty" yaml:"title,omitempty"`
	Category        *string `json:"category,omitempty" yaml:"category,omitempty"`
	Description     *string `json:"description,omitempty" yaml:"description,omitempty"`
	Location        *string `json:"location,omitempty" yaml:"location,omitempty"`
	StartDate       *string `json:"startDate,omitempty" yaml:"startDate,omitempty"`
	EndDate         *string `json:"endDate,omitempty" yaml:"endDate,omitempty"`
	MaxParticipants *string `json:"maxParticipants,omitempty" yaml:"maxParticipants,omitempty"`
}

// Get 取得欄位值，未設定視為空字串
func (f EventFormData) Get(field string) string {
	if p := f.ptr(field); p != nil && *p != nil {
		return **p
	}
	return ""
}

// Set 設定欄位值，未知欄位忽略
func (f *EventFormData) Set(field, value string) {
	if p := f.ptr(field); p != nil {
		v := value
		*p = &v
	}
}

func (f *EventFormData) ptr(field string) **string {
	switch field {
	case FieldTitle:
		return &f.Title
	case FieldCategory:
		return &f.Category
	case FieldDescription:
		return &f.Description
	case FieldLocation:
		return &f.Location
	case FieldStartDate:
		return &f.StartDate
	case FieldEndDate:
		return &f.EndDate
	case FieldMaxParticipants:
		return &f.MaxParticipants
	}
	return nil
}

// FieldState 單一欄位的表單狀態
type FieldState struct {
	Value   string
	Touched bool
	Error   string
}

// ValidationErrors 欄位 -> 錯誤訊息；沒有 key 代表目前合法
type ValidationErrors map[string]string
