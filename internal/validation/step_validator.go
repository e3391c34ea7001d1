// Package validation 建立活動表單的單一步驟驗證
package validation

import (
	"maps"

	"eventhub/internal/model"
)

type Option func(*StepValidator)

// WithEagerValidation 開啟時，ValidateForm 會把所有有規則的欄位標記為 touched，
// 因此掛載時就會顯示必填錯誤。預設開啟。
func WithEagerValidation(on bool) Option {
	return func(s *StepValidator) { s.eager = on }
}

// WithFormChangeHook 欄位值變更時通知上層
func WithFormChangeHook(fn func(field, value string)) Option {
	return func(s *StepValidator) { s.onFormChange = fn }
}

// WithValidationChangeHook 每次 Sync 重新驗證後通知上層整體是否合法
func WithValidationChangeHook(fn func(valid bool)) Option {
	return func(s *StepValidator) { s.onValidationChange = fn }
}

// StepValidator 保存一個表單步驟的欄位狀態。不可併發使用。
type StepValidator struct {
	eager              bool
	data               model.EventFormData
	touched            map[string]bool
	errors             model.ValidationErrors
	valid              bool
	mounted            bool
	synced             map[string]string
	onFormChange       func(field, value string)
	onValidationChange func(valid bool)
}

func NewStepValidator(opts ...Option) *StepValidator {
	s := &StepValidator{
		eager:   true,
		touched: make(map[string]bool),
		errors:  make(model.ValidationErrors),
		synced:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateForm 檢查所有有規則的欄位。相同輸入永遠得到相同結果。
func (s *StepValidator) ValidateForm(data model.EventFormData) (model.ValidationErrors, bool) {
	errs := make(model.ValidationErrors)
	for _, field := range RuleFields {
		if msg := ValidateField(field, data.Get(field)); msg != "" {
			errs[field] = msg
		}
	}

	s.errors = errs
	s.valid = len(errs) == 0
	if s.eager {
		for _, field := range RuleFields {
			s.touched[field] = true
		}
	}

	return maps.Clone(errs), s.valid
}

// Change 使用者修改欄位值；已 touched 的欄位立即重新驗證
func (s *StepValidator) Change(field, value string) {
	s.data.Set(field, value)
	if s.onFormChange != nil {
		s.onFormChange(field, value)
	}
	if s.touched[field] {
		s.setError(field, ValidateField(field, value))
	}
	s.Sync(s.data)
}

// Blur 欄位失去焦點：標記 touched 並顯示驗證結果
func (s *StepValidator) Blur(field string) {
	s.touched[field] = true
	s.setError(field, ValidateField(field, s.data.Get(field)))
}

// Sync 外部傳入的表單資料。第一次呼叫或監看欄位有變動時重新驗證並通知上層，
// 讓程式化的重設也會被驗證。
func (s *StepValidator) Sync(data model.EventFormData) bool {
	s.data = data
	if s.mounted && !s.watchedChanged(data) {
		return s.valid
	}
	s.mounted = true
	for _, field := range RuleFields {
		s.synced[field] = data.Get(field)
	}

	_, valid := s.ValidateForm(data)
	if s.onValidationChange != nil {
		s.onValidationChange(valid)
	}
	return valid
}

func (s *StepValidator) watchedChanged(data model.EventFormData) bool {
	for _, field := range RuleFields {
		if s.synced[field] != data.Get(field) {
			return true
		}
	}
	return false
}

func (s *StepValidator) setError(field, msg string) {
	if msg == "" {
		delete(s.errors, field)
		return
	}
	s.errors[field] = msg
}

// Field 回傳欄位狀態；未 touched 的欄位不帶錯誤
func (s *StepValidator) Field(field string) model.FieldState {
	st := model.FieldState{
		Value:   s.data.Get(field),
		Touched: s.touched[field],
	}
	if st.Touched {
		st.Error = s.errors[field]
	}
	return st
}

// VisibleErrors 只包含已 touched 欄位的錯誤
func (s *StepValidator) VisibleErrors() model.ValidationErrors {
	out := make(model.ValidationErrors)
	for field, msg := range s.errors {
		if s.touched[field] {
			out[field] = msg
		}
	}
	return out
}

func (s *StepValidator) Touched(field string) bool { return s.touched[field] }

func (s *StepValidator) Valid() bool { return s.valid }

func (s *StepValidator) Eager() bool { return s.eager }

func (s *StepValidator) Data() model.EventFormData { return s.data }
