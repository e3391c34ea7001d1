package validation

import (
	"strings"

	"eventhub/internal/model"

	"github.com/go-playground/validator/v10"
)

// 錯誤訊息
const (
	MsgTitleRequired    = "Title is required"
	MsgTitleTooShort    = "Title must be at least 3 characters"
	MsgCategoryRequired = "Please select a category"
)

const titleMinLength = 3

type rule struct {
	tag       string
	message   string
	normalize func(string) string
}

var validate = validator.New()

// basicInfoRules 基本資訊步驟的規則；依序檢查，第一個失敗的規則決定訊息
var basicInfoRules = map[string][]rule{
	model.FieldTitle: {
		{tag: "required", message: MsgTitleRequired, normalize: strings.TrimSpace},
		{tag: "min=3", message: MsgTitleTooShort, normalize: strings.TrimSpace},
	},
	model.FieldCategory: {
		{tag: "oneof=" + categoryOptions(), message: MsgCategoryRequired},
	},
}

// RuleFields 有規則的欄位，也是 Sync 監看的欄位
var RuleFields = []string{model.FieldTitle, model.FieldCategory}

// ValidateField 回傳欄位的錯誤訊息，合法或沒有規則的欄位回傳空字串
func ValidateField(field, value string) string {
	rules, ok := basicInfoRules[field]
	if !ok {
		return ""
	}
	for _, r := range rules {
		v := value
		if r.normalize != nil {
			v = r.normalize(v)
		}
		if err := validate.Var(v, r.tag); err != nil {
			return r.message
		}
	}
	return ""
}

// HasRule 欄位是否屬於這個步驟的規則
func HasRule(field string) bool {
	_, ok := basicInfoRules[field]
	return ok
}

func categoryOptions() string {
	opts := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		opts = append(opts, string(c))
	}
	return strings.Join(opts, " ")
}
