package cli

import (
	"context"
	"errors"
	"fmt"

	"eventhub/internal/model"
	"eventhub/internal/validation"
)

// BasicInfoStep 以互動方式填寫建立活動的第一步，欄位變更都經過 StepValidator
type BasicInfoStep struct {
	driver    PromptDriver
	validator *validation.StepValidator
}

func NewBasicInfoStep(driver PromptDriver, validator *validation.StepValidator) *BasicInfoStep {
	return &BasicInfoStep{driver: driver, validator: validator}
}

// Run 從 initial 開始填寫，直到標題與分類都合法才回傳
func (w *BasicInfoStep) Run(ctx context.Context, initial model.EventFormData) (model.EventFormData, error) {
	w.validator.Sync(initial)

	title, err := w.driver.Input(ctx, InputConfig{
		Message:   "Event title",
		Default:   initial.Get(model.FieldTitle),
		Validator: w.fieldValidator(model.FieldTitle),
	})
	if err != nil {
		return model.EventFormData{}, err
	}
	w.commit(model.FieldTitle, title)

	for {
		if err := w.askCategory(ctx, initial.Get(model.FieldCategory)); err != nil {
			return model.EventFormData{}, err
		}
		if w.validator.Field(model.FieldCategory).Error == "" {
			break
		}
	}

	description, err := w.driver.Input(ctx, InputConfig{
		Message: "Description (optional)",
		Default: initial.Get(model.FieldDescription),
	})
	if err != nil {
		return model.EventFormData{}, err
	}
	w.commit(model.FieldDescription, description)

	if !w.validator.Valid() {
		return model.EventFormData{}, fmt.Errorf("basic info is incomplete: %v", w.validator.VisibleErrors())
	}
	return w.validator.Data(), nil
}

func (w *BasicInfoStep) askCategory(ctx context.Context, current string) error {
	options := make([]string, len(model.Categories))
	defaultIndex := -1
	for i, c := range model.Categories {
		options[i] = c.Label()
		if string(c) == current {
			defaultIndex = i
		}
	}

	idx, err := w.driver.Select(ctx, SelectConfig{
		Message:      "Category",
		Options:      options,
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return err
	}

	value := ""
	if idx >= 0 && idx < len(model.Categories) {
		value = string(model.Categories[idx])
	}
	w.commit(model.FieldCategory, value)
	return nil
}

func (w *BasicInfoStep) commit(field, value string) {
	w.validator.Change(field, value)
	w.validator.Blur(field)
}

// fieldValidator 讓輸入框在送出前就顯示與表單相同的錯誤訊息
func (w *BasicInfoStep) fieldValidator(field string) func(string) error {
	return func(value string) error {
		if msg := validation.ValidateField(field, value); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}
