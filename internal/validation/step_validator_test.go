package validation_test

import (
	"testing"

	"eventhub/internal/model"
	"eventhub/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStepValidator_ValidateForm(t *testing.T) {
	t.Run("Invalid - empty form", func(t *testing.T) {
		v := validation.NewStepValidator()

		errs, valid := v.ValidateForm(model.EventFormData{})

		assert.False(t, valid)
		assert.Equal(t, model.ValidationErrors{
			model.FieldTitle:    validation.MsgTitleRequired,
			model.FieldCategory: validation.MsgCategoryRequired,
		}, errs)
	})

	t.Run("Valid - title and category set", func(t *testing.T) {
		v := validation.NewStepValidator()

		errs, valid := v.ValidateForm(model.EventFormData{Title: strPtr("Jazz"), Category: strPtr("music")})

		assert.True(t, valid)
		assert.Empty(t, errs)
	})

	t.Run("Description is never validated", func(t *testing.T) {
		v := validation.NewStepValidator()

		errs, valid := v.ValidateForm(model.EventFormData{Title: strPtr("Jazz"), Category: strPtr("art"), Description: strPtr("")})

		assert.True(t, valid)
		assert.NotContains(t, errs, model.FieldDescription)
	})

	t.Run("Idempotent", func(t *testing.T) {
		v := validation.NewStepValidator()
		data := model.EventFormData{Title: strPtr("ab"), Category: strPtr("food")}

		errs1, valid1 := v.ValidateForm(data)
		errs2, valid2 := v.ValidateForm(data)

		assert.Equal(t, errs1, errs2)
		assert.Equal(t, valid1, valid2)
		assert.Equal(t, model.ValidationErrors{model.FieldTitle: validation.MsgTitleTooShort}, errs1)
	})

	t.Run("Returned errors are a copy", func(t *testing.T) {
		v := validation.NewStepValidator()
		errs, _ := v.ValidateForm(model.EventFormData{})
		errs[model.FieldTitle] = "changed"

		assert.Equal(t, validation.MsgTitleRequired, v.VisibleErrors()[model.FieldTitle])
	})
}

func TestStepValidator_EagerMode(t *testing.T) {
	t.Run("Eager - mount shows required errors", func(t *testing.T) {
		var reported []bool
		v := validation.NewStepValidator(validation.WithValidationChangeHook(func(valid bool) {
			reported = append(reported, valid)
		}))

		valid := v.Sync(model.EventFormData{})

		assert.False(t, valid)
		assert.Equal(t, []bool{false}, reported)
		assert.True(t, v.Touched(model.FieldTitle))
		assert.True(t, v.Touched(model.FieldCategory))
		assert.Equal(t, validation.MsgTitleRequired, v.Field(model.FieldTitle).Error)
		assert.Equal(t, validation.MsgCategoryRequired, v.Field(model.FieldCategory).Error)
	})

	t.Run("Lazy - mount reports validity without touching", func(t *testing.T) {
		var reported []bool
		v := validation.NewStepValidator(
			validation.WithEagerValidation(false),
			validation.WithValidationChangeHook(func(valid bool) { reported = append(reported, valid) }),
		)

		valid := v.Sync(model.EventFormData{})

		assert.False(t, valid)
		assert.Equal(t, []bool{false}, reported)
		assert.False(t, v.Touched(model.FieldTitle))
		assert.Empty(t, v.VisibleErrors())
		assert.Empty(t, v.Field(model.FieldTitle).Error)
	})
}

func TestStepValidator_Change(t *testing.T) {
	t.Run("Untouched field does not surface error", func(t *testing.T) {
		v := validation.NewStepValidator(validation.WithEagerValidation(false))
		v.Sync(model.EventFormData{})

		v.Change(model.FieldTitle, "a")

		st := v.Field(model.FieldTitle)
		assert.Equal(t, "a", st.Value)
		assert.False(t, st.Touched)
		assert.Empty(t, st.Error)
		assert.False(t, v.Valid())
	})

	t.Run("Touched field revalidates immediately", func(t *testing.T) {
		v := validation.NewStepValidator(validation.WithEagerValidation(false))
		v.Sync(model.EventFormData{})
		v.Blur(model.FieldTitle)
		require.Equal(t, validation.MsgTitleRequired, v.Field(model.FieldTitle).Error)

		v.Change(model.FieldTitle, "ab")
		assert.Equal(t, validation.MsgTitleTooShort, v.Field(model.FieldTitle).Error)

		v.Change(model.FieldTitle, "abc")
		assert.Empty(t, v.Field(model.FieldTitle).Error)
	})

	t.Run("Forwards to form change hook", func(t *testing.T) {
		var got [][2]string
		v := validation.NewStepValidator(validation.WithFormChangeHook(func(field, value string) {
			got = append(got, [2]string{field, value})
		}))

		v.Change(model.FieldDescription, "outdoor")
		v.Change(model.FieldCategory, "art")

		assert.Equal(t, [][2]string{{model.FieldDescription, "outdoor"}, {model.FieldCategory, "art"}}, got)
	})

	t.Run("Watched field change re-runs form validation", func(t *testing.T) {
		var reported []bool
		v := validation.NewStepValidator(validation.WithValidationChangeHook(func(valid bool) {
			reported = append(reported, valid)
		}))
		v.Sync(model.EventFormData{})

		v.Change(model.FieldTitle, "Jazz")
		v.Change(model.FieldCategory, "music")
		v.Change(model.FieldDescription, "late set")

		assert.Equal(t, []bool{false, false, true}, reported)
		assert.True(t, v.Valid())
	})
}

func TestStepValidator_Blur(t *testing.T) {
	v := validation.NewStepValidator(validation.WithEagerValidation(false))
	v.Sync(model.EventFormData{Category: strPtr("sports")})

	v.Blur(model.FieldCategory)
	assert.True(t, v.Touched(model.FieldCategory))
	assert.Empty(t, v.Field(model.FieldCategory).Error)

	v.Blur(model.FieldTitle)
	assert.Equal(t, validation.MsgTitleRequired, v.Field(model.FieldTitle).Error)

	v.Blur(model.FieldDescription)
	assert.True(t, v.Touched(model.FieldDescription))
	assert.Empty(t, v.Field(model.FieldDescription).Error)

	assert.Equal(t, model.ValidationErrors{model.FieldTitle: validation.MsgTitleRequired}, v.VisibleErrors())
}

func TestStepValidator_TouchIsOneWay(t *testing.T) {
	v := validation.NewStepValidator(validation.WithEagerValidation(false))
	v.Blur(model.FieldTitle)

	v.Change(model.FieldTitle, "valid title")
	v.Sync(model.EventFormData{})

	assert.True(t, v.Touched(model.FieldTitle))
	assert.Equal(t, validation.MsgTitleRequired, v.Field(model.FieldTitle).Error)
}

func TestStepValidator_Sync(t *testing.T) {
	t.Run("Programmatic reset is revalidated", func(t *testing.T) {
		var reported []bool
		v := validation.NewStepValidator(validation.WithValidationChangeHook(func(valid bool) {
			reported = append(reported, valid)
		}))

		v.Sync(model.EventFormData{Title: strPtr("Jazz"), Category: strPtr("music")})
		v.Sync(model.EventFormData{})

		assert.Equal(t, []bool{true, false}, reported)
		assert.Equal(t, validation.MsgTitleRequired, v.Field(model.FieldTitle).Error)
	})

	t.Run("Unchanged watched fields do not revalidate", func(t *testing.T) {
		calls := 0
		v := validation.NewStepValidator(validation.WithValidationChangeHook(func(bool) { calls++ }))
		data := model.EventFormData{Title: strPtr("Jazz"), Category: strPtr("music")}

		v.Sync(data)
		data.Description = strPtr("new description")
		valid := v.Sync(data)

		assert.True(t, valid)
		assert.Equal(t, 1, calls)
		assert.Equal(t, "new description", v.Field(model.FieldDescription).Value)
	})
}

func TestStepValidator_TouchInvariant(t *testing.T) {
	values := []string{"", "a", "ab", "abc", "music", "nope"}

	for _, eager := range []bool{true, false} {
		for _, title := range values {
			for _, cat := range values {
				v := validation.NewStepValidator(validation.WithEagerValidation(eager))
				v.Sync(model.EventFormData{Title: strPtr(title), Category: strPtr(cat)})

				for _, field := range validation.RuleFields {
					st := v.Field(field)
					if !st.Touched {
						assert.Empty(t, st.Error)
						assert.NotContains(t, v.VisibleErrors(), field)
					}
				}
			}
		}
	}
}
