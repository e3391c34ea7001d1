package cli_test

import (
	"context"
	"testing"

	"eventhub/internal/cli"
	"eventhub/internal/model"
	"eventhub/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicInfoStep_KeepsOtherSteps(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Hackathon", ""},
		selects: []int{3},
	}
	validator := validation.NewStepValidator()
	initial := model.EventFormData{}
	initial.Set(model.FieldLocation, "Taipei")

	data, err := cli.NewBasicInfoStep(driver, validator).Run(context.Background(), initial)

	require.NoError(t, err)
	assert.Equal(t, "technology", data.Get(model.FieldCategory))
	assert.Equal(t, "Taipei", data.Get(model.FieldLocation))
	assert.True(t, validator.Valid())
	assert.Empty(t, validator.VisibleErrors())
}

func TestBasicInfoStep_RepromptsUnknownCategory(t *testing.T) {
	driver := &scriptedDriver{
		inputs:  []string{"Hackathon", ""},
		selects: []int{-1, 5},
	}
	validator := validation.NewStepValidator()

	data, err := cli.NewBasicInfoStep(driver, validator).Run(context.Background(), model.EventFormData{})

	require.NoError(t, err)
	assert.Equal(t, "business", data.Get(model.FieldCategory))
}

func TestBasicInfoStep_EagerModeShowsErrorsOnMount(t *testing.T) {
	validator := validation.NewStepValidator(validation.WithEagerValidation(true))
	validator.Sync(model.EventFormData{})

	assert.Equal(t, "Title is required", validator.Field(model.FieldTitle).Error)
	assert.Equal(t, "Please select a category", validator.Field(model.FieldCategory).Error)
}
