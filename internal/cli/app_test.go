package cli_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"eventhub/config"
	"eventhub/internal/cli"
	"eventhub/internal/client/mocks"
	"eventhub/internal/credential"
	"eventhub/internal/model"
	"eventhub/internal/service"
	apperrors "eventhub/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// scriptedDriver 依序回放預先準備的答案；輸入未通過驗證時換下一個答案，與終端機重新詢問相同
type scriptedDriver struct {
	inputs   []string
	selects  []int
	rejected []string
}

func (d *scriptedDriver) Input(ctx context.Context, cfg cli.InputConfig) (string, error) {
	for len(d.inputs) > 0 {
		answer := d.inputs[0]
		d.inputs = d.inputs[1:]
		if cfg.Validator != nil {
			if err := cfg.Validator(answer); err != nil {
				d.rejected = append(d.rejected, err.Error())
				continue
			}
		}
		return answer, nil
	}
	return "", cli.ErrAborted
}

func (d *scriptedDriver) Select(ctx context.Context, cfg cli.SelectConfig) (int, error) {
	if len(d.selects) == 0 {
		return 0, cli.ErrAborted
	}
	idx := d.selects[0]
	d.selects = d.selects[1:]
	return idx, nil
}

func setupApp(t *testing.T, driver cli.PromptDriver) (*cli.App, *mocks.EventAPIMock, credential.Store, *bytes.Buffer) {
	t.Helper()
	api := mocks.NewEventAPIMock()
	store := credential.NewMemoryStore(config.DefaultCredentialKey)
	parser := func(token string) (*model.User, error) {
		if token == "user-1" {
			return &model.User{ID: 1, Name: "Ann"}, nil
		}
		return nil, apperrors.ErrInvalidToken
	}
	pages := service.NewEventPageService(api, store, parser)
	out := &bytes.Buffer{}
	return cli.NewApp(pages, store, driver, out, true), api, store, out
}

func sampleEvent() *model.Event {
	return &model.Event{
		ID:       3,
		Title:    "Jazz Night",
		Category: model.CategoryMusic,
		Creator:  model.Creator{ID: 1, Name: "Ann"},
	}
}

func TestApp_LoginLogout(t *testing.T) {
	ctx := context.Background()
	app, _, store, _ := setupApp(t, &scriptedDriver{})

	require.NoError(t, app.Run(ctx, []string{"login", " user-1 "}))
	token, err := store.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-1", token)

	require.NoError(t, app.Run(ctx, []string{"logout"}))
	_, err = store.Get(ctx)
	assert.ErrorIs(t, err, apperrors.ErrCredentialNotFound)
}

func TestApp_Usage(t *testing.T) {
	ctx := context.Background()
	app, _, _, out := setupApp(t, &scriptedDriver{})

	assert.ErrorIs(t, app.Run(ctx, nil), cli.ErrUsage)
	assert.ErrorIs(t, app.Run(ctx, []string{"join"}), cli.ErrUsage)
	assert.ErrorIs(t, app.Run(ctx, []string{"dance"}), cli.ErrUsage)
	assert.Contains(t, out.String(), "usage: eventhub")
}

func TestApp_Show(t *testing.T) {
	ctx := context.Background()
	app, api, store, out := setupApp(t, &scriptedDriver{})
	require.NoError(t, store.Set(ctx, "user-1"))
	api.On("GetEvent", mock.Anything, 3).Return(sampleEvent(), nil).Once()

	require.NoError(t, app.Run(ctx, []string{"show", "3"}))

	var view map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &view))
	assert.Equal(t, "Jazz Night", view["title"])
	assert.Equal(t, "Music", view["category"])
	assert.Equal(t, true, view["isOwner"])
	api.AssertExpectations(t)
}

func TestApp_ShowNotFound(t *testing.T) {
	ctx := context.Background()
	app, api, _, _ := setupApp(t, &scriptedDriver{})

	err := app.Run(ctx, []string{"show", "abc"})

	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	api.AssertNotCalled(t, "GetEvent", mock.Anything, mock.Anything)
}

func TestApp_Join(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		app, api, store, out := setupApp(t, &scriptedDriver{})
		require.NoError(t, store.Set(ctx, "user-2"))
		joined := sampleEvent()
		joined.ParticipantsCount = 1
		joined.IsParticipant = true
		joined.Participants = []model.Participant{{ID: 2, Name: "Bo"}}
		api.On("GetEvent", mock.Anything, 3).Return(sampleEvent(), nil).Once()
		api.On("Join", mock.Anything, 3, "user-2").Return(joined, nil).Once()

		require.NoError(t, app.Run(ctx, []string{"join", "3"}))

		assert.Contains(t, out.String(), "isParticipant: true")
		assert.Contains(t, out.String(), "- Bo")
		api.AssertExpectations(t)
	})

	t.Run("NotLoggedIn", func(t *testing.T) {
		app, api, _, _ := setupApp(t, &scriptedDriver{})
		api.On("GetEvent", mock.Anything, 3).Return(sampleEvent(), nil).Once()

		err := app.Run(ctx, []string{"join", "3"})

		assert.ErrorIs(t, err, apperrors.ErrAuthenticationMissing)
		api.AssertNotCalled(t, "Join", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestApp_Leave(t *testing.T) {
	ctx := context.Background()
	app, api, store, out := setupApp(t, &scriptedDriver{})
	require.NoError(t, store.Set(ctx, "user-2"))
	joined := sampleEvent()
	joined.IsParticipant = true
	api.On("GetEvent", mock.Anything, 3).Return(joined, nil).Once()
	api.On("Leave", mock.Anything, 3, "user-2").Return(nil).Once()
	api.On("GetEvent", mock.Anything, 3).Return(sampleEvent(), nil).Once()

	require.NoError(t, app.Run(ctx, []string{"leave", "3"}))

	assert.Contains(t, out.String(), "isParticipant: false")
	api.AssertExpectations(t)
}

func TestApp_Edit(t *testing.T) {
	ctx := context.Background()
	app, api, _, out := setupApp(t, &scriptedDriver{})
	api.On("GetEvent", mock.Anything, 3).Return(sampleEvent(), nil).Once()

	require.NoError(t, app.Run(ctx, []string{"edit", "3"}))

	assert.Equal(t, "/events/3/edit\n", out.String())
}

func TestApp_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		driver := &scriptedDriver{
			inputs:  []string{"", "Jo", "Jazz Night", "Live band"},
			selects: []int{0},
		}
		app, _, _, out := setupApp(t, driver)

		require.NoError(t, app.Run(ctx, []string{"create"}))

		assert.Equal(t, []string{"Title is required", "Title must be at least 3 characters"}, driver.rejected)
		var draft model.EventFormData
		require.NoError(t, yaml.Unmarshal(out.Bytes(), &draft))
		assert.Equal(t, "Jazz Night", draft.Get(model.FieldTitle))
		assert.Equal(t, "music", draft.Get(model.FieldCategory))
		assert.Equal(t, "Live band", draft.Get(model.FieldDescription))
	})

	t.Run("Aborted", func(t *testing.T) {
		app, _, _, out := setupApp(t, &scriptedDriver{})

		err := app.Run(ctx, []string{"create"})

		assert.True(t, errors.Is(err, cli.ErrAborted))
		assert.Empty(t, out.String())
	})
}
