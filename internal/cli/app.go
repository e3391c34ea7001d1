// Package cli 提供 eventhub 指令列介面：登入、檢視與操作單一活動、建立活動草稿。
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"eventhub/internal/controller"
	"eventhub/internal/credential"
	"eventhub/internal/model"
	"eventhub/internal/service"
	"eventhub/internal/validation"
	apperrors "eventhub/pkg/app_errors"

	"gopkg.in/yaml.v3"
)

var ErrUsage = errors.New("usage")

const usage = `usage: eventhub <command> [args]

commands:
  login <token>   store the bearer token
  logout          forget the stored token
  show <id>       print an event
  join <id>       join an event
  leave <id>      leave an event
  edit <id>       print the edit page path of an event
  create          fill in the basic info step of a new event
`

type App struct {
	pages           service.EventPageService
	tokens          credential.Store
	driver          PromptDriver
	out             io.Writer
	eagerValidation bool
}

func NewApp(pages service.EventPageService, tokens credential.Store, driver PromptDriver, out io.Writer, eagerValidation bool) *App {
	return &App{
		pages:           pages,
		tokens:          tokens,
		driver:          driver,
		out:             out,
		eagerValidation: eagerValidation,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrUsage
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		if len(rest) != 1 {
			return a.usageError()
		}
		return a.tokens.Set(ctx, strings.TrimSpace(rest[0]))
	case "logout":
		return a.tokens.Delete(ctx)
	case "show", "join", "leave", "edit":
		if len(rest) != 1 {
			return a.usageError()
		}
		return a.eventCommand(ctx, cmd, rest[0])
	case "create":
		return a.create(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	}
	return a.usageError()
}

func (a *App) usageError() error {
	fmt.Fprint(a.out, usage)
	return ErrUsage
}

func (a *App) eventCommand(ctx context.Context, cmd, rawID string) error {
	ctrl, err := a.pages.Open(ctx, rawID)
	if err != nil {
		return err
	}
	defer ctrl.Close()

	switch cmd {
	case "join":
		err = ctrl.Join(ctx)
	case "leave":
		err = ctrl.Leave(ctx)
	case "edit":
		intent := ctrl.Edit()
		_, err = fmt.Fprintln(a.out, intent.Path)
		return err
	}
	if err != nil {
		return describe(err)
	}

	return a.printEvent(ctx, ctrl)
}

// describe 將操作失敗轉為使用者看得懂的訊息，保留原本的錯誤鏈
func describe(err error) error {
	switch {
	case errors.Is(err, apperrors.ErrAuthenticationMissing):
		return fmt.Errorf("please log in first (eventhub login <token>): %w", err)
	case errors.Is(err, apperrors.ErrMutationInFlight):
		return fmt.Errorf("another request is still running: %w", err)
	}
	return err
}

type eventView struct {
	ID            int      `yaml:"id"`
	Title         string   `yaml:"title"`
	Category      string   `yaml:"category"`
	Creator       string   `yaml:"creator"`
	Participants  []string `yaml:"participants,omitempty"`
	Count         int      `yaml:"participantsCount"`
	IsParticipant bool     `yaml:"isParticipant"`
	IsOwner       bool     `yaml:"isOwner"`
}

func (a *App) printEvent(ctx context.Context, ctrl controller.EventController) error {
	event := ctrl.Snapshot()
	view := eventView{
		ID:            event.ID,
		Title:         event.Title,
		Category:      event.Category.Label(),
		Creator:       event.Creator.Name,
		Count:         event.ParticipantsCount,
		IsParticipant: event.IsParticipant,
		IsOwner:       ctrl.IsOwner(a.pages.CurrentUser(ctx)),
	}
	for _, p := range event.Participants {
		view.Participants = append(view.Participants, p.Name)
	}
	return a.writeYAML(view)
}

func (a *App) create(ctx context.Context) error {
	validator := validation.NewStepValidator(validation.WithEagerValidation(a.eagerValidation))
	data, err := NewBasicInfoStep(a.driver, validator).Run(ctx, model.EventFormData{})
	if err != nil {
		return err
	}
	return a.writeYAML(data)
}

func (a *App) writeYAML(v any) error {
	enc := yaml.NewEncoder(a.out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
