package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-lessonui/components/lessonui"
)

// ToggleQuizInput names the quiz block to flip and the lesson it belongs to.
type ToggleQuizInput struct {
	ElementID string
	LessonID  lessonui.LessonID
}

type quizToggler interface {
	Toggle(elementID string, lessonID lessonui.LessonID) error
}

// ToggleQuizCommand lets hosts dispatch quiz toggles without holding the toggle itself.
type ToggleQuizCommand struct {
	toggle    quizToggler
	telemetry Telemetry
}

// NewToggleQuizCommand creates the command.
func NewToggleQuizCommand(toggle quizToggler, telemetry Telemetry) *ToggleQuizCommand {
	return &ToggleQuizCommand{toggle: toggle, telemetry: telemetryOrDiscard(telemetry)}
}

var _ gocommand.Commander[ToggleQuizInput] = (*ToggleQuizCommand)(nil)

// Execute flips the quiz block.
func (c *ToggleQuizCommand) Execute(ctx context.Context, msg ToggleQuizInput) error {
	if c.toggle == nil {
		return errors.New("toggle quiz command requires toggle")
	}
	if msg.ElementID == "" {
		return errors.New("toggle quiz command requires element id")
	}
	if err := c.toggle.Toggle(msg.ElementID, msg.LessonID); err != nil {
		return err
	}
	c.telemetry.Record(ctx, EventQuizToggled, map[string]any{
		"element_id": msg.ElementID,
		"lesson_id":  msg.LessonID.String(),
	})
	return nil
}
