package commands

import (
	"context"
	"errors"

	gocommand "github.com/goliatone/go-command"
)

// ShowFeatureInput selects a feature card.
type ShowFeatureInput struct {
	Key string
}

type featurePresenter interface {
	Show(key string) bool
}

// ShowFeatureCommand fills the feature card. Unknown keys and incomplete pages are
// not errors; telemetry records whether the card changed.
type ShowFeatureCommand struct {
	presenter featurePresenter
	telemetry Telemetry
}

// NewShowFeatureCommand creates the command.
func NewShowFeatureCommand(presenter featurePresenter, telemetry Telemetry) *ShowFeatureCommand {
	return &ShowFeatureCommand{presenter: presenter, telemetry: telemetryOrDiscard(telemetry)}
}

var _ gocommand.Commander[ShowFeatureInput] = (*ShowFeatureCommand)(nil)

// Execute delegates to the presenter.
func (c *ShowFeatureCommand) Execute(ctx context.Context, msg ShowFeatureInput) error {
	if c.presenter == nil {
		return errors.New("show feature command requires presenter")
	}
	updated := c.presenter.Show(msg.Key)
	c.telemetry.Record(ctx, EventFeatureShown, map[string]any{
		"key":     msg.Key,
		"updated": updated,
	})
	return nil
}
