// Package tui implements the popup client: a terminal front-end over the
// daemon's control channel for managing the session passphrase and keyrings
// and for encrypting messages by hand.
package tui

import (
	"context"

	"github.com/eddieoz/openxrypt/internal/adapter"
	"github.com/eddieoz/openxrypt/internal/logger"
	"github.com/eddieoz/openxrypt/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	client adapter.ControlClient
}

func New(client adapter.ControlClient, _ *logger.Logger) (*TUI, error) {
	return &TUI{client: client}, nil
}

// Run opens the popup and blocks until the user quits.
func (t *TUI) Run(ctx context.Context, buildInfo models.AppBuildInfo) error {
	model := newPopupModel(ctx, t.client, buildInfo)
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
