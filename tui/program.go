package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/BvspHUB/PortoFabrlio/content"
)

// Run starts the terminal portfolio and blocks until the user quits.
func Run(ctx context.Context, page *content.Content) error {
	if ctx == nil {
		ctx = context.Background()
	}
	model := NewModel(page, logrus.NewEntry(logrus.StandardLogger()))
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	model.sched.bind(p.Send)

	// Keep log output from tearing the alternate screen.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err := p.Run()
	return err
}
