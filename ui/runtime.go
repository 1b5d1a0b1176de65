package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start() error {
	fileSelector, err := CreateFileSelector()
	if err != nil {
		return err
	}
	if err := tea.NewProgram(fileSelector).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
