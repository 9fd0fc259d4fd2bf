package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func Start(cwd string, convert ConvertFunc) error {
	fileSelector, err := CreateFileSelector(cwd, convert)
	if err != nil {
		return err
	}
	return tea.NewProgram(fileSelector).Start()
}
