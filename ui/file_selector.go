package ui

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/maxcabd/custom-card-parser/ccard"
	"github.com/maxcabd/custom-card-parser/ccard/cerror"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	// ConvertFunc converts the file at path and returns the path it wrote.
	// Without force it must fail with cerror.ErrDestinationExists rather
	// than replace a file.
	ConvertFunc func(path string, force bool) (string, error)
	FileName    string

	FileSelector struct {
		cwd     string
		files   []FileName
		cursor  int
		status  string
		failed  bool
		convert ConvertFunc
		// pending is the file waiting for the user to allow an overwrite
		pending FileName
	}
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
)

// ReadDirectory lists the files the tool knows how to convert.
func ReadDirectory(path string) ([]FileName, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrap(err, "ReadDirectory error")
	}

	convertible := lo.Filter(
		entries,
		func(entry fs.DirEntry, _ int) bool {
			_, ok := ccard.FormatFromPath(entry.Name())
			return !entry.IsDir() && ok
		},
	)
	return lo.Map(
		convertible,
		func(entry fs.DirEntry, _ int) FileName {
			return FileName(entry.Name())
		},
	), nil
}

func CreateFileSelector(cwd string, convert ConvertFunc) (FileSelector, error) {
	files, err := ReadDirectory(cwd)
	if err != nil {
		return FileSelector{}, err
	}
	return FileSelector{
		cwd:     cwd,
		files:   files,
		convert: convert,
	}, nil
}

func (s FileSelector) View() string {
	output := titleStyle.Render("CUSTOM CARD PARSER") + "\n\n"
	output += "Current directory: " + s.cwd + "\n\n"

	if len(s.files) == 0 {
		output += "No .binary, .json or .yaml file here.\n"
	}
	for i, file := range s.files {
		line := fmt.Sprintf("  %s", file)
		if i == s.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %s", file))
		}
		output += line + "\n"
	}

	if status, failed := s.Status(); status != "" {
		style := successStyle
		switch {
		case failed:
			style = failureStyle
		case s.pending != "":
			style = warningStyle
		}
		output += "\n" + style.Render(status) + "\n"
	}
	output += "\n" + helpStyle.Render("up/down: move • enter: convert • q: quit") + "\n"
	return output
}

func (s FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.pending != "" && keyMsg.String() != "ctrl+c" {
		return s.answerOverwrite(keyMsg.String() == "y"), nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		return s, tea.Quit
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.files)-1 {
			s.cursor++
		}
	case "enter":
		selected, ok := s.Selected()
		if !ok {
			return s, nil
		}
		s = s.convertFile(selected, false)
	}
	return s, nil
}

func (s FileSelector) answerOverwrite(yes bool) FileSelector {
	file := s.pending
	s.pending = ""
	if !yes {
		s.status = "Kept the existing file; nothing converted from " + string(file)
		s.failed = false
		return s
	}
	return s.convertFile(file, true)
}

func (s FileSelector) convertFile(file FileName, force bool) FileSelector {
	path := filepath.Join(s.cwd, string(file))
	written, err := s.convert(path, force)
	var exists cerror.ErrDestinationExists
	if errors.As(err, &exists) {
		s.pending = file
		s.status = filepath.Base(exists.Path) + " exists. Press y to overwrite it, any other key to cancel."
		s.failed = false
		return s
	}
	if err != nil {
		s.status = "Error: " + err.Error()
		s.failed = true
		return s
	}
	s.status = "Wrote " + filepath.Base(written)
	s.failed = false

	// pick up the file that was just written
	files, err := ReadDirectory(s.cwd)
	if err == nil {
		s.files = files
		if s.cursor >= len(files) {
			s.cursor = lo.Max([]int{len(files) - 1, 0})
		}
	}
	return s
}

func (s FileSelector) Init() tea.Cmd {
	return nil
}

// Selected returns the file under the cursor, if any.
func (s FileSelector) Selected() (FileName, bool) {
	if len(s.files) == 0 {
		return "", false
	}
	return s.files[s.cursor], true
}

// Status returns the last conversion message and whether it was a failure.
func (s FileSelector) Status() (string, bool) {
	return strings.TrimSpace(s.status), s.failed
}
