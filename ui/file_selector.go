package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cyber-savior/cpsav"
	"cyber-savior/cpsav/creport"
	"cyber-savior/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	SaveFileExtension = ".dat"

	StateBrowsing = "browsing"
	StateLoading  = "loading"
	StateShowing  = "showing"
)

type (
	FileName string

	FileSelector struct {
		cwd      string
		files    []FileName
		cursor   int
		state    string
		selected FileName
		report   string
		err      error
	}

	// reportMsg carries a finished decode back to the update loop.
	reportMsg struct {
		file   FileName
		report string
	}
)

func CreateFileSelector() (*FileSelector, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "CreateFileSelector get current working directory error")
	}
	return CreateFileSelectorAt(cwd), nil
}

func CreateFileSelectorAt(dir string) *FileSelector {
	files, err := ReadDirectory(dir)
	return &FileSelector{
		cwd:   dir,
		files: files,
		state: StateBrowsing,
		err:   err,
	}
}

// ReadDirectory lists the save files directly inside path, sorted by name.
func ReadDirectory(path string) ([]FileName, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, errors.Wrapf(err, `ReadDirectory error reading "%s"`, path)
	}
	entries = lo.Filter(
		entries,
		func(entry os.DirEntry, _ int) bool {
			return !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), SaveFileExtension)
		},
	)
	return lo.Map(
		entries,
		func(entry os.DirEntry, _ int) FileName {
			return FileName(entry.Name())
		},
	), nil
}

// LoadReport reads and decodes a save. It runs as a tea.Cmd, away from the
// update loop.
func LoadReport(dir string, file FileName) tea.Cmd {
	return func() tea.Msg {
		bs, err := os.ReadFile(filepath.Join(dir, string(file)))
		if err != nil {
			logger.Sugar.WithServiceName("ui").Warnf("reading %s: %v", file, err)
			return reportMsg{file: file, report: creport.ReadFailure}
		}
		analysis, err := cpsav.Analyze(bs)
		if err != nil {
			return reportMsg{file: file, report: creport.FormatFailure(err)}
		}
		return reportMsg{file: file, report: creport.Format(analysis.Accounting, nil)}
	}
}

func (s *FileSelector) View() string {
	output := "CYBER SAVIOR\n\n"
	output += "Current directory: " + s.cwd + "\n\n"

	switch s.state {
	case StateLoading:
		output += fmt.Sprintf("Loading %s...\n", s.selected)
	case StateShowing:
		output += fmt.Sprintf("%s\n\n%s\n", s.selected, s.report)
		output += "esc: back  q: quit\n"
	default:
		if s.err != nil {
			return output + s.err.Error() + "\n"
		}
		if len(s.files) == 0 {
			return output + "No *" + SaveFileExtension + " files here. Start the program inside a save folder.\n"
		}
		for i, file := range s.files {
			cursor := "  "
			if i == s.cursor {
				cursor = "> "
			}
			output += cursor + string(file) + "\n"
		}
		output += "\nenter: open  q: quit\n"
	}

	return output
}

func (s *FileSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportMsg:
		// a result for a file the user already left is dropped
		if s.state == StateLoading && msg.file == s.selected {
			s.report = msg.report
			s.state = StateShowing
		}
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg.String())
	}
	return s, nil
}

func (s *FileSelector) handleKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return s, tea.Quit
	case "esc":
		s.state = StateBrowsing
		s.report = ""
	case "up", "k":
		if s.state == StateBrowsing && s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.state == StateBrowsing && s.cursor < len(s.files)-1 {
			s.cursor++
		}
	case "enter":
		if s.state != StateBrowsing || len(s.files) == 0 {
			return s, nil
		}
		s.selected = s.files[s.cursor]
		s.state = StateLoading
		return s, LoadReport(s.cwd, s.selected)
	}
	return s, nil
}

func (s *FileSelector) Init() tea.Cmd {
	return nil
}
