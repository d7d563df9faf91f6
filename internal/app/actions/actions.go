//go:generate mockgen -source=actions.go -destination=actions_mock.go -package=actions
package actions

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"logex/internal/app/errors"
	"logex/internal/config/logger"
)

// Temp file names used when handing text to the editor
const (
	EntryFile = "logex_entry.log"
	PageFile  = "logex_page.log"
)

const (
	editorEnv     = "EDITOR"
	visualEnv     = "VISUAL"
	defaultEditor = "vi"
)

// EditorClosedMsg is sent once the external editor exits
type EditorClosedMsg struct {
	Status string
	Err    error
}

// Actions performs side effects on behalf of the log context menu
type Actions interface {
	// Copy puts text on the system clipboard
	Copy(text string) error
	// Edit writes text to a temp file and opens it in the user's editor
	Edit(text, filename string) tea.Cmd
}

type actions struct {
	write   func(string) error
	lookup  func(string) string
	tempDir string
	log     logger.Logger
}

// NewActions creates Actions backed by the system clipboard and $EDITOR
func NewActions(log logger.Logger) Actions {
	return &actions{
		write:   clipboard.WriteAll,
		lookup:  os.Getenv,
		tempDir: os.TempDir(),
		log:     log.WithComponent("ACTIONS"),
	}
}

func (a *actions) Copy(text string) error {
	if text == "" {
		return errors.ErrNothingToCopy
	}

	if err := a.write(text); err != nil {
		a.log.Warn().Err(err).Msg("Clipboard write failed")
		return err
	}

	return nil
}

func (a *actions) Edit(text, filename string) tea.Cmd {
	path := filepath.Join(a.tempDir, filename)

	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		err = fmt.Errorf("%w: %w", errors.ErrFailedToWriteTemp, err)

		return func() tea.Msg {
			return EditorClosedMsg{Status: fmt.Sprintf("Failed to open editor: %v", err), Err: err}
		}
	}

	cmd := a.editorCommand(path)
	a.log.Debug().Msgf("Opening %s with %s", path, cmd.Path)

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		if err != nil {
			return EditorClosedMsg{Status: fmt.Sprintf("Editor exited with error: %v", err), Err: err}
		}

		return EditorClosedMsg{Status: "Closed editor " + filepath.Base(path)}
	})
}

// editorCommand builds the editor invocation, honouring arguments in $VISUAL or $EDITOR
func (a *actions) editorCommand(path string) *exec.Cmd {
	editor := strings.TrimSpace(a.lookup(visualEnv))
	if editor == "" {
		editor = strings.TrimSpace(a.lookup(editorEnv))
	}

	fields := strings.Fields(editor)
	if len(fields) == 0 {
		fields = []string{defaultEditor}
	}

	args := append(fields[1:], path)

	return exec.Command(fields[0], args...) //nolint:gosec // editor comes from the user's environment
}
