// Package editorinvoke suspends the terminal UI and shells out to the
// user's editor to gather a commit message, the same way a VCS tool's
// commit flow does.
package editorinvoke

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultEditor = "vi"

var windowsFallbackEditors = []string{"vim", "nvim", "vi"}

// searchEditor finds a usable editor when none is configured, mirroring
// the env-var fallback chain a VCS commit editor normally uses.
func searchEditor() string {
	if e, ok := os.LookupEnv("EDITOR"); ok && e != "" {
		return e
	}
	if e, ok := os.LookupEnv("VISUAL"); ok && e != "" {
		return e
	}
	if runtime.GOOS == "windows" {
		for _, e := range windowsFallbackEditors {
			if _, err := exec.LookPath(e); err == nil {
				return e
			}
		}
	}
	return defaultEditor
}

// Edit writes message to a fresh temp file, opens it in the user's
// editor, blocks until the editor exits, and returns the file's final
// contents with a single trailing newline trimmed.
//
// Editor arguments are split on whitespace, matching the simple
// `core.editor` convention ("code --wait"); shell quoting within the
// editor command is not supported.
func Edit(editor, message string) (string, error) {
	if editor == "" {
		editor = searchEditor()
	}
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return "", errors.New("no editor configured")
	}

	path := filepath.Join(os.TempDir(), "zeta-record-"+uuid.NewString()+".txt")
	if err := os.WriteFile(path, []byte(message), 0o600); err != nil {
		return "", errors.Wrapf(err, "create commit message scratch file %s", path)
	}
	defer os.Remove(path)

	args := append(append([]string{}, fields[1:]...), path)
	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", errors.Wrapf(err, "run editor %s", editor)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read commit message scratch file %s", path)
	}
	return strings.TrimSuffix(string(contents), "\n"), nil
}
