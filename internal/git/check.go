package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/raphi011/g/internal/cmd"
)

// ErrGitNotFound indicates git is not installed or not in PATH
var ErrGitNotFound = errors.New("git not found: please install git (https://git-scm.com)")

// CheckGit verifies that program (usually "git") can be executed.
func CheckGit(program string) error {
	if _, err := exec.LookPath(program); err != nil {
		if program == "git" {
			return ErrGitNotFound
		}
		return fmt.Errorf("%w: %s", ErrGitNotFound, program)
	}
	return nil
}

// Version returns the output of "<program> --version", e.g. "git version 2.47.0".
func Version(ctx context.Context, program string) (string, error) {
	out, err := cmd.OutputContext(ctx, "", program, "--version")
	if err != nil {
		return "", fmt.Errorf("%s --version: %w", program, err)
	}
	return strings.TrimSpace(string(out)), nil
}
