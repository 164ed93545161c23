//go:build integration

package main

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestRepo creates a git repo with an initial commit and makes it the
// working directory. Returns its path with symlinks resolved.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("failed to resolve temp dir: %v", err)
	}

	cmds := [][]string{
		{"git", "init", "-b", "main"},
		{"git", "config", "user.email", "test@test.com"},
		{"git", "config", "user.name", "Test User"},
		{"git", "config", "commit.gpgsign", "false"},
	}
	for _, args := range cmds {
		runGitCommand(t, dir, args...)
	}

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# test\n"), 0o644); err != nil {
		t.Fatalf("failed to write README: %v", err)
	}
	runGitCommand(t, dir, "git", "add", "README.md")
	runGitCommand(t, dir, "git", "commit", "-m", "Initial commit")

	t.Chdir(dir)
	t.Setenv("G_CONFIG", filepath.Join(t.TempDir(), "config.toml"))
	t.Setenv("G_GIT", "")
	return dir
}

func runGitCommand(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run %v: %v\n%s", args, err, out)
	}
	return strings.TrimSpace(string(out))
}

func execG(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, streams{in: strings.NewReader(""), out: &stdout, err: &stderr})
	return code, stdout.String(), stderr.String()
}

// TestIntegration_CreateBranch tests that a shorthand runs real git.
//
// Scenario: User runs `g create feature-x`
// Expected: The command is echoed, the branch exists and is checked out
func TestIntegration_CreateBranch(t *testing.T) {
	dir := setupTestRepo(t)

	code, stdout, stderr := execG("create", "feature-x")
	if code != 0 {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	if !strings.HasPrefix(stdout, "Running: git checkout -b feature-x\n") {
		t.Errorf("stdout = %q", stdout)
	}
	if got := runGitCommand(t, dir, "git", "branch", "--show-current"); got != "feature-x" {
		t.Errorf("current branch = %q, want feature-x", got)
	}
}

// TestIntegration_CommitMessageIsOneArgument tests that arguments reach git
// verbatim without a shell.
//
// Scenario: User runs `g commit "Fix bug; echo pwned"`
// Expected: The commit message is the exact argument
func TestIntegration_CommitMessageIsOneArgument(t *testing.T) {
	dir := setupTestRepo(t)

	if err := os.WriteFile(filepath.Join(dir, "fix.txt"), []byte("fix\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if code, _, stderr := execG("add"); code != 0 {
		t.Fatalf("g add exit = %d, stderr: %s", code, stderr)
	}

	msg := `Fix bug; echo "pwned" $HOME`
	if code, _, stderr := execG("commit", msg); code != 0 {
		t.Fatalf("g commit exit = %d, stderr: %s", code, stderr)
	}
	if got := runGitCommand(t, dir, "git", "log", "-1", "--format=%s"); got != msg {
		t.Errorf("commit message = %q, want %q", got, msg)
	}
}

// TestIntegration_ExitCodePropagates tests that git's exit status becomes g's.
//
// Scenario: User runs `g show` on a ref that does not exist
// Expected: g exits with git's status (128) and prints no extra error
func TestIntegration_ExitCodePropagates(t *testing.T) {
	setupTestRepo(t)

	code, _, stderr := execG("show", "does-not-exist")
	if code != 128 {
		t.Errorf("exit = %d, want 128", code)
	}
	if strings.Contains(stderr, "Error: ") {
		t.Errorf("g should leave error reporting to git, stderr: %s", stderr)
	}
}

// TestIntegration_Verbose tests that --verbose traces the git invocation.
func TestIntegration_Verbose(t *testing.T) {
	setupTestRepo(t)

	code, _, stderr := execG("-v", "st")
	if code != 0 {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stderr, "version=git version") {
		t.Errorf("stderr missing git version: %s", stderr)
	}
	if !strings.Contains(stderr, "$ git status") {
		t.Errorf("stderr missing traced command: %s", stderr)
	}
}

// TestIntegration_LocalConfig tests a repository's .g.toml.
func TestIntegration_LocalConfig(t *testing.T) {
	dir := setupTestRepo(t)

	local := "echo = false\n\n[aliases]\nlast = \"oneline\"\n"
	if err := os.WriteFile(filepath.Join(dir, ".g.toml"), []byte(local), 0o644); err != nil {
		t.Fatal(err)
	}

	code, stdout, stderr := execG("last")
	if code != 0 {
		t.Fatalf("exit = %d, stderr: %s", code, stderr)
	}
	if strings.Contains(stdout, "Running:") {
		t.Errorf("echo = false should suppress the Running line: %q", stdout)
	}
	if !strings.Contains(stdout, "Initial commit") {
		t.Errorf("stdout = %q, want oneline log", stdout)
	}
}
