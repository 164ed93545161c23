package static

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestRenderRows_Empty(t *testing.T) {
	t.Parallel()
	if got := RenderRows(nil, nil); got != "" {
		t.Errorf("RenderRows(nil) = %q, want empty", got)
	}
}

func TestRenderRows_AlignsColumns(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"g st", "git status"},
		{"g pushu <remote> <branch>", "git push -u <remote> <branch>"},
	}
	got := RenderRows(rows, nil)
	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), got)
	}

	col := strings.Index(lines[0], "git status")
	if col < 0 || strings.Index(lines[1], "git push") != col {
		t.Errorf("second column not aligned:\n%s", got)
	}
}

func TestRenderRows_TrimsTrailingSpace(t *testing.T) {
	t.Parallel()

	got := RenderRows([][]string{{"a", "b"}, {"long cell", ""}}, nil)
	for _, line := range strings.Split(got, "\n") {
		if strings.HasSuffix(line, " ") {
			t.Errorf("line %q has trailing whitespace", line)
		}
	}
}

func TestRenderRows_CustomStyle(t *testing.T) {
	t.Parallel()

	var calls int
	RenderRows([][]string{{"a", "b"}}, func(row, col int) lipgloss.Style {
		calls++
		return lipgloss.NewStyle()
	})
	if calls == 0 {
		t.Error("style func was never called")
	}
}
