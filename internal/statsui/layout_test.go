package statsui

import (
	"strings"
	"testing"
)

func TestPadLine(t *testing.T) {
	if got := padLine("abc", 5); got != "abc  " {
		t.Fatalf("unexpected padding: %q", got)
	}
	if got := padLine("abcdef", 3); got != "abcdef" {
		t.Fatalf("padLine should not truncate: %q", got)
	}
}

func TestFitLines(t *testing.T) {
	out := fitLines("a\nb\nc\nd", 2, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 2 {
			t.Fatalf("line not padded to width: %q", line)
		}
	}

	out = fitLines("a", 2, 3)
	lines = strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 padded lines, got %d", len(lines))
	}
}

func TestTruncateLine(t *testing.T) {
	if got := truncateLine("hello world", 8); got != "hello..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
	if got := truncateLine("hi", 8); got != "hi" {
		t.Fatalf("short line changed: %q", got)
	}
}

func TestCurveWindowSteps(t *testing.T) {
	if nextCurveWindow(1) != 5 || nextCurveWindow(5) != 10 || nextCurveWindow(7) != 10 {
		t.Fatalf("unexpected nextCurveWindow behavior")
	}
	if prevCurveWindow(5) != 1 || prevCurveWindow(10) != 5 || prevCurveWindow(12) != 10 {
		t.Fatalf("unexpected prevCurveWindow behavior")
	}
}
