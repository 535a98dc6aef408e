package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textcompare/internal/tokenizer"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeText(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected output to contain %q, got:\n%s", needle, haystack)
	}
}

func TestCompareTable(t *testing.T) {
	a := writeText(t, "a.txt", "The cat sat.\nThe cat slept.")
	b := writeText(t, "b.txt", "A cat ran")

	out, _, err := runCLI(t, "compare", a, b)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	requireContains(t, out, "Word")
	requireContains(t, out, "cat")
	if strings.Contains(out, "sat") || strings.Contains(out, "ran") {
		t.Fatalf("unshared words listed:\n%s", out)
	}
}

func TestCompareJSON(t *testing.T) {
	tests := []struct {
		name       string
		a          string
		b          string
		flags      []string
		wantShared []sharedCore
		wantNotice bool
	}{
		{
			name:       "shared word counted per side",
			a:          "cat sat, cat",
			b:          "Cat ran",
			wantShared: []sharedCore{{Core: "cat", CountA: 2, CountB: 1}},
		},
		{
			name:       "stop words kept by default",
			a:          "the cat",
			b:          "the dog",
			wantShared: []sharedCore{{Core: "the", CountA: 1, CountB: 1}},
		},
		{
			name:       "stop words ignored",
			a:          "the cat",
			b:          "the dog",
			flags:      []string{"--ignore-stop-words"},
			wantShared: []sharedCore{},
		},
		{
			name:       "stemming matches inflections",
			a:          "running dogs",
			b:          "the dog runs",
			flags:      []string{"--stem", "--ignore-stop-words"},
			wantShared: []sharedCore{{Core: "dog", CountA: 1, CountB: 1}, {Core: "run", CountA: 1, CountB: 1}},
		},
		{
			name:       "lemmatize without a backend reports a notice",
			a:          "cats",
			b:          "cats",
			flags:      []string{"--lemmatize"},
			wantShared: []sharedCore{{Core: "cats", CountA: 1, CountB: 1}},
			wantNotice: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := writeText(t, "a.txt", tt.a)
			b := writeText(t, "b.txt", tt.b)

			args := append([]string{"compare", "--json", a, b}, tt.flags...)
			out, stderr, err := runCLI(t, args...)
			if err != nil {
				t.Fatalf("compare: %v", err)
			}

			var report compareReport
			if err := json.Unmarshal([]byte(out), &report); err != nil {
				t.Fatalf("decode %q: %v", out, err)
			}
			if report.ID == "" {
				t.Error("report has no id")
			}
			if len(report.Shared) != len(tt.wantShared) {
				t.Fatalf("shared = %+v, want %+v", report.Shared, tt.wantShared)
			}
			for i, want := range tt.wantShared {
				if report.Shared[i] != want {
					t.Errorf("shared[%d] = %+v, want %+v", i, report.Shared[i], want)
				}
			}
			if got := len(report.Notices) > 0; got != tt.wantNotice {
				t.Errorf("notices = %v, want notice %v", report.Notices, tt.wantNotice)
			}
			if tt.wantNotice && stderr == "" {
				t.Error("notice not printed to stderr")
			}
		})
	}
}

func TestCompareErrors(t *testing.T) {
	a := writeText(t, "a.txt", "cat")

	if _, _, err := runCLI(t, "compare", a); err == nil {
		t.Error("compare with one file: expected error")
	}
	if _, _, err := runCLI(t, "compare", a, filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("compare with missing file: expected error")
	}
	if _, _, err := runCLI(t, "compare", "--stem", "--lemmatizer-url", "http://localhost:1", a, a); err == nil {
		t.Error("compare with --stem and --lemmatizer-url: expected error")
	}
}

func TestTokens(t *testing.T) {
	path := writeText(t, "a.txt", "Hello, world!\nBye")

	out, _, err := runCLI(t, "tokens", path)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	requireContains(t, out, `"Hello,"`)
	requireContains(t, out, "hello")
	requireContains(t, out, "bye")

	out, _, err = runCLI(t, "tokens", "--json", path)
	if err != nil {
		t.Fatalf("tokens --json: %v", err)
	}
	var rows []tokenRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) == 0 || rows[len(rows)-1].Paragraph != 2 || rows[len(rows)-1].Core != "bye" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestIgnoreCharacters(t *testing.T) {
	path := writeText(t, "a.txt", "tag")

	out, _, err := runCLI(t, "tokens", "--json", "--ignore-characters", "g", path)
	if err != nil {
		t.Fatalf("tokens: %v", err)
	}
	var rows []tokenRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, row := range rows {
		if row.Chunk == "tag" && row.Core != "ta" {
			t.Errorf("core of tag = %q, want ta", row.Core)
		}
	}
}

func TestCompareShow(t *testing.T) {
	a := writeText(t, "a.txt", "The cat sat.\nIt slept.")
	b := writeText(t, "b.txt", "A cat, asleep")

	out, _, err := runCLI(t, "compare", "--show", a, b)
	if err != nil {
		t.Fatalf("compare --show: %v", err)
	}
	requireContains(t, out, "The [cat] sat.\nIt slept.")
	requireContains(t, out, "A [cat,] asleep")
}

func TestRenderHighlighted(t *testing.T) {
	tokens := []tokenizer.Token{
		{Chunk: "cat", Core: "cat", Highlight: true},
		{Chunk: " "},
		{Chunk: "sat", Core: "sat", EndOfLine: true},
		{Chunk: "dog", Core: "dog", EndOfLine: true},
	}

	if got, want := renderHighlighted(tokens, false), "[cat] sat\ndog"; got != want {
		t.Errorf("renderHighlighted(plain) = %q, want %q", got, want)
	}
	if got, want := renderHighlighted(tokens, true), ansiYellowBold+"cat"+ansiReset+" sat\ndog"; got != want {
		t.Errorf("renderHighlighted(color) = %q, want %q", got, want)
	}
}
