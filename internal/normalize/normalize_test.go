package normalize

import (
	"sync"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		chunk string
		want  string
	}{
		{name: "empty", chunk: "", want: ""},
		{name: "plain word", chunk: "cat", want: "cat"},
		{name: "uppercase", chunk: "CaT", want: "cat"},
		{name: "trailing punctuation", chunk: "cat,", want: "cat"},
		{name: "quoted", chunk: "\"Hello!\"", want: "hello"},
		{name: "cyrillic", chunk: "«Привет»", want: "привет"},
		{name: "cyrillic yo", chunk: "ЁЖ", want: "ёж"},
		{name: "digits kept", chunk: "2024-й", want: "2024й"},
		{name: "whitespace only", chunk: " \t ", want: ""},
		{name: "punctuation only", chunk: "—...", want: ""},
		{name: "ellipsis", chunk: "so…", want: "so"},
		{name: "inner apostrophe", chunk: "don't", want: "dont"},
		{name: "mixed scripts", chunk: "(Кот-CAT)", want: "котcat"},
		{name: "no-break space", chunk: "a\u00a0b", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.chunk); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.chunk, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World!",
		"«Ёлка» — это ДЕРЕВО...",
		"   ",
		"MiXeD ТеКсТ 123",
		"ΟΔΟΣ.",
		"İstanbul",
		"a b",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Normalize("«ПРИВЕТ», World!"); got != "приветworld" {
					t.Errorf("Normalize() = %q, want %q", got, "приветworld")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestNew_ExtraIgnoreCharacters(t *testing.T) {
	n := New("¤★")

	if got := n.Normalize("★star¤"); got != "star" {
		t.Errorf("Normalize() = %q, want %q", got, "star")
	}
	if got := Normalize("★star"); got != "★star" {
		t.Errorf("Default Normalize() = %q, want extra runes untouched", got)
	}
}

func TestNormalizer_Ignores(t *testing.T) {
	for _, r := range "abcxyzабвэюя0189" {
		if Default.Ignores(r) {
			t.Errorf("Ignores(%q) = true, want false", r)
		}
	}
	for _, r := range " .,!?;:\"'()«»—" {
		if !Default.Ignores(r) {
			t.Errorf("Ignores(%q) = false, want true", r)
		}
	}
}
