package words

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordle/apps/go-term/internal/config"
)

func TestLoadFiltersByLength(t *testing.T) {
	src := strings.Join([]string{
		"crane",
		"  react  ",
		"SPEED",
		"cat",
		"banana",
		"",
		"e-mai",
		"crane",
		"Crane",
		"héllo",
	}, "\n")

	s, err := Load(strings.NewReader(src), 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"CRANE", "REACT", "SPEED"}
	if diff := cmp.Diff(want, s.words); diff != "" {
		t.Errorf("words mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 || s.Length() != 5 {
		t.Errorf("Len/Length = %d/%d, want 3/5", s.Len(), s.Length())
	}
}

func TestLoadEmpty(t *testing.T) {
	_, err := Load(strings.NewReader("cat\ndog\nbanana\n"), 5)
	if !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
}

func TestContainsIsCaseInsensitive(t *testing.T) {
	s, err := Load(strings.NewReader("crane\nslate\n"), 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, w := range []string{"CRANE", "crane", "SlAtE"} {
		if !s.Contains(w) {
			t.Errorf("Contains(%q) = false", w)
		}
	}
	for _, w := range []string{"CRANES", "CRAN", "REACT", ""} {
		if s.Contains(w) {
			t.Errorf("Contains(%q) = true", w)
		}
	}
}

func TestPickReturnsMember(t *testing.T) {
	s, err := Load(strings.NewReader("crane\nslate\nreact\n"), 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		w := s.Pick()
		if !s.Contains(w) {
			t.Fatalf("Pick returned %q, not in set", w)
		}
		seen[w] = true
	}
	if len(seen) < 2 {
		t.Errorf("Pick looks constant over 200 draws: %v", seen)
	}
}

func TestAtWraps(t *testing.T) {
	s, err := Load(strings.NewReader("bravo\nalpha\ncharm\n"), 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := s.At(0); got != "ALPHA" {
		t.Errorf("At(0) = %q, want ALPHA", got)
	}
	if got := s.At(4); got != "BRAVO" {
		t.Errorf("At(4) = %q, want BRAVO", got)
	}
	if got := s.At(-1); got != "CHARM" {
		t.Errorf("At(-1) = %q, want CHARM", got)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("plant\nstone\nhouses\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Open(path, 5, true)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Source() != path || s.Len() != 2 {
		t.Errorf("source/len = %q/%d, want %q/2", s.Source(), s.Len(), path)
	}
}

func TestOpenFallsBackToEmbedded(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.txt")
	s, err := Open(missing, 5, true)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.Source() != EmbeddedSource {
		t.Errorf("source = %q, want %q", s.Source(), EmbeddedSource)
	}
	for _, w := range []string{"CRANE", "REACT", "SPEED", "ERASE"} {
		if !s.Contains(w) {
			t.Errorf("embedded list is missing %s", w)
		}
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()
	short := filepath.Join(dir, "short.txt")
	if err := os.WriteFile(short, []byte("cat\ndog\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		path     string
		embedded bool
	}{
		{"missing without fallback", filepath.Join(dir, "missing.txt"), false},
		{"no words of length", short, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.path, 5, tt.embedded)
			var cerr *config.ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
		})
	}
}
