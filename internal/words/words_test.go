package words

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type fakeStore struct {
	words []string
	err   error
}

func (f fakeStore) ByLength(ctx context.Context, n int) ([]string, error) {
	return f.words, f.err
}

func TestNormalize(t *testing.T) {
	in := []string{"  Forge ", "# comment", "", "forte", "forge", "fort", "f0rte", "café!", "SOARE"}
	got := Normalize(in, 5)
	want := []string{"forge", "forte", "soare"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Normalize mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Sources(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("crane\nslate\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		opts       Options
		wantSource string
		wantFirst  string
	}{
		{"store wins", Options{Length: 5, File: path, Store: fakeStore{words: []string{"forge"}}}, "store", "forge"},
		{"file", Options{Length: 5, File: path}, path, "crane"},
		{"embedded", Options{Length: 5}, "embedded", "soare"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Load(context.Background(), tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			if l.Source() != tt.wantSource {
				t.Errorf("Source() = %q, want %q", l.Source(), tt.wantSource)
			}
			if l.Words()[0] != tt.wantFirst {
				t.Errorf("first word = %q, want %q", l.Words()[0], tt.wantFirst)
			}
			if !l.Contains(strings.ToUpper(tt.wantFirst)) {
				t.Errorf("Contains(%q) = false", tt.wantFirst)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	boom := errors.New("boom")
	if _, err := Load(context.Background(), Options{Length: 5, Store: fakeStore{err: boom}}); !errors.Is(err, boom) {
		t.Errorf("store error = %v, want wrapped boom", err)
	}
	if _, err := Load(context.Background(), Options{Length: 5, File: filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Error("missing file loaded without error")
	}
	if _, err := Load(context.Background(), Options{Length: 7, Store: fakeStore{words: []string{"forge"}}}); err == nil {
		t.Error("empty bank loaded without error")
	}
	if _, err := Load(context.Background(), Options{}); err == nil {
		t.Error("zero length accepted")
	}
}

func TestParse(t *testing.T) {
	got, err := Parse(strings.NewReader("soare\nSOARE\nforty\n\nbad\n"), 5)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"soare", "forty"}, got); diff != "" {
		t.Errorf("Parse mismatch (-want +got):\n%s", diff)
	}
}
