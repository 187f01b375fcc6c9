package shared

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/uuid"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ids.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestReadIdentifiers(t *testing.T) {
	tt := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "one per line",
			content: "a1\nb2\nc3\n",
			want:    []string{"a1", "b2", "c3"},
		},
		{
			name:    "blank lines skipped",
			content: "\na1\n\n\nb2\n   \n",
			want:    []string{"a1", "b2"},
		},
		{
			name:    "surrounding whitespace trimmed",
			content: "  a1  \n\tb2\t\r\n",
			want:    []string{"a1", "b2"},
		},
		{
			name:    "no trailing newline",
			content: "a1\nb2",
			want:    []string{"a1", "b2"},
		},
		{
			name:    "duplicates and order preserved",
			content: "z\na\nz\n",
			want:    []string{"z", "a", "z"},
		},
		{
			name:    "empty file",
			content: "",
			want:    []string{},
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ReadIdentifiers(writeFile(t, tc.content))
			if err != nil {
				t.Fatalf("ReadIdentifiers() error = %v", err)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("ReadIdentifiers() = %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadIdentifiers(filepath.Join(t.TempDir(), "missing.txt"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist, got %v", err)
		}
	})
}

func TestWriteIdentifiers(t *testing.T) {
	t.Run("round trips through ReadIdentifiers", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tracks.txt")
		ids := GenerateIDs(5)

		if err := WriteIdentifiers(path, ids, false); err != nil {
			t.Fatalf("WriteIdentifiers() error = %v", err)
		}

		got, err := ReadIdentifiers(path)
		if err != nil {
			t.Fatalf("ReadIdentifiers() error = %v", err)
		}
		if !slices.Equal(got, ids) {
			t.Errorf("got %v, want %v", got, ids)
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := writeFile(t, "keep\n")

		if err := WriteIdentifiers(path, []string{"new"}, false); !errors.Is(err, ErrFileExists) {
			t.Fatalf("expected ErrFileExists, got %v", err)
		}

		got, _ := ReadIdentifiers(path)
		if !slices.Equal(got, []string{"keep"}) {
			t.Errorf("file should be untouched, got %v", got)
		}
	})

	t.Run("overwrites when asked", func(t *testing.T) {
		path := writeFile(t, "old\n")

		if err := WriteIdentifiers(path, []string{"new"}, true); err != nil {
			t.Fatalf("WriteIdentifiers() error = %v", err)
		}

		got, _ := ReadIdentifiers(path)
		if !slices.Equal(got, []string{"new"}) {
			t.Errorf("expected overwritten content, got %v", got)
		}
	})
}

func TestGenerateIDs(t *testing.T) {
	ids := GenerateIDs(10)
	if len(ids) != 10 {
		t.Fatalf("expected 10 ids, got %d", len(ids))
	}

	seen := map[string]bool{}
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			t.Errorf("expected UUID, got %q: %v", id, err)
		}
		if seen[id] {
			t.Errorf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
