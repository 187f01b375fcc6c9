package shared

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"
)

// ReadIdentifiers reads an identifier file, returning its trimmed, non-blank lines in file order.
//
// Identifiers are opaque: no deduplication or format checks are applied.
func ReadIdentifiers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open identifier file: %w", err)
	}
	defer f.Close()

	ids := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			ids = append(ids, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read identifier file %s: %w", path, err)
	}

	return ids, nil
}

// WriteIdentifiers writes one identifier per line to path.
//
// An existing file is only replaced when overwrite is set.
func WriteIdentifiers(path string, ids []string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		}
	}

	var buf bytes.Buffer
	for _, id := range ids {
		buf.WriteString(id)
		buf.WriteByte('\n')
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write identifier file: %w", err)
	}
	return nil
}

// GenerateIDs returns n fresh v4 UUID strings.
func GenerateIDs(n int) []string {
	ids := make([]string, 0, n)
	for range n {
		ids = append(ids, GenerateID())
	}
	return ids
}
