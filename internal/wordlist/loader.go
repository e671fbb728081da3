package wordlist

import (
	"bufio"
	"fmt"
	"os"
)

const (
	// Scanner buffer sizes for reading word lists
	scannerInitialBuffer = 64 * 1024   // 64 KB
	scannerMaxBuffer     = 1024 * 1024 // 1 MB
)

// Load reads all lines from a file and returns them as a slice.
// Lines are returned verbatim: blank lines and surrounding whitespace
// are preserved so that downstream stages see one entry per file line.
func Load(filename string) ([]string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", filename, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, scannerInitialBuffer)
	scanner.Buffer(buf, scannerMaxBuffer)

	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list %s: %w", filename, err)
	}

	return lines, nil
}
