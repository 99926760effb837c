package logtail

import (
	"bufio"
	"errors"
	"fmt"
	"os"
)

const maxLineBytes = 1024 * 1024

// Read returns the last maxLines lines of the file at path, oldest first.
// maxLines <= 0 returns every line. A missing file yields no lines and no error.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if maxLines > 0 && len(lines) > 2*maxLines {
			// Keep at most 2*maxLines lines buffered.
			lines = append(lines[:0], lines[len(lines)-maxLines:]...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}
