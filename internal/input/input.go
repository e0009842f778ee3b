// Package input supplies line sequences to the path builder from files,
// standard input, or gzip-compressed files.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// maxLineSize bounds a single input line. bufio.Scanner's default 64K token
// limit is too small for minified or generated files.
const maxLineSize = 4 * 1024 * 1024

// Read returns the lines of the named source. An empty name or "-" reads
// standard input; a path ending in .gz is decompressed transparently. Line
// terminators are stripped, including the \r of CRLF input; leading
// whitespace is preserved untouched.
func Read(path string) ([]string, error) {
	if path == "" || path == "-" {
		lines, err := readLines(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return lines, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

// readLines splits r into newline-terminated lines.
func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
