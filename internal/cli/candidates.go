package cli

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

// candidateFlags selects where candidate strings come from besides the
// positional arguments.
type candidateFlags struct {
	stdin bool
	files []string
}

func (f *candidateFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.stdin, "stdin", false, `Read candidates from stdin, one per line (also enabled by a "-" argument)`)
	cmd.Flags().StringArrayVar(&f.files, "files", nil, "Use file paths matching a glob as candidates (supports **, repeatable)")
}

// collect gathers candidates from args, stdin and file globs, in that order.
func (f *candidateFlags) collect(cmd *cobra.Command, args []string) ([]string, error) {
	var candidates []string
	readStdin := f.stdin
	for _, a := range args {
		if a == "-" {
			readStdin = true
			continue
		}
		candidates = append(candidates, a)
	}

	if readStdin {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read candidates from stdin: %w", err)
		}
		candidates = append(candidates, lines...)
	}

	for _, pattern := range f.files {
		paths, err := expandGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", pattern, err)
		}
		candidates = append(candidates, paths...)
	}

	return candidates, nil
}

// readLines returns the non-empty lines of r with trailing CR stripped.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

// expandGlob expands a file glob with doublestar, returning slash-separated
// paths so results look the same on every platform.
func expandGlob(pattern string) ([]string, error) {
	if !doublestar.ValidatePathPattern(pattern) {
		return nil, doublestar.ErrBadPattern
	}
	paths, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}
	for i, p := range paths {
		paths[i] = filepath.ToSlash(p)
	}
	return paths, nil
}
