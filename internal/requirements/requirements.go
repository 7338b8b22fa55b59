// Package requirements reads the list of Python modules a project needs.
//
// The file format is one module name per line. Empty lines and lines whose
// first character is '#' are ignored. Nothing else is trimmed, so a line
// is used exactly as written minus its line terminator.
package requirements

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultFile is the module list read from the working directory.
const DefaultFile = "modules_required.dat"

// Parse returns the module names in r, in order, duplicates included.
func Parse(r io.Reader) ([]string, error) {
	var modules []string
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if line != "" && line[0] != '#' {
				modules = append(modules, line)
			}
		}
		if err == io.EOF {
			return modules, nil
		}
		if err != nil {
			return modules, fmt.Errorf("read module list: %w", err)
		}
	}
}

// Load opens path and parses it. The file is scanned fully on every call.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
