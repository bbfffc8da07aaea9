package groupfile

import (
	"bufio"
	"io"
	"strings"

	"go.trai.ch/pacdef/internal/core/domain"
	"go.trai.ch/zerr"
)

// Parse reads the sections of a single group file.
//
// Lines are trimmed and everything after '#' is ignored. "[name]" opens a
// section; any other non-empty line is a package of the current section.
// A section that appears more than once is merged into its first occurrence.
func Parse(r io.Reader) ([]domain.Section, error) {
	var sections []domain.Section
	index := map[string]int{}
	current := -1

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++

		line := scanner.Text()
		if before, _, found := strings.Cut(line, "#"); found {
			line = before
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			name, ok := sectionName(line)
			if !ok {
				return nil, zerr.With(zerr.Wrap(domain.ErrGroupParseFailed, "malformed section header"), "line", lineNo)
			}
			i, seen := index[name]
			if !seen {
				i = len(sections)
				index[name] = i
				sections = append(sections, domain.Section{Name: name})
			}
			current = i
			continue
		}

		if current < 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrGroupParseFailed, "package outside of a section"), "line", lineNo)
		}
		sections[current].Packages = append(sections[current].Packages, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, domain.ErrGroupReadFailed.Error())
	}

	return sections, nil
}

func sectionName(line string) (string, bool) {
	if !strings.HasSuffix(line, "]") {
		return "", false
	}
	name := strings.TrimSpace(line[1 : len(line)-1])
	if name == "" || strings.ContainsAny(name, "[]") {
		return "", false
	}
	return name, true
}
