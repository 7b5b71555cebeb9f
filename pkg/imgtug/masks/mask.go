package masks

import (
	"fmt"
	"strings"
)

type Mask struct {
	Name     string
	Patterns []Pattern
}

// NewMask compiles patterns such as "*.png" or "!*.tmp.png".
func NewMask(name string, patterns ...string) (*Mask, error) {
	m := &Mask{Name: name}
	for _, s := range patterns {
		p, err := ParsePattern(s)
		if err != nil {
			return nil, fmt.Errorf("mask %q: %w", name, err)
		}
		m.Patterns = append(m.Patterns, p)
	}
	return m, nil
}

func (m *Mask) String() string {
	patterns := make([]string, len(m.Patterns))
	for i, p := range m.Patterns {
		patterns[i] = p.String()
	}
	return fmt.Sprintf("Mask{Name: %q, Patterns: [%s]}", m.Name, strings.Join(patterns, " "))
}

// Match reports whether fileName is included by at least one inclusive
// pattern and not excluded by any exclusive one.
func (m *Mask) Match(fileName string) (bool, error) {
	var result bool
	for i := range m.Patterns {
		pattern := &m.Patterns[i]
		matched, err := pattern.Match(fileName)
		if err != nil {
			return false, err
		}
		if matched {
			if pattern.Type == Inclusive {
				result = true
			}
			if pattern.Type == Exclusive {
				return false, nil
			}
		}
	}
	return result, nil
}
