package masks

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

type PatternType int

const (
	Inclusive PatternType = iota
	Exclusive
)

// Pattern is a case-insensitive glob matched against a bare file name.
type Pattern struct {
	Type PatternType
	Glob string

	compiled glob.Glob
}

// ParsePattern reads a pattern as written in the config:
// a leading "!" makes it exclusive.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern{Type: Inclusive, Glob: strings.TrimSpace(s)}
	if strings.HasPrefix(p.Glob, "!") {
		p.Type = Exclusive
		p.Glob = strings.TrimPrefix(p.Glob, "!")
	}
	if p.Glob == "" {
		return p, fmt.Errorf("empty pattern %q", s)
	}
	if err := p.compile(); err != nil {
		return p, err
	}
	return p, nil
}

func (p *Pattern) compile() (err error) {
	if p.compiled != nil {
		return nil
	}
	if p.compiled, err = glob.Compile(strings.ToLower(p.Glob)); err != nil {
		return fmt.Errorf("invalid pattern %q: %w", p.Glob, err)
	}
	return nil
}

func (p *Pattern) Match(fileName string) (bool, error) {
	if err := p.compile(); err != nil {
		return false, err
	}
	return p.compiled.Match(strings.ToLower(fileName)), nil
}

func (p Pattern) String() string {
	if p.Type == Exclusive {
		return "!" + p.Glob
	}
	return p.Glob
}
