package testrun

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Counts is what a Parser extracts from runner output.
type Counts struct {
	Passed int
	Failed int
	Suites int // suites (packages) that passed
}

func (c Counts) Total() int { return c.Passed + c.Failed }

type Parser interface {
	Parse(output string) Counts
}

// ParserByName returns the parser for "go" (go test -v) or "jest" output.
func ParserByName(name string) (Parser, error) {
	switch name {
	case "go", "":
		return GoParser{}, nil
	case "jest":
		return JestParser{}, nil
	}
	return nil, fmt.Errorf("unknown test output parser %q", name)
}

var (
	goResultRe = regexp.MustCompile(`(?m)^\s*--- (PASS|FAIL): (\S+)`)
	goSuiteRe  = regexp.MustCompile(`(?m)^ok\s+\S+`)
)

// GoParser counts verbose go test results. A test that ran subtests is a
// group, not a test: only leaf results are counted.
type GoParser struct{}

func (GoParser) Parse(output string) Counts {
	matches := goResultRe.FindAllStringSubmatch(output, -1)

	parents := make(map[string]bool)
	for _, m := range matches {
		name := m[2]
		for i := strings.LastIndexByte(name, '/'); i > 0; i = strings.LastIndexByte(name, '/') {
			name = name[:i]
			parents[name] = true
		}
	}

	c := Counts{Suites: len(goSuiteRe.FindAllStringIndex(output, -1))}
	for _, m := range matches {
		if parents[m[2]] {
			continue
		}
		if m[1] == "PASS" {
			c.Passed++
		} else {
			c.Failed++
		}
	}
	return c
}

var (
	jestPassedRe = regexp.MustCompile(`(?m)^Tests:.*?(\d+)\s+passed`)
	jestFailedRe = regexp.MustCompile(`(?m)^Tests:.*?(\d+)\s+failed`)
	jestSuiteRe  = regexp.MustCompile(`Test Suites:.*?(\d+)\s+passed`)
)

// JestParser reads the summary block printed by jest.
type JestParser struct{}

func (JestParser) Parse(output string) Counts {
	return Counts{
		Passed: firstInt(jestPassedRe, output),
		Failed: firstInt(jestFailedRe, output),
		Suites: firstInt(jestSuiteRe, output),
	}
}

func firstInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
