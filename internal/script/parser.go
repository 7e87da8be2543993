// Package script parses the line-oriented replay format minicheck reads
// on stdin. Each line is one harness operation:
//
//	test <name>           start a major test
//	sub <name>            start a sub-test
//	check pass            record a passing assertion
//	check fail <message>  record a failing assertion
//	endsub                end the current sub-test
//	end                   end the current major test
//	final                 emit the final report
//
// Blank lines and lines starting with '#' are skipped.
package script

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// OpKind identifies a replay operation.
type OpKind int

const (
	OpStartTest OpKind = iota
	OpStartSub
	OpCheck
	OpEndSub
	OpEndTest
	OpFinal
)

// Op is one parsed replay operation.
type Op struct {
	Kind    OpKind
	Name    string // test or sub-test name
	OK      bool   // OpCheck: the asserted condition
	Message string // OpCheck: failure message
	Line    int    // 1-based source line, for error reporting
}

var checkRe = regexp.MustCompile(`^check\s+(pass|fail)(?:\s+(.*))?$`)

// Parse reads a replay script and returns its operations in order.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		word, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		switch word {
		case "test":
			if rest == "" {
				return nil, fmt.Errorf("line %d: test requires a name", lineNo)
			}
			ops = append(ops, Op{Kind: OpStartTest, Name: rest, Line: lineNo})
		case "sub":
			if rest == "" {
				return nil, fmt.Errorf("line %d: sub requires a name", lineNo)
			}
			ops = append(ops, Op{Kind: OpStartSub, Name: rest, Line: lineNo})
		case "check":
			m := checkRe.FindStringSubmatch(line)
			if m == nil {
				return nil, fmt.Errorf("line %d: check requires pass or fail", lineNo)
			}
			op := Op{Kind: OpCheck, OK: m[1] == "pass", Message: m[2], Line: lineNo}
			if !op.OK && op.Message == "" {
				return nil, fmt.Errorf("line %d: check fail requires a message", lineNo)
			}
			ops = append(ops, op)
		case "endsub":
			ops = append(ops, Op{Kind: OpEndSub, Line: lineNo})
		case "end":
			ops = append(ops, Op{Kind: OpEndTest, Line: lineNo})
		case "final":
			ops = append(ops, Op{Kind: OpFinal, Line: lineNo})
		default:
			return nil, fmt.Errorf("line %d: unknown directive %q", lineNo, word)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}

	if len(ops) == 0 {
		return nil, fmt.Errorf("no operations found in script input")
	}
	return ops, nil
}
