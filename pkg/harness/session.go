// Package harness tracks pass/fail outcomes for a sequence of major tests
// and their sub-tests, and writes a line-oriented, human-readable report.
//
// A Session is driven by one sequential caller:
//
//	StartMajorTest -> (StartSubTest -> Assert* -> EndSubTest | Assert)* -> EndMajorTest
//
// repeated per major test and concluded by one FinalReport. Assertion
// failure is recorded as state, never signalled via control flow; the only
// errors returned are call-sequence misuse (see ErrNoMajorTest and friends).
package harness

import (
	"errors"
	"fmt"
	"io"
)

// LineKind identifies the type of report line for styling.
type LineKind int

const (
	KindStart LineKind = iota
	KindPass
	KindFail
	KindSubPass
	KindSubFail
	KindRollup
	KindSummary
)

// StyleFunc formats a report line with colors/symbols.
// If nil, no styling is applied.
type StyleFunc func(kind LineKind, text string) string

// Misuse errors returned when the call-sequence contract is violated.
// Assertion failures are never errors.
var (
	// ErrNoMajorTest is returned when an operation requires an active
	// major test and none has been started.
	ErrNoMajorTest = errors.New("harness: no major test active")

	// ErrSubTestActive is returned by StartSubTest when a sub-test is
	// already open, and by EndMajorTest when one was left open.
	// Sub-tests do not nest.
	ErrSubTestActive = errors.New("harness: sub-test already active")

	// ErrNoSubTest is returned by EndSubTest without a matching
	// StartSubTest.
	ErrNoSubTest = errors.New("harness: no sub-test active")
)

// Totals holds aggregate counts across the whole session.
type Totals struct {
	MajorTests       int
	FailedProcedures int
}

// Session is the harness state machine. It is not safe for concurrent use:
// the design assumes a single test driver per session. Independent sessions
// are independent; create one per driver.
type Session struct {
	w     io.Writer
	style StyleFunc

	majorTests       int // major tests started, also the running ordinal
	failedProcedures int // major tests that registered at least one failure

	majorName   string
	subName     string
	majorActive bool
	inSubTest   bool

	subTests    int // sub-tests started under the current major test
	subFailures int // of those, how many failed

	majorFailed  bool
	majorFailMsg string
	subFailed    bool
	subFailMsg   string
}

// New creates a session reporting to w. style may be nil for plain output.
func New(w io.Writer, style StyleFunc) *Session {
	return &Session{w: w, style: style}
}

// StartMajorTest begins a new major test, resetting all per-test state.
// Starting a new major test implicitly ends the previous one's scope;
// always succeeds.
func (s *Session) StartMajorTest(name string) {
	s.majorTests++
	s.majorName = name
	s.subName = ""
	s.subTests = 0
	s.subFailures = 0
	s.majorFailed = false
	s.majorFailMsg = ""
	s.subFailed = false
	s.subFailMsg = ""
	s.inSubTest = false
	s.majorActive = true

	s.emit(KindStart, fmt.Sprintf("Starting test %d: %s", s.majorTests, name))
}

// EndMajorTest reports the current major test's verdict followed by its
// sub-test rollup, and latches the failed-procedure count. A major test
// counts as a failed procedure when its top-level latch is set or at least
// one of its sub-tests failed, and is counted at most once.
func (s *Session) EndMajorTest() error {
	if !s.majorActive {
		return ErrNoMajorTest
	}
	if s.inSubTest {
		return ErrSubTestActive
	}

	if s.majorFailed {
		s.emit(KindFail, fmt.Sprintf("Test %d (%s) has failed: %s", s.majorTests, s.majorName, s.majorFailMsg))
	} else {
		s.emit(KindPass, fmt.Sprintf("Test %d (%s) has succeeded", s.majorTests, s.majorName))
	}

	switch {
	case s.subTests == 0:
		s.emit(KindRollup, "  No sub-tests")
	case s.subFailures == 0:
		s.emit(KindRollup, "  All sub-tests successful")
	default:
		s.emit(KindRollup, fmt.Sprintf("  %d/%d sub-tests failed", s.subFailures, s.subTests))
	}

	if s.majorFailed || s.subFailures > 0 {
		s.failedProcedures++
	}
	s.majorActive = false
	return nil
}

// StartSubTest begins a named sub-test under the current major test.
func (s *Session) StartSubTest(name string) error {
	if !s.majorActive {
		return ErrNoMajorTest
	}
	if s.inSubTest {
		return ErrSubTestActive
	}
	s.subTests++
	s.subName = name
	s.subFailed = false
	s.subFailMsg = ""
	s.inSubTest = true
	return nil
}

// EndSubTest closes the current sub-test and reports its verdict with its
// 1-based ordinal within the major test.
func (s *Session) EndSubTest() error {
	if !s.inSubTest {
		return ErrNoSubTest
	}
	s.inSubTest = false

	if s.subFailed {
		s.emit(KindSubFail, fmt.Sprintf("  Sub-test %d (%s) has failed: %s", s.subTests, s.subName, s.subFailMsg))
	} else {
		s.emit(KindSubPass, fmt.Sprintf("  Sub-test %d (%s) has succeeded", s.subTests, s.subName))
	}
	return nil
}

// Assert records the outcome of one boolean check against the active scope.
// A true condition changes nothing. A false condition latches the failure
// flag for the current scope and stores failMessage; a later failing call
// in the same scope overwrites the message, so the last failure's message
// survives. The returned error reports misuse only, never a failed check.
func (s *Session) Assert(ok bool, failMessage string) error {
	if !s.majorActive {
		return ErrNoMajorTest
	}
	if ok {
		return nil
	}
	if s.inSubTest {
		if !s.subFailed {
			s.subFailures++
		}
		s.subFailed = true
		s.subFailMsg = failMessage
	} else {
		s.majorFailed = true
		s.majorFailMsg = failMessage
	}
	return nil
}

// FinalReport writes the session totals: major tests performed and failed
// test procedures. The session stays usable afterwards; a later
// StartMajorTest keeps counting from where it left off.
func (s *Session) FinalReport() error {
	if s.majorTests == 0 {
		return ErrNoMajorTest
	}
	fmt.Fprintln(s.w)
	s.emit(KindSummary, fmt.Sprintf("%d major tests performed", s.majorTests))
	s.emit(KindSummary, fmt.Sprintf(" - %d test procedures failed (including sub-tests)", s.failedProcedures))
	return nil
}

// Totals returns the aggregate counts accumulated so far.
func (s *Session) Totals() Totals {
	return Totals{
		MajorTests:       s.majorTests,
		FailedProcedures: s.failedProcedures,
	}
}

func (s *Session) emit(kind LineKind, text string) {
	if s.style != nil {
		text = s.style(kind, text)
	}
	fmt.Fprintln(s.w, text)
}
