// minicheck replays a recorded test-harness call sequence and renders a
// two-level pass/fail report.
//
// Usage:
//
//	minicheck < checks.txt
//	some-runner --emit-script | minicheck --theme slate
//
// The script read on stdin is line-oriented, one harness operation per
// line (see internal/script for the grammar):
//
//	test Arithmetic
//	check pass
//	sub concat
//	check fail concat mismatch
//	endsub
//	end
//	final
//
// Output is styled when stdout is a terminal and plain when piped. Exit
// codes: 0 all procedures passed, 1 at least one failed, 2 script or
// call-sequence error.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sj99642/minicheck/internal/config"
	"github.com/sj99642/minicheck/internal/script"
	"github.com/sj99642/minicheck/internal/version"
	"github.com/sj99642/minicheck/pkg/harness"
	"github.com/sj99642/minicheck/pkg/render"
)

func main() {
	themeFlag := flag.String("theme", "", "theme name (default, slate, mono)")
	noColor := flag.Bool("no-color", false, "disable colored output")
	listThemes := flag.Bool("list-themes", false, "list available themes and exit")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}
	if *listThemes {
		printThemes(os.Stdout)
		return
	}

	fl := config.Flags{Theme: *themeFlag, NoColor: *noColor}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "no-color" {
			fl.NoColorSet = true
		}
	})
	themeName := config.Resolve(config.Load(), fl)

	var style harness.StyleFunc
	if term.IsTerminal(int(os.Stdout.Fd())) {
		width := 0
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width = w
		}
		style = render.Styler(render.ThemeByName(themeName), width)
	}

	ops, err := script.Parse(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "minicheck: %v\n", err)
		os.Exit(2)
	}

	s := harness.New(os.Stdout, style)
	if err := replay(ops, s); err != nil {
		fmt.Fprintf(os.Stderr, "minicheck: %v\n", err)
		os.Exit(2)
	}

	if s.Totals().FailedProcedures > 0 {
		os.Exit(1)
	}
}

// replay drives a session through the parsed operations. The first
// call-sequence misuse aborts the replay with the offending script line.
func replay(ops []script.Op, s *harness.Session) error {
	for _, op := range ops {
		var err error
		switch op.Kind {
		case script.OpStartTest:
			s.StartMajorTest(op.Name)
		case script.OpStartSub:
			err = s.StartSubTest(op.Name)
		case script.OpCheck:
			err = s.Assert(op.OK, op.Message)
		case script.OpEndSub:
			err = s.EndSubTest()
		case script.OpEndTest:
			err = s.EndMajorTest()
		case script.OpFinal:
			err = s.FinalReport()
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", op.Line, err)
		}
	}
	return nil
}

var themeDescriptions = map[string]string{
	"default": "vibrant colors",
	"slate":   "muted colors",
	"mono":    "monochrome, ASCII icons",
}

func printThemes(w io.Writer) {
	caser := cases.Title(language.English)
	for _, name := range render.Names() {
		fmt.Fprintf(w, "  %-8s %s\n", name, caser.String(themeDescriptions[name]))
	}
}
