// Package shell implements the interactive read-eval-print loop around the
// stopwatch engine: one single-character command per line, one engine
// operation per command, one status message per operation.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/all-dot-files/tick/internal/stopwatch"
	"github.com/all-dot-files/tick/internal/timefmt"
	"github.com/all-dot-files/tick/pkg/logger"
)

// readLimit caps how much of an input line is considered.
const readLimit = 128

var (
	runningColor = color.New(color.FgGreen)
	stoppedColor = color.New(color.FgYellow)
	noticeColor  = color.New(color.FgMagenta)
	asideColor   = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Options configures a Shell.
type Options struct {
	Input  io.Reader
	Output io.Writer
	Clock  stopwatch.Clock

	Name      string
	Precision int

	// Interactive enables the splash and prompts; off for piped input.
	Interactive bool
	Version     string
}

// Shell owns the stopwatch for the lifetime of the process and drives it
// from line input. Single-threaded; the loop blocks on a read, then runs
// exactly one engine operation to completion.
type Shell struct {
	in    *bufio.Reader
	out   io.Writer
	clock stopwatch.Clock

	sw *stopwatch.Stopwatch
	// sinceStop runs exactly while sw is stopped; its value is shown when
	// the stopwatch starts again
	sinceStop *stopwatch.Stopwatch

	name        string
	prec        int
	interactive bool
	version     string
}

// New returns a Shell over the given streams. The stopwatch starts stopped
// with zero elapsed time.
func New(opts Options) *Shell {
	clock := opts.Clock
	if clock == nil {
		clock = stopwatch.SystemClock{}
	}
	s := &Shell{
		in:          bufio.NewReader(opts.Input),
		out:         opts.Output,
		clock:       clock,
		sw:          stopwatch.New(),
		sinceStop:   stopwatch.NewStartedAt(clock.Now()),
		name:        opts.Name,
		interactive: opts.Interactive,
		version:     opts.Version,
	}
	s.prec, _ = clampPrecision(opts.Precision)
	return s
}

// Run executes the command loop until quit or end of input.
func (s *Shell) Run() error {
	if s.interactive {
		s.splash()
	}
	for {
		line, err := s.readLine(s.prompt())
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		quit, err := s.dispatch(strings.ToLower(line))
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if quit {
			return nil
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) splash() {
	fmt.Fprintf(s.out, "tick %s: interactive terminal stopwatch\n", s.version)
	fmt.Fprintln(s.out, `type "h" for help, "l" for license`)
	fmt.Fprintln(s.out)
}

func (s *Shell) prompt() string {
	indicator := ";"
	if s.sw.IsRunning() {
		indicator = "*"
	}
	return fmt.Sprintf("%s %s ", s.name, indicator)
}

// readLine prompts (when interactive) and reads one trimmed input line.
// At most readLimit bytes are kept; the rest of the line is read and
// discarded so it cannot surface as a later command.
func (s *Shell) readLine(prompt string) (string, error) {
	if s.interactive {
		fmt.Fprint(s.out, prompt)
	}

	var buf []byte
	var err error
	for {
		var b byte
		b, err = s.in.ReadByte()
		if err != nil || b == '\n' {
			break
		}
		if len(buf) < readLimit {
			buf = append(buf, b)
		}
	}

	line := strings.TrimSpace(string(buf))
	if err == io.EOF && line != "" {
		// process the final unterminated line; the next read reports EOF
		err = nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}

// dispatch runs one command. Only I/O failures propagate; user mistakes are
// printed and the loop continues.
func (s *Shell) dispatch(cmd string) (quit bool, err error) {
	logger.Debug("dispatching command", "input", cmd)

	switch cmd {
	case "h":
		s.help()
	case "":
		s.display()
	case "s":
		s.toggle()
	case "r":
		s.reset()
	case "c":
		err = s.change()
	case "o":
		err = s.offset()
	case "n":
		err = s.rename()
	case "p":
		err = s.precision()
	case "l":
		s.about()
	case "q":
		return true, nil
	default:
		errorColor.Fprintf(s.out, "unrecognised command %q\n", cmd)
		fmt.Fprintln(s.out, `type "h" for help`)
	}
	return false, err
}

func (s *Shell) display() {
	now := s.clock.Now()
	eff, err := s.sw.ElapsedAt(now)
	if err != nil {
		errorColor.Fprintln(s.out, "elapsed time overflowed; stop or reset the stopwatch")
		return
	}

	style := timefmt.StylePlain
	if s.interactive {
		style = timefmt.StyleCues
	}
	fmt.Fprintln(s.out, timefmt.Format(eff, s.prec, style))

	if s.sw.IsRunning() {
		runningColor.Fprintln(s.out, "running")
	} else {
		stoppedColor.Fprintln(s.out, "stopped")
	}
}

func (s *Shell) toggle() {
	now := s.clock.Now()
	if err := s.sw.ToggleAt(now); err != nil {
		// only stopping can fail, and only on overflow
		errorColor.Fprintln(s.out, "cannot stop: elapsed time would overflow")
		return
	}

	if s.sw.IsRunning() {
		noticeColor.Fprintln(s.out, "started stopwatch")
		if since, err := s.sinceStop.ElapsedAt(now); err == nil {
			asideColor.Fprintf(s.out, "%s since stopped\n", timefmt.Format(since, s.prec, timefmt.StyleCues))
		}
		s.sinceStop.Reset()
	} else {
		noticeColor.Fprintln(s.out, "stopped stopwatch")
		_ = s.sinceStop.StartAt(now)
	}
}

func (s *Shell) reset() {
	if s.sw.IsRunning() {
		_ = s.sinceStop.StartAt(s.clock.Now())
	}
	s.sw.Reset()
	noticeColor.Fprintln(s.out, "reset stopwatch")
}

func (s *Shell) change() error {
	line, err := s.readLine("new value? ")
	if err != nil {
		return err
	}

	d, perr := timefmt.ParseNonNegative(line)
	if perr != nil {
		s.printParseError(perr)
		return nil
	}

	s.sw.SetAt(d, s.clock.Now())
	noticeColor.Fprintln(s.out, "updated elapsed time")
	return nil
}

func (s *Shell) offset() error {
	line, err := s.readLine("offset by? ")
	if err != nil {
		return err
	}

	delta, perr := timefmt.Parse(line)
	if perr != nil {
		s.printParseError(perr)
		return nil
	}

	clamped, oerr := s.sw.OffsetAt(delta, s.clock.Now())
	switch {
	case oerr != nil:
		errorColor.Fprintln(s.out, "cannot offset: elapsed time would overflow")
	case clamped:
		warnColor.Fprintln(s.out, "elapsed time clamped to zero")
	case delta < 0:
		noticeColor.Fprintln(s.out, "subtracted from elapsed time")
	default:
		noticeColor.Fprintln(s.out, "added to elapsed time")
	}
	return nil
}

func (s *Shell) rename() error {
	line, err := s.readLine("new name? ")
	if err != nil {
		return err
	}

	s.name = line
	if s.name == "" {
		noticeColor.Fprintln(s.out, "cleared stopwatch name")
	} else {
		noticeColor.Fprintln(s.out, "updated stopwatch name")
	}
	return nil
}

func (s *Shell) precision() error {
	line, err := s.readLine("new precision? ")
	if err != nil {
		return err
	}

	v, aerr := strconv.Atoi(line)
	if aerr != nil {
		errorColor.Fprintf(s.out, "invalid precision %q\n", line)
		return nil
	}

	prec, clamped := clampPrecision(v)
	s.prec = prec
	if clamped {
		warnColor.Fprintf(s.out, "precision clamped to %d\n", prec)
	} else {
		noticeColor.Fprintln(s.out, "updated precision")
	}
	return nil
}

func (s *Shell) about() {
	fmt.Fprintf(s.out, "tick %s: interactive terminal stopwatch\n", s.version)
	fmt.Fprintln(s.out, "released under the MIT license")
}

func (s *Shell) printParseError(err error) {
	errorColor.Fprintln(s.out, err.Error())

	var perr *timefmt.ParseError
	if errors.As(err, &perr) && perr.Hint != "" {
		fmt.Fprintln(s.out, perr.Hint)
	}
}

func clampPrecision(prec int) (int, bool) {
	if prec < 0 {
		return 0, true
	}
	if prec > timefmt.MaxPrecision {
		return timefmt.MaxPrecision, true
	}
	return prec, false
}
