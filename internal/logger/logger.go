// Package logger provides a small message-collecting diagnostics log in
// the style of a compiler front end: positions are tracked as byte
// offsets into the original source, diagnostics accumulate into a Log
// instead of being printed immediately, and rendering to a terminal is
// color-aware.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Loc is a byte offset into a Source's Contents.
type Loc struct {
	Start int32
}

// Range is a half-open byte range [Loc, Loc+Len) into a Source's
// Contents.
type Range struct {
	Loc Loc
	Len int32
}

func (r Range) End() int32 {
	return r.Loc.Start + r.Len
}

// Source is the immutable input buffer. Every Range and every lexeme
// recovered from it is a borrow into Contents; Contents must outlive
// anything that references it.
type Source struct {
	Contents string
}

func (s Source) Text(r Range) string {
	return s.Contents[r.Loc.Start:r.End()]
}

// Kind distinguishes the severity of a diagnostic. The compiler core
// only ever produces errors, but Kind leaves room for the CLI's own
// non-fatal notices.
type Kind uint8

const (
	KindError Kind = iota
	KindWarning
)

func (k Kind) String() string {
	if k == KindWarning {
		return "warning"
	}
	return "error"
}

// Msg is a single diagnostic: a severity, a position into a Source, and
// human-readable text. It never carries a stack trace or nested causes.
type Msg struct {
	Kind Kind
	Loc  Loc
	Text string
}

// Log accumulates diagnostics produced while compiling a single input. A
// Log is never shared across separate compile calls.
type Log struct {
	msgs *[]Msg
}

func NewLog() Log {
	return Log{msgs: &[]Msg{}}
}

func (log Log) AddError(loc Loc, text string) {
	*log.msgs = append(*log.msgs, Msg{Kind: KindError, Loc: loc, Text: text})
}

func (log Log) Msgs() []Msg {
	return *log.msgs
}

// Colors holds the ANSI escape sequences used to decorate a rendered
// message. An empty Colors value renders plain text, which is what a
// non-terminal (a pipe, a redirected file) should get.
type Colors struct {
	Reset string
	Bold  string
	Red   string
	Dim   string
}

var ttyColors = Colors{
	Reset: "\033[0m",
	Bold:  "\033[1m",
	Red:   "\033[31m",
	Dim:   "\033[2m",
}

// SupportsColor reports whether a file descriptor is an interactive
// terminal, across platforms including a legacy Windows console.
func SupportsColor(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

// Writer wraps an *os.File so that ANSI color codes written to it render
// correctly even on a legacy Windows console.
func Writer(file *os.File) io.Writer {
	return colorable.NewColorable(file)
}

// String renders a single message the way the CLI prints it: one line,
// severity first, no source snippet.
func (msg Msg) String(colors Colors) string {
	prefix := colors.Bold + msg.Kind.String() + colors.Reset
	if msg.Kind == KindError {
		prefix = colors.Bold + colors.Red + msg.Kind.String() + colors.Reset
	}
	return fmt.Sprintf("%s: %s\n", prefix, msg.Text)
}

// ColorsForFile picks terminal colors if file is a TTY and NO_COLOR is
// unset.
func ColorsForFile(file *os.File) Colors {
	if os.Getenv("NO_COLOR") != "" || !SupportsColor(file) {
		return Colors{}
	}
	return ttyColors
}
