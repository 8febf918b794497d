// Package lol (log of location) is a small leveled logger that prints a
// timestamp, a coloured level tag and the source location of each print, so a
// failure can be traced back to the line that reported it. Levels above the
// current setting are skipped without formatting anything.
package lol

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"go.uber.org/atomic"
)

const (
	Off = iota
	Fatal
	Error
	Warn
	Info
	Debug
	Trace
)

var LevelNames = []string{
	"off",
	"fatal",
	"error",
	"warn",
	"info",
	"debug",
	"trace",
}

type (
	// Ln prints lists of interfaces with spaces in between.
	Ln func(a ...any)
	// F prints like fmt.Printf.
	F func(format string, a ...any)
	// S prints a spew.Sdump of its arguments.
	S func(a ...any)
	// C accepts a closure so the message is only built when the level is
	// active.
	C func(closure func() string)
	// Chk prints the error if it is not nil and reports whether it was.
	Chk func(e error) bool

	// LevelPrinter is the set of printers for one level.
	LevelPrinter struct {
		Ln
		F
		S
		C
		Chk
	}

	// LevelSpec is the ID, tag and colourizer of a level.
	LevelSpec struct {
		ID        int
		Name      string
		Colorizer func(a ...any) string
	}
)

var (
	// LevelSpecs specifies the id, tag and colour-printing function.
	LevelSpecs = []LevelSpec{
		{Off, "", NoSprint},
		{Fatal, "FTL", color.New(color.BgRed, color.FgHiWhite).Sprint},
		{Error, "ERR", color.New(color.FgHiRed).Sprint},
		{Warn, "WRN", color.New(color.FgHiYellow).Sprint},
		{Info, "INF", color.New(color.FgHiGreen).Sprint},
		{Debug, "DBG", color.New(color.FgHiBlue).Sprint},
		{Trace, "TRC", color.New(color.FgHiMagenta).Sprint},
	}
	// NoTimeStamp suppresses the timestamp at the start of each line.
	NoTimeStamp = atomic.NewBool(false)
)

// NoSprint returns nothing no matter what is given to it.
func NoSprint(a ...any) string { return "" }

// Log is a set of printers for every level.
type Log struct {
	F, E, W, I, D, T LevelPrinter
}

// Check is the set of error checkers for every level.
type Check struct {
	F, E, W, I, D, T Chk
}

// Logger bundles the printers and checkers that share one writer.
type Logger struct {
	*Log
	*Check
}

// Level is the highest level that gets printed.
var Level = atomic.NewInt32(Info)

// Main is the logger the log and chk shortcut packages point at.
var Main = &Logger{}

func init() {
	Main.Log, Main.Check = New(os.Stderr)
	SetLoggers(Info)
	LoadConfig()
}

// SetLoggers sets the level by number.
func SetLoggers(level int) {
	if level < Off || level > Trace {
		return
	}
	Level.Store(int32(level))
	Main.Log.T.F("log level %s", LevelSpecs[level].Colorizer(LevelNames[level]))
}

// GetLogLevel returns the level number of a level name, or Info if the name
// is unknown.
func GetLogLevel(level string) (i int) {
	for i = range LevelNames {
		if level == LevelNames[i] {
			return i
		}
	}
	return Info
}

// SetLogLevel sets the level by name. Unknown names are ignored.
func SetLogLevel(level string) {
	for i := range LevelNames {
		if level == LevelNames[i] {
			SetLoggers(i)
			return
		}
	}
}

// JoinStrings joins anything into a string with spaces between the items.
func JoinStrings(a ...any) (s string) {
	for i := range a {
		s += fmt.Sprint(a[i])
		if i < len(a)-1 {
			s += " "
		}
	}
	return
}

var msgCol = color.New(color.FgBlue).Sprint

func printLine(writer io.Writer, l int32, msg string) {
	_, _ = fmt.Fprintf(writer,
		"%s%s %s %s\n",
		msgCol(TimeStamper()),
		LevelSpecs[l].Colorizer(LevelSpecs[l].Name),
		msg,
		msgCol(GetLoc(3)),
	)
}

// GetPrinter returns the printers for level l writing to writer.
func GetPrinter(l int32, writer io.Writer) LevelPrinter {
	return LevelPrinter{
		Ln: func(a ...any) {
			if Level.Load() < l {
				return
			}
			printLine(writer, l, JoinStrings(a...))
		},
		F: func(format string, a ...any) {
			if Level.Load() < l {
				return
			}
			printLine(writer, l, fmt.Sprintf(format, a...))
		},
		S: func(a ...any) {
			if Level.Load() < l {
				return
			}
			printLine(writer, l, spew.Sdump(a...))
		},
		C: func(closure func() string) {
			if Level.Load() < l {
				return
			}
			printLine(writer, l, closure())
		},
		Chk: func(e error) bool {
			if e == nil {
				return false
			}
			if Level.Load() >= l {
				printLine(writer, l, e.Error())
			}
			return true
		},
	}
}

// GetNullPrinter is a printer that doesn't print.
func GetNullPrinter() LevelPrinter {
	return LevelPrinter{
		Ln:  func(a ...any) {},
		F:   func(format string, a ...any) {},
		S:   func(a ...any) {},
		C:   func(closure func() string) {},
		Chk: func(e error) bool { return e != nil },
	}
}

// New creates the printers and checkers for every level on writer.
func New(writer io.Writer) (l *Log, c *Check) {
	l = &Log{
		T: GetPrinter(Trace, writer),
		D: GetPrinter(Debug, writer),
		I: GetPrinter(Info, writer),
		W: GetPrinter(Warn, writer),
		E: GetPrinter(Error, writer),
		F: GetPrinter(Fatal, writer),
	}
	c = &Check{
		F: l.F.Chk,
		E: l.E.Chk,
		W: l.W.Chk,
		I: l.I.Chk,
		D: l.D.Chk,
		T: l.T.Chk,
	}
	return
}

// TimeStamper generates the timestamp for a line.
func TimeStamper() (s string) {
	if NoTimeStamp.Load() {
		return
	}
	return time.Now().Format("2006-01-02T15:04:05Z07:00.000 ")
}

// GetLoc returns the code location skip frames up the stack.
func GetLoc(skip int) (output string) {
	_, file, line, _ := runtime.Caller(skip)
	output = fmt.Sprintf("%s:%d", file, line)
	return
}
