// Package log provides function to log, trace, debug work of the system.
package log

import (
	"flag"
	"fmt"
	"io"
	reallog "log"
	log "log/syslog"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/davecgh/go-spew/spew"
)

var (
	dflt     Logger = nil
	dfltOnce sync.Once

	useStderr bool
	useFile   string
	logLevel  string
	fileLine  bool

	spewConfig = spew.ConfigState{
		Indent:   "  ",
		SortKeys: true,
		MaxDepth: 3,
	}

	colorPriority = map[log.Priority]string{
		log.LOG_EMERG:   NC,
		log.LOG_ALERT:   LightGreen,
		log.LOG_CRIT:    LightRed,
		log.LOG_ERR:     LightRed,
		log.LOG_WARNING: Yellow,
		log.LOG_NOTICE:  NC,
		log.LOG_INFO:    Blue,
		log.LOG_DEBUG:   Green,
	}

	namePriority = map[log.Priority]string{
		log.LOG_EMERG:   "EMERGENCY",
		log.LOG_ALERT:   "ALERT",
		log.LOG_CRIT:    "CRITICAL",
		log.LOG_ERR:     "ERROR",
		log.LOG_WARNING: "WARNING",
		log.LOG_NOTICE:  "NOTICE",
		log.LOG_INFO:    "INFO",
		log.LOG_DEBUG:   "DEBUG",
		LOG_TRACE:       "TRACE",
	}
)

const (
	LOG_TRACE = log.LOG_DEBUG + 1

	LightRed    = "\033[1;31m"
	Red         = "\033[0;31m"
	Yellow      = "\033[0;33m"
	LightYellow = "\033[1;33m"
	Blue        = "\033[0;34m"
	LightBlue   = "\033[1;34m"
	NC          = "\033[0m"
	Green       = "\033[0;32m"
	LightGreen  = "\033[1;32m"
)

func init() {
	flag.BoolVar(&useStderr, "stdlog", true, "Write log to stderr?")
	flag.BoolVar(&fileLine, "srcloc", true, "Find and write file:lineno to log?")
	flag.StringVar(&useFile, "filelog", "", "Write log to this file")
	flag.StringVar(&logLevel, "log", "info", "Set the logging level")
}

// Init is used to setup a logger
// Also it set ups different sources for logging
func Init(procname string) {
	var level log.Priority
	switch strings.ToUpper(logLevel) {
	case "ERROR":
		level = log.LOG_ERR
	case "ALERT":
		level = log.LOG_ALERT
	case "CRITICAL":
		level = log.LOG_CRIT
	case "EMERGENCY":
		level = log.LOG_EMERG
	case "INFO":
		level = log.LOG_INFO
	case "NOTICE":
		level = log.LOG_NOTICE
	case "WARNING":
		level = log.LOG_WARNING
	case "DEBUG":
		level = log.LOG_DEBUG
	case "TRACE":
		level = LOG_TRACE
	default:
		reallog.Fatalf("Unknown logging level: %v", logLevel)
	}

	logger := &stLogger{
		proc:     procname,
		level:    level,
		fileLine: fileLine,
	}

	if useStderr {
		logger.textlogs = []io.Writer{
			os.Stderr,
		}
	}

	if useFile != "" {
		f, err := os.OpenFile(useFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, os.ModePerm)
		if err != nil {
			reallog.Fatalf("Could not open log file: %v", useFile)
		} else {
			logger.textlogs = append(logger.textlogs, f)
		}
	}

	dflt = logger
}

type Logger interface {
	Log(prio log.Priority, msgFmt string, args ...interface{})
	TraceMsg(msgFmt string, args ...interface{})
	Trace(args ...interface{})
	Fatal(msgFmt string, args ...interface{})

	Emerg(msgFmt string, args ...interface{})
	Alert(msgFmt string, args ...interface{})
	Crit(msgFmt string, args ...interface{})
	Error(msgFmt string, args ...interface{})
	Warn(msgFmt string, args ...interface{})
	Notice(msgFmt string, args ...interface{})
	Info(msgFmt string, args ...interface{})
	Debug(msgFmt string, args ...interface{})
}

type stLogger struct {
	proc     string
	level    log.Priority
	fileLine bool
	textlogs []io.Writer
}

// Convenience function for debugging
func Spew(obj ...interface{}) string {
	return spewConfig.Sdump(obj...)
}

/*******
 * Core logger functionality
 */
func (l *stLogger) Log(prio log.Priority, msgFmt string, args ...interface{}) {
	if prio <= l.level {
		formatArgs := fmtArgs(msgFmt, args)
		msg := spewConfig.Sprintf(msgFmt, formatArgs...)
		if l.fileLine || prio == LOG_TRACE {
			file, line := logSite()
			msg = fmt.Sprintf("%s: %v (%v:%v) %v", getColoredNamedPriority(prio), time.Now(), file, line, msg)
		} else {
			msg = fmt.Sprintf("%s: %v %v", getColoredNamedPriority(prio), time.Now(), msg)
		}
		if msgFmt != "" || prio != LOG_TRACE {
			l.writeToTextLogs(prio, msg)
		}
	}
}

func (l *stLogger) TraceMsg(msgFmt string, args ...interface{}) {
	l.Log(LOG_TRACE, msgFmt, args...)
}

func (l *stLogger) Trace(args ...interface{}) {
	l.Log(LOG_TRACE, "", args...)
}

func (l *stLogger) writeToTextLogs(prio log.Priority, msg string) {
	msg += "\n"

	for _, textLog := range l.textlogs {
		io.WriteString(textLog, msg)
	}
}

/****
 * Utility helper functions
 */
func fmtArgs(format string, args []interface{}) []interface{} {
	lastWasPcnt := false
	var fmtParams int = 0
	for _, r := range format {
		if r == '%' {
			if !lastWasPcnt {
				fmtParams++
			} else {
				fmtParams--
			}
			lastWasPcnt = true
		} else {
			lastWasPcnt = false
		}
	}
	if fmtParams > len(args) {
		fmtParams = len(args)
	}
	return args[0:fmtParams]
}

func getColoredNamedPriority(prio log.Priority) string {
	name, ok := namePriority[prio]
	if !ok {
		name = "UNKNOWN"
	}
	color, ok := colorPriority[prio]
	if !ok {
		color = NC
	}
	return color + name + NC
}

func shaveSrcFile(fn string) string {
	idx := strings.LastIndex(fn, "shapetools/st")
	if idx < 0 {
		return fn
	}
	return fn[idx+len("shapetools/st/"):]
}

func logSite() (string, int) {
	skip := 1
	for {
		_, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		file = shaveSrcFile(file)
		if !strings.HasSuffix(file, "log/log.go") {
			return file, line
		}
		skip++
	}
	return "", -1
}

/****
 * Convenience functions
 */
func (l *stLogger) Fatal(msgFmt string, args ...interface{}) {
	l.Log(log.LOG_CRIT, msgFmt, args...)
	os.Exit(1)
}
func (l *stLogger) Emerg(msgFmt string, args ...interface{}) {
	l.Log(log.LOG_EMERG, msgFmt, args...)
}
func (l *stLogger) Alert(msgFmt string, args ...interface{}) {
	l.Log(log.LOG_ALERT, msgFmt, args...)
}
func (l *stLogger) Crit(msgFmt string, args ...interface{}) {
	l.Log(log.LOG_CRIT, msgFmt, args...)
}
func (l *stLogger) Error(msgFmt string, args ...interface{}) {
	l.Log(log.LOG_ERR, msgFmt, args...)
}
func (l *stLogger) Warn(msgFmt string, args ...interface{}) {
	l.Log(log.LOG_WARNING, msgFmt, args...)
}
func (l *stLogger) Notice(msgFmt string, args ...interface{}) {
	l.Log(log.LOG_NOTICE, msgFmt, args...)
}
func (l *stLogger) Info(msgFmt string, args ...interface{}) {
	l.Log(log.LOG_INFO, msgFmt, args...)
}
func (l *stLogger) Debug(msgFmt string, args ...interface{}) {
	l.Log(log.LOG_DEBUG, msgFmt, args...)
}

func std() Logger {
	if dflt == nil {
		dfltOnce.Do(func() {
			if dflt == nil {
				dflt = &stLogger{
					level:    log.LOG_INFO,
					fileLine: true,
					textlogs: []io.Writer{os.Stderr},
				}
			}
		})
	}
	return dflt
}

func Log(prio log.Priority, msgFmt string, args ...interface{}) {
	std().Log(prio, msgFmt, args...)
}
func TraceMsg(msgFmt string, args ...interface{}) { std().TraceMsg(msgFmt, args...) }
func Trace(args ...interface{})                   { std().Trace(args...) }
func Fatal(msgFmt string, args ...interface{})    { std().Fatal(msgFmt, args...) }
func Emerg(msgFmt string, args ...interface{})    { std().Emerg(msgFmt, args...) }
func Alert(msgFmt string, args ...interface{})    { std().Alert(msgFmt, args...) }
func Crit(msgFmt string, args ...interface{})     { std().Crit(msgFmt, args...) }
func Error(msgFmt string, args ...interface{})    { std().Error(msgFmt, args...) }
func Warn(msgFmt string, args ...interface{})     { std().Warn(msgFmt, args...) }
func Notice(msgFmt string, args ...interface{})   { std().Notice(msgFmt, args...) }
func Info(msgFmt string, args ...interface{})     { std().Info(msgFmt, args...) }
func Debug(msgFmt string, args ...interface{})    { std().Debug(msgFmt, args...) }
