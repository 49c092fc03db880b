// Package tracelog wires an optional, disabled-by-default trace logger
// into the tokenizer and renderer. Embedding applications that want
// visibility into tag recognition, delimiter changes, or partial
// expansion can attach their own seelog.LoggerInterface; by default
// nothing is emitted.
package tracelog

import (
	"errors"
	"io"

	seelog "github.com/cihub/seelog"
)

var logger seelog.LoggerInterface

func init() {
	Disable()
}

// Disable silences all log output from this module. This is the default.
func Disable() {
	logger = seelog.Disabled
}

// UseLogger attaches an application-supplied logger.
func UseLogger(l seelog.LoggerInterface) {
	if l == nil {
		Disable()
		return
	}
	logger = l
}

// SetWriter is a convenience for applications that just want trace output
// on an io.Writer (a file, os.Stderr, a test buffer) without building a
// full seelog.LoggerInterface themselves.
func SetWriter(w io.Writer) error {
	if w == nil {
		return errors.New("tracelog: nil writer")
	}
	l, err := seelog.LoggerFromWriterWithMinLevel(w, seelog.TraceLvl)
	if err != nil {
		return err
	}
	UseLogger(l)
	return nil
}

// Flush drains any buffered log output. Call before process exit if a
// custom writer was attached.
func Flush() {
	logger.Flush()
}

func Tracef(format string, args ...any) {
	logger.Tracef(format, args...)
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}
