// Package logger wraps zerolog behind a small key-value API so call sites
// stay free of logger plumbing.
package logger

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Nop until Init runs so library code and tests can log safely.
var log = zerolog.Nop()

func Init(environment string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		log = log.Level(zerolog.DebugLevel)
		return
	}

	log = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

func Debug(msg string, args ...any) {
	withFields(log.Debug(), args).Msg(msg)
}

func Info(msg string, args ...any) {
	withFields(log.Info(), args).Msg(msg)
}

func Warn(msg string, args ...any) {
	withFields(log.Warn(), args).Msg(msg)
}

func Error(msg string, args ...any) {
	withFields(log.Error(), args).Msg(msg)
}

func Fatal(msg string, args ...any) {
	withFields(log.Fatal(), args).Msg(msg)
}

// withFields accepts alternating key/value pairs. A lone trailing value
// (commonly an error) is logged under "error".
func withFields(ev *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			if err, ok := args[i].(error); ok {
				ev = ev.Err(err)
			} else {
				ev = ev.Interface("error", args[i])
			}
			break
		}

		key, ok := args[i].(string)
		if !ok {
			key = fmt.Sprint(args[i])
		}
		ev = ev.Interface(key, args[i+1])
	}

	return ev
}
