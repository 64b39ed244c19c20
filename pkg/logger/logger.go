package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

// Init configures the global logger. Development gets pretty console output
// at debug level; everything else gets JSON at info level.
func Init(environment string) {
	zerolog.TimeFieldFormat = time.RFC3339

	if environment == "development" {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stderr).
		Level(zerolog.InfoLevel).
		With().Timestamp().Logger()
}

func Debug(msg string, keysAndValues ...any) {
	emit(log.Debug(), msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	emit(log.Info(), msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	emit(log.Warn(), msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	emit(log.Error(), msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	emit(log.Fatal(), msg, keysAndValues...)
}

// emit accepts either key/value pairs or a trailing bare value (commonly an
// error); the odd leftover is attached as "detail".
func emit(ev *zerolog.Event, msg string, keysAndValues ...any) {
	n := len(keysAndValues)
	for i := 0; i+1 < n; i += 2 {
		ev = ev.Interface(fmt.Sprint(keysAndValues[i]), keysAndValues[i+1])
	}
	if n%2 == 1 {
		last := keysAndValues[n-1]
		if err, ok := last.(error); ok {
			ev = ev.Err(err)
		} else {
			ev = ev.Interface("detail", last)
		}
	}
	ev.Msg(msg)
}
