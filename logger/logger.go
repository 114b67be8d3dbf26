// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ConfigureLogger sets the global log level and makes the global logger write
// human readable lines to every given output. Stdout is used if none is given.
func ConfigureLogger(level zerolog.Level, out ...io.Writer) {
	if len(out) == 0 {
		out = []io.Writer{os.Stdout}
	}

	writers := make([]io.Writer, len(out))
	for i, o := range out {
		writers[i] = zerolog.ConsoleWriter{Out: o, TimeFormat: time.RFC3339, NoColor: o != os.Stdout}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
}

// LogFile opens path for appending log lines.
func LogFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
