package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger returns a console logger for CLI output: colored level tags,
// no timestamps. Verbose mode lowers the level to debug.
func NewLogger(verbose bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "",
		FormatTimestamp: func(interface{}) string {
			return ""
		},
		FormatLevel: func(i interface{}) string {
			level := strings.ToUpper(fmt.Sprintf("%s", i))
			switch level {
			case "DEBUG":
				return "\x1b[36m[DEBUG]\x1b[0m"
			case "INFO":
				return "\x1b[32m[INFO]\x1b[0m"
			case "WARN":
				return "\x1b[33m[WARN]\x1b[0m"
			case "ERROR", "FATAL":
				return "\x1b[31m[" + level + "]\x1b[0m"
			default:
				return "[" + level + "]"
			}
		},
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(output).Level(level)
}

// CheckErr logs err and exits non-zero if err is not nil. It is the
// CLI commands' single fatal path.
func CheckErr(log zerolog.Logger, err error) {
	if err != nil {
		log.Error().Msg(err.Error())
		os.Exit(1)
	}
}
