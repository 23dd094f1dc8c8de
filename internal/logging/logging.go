package logging

import (
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const header = "${time_rfc3339} ${level} ${short_file}:${line}"

// ParseLevel maps a settings level name to a gommon level. Unknown names
// fall back to INFO.
func ParseLevel(level string) log.Lvl {
	switch level {
	case "debug":
		return log.DEBUG
	case "warn":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	default:
		return log.INFO
	}
}

// Setup configures the global gommon logger. With an empty file, logs go
// to stderr; otherwise to a rotating file. The returned closer must be
// closed on exit.
func Setup(level, file string) io.Closer {
	log.SetLevel(ParseLevel(level))
	log.SetHeader(header)

	if file == "" {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil)
	}

	if dir := filepath.Dir(file); dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    16, // MB
		MaxBackups: 2,
	}
	if level == "debug" {
		w.MaxSize = 128
	}
	log.SetOutput(w)
	return w
}
