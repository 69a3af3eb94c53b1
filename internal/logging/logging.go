// Package logging hands out gommon loggers that share one level.
package logging

import (
	"strings"
	"sync"

	"github.com/labstack/gommon/log"
)

var (
	mu      sync.Mutex
	level   = log.INFO
	loggers []*log.Logger
)

// New returns a logger with the given prefix at the current shared level.
func New(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()

	l := log.New(prefix)
	l.SetHeader(`${time_rfc3339} ${level} ${prefix}`)
	l.SetLevel(level)
	loggers = append(loggers, l)
	return l
}

// SetLevel changes the level of every logger handed out so far.
func SetLevel(lvl log.Lvl) {
	mu.Lock()
	defer mu.Unlock()

	level = lvl
	for _, l := range loggers {
		l.SetLevel(lvl)
	}
}

// ParseLevel maps debug|info|warn|error|off to a gommon level.
func ParseLevel(s string) (log.Lvl, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return log.DEBUG, true
	case "info", "":
		return log.INFO, true
	case "warn", "warning":
		return log.WARN, true
	case "error":
		return log.ERROR, true
	case "off":
		return log.OFF, true
	}
	return log.INFO, false
}
