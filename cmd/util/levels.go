package cmdutil

import (
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Log levels accepted by --loglevel, from least to most verbose. The finder
// logs enablement decisions at debug and per-object pruning at trace.
var logLevels = []struct {
	name  string
	level log.Level
}{
	{"error", log.ErrorLevel},
	{"warn", log.WarnLevel},
	{"info", log.InfoLevel},
	{"debug", log.DebugLevel},
	{"trace", log.TraceLevel},
}

// LevelNames returns the accepted --loglevel values, least verbose first.
func LevelNames() []string {
	names := make([]string, len(logLevels))
	for i, l := range logLevels {
		names[i] = l.name
	}
	return names
}

// ParseLevel parses a --loglevel value. Case is ignored.
func ParseLevel(s string) (log.Level, error) {
	for _, l := range logLevels {
		if strings.EqualFold(s, l.name) {
			return l.level, nil
		}
	}
	return log.FatalLevel, fmt.Errorf("%v is not a valid level. Valid levels are %v", s, strings.Join(LevelNames(), ", "))
}
