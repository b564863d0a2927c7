package command

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

// SlogLeveler is a slog.Leveler whose level
// is controlled by command line flags.
type SlogLeveler struct {
	level slog.Level
}

var _ slog.Leveler = new(SlogLeveler)

// Level implements slog.Leveler.
func (s *SlogLeveler) Level() slog.Level {
	return s.level
}

// AddFlags adds --debug, --quiet and --verbose to flags.
// The level starts at Info, or Debug if $DEBUG is true.
func (s *SlogLeveler) AddFlags(flags *pflag.FlagSet) {
	s.level = slog.LevelInfo
	if debug, _ := strconv.ParseBool(os.Getenv("DEBUG")); debug {
		s.level = slog.LevelDebug
	}

	flags.VarPF(&Bool[slog.Level]{Value: &s.level, IfSet: slog.LevelDebug}, "debug", "", "Log everything").NoOptDefVal = "true"
	flags.VarPF(&Bool[slog.Level]{Value: &s.level, IfSet: slog.LevelError}, "quiet", "q", "Log only errors").NoOptDefVal = "true"
	flags.VarPF(&Count[slog.Level]{Value: &s.level, Increment: slog.LevelDebug - slog.LevelInfo}, "verbose", "v", "Log more").NoOptDefVal = "+1"
}
