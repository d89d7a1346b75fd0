// Package logger provides per-subsystem loggers writing through a
// rotating file sink, the same "one logger per subsystem tag, shared
// rotator backend" shape as the teacher's logger/logger.go. The
// teacher's backend was its own in-repo logs package over
// github.com/jrick/logrotate/rotator; that package isn't fetchable
// outside the teacher's module, so this keeps the rotator but swaps
// the logging frontend for github.com/rs/zerolog.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jrick/logrotate/rotator"
	"github.com/rs/zerolog"
)

// SubsystemTags names the subsystems that get their own logger,
// mirroring this module's package layout instead of the teacher's
// node/network subsystem list.
var SubsystemTags = struct {
	GDAG, // ghostdagmanager
	CHSL, // consensusstatemanager (chain selector)
	UTXO, // utils/utxo
	BVAL, // blockvalidator
	TVAL, // transactionvalidator
	CBMG, // coinbasemanager
	PRUN, // pruningmanager
	PMTM string // pastmediantimemanager
}{
	GDAG: "GDAG",
	CHSL: "CHSL",
	UTXO: "UTXO",
	BVAL: "BVAL",
	TVAL: "TVAL",
	CBMG: "CBMG",
	PRUN: "PRUN",
	PMTM: "PMTM",
}

var (
	rotatingWriter io.Writer
	initiated      bool
	loggers        = make(map[string]zerolog.Logger)
)

// multiWriter fans a log record out to stdout and the rotator, the
// same dual-destination shape as the teacher's logWriter.
type multiWriter struct {
	rotator io.Writer
}

func (w multiWriter) Write(p []byte) (int, error) {
	if !initiated {
		return len(p), nil
	}
	os.Stdout.Write(p)
	return w.rotator.Write(p)
}

// InitLogRotator opens logFile for rotating writes, creating its
// directory if necessary, and points every subsystem logger built
// afterward at it.
func InitLogRotator(logFile string) error {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return fmt.Errorf("failed to create file rotator: %w", err)
	}
	rotatingWriter = r
	initiated = true
	return nil
}

// Get returns the subsystem's logger, creating it at info level on
// first use.
func Get(tag string) zerolog.Logger {
	if logger, ok := loggers[tag]; ok {
		return logger
	}

	level := zerolog.InfoLevel
	writer := io.Writer(multiWriter{rotator: rotatingWriter})
	if !initiated {
		writer = os.Stdout
	}
	logger := zerolog.New(writer).Level(level).With().Timestamp().Str("subsystem", tag).Logger()
	loggers[tag] = logger
	return logger
}

// SetLogLevel sets tag's logger level. Unknown levels are ignored.
func SetLogLevel(tag string, levelName string) {
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return
	}
	logger := Get(tag)
	logger = logger.Level(level)
	loggers[tag] = logger
}

// SetLogLevels sets every known subsystem's logger to levelName.
func SetLogLevels(levelName string) {
	for _, tag := range SupportedSubsystems() {
		SetLogLevel(tag, levelName)
	}
}

// SupportedSubsystems returns every subsystem tag, sorted.
func SupportedSubsystems() []string {
	tags := []string{
		SubsystemTags.GDAG, SubsystemTags.CHSL, SubsystemTags.UTXO, SubsystemTags.BVAL,
		SubsystemTags.TVAL, SubsystemTags.CBMG, SubsystemTags.PRUN, SubsystemTags.PMTM,
	}
	sort.Strings(tags)
	return tags
}

// ParseAndSetDebugLevels parses a "level" or "tag=level,tag=level"
// string and applies it, matching the teacher's debug-level flag
// syntax.
func ParseAndSetDebugLevels(debugLevel string) error {
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		if _, err := zerolog.ParseLevel(debugLevel); err != nil {
			return fmt.Errorf("the specified debug level [%s] is invalid", debugLevel)
		}
		SetLogLevels(debugLevel)
		return nil
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.SplitN(pair, "=", 2)
		if len(fields) != 2 {
			return fmt.Errorf("the specified debug level contains an invalid subsystem/level pair [%s]", pair)
		}
		tag, levelName := fields[0], fields[1]
		if _, err := zerolog.ParseLevel(levelName); err != nil {
			return fmt.Errorf("the specified debug level [%s] is invalid", levelName)
		}
		SetLogLevel(tag, levelName)
	}
	return nil
}
