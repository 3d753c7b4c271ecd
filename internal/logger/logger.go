package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is the process-wide logger. Init replaces it.
var Logger = log.Logger

type Config struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	TimeFormat   string `yaml:"time_format"`
	ReportCaller bool   `yaml:"report_caller"`
}

var timeFormatOnce sync.Once

// Init installs the process-wide logger. The JSON timestamp layout is a
// zerolog package global, so only the first call sets it.
func Init(cfg Config) {
	timeFormatOnce.Do(func() {
		zerolog.TimeFieldFormat = timeFormat(cfg)
	})
	Logger = New(cfg, os.Stdout)
	log.Logger = Logger
}

func timeFormat(cfg Config) string {
	if cfg.TimeFormat == "" {
		return time.RFC3339
	}
	return cfg.TimeFormat
}

// New builds a logger writing to out. Format "pretty" selects the console
// writer; anything else writes JSON lines. New does not touch zerolog
// globals and is safe to call concurrently.
func New(cfg Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	w := out
	if strings.EqualFold(cfg.Format, "pretty") {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: cfg.TimeFormat}
	}

	ctx := zerolog.New(w).Level(level).With().Timestamp()
	if cfg.ReportCaller {
		ctx = ctx.Caller()
	}
	return ctx.Logger()
}

// Named returns a child of the global logger tagged with component.
func Named(component string) zerolog.Logger {
	return Logger.With().Str("component", component).Logger()
}

func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func Info() *zerolog.Event {
	return Logger.Info()
}

func Warn() *zerolog.Event {
	return Logger.Warn()
}

func Error() *zerolog.Event {
	return Logger.Error()
}

func Fatal() *zerolog.Event {
	return Logger.Fatal()
}

func WithContext(ctx context.Context) context.Context {
	return Logger.WithContext(ctx)
}

func Ctx(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
