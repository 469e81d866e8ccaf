package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Initialize installs the global zerolog logger at the given level.
func Initialize(lvl string) error {
	return initialize(lvl, zerolog.ConsoleWriter{Out: os.Stdout})
}

func initialize(lvl string, out io.Writer) error {
	level, err := zerolog.ParseLevel(lvl)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339Nano

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(out)).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log.Logger
	return nil
}
