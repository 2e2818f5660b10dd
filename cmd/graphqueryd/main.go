package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/brandonshearin/graphqueryd/server"
)

var (
	wmax     int
	logLevel string
)

// rootCmd implements the "<port> [threads]" CLI contract of §6: usage
// errors exit 2, listener/bind failures exit 1, and there is no normal
// exit path (the server runs until killed).
var rootCmd = &cobra.Command{
	Use:           "graphqueryd <port> [threads]",
	Short:         "graphqueryd answers graph-algorithm queries over a line-oriented TCP protocol",
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServer,
}

func init() {
	rootCmd.Flags().IntVar(&wmax, "wmax", 100, "upper bound on sampled edge weights for random-mode requests")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "zerolog level: debug, info, warn, error")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		// cobra's Args validator and flag parser both return plain usage
		// errors here; anything past that point (bind/listen failure) is
		// reported and exits 1 from inside runServer instead.
		fmt.Fprintln(os.Stderr, "ERR", err)
		os.Exit(2)
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	log := newLogger(logLevel)

	port, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", args[0], err)
	}

	threads := 0 // New() defaults this to runtime.NumCPU() per §5 when [threads] is omitted
	if len(args) == 2 {
		threads, err = strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid thread count %q: %w", args[1], err)
		}
	}

	srv := server.New(server.Config{
		Port:    port,
		Threads: threads,
		WMax:    wmax,
		Logger:  log,
	})

	if err := srv.ListenAndServe(); err != nil {
		log.Error().Err(err).Msg("listener failed")
		os.Exit(1)
	}
	return nil
}

// newLogger builds a zerolog.Logger at the requested level, using a
// console writer when stderr is a terminal and structured JSON
// otherwise, mirroring the corpus's go-colorable/isatty convention.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		writer := zerolog.ConsoleWriter{Out: colorable.NewColorable(os.Stderr), TimeFormat: time.RFC3339}
		return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
}
