package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/fuelrun/internal/config"
	"github.com/tomz197/fuelrun/internal/loop"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// The game owns the terminal, so logs only go to a file when asked.
	logger := log.New(io.Discard)
	if path := config.GetEnv("LOG_FILE", ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = log.NewWithOptions(f, log.Options{ReportTimestamp: true})
		if lvl, err := log.ParseLevel(config.GetEnv("LOG_LEVEL", "info")); err == nil {
			logger.SetLevel(lvl)
		}
	}

	tuning := config.Default()
	if path := config.GetEnv("FUELRUN_TUNING", ""); path != "" {
		var err error
		if tuning, err = config.LoadTuning(path); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	err = loop.Run(bufio.NewReader(os.Stdin), os.Stdout, loop.Options{
		Username: os.Getenv("USER"),
		Tuning:   tuning,
		Logger:   logger,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
