package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"

	app "github.com/rocketscienceinc/tictactoe-console/internal"
	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game
// or, with -check, evaluates a single board.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "./config.yml", "path to the yaml config file")
	board := flag.String("check", "", `evaluate a 9-cell board such as "XXXOO    " and exit`)

	header := "Two-player tic-tac-toe in the console.\n\nUsage of tictactoe:"
	flag.Usage = cleanenv.FUsage(flag.CommandLine.Output(), &config.Config{}, &header, flag.PrintDefaults)
	flag.Parse()

	conf := initConfig(*configPath)
	logger := initLogger(conf)

	if *board != "" {
		if err := app.RunCheck(logger, *board, os.Stdout); err != nil {
			panic(fmt.Errorf("board check failed: %w", err))
		}
		return
	}

	err := app.RunApp(logger, conf, os.Stdin, os.Stdout)
	if errors.Is(err, apperror.ErrInputClosed) {
		logger.Warn("input closed before the game finished")
		return
	}
	if err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(path string) *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	if err = config.LoadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		panic(err)
	}

	return config.MustLoad(path)
}

// initialize logger. Logs go to stderr, stdout belongs to the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
