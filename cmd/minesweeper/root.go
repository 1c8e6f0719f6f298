package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper-tui/internal/config"
	"github.com/vancomm/minesweeper-tui/internal/logging"
	"github.com/vancomm/minesweeper-tui/mines"
	"github.com/vancomm/minesweeper-tui/tui"
)

// overridden at build time via -ldflags
var version = "dev"

var (
	configPath string
	boardSeed  string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:          "minesweeper",
	Short:        "An interactive minesweeper game for your terminal",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return play()
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the game",
	RunE: func(cmd *cobra.Command, args []string) error {
		return play()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("minesweeper", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath, "config", "c", "", "config file path",
	)
	rootCmd.PersistentFlags().StringVarP(
		&boardSeed, "board", "b", "",
		`skip the menu and play the given board, e.g. "9x9:10"`,
	)
	rootCmd.PersistentFlags().BoolVar(
		&noColor, "no-color", false, "disable colors",
	)
	rootCmd.AddCommand(playCmd, versionCmd)
}

func play() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	level := logrus.InfoLevel
	if parsed, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		level = parsed
	}
	if config.Development() {
		level = logrus.DebugLevel
	}
	if err := logging.Setup(log, cfg.LogFile, level); err != nil {
		return fmt.Errorf("unable to set up logging: %w", err)
	}
	mines.Log = log
	tui.Log = log

	params, err := cfg.Params()
	if err != nil {
		return err
	}
	if boardSeed != "" {
		if params, err = mines.ParseParams(boardSeed); err != nil {
			return err
		}
	}

	log.WithFields(logrus.Fields{
		"version":     version,
		"development": config.Development(),
	}).Info("starting up")

	app := tui.New(tui.Options{
		Params:     params,
		Difficulty: cfg.Difficulty,
		NoColor:    noColor || !cfg.Color,
	})
	return app.Run()
}
