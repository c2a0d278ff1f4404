package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/neumorph/internal/config"
	"github.com/alexisbeaulieu97/neumorph/internal/logger"
)

// AppContext bundles what a command needs once flags are resolved.
type AppContext struct {
	Config config.Config
	Logger *logger.Logger

	closeLog func() error
}

// newAppContext loads the configuration, applies flag overrides and builds
// the logger. Logs go to logOut unless --log-file names a file.
func newAppContext(flags *rootFlags, logOut io.Writer) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	app := &AppContext{Config: cfg, closeLog: func() error { return nil }}
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		logOut = f
		app.closeLog = f.Close
	}

	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: logOut})
	if err != nil {
		_ = app.closeLog()
		return nil, err
	}
	app.Logger = log.WithFields(map[string]any{"component": "cli", "log_level": log.Level()})
	if flags.verbose && flags.logLevel != "" && flags.logLevel != "info" && flags.logLevel != "debug" {
		app.Logger.Warn("--verbose overrides --log-level " + flags.logLevel)
	}
	return app, nil
}

// Close releases the log file, if one was opened.
func (a *AppContext) Close() error {
	if a == nil || a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if flags.theme == "" {
		return cfg, nil
	}
	cfg.Theme.Mode = flags.theme
	if err := config.ValidateConfig(&cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
