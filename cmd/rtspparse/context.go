package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nostressdev/rtsp/internal/config"
	"github.com/nostressdev/rtsp/internal/logger"
)

type commandContext struct {
	configFlag   *string
	outputFlag   *string
	logLevelFlag *string

	config *config.Config
	logger *slog.Logger
}

func newCommandContext(configFlag, outputFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		outputFlag:   outputFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) init(cmd *cobra.Command) error {
	cfg, path, exists, err := config.Load(*c.configFlag)
	if err != nil {
		return err
	}
	if err := cfg.ApplyOverrides(*c.outputFlag, *c.logLevelFlag); err != nil {
		return err
	}

	c.config = cfg
	c.logger = logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	c.logger.Debug("configuration loaded", "path", path, "exists", exists, "output", cfg.Output)
	return nil
}
