package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var outputFlag string
	var logLevelFlag string

	ctx := newCommandContext(&configFlag, &outputFlag, &logLevelFlag)

	rootCmd := &cobra.Command{
		Use:           "rtspparse",
		Short:         "Parse RTSP URLs and time ranges",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.init(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: auto, json or table")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newURLCommand(ctx))
	rootCmd.AddCommand(newRangeCommand(ctx))
	rootCmd.AddCommand(newSDPCommand(ctx))

	return rootCmd
}
