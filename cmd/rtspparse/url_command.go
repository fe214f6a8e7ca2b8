package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nostressdev/rtsp"
)

func newURLCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "url <url>...",
		Short: "Parse RTSP URLs",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records urlRecords
			var errs []error

			for _, raw := range args {
				u, err := rtsp.ParseURL(raw)
				if err != nil {
					ctx.logger.Warn("invalid url", "input", raw, "error", err)
					errs = append(errs, fmt.Errorf("parse url %q: %w", raw, err))
					continue
				}
				ctx.logger.Debug("parsed url", "input", raw, "host", u.Host, "transports", u.Transports.String())

				records = append(records, newURLRecord(raw, u, ctx.config.Components))
				u.Release()
			}

			if len(records) > 0 {
				if err := ctx.write(cmd, records); err != nil {
					return err
				}
			}
			return errors.Join(errs...)
		},
	}
}
