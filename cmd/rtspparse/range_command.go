package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nostressdev/rtsp"
)

func newRangeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "range <range>...",
		Short: "Parse Range header values such as npt=10- or smpte=10:07:00-",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var records rangeRecords
			var errs []error

			for _, raw := range args {
				r, err := rtsp.ParseRange(raw)
				if err != nil {
					ctx.logger.Warn("invalid range", "input", raw, "error", err)
					errs = append(errs, fmt.Errorf("parse range %q: %w", raw, err))
					continue
				}
				ctx.logger.Debug("parsed range", "input", raw, "unit", r.Unit.String())

				records = append(records, newRangeRecord(raw, r))
				r.Release()
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
