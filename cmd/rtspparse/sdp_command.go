package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/nostressdev/rtsp"
	"github.com/nostressdev/rtsp/sdp"
)

func newSDPCommand(ctx *commandContext) *cobra.Command {
	var baseFlag string

	cmd := &cobra.Command{
		Use:   "sdp [file|-]",
		Short: "Extract control URLs and ranges from a session description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var base *rtsp.URL
			if baseFlag != "" {
				var err error
				base, err = rtsp.ParseURL(baseFlag)
				if err != nil {
					return fmt.Errorf("parse base url: %w", err)
				}
				defer base.Release()
			}

			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open session description: %w", err)
				}
				defer file.Close()
				r = file
			}

			desc, err := sdp.NewDecoder(r, base).Decode()
			if err != nil {
				return fmt.Errorf("decode session description: %w", err)
			}
			defer desc.Release()
			ctx.logger.Debug("decoded session description", "medias", len(desc.Medias))

			records := mediaRecords{newMediaRecord("session", desc.Control, desc.Range)}
			for _, media := range desc.Medias {
				records = append(records, newMediaRecord(media.Type, media.Control, media.Range))
			}
			return ctx.write(cmd, records)
		},
	}

	cmd.Flags().StringVar(&baseFlag, "base", "", "Request URL or Content-Base used to resolve relative controls")

	return cmd
}
