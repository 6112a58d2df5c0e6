package main

import (
	"github.com/spf13/cobra"

	commonlog "mediahub/server/common/log"
	"mediahub/server/media/app"
	"mediahub/server/media/service"
)

type rootOptions struct {
	base   string
	client *service.MediaClient
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "mediactl",
		Short: "Upload media assets and resolve their retrieval URLs",
		Long: "mediactl talks to the media backend at MEDIA_API_BASE.\n" +
			"Uploads are attributed to the identity given with --user.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := app.LoadConfig()
			if opts.base != "" {
				cfg.BaseURL = opts.base
			}
			commonlog.SetLevel(cfg.LogLevel)
			opts.client = app.NewMediaClient(cfg)
		},
	}
	root.PersistentFlags().StringVar(&opts.base, "base", "", "media API root (overrides MEDIA_API_BASE)")

	root.AddCommand(newUploadCmd(opts))
	root.AddCommand(newURLCmd(opts))
	return root
}
