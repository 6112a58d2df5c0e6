package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	commonlog "mediahub/server/common/log"
	"mediahub/server/media/domain"
	"mediahub/server/media/localfile"
	"mediahub/server/media/service"
)

type uploadResult struct {
	Path   string             `json:"path"`
	Asset  *domain.MediaAsset `json:"asset,omitempty"`
	URL    string             `json:"url,omitempty"`
	Error  string             `json:"error,omitempty"`
	Status int                `json:"status,omitempty"`
	Body   string             `json:"body,omitempty"`
}

func newUploadCmd(opts *rootOptions) *cobra.Command {
	var user, product string
	cmd := &cobra.Command{
		Use:   "upload <path>...",
		Short: "Upload one or more files",
		Long: "Each file is sent in its own request, concurrently.\n" +
			"Results are printed as JSON lines in argument order.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]*localfile.File, 0, len(args))
			defer func() {
				for _, f := range files {
					_ = f.Close()
				}
			}()
			for _, path := range args {
				f, err := localfile.Open(path)
				if err != nil {
					return fmt.Errorf("open %s: %w", path, err)
				}
				files = append(files, f)
			}

			ctx := cmd.Context()
			pendings := make([]*service.PendingUpload, len(files))
			for i, f := range files {
				commonlog.Infof("uploading %s (%s, %d bytes)", args[i], f.Content.ContentType, f.Size)
				pendings[i] = opts.client.Upload(ctx, f.Content, user, domain.ProductFromString(product))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			failed := 0
			for i, pending := range pendings {
				asset, err := pending.Wait(ctx)
				result := uploadResult{Path: args[i]}
				if err != nil {
					failed++
					commonlog.Errorf("upload %s failed: %v", args[i], err)
					result.Error = err.Error()
					var backendErr *service.BackendError
					if errors.As(err, &backendErr) {
						result.Status = backendErr.StatusCode
						result.Body = string(backendErr.Body)
					}
				} else {
					result.Asset = &asset
					result.URL = opts.client.ResolveURL(asset.Filename)
				}
				if err := enc.Encode(result); err != nil {
					return err
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d uploads failed", failed, len(pendings))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "uploader identity, e.g. the account email")
	cmd.Flags().StringVar(&product, "product", "", "product to associate the upload with")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
