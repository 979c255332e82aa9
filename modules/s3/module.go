// Package s3 uploads a local file to a pre-signed S3 URL.
package s3

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/specialistvlad/cleago/internal/command"
	"github.com/specialistvlad/cleago/internal/ctxlog"
	"github.com/specialistvlad/cleago/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// httpClient is a shared client for all uploads to reuse TCP connections.
var httpClient = &http.Client{}

// OnRunS3Upload PUTs the file given as `source` to `upload_url`.
func OnRunS3Upload(ctx context.Context, call *command.Call) error {
	source, uploadURL := call.String("source"), call.String("upload_url")
	logger := ctxlog.FromContext(ctx).With("module", "s3", "action", "upload")

	file, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open source file '%s': %w", source, err)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to get file stats for '%s': %w", source, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, file)
	if err != nil {
		return fmt.Errorf("failed to create S3 upload request: %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(source))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = stat.Size()

	logger.Debug("Uploading file to S3", "source", source, "size", stat.Size(), "contentType", contentType)

	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute S3 upload request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("S3 upload failed with status: %s", resp.Status)
	}

	call.Printf("Uploaded %s (%d bytes)\n", filepath.Base(source), stat.Size())
	return nil
}

// Register registers the handler with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterHandler("OnRunS3Upload", OnRunS3Upload)
}
