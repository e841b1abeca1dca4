package app

import (
	"context"

	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/engine/walker"
)

// SyncOptions configures Sync.
type SyncOptions struct {
	DryRun  bool
	Verbose bool
}

// Sync resolves the exclusion set of the source tree and runs the transfer engine with it.
func (a *App) Sync(ctx context.Context, src ConfigSource, opts SyncOptions) error {
	cfg, err := a.loadConfig(src)
	if err != nil {
		return err
	}

	w, err := a.newWalker(cfg)
	if err != nil {
		return err
	}

	req := domain.TransferRequest{
		Source:   cfg.SrcDir,
		Bucket:   cfg.DstBucketName,
		KeyID:    cfg.AppKeyID,
		Key:      cfg.AppKey,
		DryRun:   opts.DryRun,
		Settings: cfg.Transfer,
	}

	for ex := range walker.Exclusions(cfg.SrcDir, w.Walk(cfg.SrcDir)) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if opts.Verbose {
			a.logger.Info("excluding", "path", ex.Entry.Path, "reason", ex.Entry.Reason, "pattern", ex.Pattern)
		}

		if ex.Entry.IsDir {
			req.ExcludeDirs = append(req.ExcludeDirs, ex.Pattern)
		} else {
			req.ExcludeFiles = append(req.ExcludeFiles, ex.Pattern)
		}
	}

	a.logger.Info("syncing",
		"src_dir", cfg.SrcDir,
		"bucket", cfg.DstBucketName,
		"exclude_dirs", len(req.ExcludeDirs),
		"exclude_files", len(req.ExcludeFiles))

	return a.transferer.Transfer(ctx, req)
}
