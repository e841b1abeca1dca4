package app

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/engine/sizing"
	"go.trai.ch/zerr"
)

// SizeOptions configures Size.
type SizeOptions struct {
	// ShowFiles prints every included file.
	ShowFiles bool
	// Largest is the number of size buckets to list. 0 disables the listing.
	Largest int
	// CSVPath, when set, receives one row per visited entry.
	CSVPath string
}

// Size computes the backup size of the source tree and reports it, along with
// the change since the previous scan when scan history is enabled.
func (a *App) Size(ctx context.Context, src ConfigSource, opts SizeOptions) (err error) {
	cfg, err := a.loadConfig(src)
	if err != nil {
		return err
	}

	w, err := a.newWalker(cfg)
	if err != nil {
		return err
	}

	var export *csvExport
	if opts.CSVPath != "" {
		export, err = newCSVExport(opts.CSVPath)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := export.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
	}

	agg := sizing.New(opts.Largest)
	fingerprint := xxhash.New()
	excluded := 0

	for entry := range w.Walk(cfg.SrcDir) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if export != nil {
			if err := export.Write(entry); err != nil {
				return err
			}
		}

		if entry.Excluded {
			excluded++
			_, _ = fingerprint.WriteString(entry.Path + "\n")
			continue
		}
		// Symlinked directories are reported but not followed or counted.
		if entry.IsDir {
			continue
		}

		if opts.ShowFiles {
			if _, err := fmt.Fprintln(a.out, entry.Path); err != nil {
				return err
			}
		}
		agg.Observe(entry.Path, entry.Size)
	}

	if err := renderReport(a.out, agg.Total(), opts.Largest, agg.TopK()); err != nil {
		return err
	}

	if !cfg.HistoryEnabled() {
		return nil
	}

	rec := domain.ScanRecord{
		SrcDir:          cfg.SrcDir,
		TotalBytes:      agg.Total(),
		IncludedFiles:   agg.Files(),
		ExcludedEntries: excluded,
		Fingerprint:     fmt.Sprintf("%016x", fingerprint.Sum64()),
		ScannedAt:       a.now().UTC(),
	}
	a.recordScan(cfg.StateFile, rec)

	return nil
}

// recordScan prints the delta against the previous scan and stores rec.
// History problems are reported but never fail the scan.
func (a *App) recordScan(stateFile string, rec domain.ScanRecord) {
	prev, err := a.store.Get(stateFile, rec.SrcDir)
	if err != nil {
		a.logger.Warn("can't read scan history", "state_file", stateFile, "error", err)
	} else if prev != nil {
		if err := renderDelta(a.out, prev, &rec); err != nil {
			a.logger.Warn("can't print scan delta", "error", err)
		}
	}

	if err := a.store.Put(stateFile, rec); err != nil {
		a.logger.Warn("can't write scan history", "state_file", stateFile, "error", err)
	}
}

type csvExport struct {
	path   string
	file   io.WriteCloser
	writer *csv.Writer
}

func newCSVExport(path string) (*csvExport, error) {
	f, err := os.Create(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", path)
	}

	e := &csvExport{path: path, file: f, writer: csv.NewWriter(f)}
	if err := e.writer.Write([]string{"path", "size_bytes", "excluded"}); err != nil {
		_ = f.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", path)
	}
	return e, nil
}

func (e *csvExport) Write(entry domain.Entry) error {
	row := []string{entry.Path, strconv.FormatInt(entry.Size, 10), strconv.FormatBool(entry.Excluded)}
	if err := e.writer.Write(row); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrExportFailed.Error()), "path", e.path)
	}
	return nil
}

func (e *csvExport) Close() error {
	e.writer.Flush()
	werr := e.writer.Error()
	cerr := e.file.Close()
	if werr != nil {
		return zerr.With(zerr.Wrap(werr, domain.ErrExportFailed.Error()), "path", e.path)
	}
	if cerr != nil {
		return zerr.With(zerr.Wrap(cerr, domain.ErrExportFailed.Error()), "path", e.path)
	}
	return nil
}
