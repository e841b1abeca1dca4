// Package transfer runs the external sync engine that uploads the source tree.
package transfer

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strconv"

	"go.trai.ch/backsync/internal/core/domain"
	"go.trai.ch/backsync/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Credential environment variables read by the b2 command line tool.
const (
	EnvKeyID = "B2_APPLICATION_KEY_ID"
	EnvKey   = "B2_APPLICATION_KEY"
)

// Runner implements ports.Transferer by running the b2 command line tool.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Transfer runs one sync of req.Source into the bucket. The engine's stdout is
// logged as info and its stderr as warnings, line by line.
func (r *Runner) Transfer(ctx context.Context, req domain.TransferRequest) error {
	name := req.Settings.Command
	cmd := exec.CommandContext(ctx, name, buildArgs(req)...) //nolint:gosec // command comes from config

	// Credentials never appear on the command line.
	cmd.Env = append(os.Environ(), EnvKeyID+"="+req.KeyID, EnvKey+"="+req.Key)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTransferFailed.Error()), "command", name)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTransferFailed.Error()), "command", name)
	}

	if err := cmd.Start(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTransferFailed.Error()), "command", name)
	}

	var g errgroup.Group
	g.Go(func() error { return pump(stdout, r.logger.Info) })
	g.Go(func() error { return pump(stderr, r.logger.Warn) })
	pumpErr := g.Wait()

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrTransferFailed.Error()), "command", name), "exit_code", exitCode)
	}

	if pumpErr != nil {
		return zerr.With(zerr.Wrap(pumpErr, domain.ErrTransferFailed.Error()), "command", name)
	}
	return nil
}

// buildArgs assembles the b2 sync invocation.
func buildArgs(req domain.TransferRequest) []string {
	args := []string{
		"sync",
		"--exclude-all-symlinks",
		"--compare-versions", "modTime",
		"--compare-threshold", strconv.Itoa(req.Settings.CompareThreshold),
		"--replace-newer",
		"--delete",
		"--threads", strconv.Itoa(req.Settings.Threads),
	}
	if req.DryRun {
		args = append(args, "--dry-run")
	}
	for _, p := range req.ExcludeDirs {
		args = append(args, "--exclude-dir-regex", p)
	}
	for _, p := range req.ExcludeFiles {
		args = append(args, "--exclude-regex", p)
	}
	args = append(args, req.Settings.ExtraArgs...)
	return append(args, req.Source, "b2://"+req.Bucket)
}

// pump forwards r to log one line at a time.
func pump(r io.Reader, log func(string, ...any)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		log(scanner.Text())
	}
	return scanner.Err()
}
