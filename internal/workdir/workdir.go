// Package workdir provisions per-run temporary working directories.
package workdir

import (
	"context"
	"os/exec"
	"strings"

	"seqpipes.dev/seqpipes/internal/errors"
)

// pattern matches the directory names the cluster scratch cleaner expects.
const pattern = "tmp.seqpipes.XXXXXXXX"

// Provision creates a uniquely named working directory under preferred,
// retrying under fallback if that fails. The directory is not cleaned up
// here; the workflow runner removes it when the run finishes.
//
// The ctx deadline bounds the external mktemp call, which otherwise has no
// timeout of its own.
func Provision(ctx context.Context, preferred, fallback string) (string, error) {
	path, err := mktempIn(ctx, preferred)
	if err == nil {
		return path, nil
	}

	path, ferr := mktempIn(ctx, fallback)
	if ferr == nil {
		return path, nil
	}
	return "", errors.NewWorkdirError(preferred, fallback, ferr)
}

func mktempIn(ctx context.Context, root string) (string, error) {
	args := []string{"-d", "-p", root, pattern}
	out, err := exec.CommandContext(ctx, "mktemp", args...).CombinedOutput()
	if err != nil {
		return "", errors.NewCommandError("mktemp", args, strings.TrimSpace(string(out)), err)
	}
	return strings.TrimSpace(string(out)), nil
}
