// Package repo provisions the firmware source repository.
//
// A checkout directory that already exists is trusted as-is — no validation
// of its contents, remote, or branch state — so repeated runs never touch
// the network. An absent directory is populated by cloning the fixed
// upstream URL with go-git, translating the server's sideband progress
// messages into bar positions.
package repo

import (
	"context"
	"fmt"
	"os"

	git "github.com/go-git/go-git/v5"

	"github.com/totemkb/zmkenv/internal/progress"
)

// Provisioner ensures a working copy of a repository exists locally.
type Provisioner struct {
	url string
}

// NewProvisioner creates a Provisioner cloning from the given URL.
func NewProvisioner(url string) *Provisioner {
	return &Provisioner{url: url}
}

// Ensure makes sure dir holds a repository checkout. If dir already exists
// as a directory it is treated as provisioned and Ensure returns false
// without any network access. Otherwise the repository is cloned into dir,
// reporting progress to meter, and Ensure returns true.
//
// Clone failures propagate; there are no retries.
func (p *Provisioner) Ensure(ctx context.Context, dir string, meter progress.Meter) (bool, error) {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return false, nil
	}

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      p.url,
		Progress: newSidebandParser(meter),
	})
	if err != nil {
		return false, fmt.Errorf("failed to clone %s: %w", p.url, err)
	}
	return true, nil
}
