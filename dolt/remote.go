package dolt

import (
	"context"
	"fmt"
	"strings"
)

// ListRemotes returns the remotes configured for this repository.
func (d *Dolt) ListRemotes(ctx context.Context) ([]Remote, error) {
	out, err := d.Exec(ctx, "remote", "--verbose")
	if err != nil {
		return nil, err
	}

	remotes := []Remote{}
	for _, line := range splitLines(out) {
		if line == "" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed remote listing line: %q", line)
		}
		remotes = append(remotes, Remote{Name: fields[0], URL: fields[1]})
	}
	return remotes, nil
}

// AddRemote adds a remote with the given name and URL.
func (d *Dolt) AddRemote(ctx context.Context, name, url string) error {
	if name == "" || url == "" {
		return fmt.Errorf("must provide name and url to add a remote")
	}
	_, err := d.Exec(ctx, "remote", "add", name, url)
	return err
}

// RemoveRemote removes the named remote.
func (d *Dolt) RemoveRemote(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("must provide the name of the remote to remove")
	}
	_, err := d.Exec(ctx, "remote", "remove", name)
	return err
}
