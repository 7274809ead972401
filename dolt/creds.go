package dolt

import (
	"context"
	"fmt"
	"strings"
)

// CredsNew generates a new credential key pair for this repository.
func (d *Dolt) CredsNew(ctx context.Context) error {
	out, err := d.Exec(ctx, "creds", "new")
	if err != nil {
		return err
	}
	if len(splitLines(out)) != 2 {
		return fmt.Errorf("unexpected creds output:\n%s", out)
	}
	return nil
}

// CredsRemove removes the key pair identified by the given public key.
func (d *Dolt) CredsRemove(ctx context.Context, publicKey string) error {
	out, err := d.Exec(ctx, "creds", "rm", publicKey)
	if err != nil {
		return err
	}
	if strings.HasPrefix(out, "failed") {
		return fmt.Errorf("tried to remove non-existent creds: %s", out)
	}
	return nil
}

// CredsList parses the key pairs known to this repository. A leading *
// marks the active pair; at most one pair is active.
func (d *Dolt) CredsList(ctx context.Context) ([]KeyPair, error) {
	out, err := d.Exec(ctx, "creds", "ls", "--verbose")
	if err != nil {
		return nil, err
	}

	creds := []KeyPair{}
	for _, line := range splitLines(out) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		active := false
		if strings.HasPrefix(line, "*") {
			active = true
			line = strings.TrimPrefix(line, "*")
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("malformed key pair listing line: %q", line)
		}
		creds = append(creds, KeyPair{PublicKey: fields[0], KeyID: fields[1], Active: active})
	}
	return creds, nil
}

// CredsCheck checks that credentials authenticate against an endpoint,
// returning true when authorized.
func (d *Dolt) CredsCheck(ctx context.Context, endpoint, creds string) (bool, error) {
	args := []string{"creds", "check"}
	if endpoint != "" {
		args = append(args, "--endpoint", endpoint)
	}
	if creds != "" {
		args = append(args, "--creds", creds)
	}
	out, err := d.Exec(ctx, args...)
	if err != nil {
		return false, err
	}
	for _, line := range splitLines(out) {
		if strings.HasPrefix(line, "error") {
			return false, nil
		}
	}
	return true, nil
}

// CredsUse selects the key pair identified by the given public key ID.
func (d *Dolt) CredsUse(ctx context.Context, publicKeyID string) error {
	out, err := d.Exec(ctx, "creds", "use", publicKeyID)
	if err != nil {
		return err
	}
	if strings.HasPrefix(out, "error") {
		return fmt.Errorf("bad public key: %s", out)
	}
	return nil
}
