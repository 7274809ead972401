package dolt

import (
	"context"
	"fmt"
	"strings"
)

// ConfigOptions selects exactly one config operation: Add (requires Name
// and Value), List, Get (requires Name), or Unset (requires Name).
type ConfigOptions struct {
	Name  string
	Value string
	Add   bool
	List  bool
	Get   bool
	Unset bool
}

func (o ConfigOptions) validate() error {
	count := 0
	for _, set := range []bool{o.Add, o.List, o.Get, o.Unset} {
		if set {
			count++
		}
	}
	if count != 1 {
		return fmt.Errorf("exactly one of add, list, get, unset must be set")
	}
	switch {
	case o.Add && (o.Name == "" || o.Value == ""):
		return fmt.Errorf("add requires a name and value")
	case o.List && (o.Name != "" || o.Value != ""):
		return fmt.Errorf("list takes no name or value")
	case o.Get && (o.Name == "" || o.Value != ""):
		return fmt.Errorf("get takes only a name")
	case o.Unset && (o.Name == "" || o.Value != ""):
		return fmt.Errorf("unset takes only a name")
	}
	return nil
}

// ConfigGlobal manipulates the global dolt configuration.
func ConfigGlobal(ctx context.Context, opts ConfigOptions) (map[string]string, error) {
	return configHelper(ctx, NewCommandRunner(""), "--global", opts)
}

// ConfigLocal manipulates configuration local to this repository.
func (d *Dolt) ConfigLocal(ctx context.Context, opts ConfigOptions) (map[string]string, error) {
	return configHelper(ctx, d.exec, "--local", opts)
}

func configHelper(ctx context.Context, exec Executor, scope string, opts ConfigOptions) (map[string]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	args := []string{"config", scope}
	switch {
	case opts.Add:
		args = append(args, "--add", opts.Name, opts.Value)
	case opts.List:
		args = append(args, "--list")
	case opts.Get:
		args = append(args, "--get", opts.Name)
	case opts.Unset:
		args = append(args, "--unset", opts.Name)
	}

	out, err := exec.Execute(ctx, args, "")
	if err != nil {
		return nil, err
	}

	result := map[string]string{}
	for _, line := range splitLines(out) {
		name, value, ok := strings.Cut(line, " = ")
		if !ok {
			continue
		}
		result[name] = value
	}
	return result, nil
}
