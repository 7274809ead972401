// Package testhelpers provides test doubles for exercising the dolt
// façade without a dolt binary installed.
package testhelpers

import (
	"context"
	"fmt"
	"os"
)

// Call records a single executed command.
type Call struct {
	Args    []string
	OutFile string
}

// Response is a canned result for one command execution.
type Response struct {
	Output string
	Err    error
}

// ScriptedExecutor implements dolt.Executor by replaying canned responses
// in order and recording every call. When a call redirects output to a
// file, the canned output is written there instead of returned. Calls
// beyond the scripted responses return empty output.
type ScriptedExecutor struct {
	Calls     []Call
	responses []Response
}

// NewScriptedExecutor creates a ScriptedExecutor with the given responses.
func NewScriptedExecutor(responses ...Response) *ScriptedExecutor {
	return &ScriptedExecutor{responses: responses}
}

// Enqueue appends a canned response.
func (e *ScriptedExecutor) Enqueue(output string, err error) {
	e.responses = append(e.responses, Response{Output: output, Err: err})
}

// Execute replays the next canned response.
func (e *ScriptedExecutor) Execute(_ context.Context, args []string, outFile string) (string, error) {
	e.Calls = append(e.Calls, Call{Args: append([]string{}, args...), OutFile: outFile})

	var resp Response
	if len(e.responses) > 0 {
		resp = e.responses[0]
		e.responses = e.responses[1:]
	}

	if resp.Err != nil {
		return "", resp.Err
	}
	if outFile != "" {
		if err := os.WriteFile(outFile, []byte(resp.Output), 0o644); err != nil {
			return "", fmt.Errorf("scripted executor failed to write output file: %w", err)
		}
		return "", nil
	}
	return resp.Output, nil
}

// LastCall returns the most recent recorded call, or nil when nothing has
// run.
func (e *ScriptedExecutor) LastCall() *Call {
	if len(e.Calls) == 0 {
		return nil
	}
	return &e.Calls[len(e.Calls)-1]
}
