// Package render bridges filter changes to an external image renderer.
package render

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
)

// Filter is one named parameter with an amount in [0,1].
type Filter struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Request asks the renderer to paint the image at URL with the given
// filters applied, in order.
type Request struct {
	URL     string   `json:"url"`
	Filters []Filter `json:"filters"`
}

// Port delivers filter requests to whatever does the actual painting.
type Port interface {
	Apply(ctx context.Context, req Request) error
}

// ExecPort pipes each request as JSON to an external command, one
// invocation per request.
type ExecPort struct {
	command string
	args    []string
}

func NewExecPort(command string, args ...string) *ExecPort {
	return &ExecPort{command: command, args: args}
}

func (p *ExecPort) Apply(ctx context.Context, req Request) error {
	payload, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encoding filter request: %w", err)
	}

	cmd := exec.CommandContext(ctx, p.command, p.args...)
	cmd.Stdin = bytes.NewReader(payload)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("renderer %s: %w: %s", p.command, err, bytes.TrimSpace(out))
	}
	return nil
}

// NopPort discards requests; used when no renderer is configured.
type NopPort struct{}

func (NopPort) Apply(context.Context, Request) error { return nil }
