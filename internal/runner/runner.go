// Package runner invokes the toasthud rendering executable.
//
// The runner owns argument marshaling and process lifecycle only: a
// validated parameter record goes in, an argv mirroring the record's field
// names comes out, and the renderer process is run either blocking or
// non-blocking. Rendering itself belongs to the executable.
package runner

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/toasthud/toasthud/internal/toast"
)

// ExecutableName is the renderer binary looked up on $PATH.
const ExecutableName = "toasthud"

// Result describes a completed (or started) renderer invocation.
type Result struct {
	// RequestID identifies this invocation in logs.
	RequestID string

	// PID of the renderer process.
	PID int

	// Blocking-mode fields; zero values in non-blocking mode.
	ExitCode int
	Stdout   string
	Stderr   string
}

// Runner locates and invokes the renderer executable.
type Runner struct {
	execPath string
	logger   *slog.Logger
}

// New creates a Runner. execPath overrides renderer discovery when
// non-empty.
func New(execPath string, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{execPath: execPath, logger: logger}
}

// Locate resolves the renderer executable path: the explicit override
// first, then $PATH, then a sibling of the current executable.
func (r *Runner) Locate() (string, error) {
	if r.execPath != "" {
		if _, err := os.Stat(r.execPath); err != nil {
			return "", fmt.Errorf("renderer not found at %s: %w", r.execPath, err)
		}
		return r.execPath, nil
	}

	if path, err := exec.LookPath(ExecutableName); err == nil {
		return path, nil
	}

	self, err := os.Executable()
	if err == nil {
		sibling := filepath.Join(filepath.Dir(self), ExecutableName)
		if _, err := os.Stat(sibling); err == nil {
			return sibling, nil
		}
	}

	return "", fmt.Errorf("renderer executable %q not found in $PATH or beside the current binary", ExecutableName)
}

// Args marshals a parameter record into renderer arguments. Flag names
// mirror the record's field names; the message is always the final
// argument.
func Args(p *toast.Params) []string {
	var args []string

	addFloat := func(flag string, v *float64) {
		if v != nil {
			args = append(args, flag, formatFloat(*v))
		}
	}
	addDuration := func(flag string, v *time.Duration) {
		if v != nil {
			args = append(args, flag, formatFloat(v.Seconds()))
		}
	}

	addFloat("--width", p.Width)
	addFloat("--height", p.Height)
	if p.Background != nil {
		args = append(args, "--bg", p.Background.Hex())
	}
	if p.TextColor != nil {
		args = append(args, "--text-color", p.TextColor.Hex())
	}
	if p.Coords != nil {
		args = append(args, "--x", formatFloat(p.Coords.X), "--y", formatFloat(p.Coords.Y))
	} else if p.Anchor != "" {
		args = append(args, "--position", string(p.Anchor))
	}
	addFloat("--font-size", p.FontSize)
	addFloat("--corner-radius", p.CornerRadius)
	addDuration("--display-duration", p.DisplayDuration)
	addDuration("--fade-in-duration", p.FadeInDuration)
	addDuration("--fade-out-duration", p.FadeOutDuration)
	if p.Level != "" {
		args = append(args, "--window-level", string(p.Level))
	}
	if p.Icon != "" {
		args = append(args, "--icon", p.Icon)
	}
	if p.ClickToDismiss {
		args = append(args, "--click-to-dismiss")
	}
	if p.Sound != "" {
		args = append(args, "--sound", p.Sound)
	}

	args = append(args, p.Message)
	return args
}

// Show validates p, merges auto-sized geometry, and invokes the renderer.
// In blocking mode it waits for the process and, when p.Check is set,
// turns a non-zero exit status into an error. In non-blocking mode it
// starts the process and returns immediately.
func (r *Runner) Show(ctx context.Context, p *toast.Params) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	merged := p.Clone()
	merged.ApplyAutoSize()

	exe, err := r.Locate()
	if err != nil {
		return nil, err
	}

	args := Args(merged)
	id := newRequestID()
	r.logger.Debug("invoking renderer",
		"request_id", id,
		"exe", exe,
		"blocking", !merged.NonBlocking,
	)

	if merged.NonBlocking {
		cmd := exec.Command(exe, args...)
		if err := cmd.Start(); err != nil {
			return nil, fmt.Errorf("failed to start renderer: %w", err)
		}
		pid := cmd.Process.Pid
		// Reap the child in the background so it never zombies.
		go func() { _ = cmd.Wait() }()
		return &Result{RequestID: id, PID: pid}, nil
	}

	cmd := exec.CommandContext(ctx, exe, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	res := &Result{
		RequestID: id,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
	}
	if cmd.Process != nil {
		res.PID = cmd.Process.Pid
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			if merged.Check {
				return res, fmt.Errorf("renderer exited with status %d: %s", res.ExitCode, stderr.String())
			}
			return res, nil
		}
		return res, fmt.Errorf("failed to run renderer: %w", runErr)
	}

	return res, nil
}

// formatFloat renders a float without trailing zeros.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// newRequestID generates a ULID for log correlation.
func newRequestID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return "unknown"
	}
	return id.String()
}
