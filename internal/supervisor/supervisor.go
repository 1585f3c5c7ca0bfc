// Package supervisor consumes launch requests: it renders the params file,
// resolves and spawns the executable, and handles the process's output
// according to the request's output mode. It is the one place in camlaunch
// that touches the process table.
package supervisor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"camlaunch/internal/ctxlog"
	"camlaunch/internal/launch"
	"camlaunch/internal/resource"
)

// Supervisor spawns processes from launch requests. Each request is consumed
// at most once; launching the same request twice is an error.
type Supervisor struct {
	stdout io.Writer
	stderr io.Writer

	mu       sync.Mutex
	consumed map[*launch.Request]bool
}

// New creates a Supervisor that inherits the current process's streams for
// requests in inherit mode.
func New() *Supervisor {
	return &Supervisor{
		stdout:   os.Stdout,
		stderr:   os.Stderr,
		consumed: make(map[*launch.Request]bool),
	}
}

// Argv assembles the command line handed to a driver executable: the node's
// display name, the rendered params file, and one --remap flag per remapping
// in from:=to form.
func Argv(req *launch.Request, paramsFile string) []string {
	argv := []string{"--name", req.NodeName, "--params-file", paramsFile}
	for _, remap := range req.Remappings {
		argv = append(argv, "--remap", remap.From+":="+remap.To)
	}
	return argv
}

// Launch spawns the process described by the request and waits for it to
// exit. A non-zero exit status is returned as an error carrying the code.
// The params file lives in a temp dir removed when the process exits.
func (s *Supervisor) Launch(ctx context.Context, req *launch.Request) error {
	if err := s.markConsumed(req); err != nil {
		return err
	}

	id := uuid.NewString()
	ctx = ctxlog.With(ctx, "launch_id", id, "node", req.NodeName)
	logger := ctxlog.FromContext(ctx)

	exePath, err := resource.FindExecutable(req.Package, req.Executable)
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "camlaunch-")
	if err != nil {
		return fmt.Errorf("failed to create params dir: %w", err)
	}
	defer os.RemoveAll(dir)

	data, err := RenderParams(req.Parameters)
	if err != nil {
		return fmt.Errorf("failed to render params for %q: %w", req.NodeName, err)
	}
	paramsPath := filepath.Join(dir, "params.yaml")
	if err := os.WriteFile(paramsPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write params file: %w", err)
	}

	cmd := exec.CommandContext(ctx, exePath, Argv(req, paramsPath)...)
	logger.Info("Starting process.", "executable", exePath, "output", req.Output.String())

	if req.Output == launch.OutputInherit {
		cmd.Stdout = s.stdout
		cmd.Stderr = s.stderr
		return exitResult(req, logger.Info, cmd.Run())
	}

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("failed to open stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("failed to open stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %q: %w", exePath, err)
	}

	g := new(errgroup.Group)
	g.Go(func() error { return pumpLines(ctx, stdout, "stdout") })
	g.Go(func() error { return pumpLines(ctx, stderr, "stderr") })
	pumpErr := g.Wait()

	if err := exitResult(req, logger.Info, cmd.Wait()); err != nil {
		return err
	}
	return pumpErr
}

// markConsumed enforces the consume-once contract on requests.
func (s *Supervisor) markConsumed(req *launch.Request) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.consumed[req] {
		return fmt.Errorf("launch request for %q already consumed", req.NodeName)
	}
	s.consumed[req] = true
	return nil
}

// pumpLines forwards each output line of the child through the logger, tagged
// with its stream.
func pumpLines(ctx context.Context, r io.Reader, stream string) error {
	logger := ctxlog.FromContext(ctx)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		logger.Info(scanner.Text(), "stream", stream)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", stream, err)
	}
	return nil
}

// exitResult translates cmd.Run/Wait errors into the supervisor's exit
// contract and logs a clean exit.
func exitResult(req *launch.Request, logInfo func(string, ...any), err error) error {
	if err == nil {
		logInfo("Process exited cleanly.")
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return fmt.Errorf("process %q exited with code %d", req.NodeName, exitErr.ExitCode())
	}
	return fmt.Errorf("process %q failed: %w", req.NodeName, err)
}
