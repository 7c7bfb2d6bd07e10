package invoke

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/mitchellh/go-homedir"

	"github.com/goliatone/go-scenegen/pkg/pack"
)

// ExecName is the registry name of the process-based renderer.
const ExecName = "exec"

// ExecOption configures an ExecRenderer.
type ExecOption func(*ExecRenderer)

// WithStdout redirects the renderer's standard output.
func WithStdout(w io.Writer) ExecOption {
	return func(r *ExecRenderer) {
		r.stdout = w
	}
}

// WithStderr redirects the renderer's standard error.
func WithStderr(w io.Writer) ExecOption {
	return func(r *ExecRenderer) {
		r.stderr = w
	}
}

// WithDir sets the working directory the renderer runs in.
func WithDir(dir string) ExecOption {
	return func(r *ExecRenderer) {
		r.dir = strings.TrimSpace(dir)
	}
}

// WithEnv appends KEY=VALUE pairs to the inherited environment.
func WithEnv(env ...string) ExecOption {
	return func(r *ExecRenderer) {
		r.env = append(r.env, env...)
	}
}

// ExecRenderer runs an external renderer program, passing the packed sequence
// as trailing command-line arguments in their canonical text form.
type ExecRenderer struct {
	path   string
	base   []string
	dir    string
	env    []string
	stdout io.Writer
	stderr io.Writer
}

// NewExec parses command with shell quoting rules. The first word is the
// program (a leading ~ is expanded); the remaining words are passed before the
// packed arguments.
func NewExec(command string, options ...ExecOption) (*ExecRenderer, error) {
	words, err := shellwords.Parse(command)
	if err != nil {
		return nil, fmt.Errorf("invoke: parse command %q: %w", command, err)
	}
	if len(words) == 0 {
		return nil, errors.New("invoke: renderer command is required")
	}
	path, err := homedir.Expand(words[0])
	if err != nil {
		return nil, fmt.Errorf("invoke: expand %q: %w", words[0], err)
	}

	r := &ExecRenderer{
		path:   path,
		base:   words[1:],
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.dir != "" {
		if r.dir, err = homedir.Expand(r.dir); err != nil {
			return nil, fmt.Errorf("invoke: expand dir: %w", err)
		}
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *ExecRenderer) Name() string {
	return ExecName
}

// Command builds the process invocation for args without starting it.
func (r *ExecRenderer) Command(args pack.Args) *exec.Cmd {
	argv := make([]string, 0, len(r.base)+len(args))
	argv = append(argv, r.base...)
	argv = append(argv, args.Strings()...)

	// exec.Command rather than CommandContext: a started render runs to
	// completion.
	cmd := exec.Command(r.path, argv...)
	cmd.Dir = r.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}
	return cmd
}

// Render runs the renderer and waits for it to exit. A non-zero exit is
// returned as an error wrapping *exec.ExitError.
func (r *ExecRenderer) Render(ctx context.Context, args pack.Args) error {
	if err := precheck(ctx, args); err != nil {
		return err
	}
	if err := r.Command(args).Run(); err != nil {
		return fmt.Errorf("invoke: run %s: %w", r.path, err)
	}
	return nil
}
