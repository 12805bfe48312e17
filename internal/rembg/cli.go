package rembg

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Arguments for `rembg i`; "-" makes rembg use stdin and stdout
const (
	ImageSubcommand = "i"
	ModelFlag       = "-m"
	StdStream       = "-"
)

// CommandRemover runs the rembg CLI once per image
type CommandRemover struct {
	command string
	args    []string
}

// NewCommandRemover creates a remover invoking `<command> i [-m model] - -`
func NewCommandRemover(command, model string) *CommandRemover {
	return &CommandRemover{
		command: command,
		args:    BuildArgs(model),
	}
}

// BuildArgs returns the rembg CLI arguments for a stdin to stdout run
func BuildArgs(model string) []string {
	args := []string{ImageSubcommand}
	if model != "" {
		args = append(args, ModelFlag, model)
	}
	return append(args, StdStream, StdStream)
}

// Remove feeds the image on stdin and returns stdout
func (c *CommandRemover) Remove(ctx context.Context, image []byte) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.command, c.args...)
	cmd.Stdin = bytes.NewReader(image)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("run %s: %w: %s", c.command, err, msg)
		}
		return nil, fmt.Errorf("run %s: %w", c.command, err)
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("run %s: no output", c.command)
	}
	return stdout.Bytes(), nil
}
