package device

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
)

// ExecPlayer shells out to the platform audio player for a single clip.
type ExecPlayer struct {
	// Command overrides the player binary. Empty picks a platform default.
	Command string
}

func NewExecPlayer() *ExecPlayer {
	return &ExecPlayer{}
}

func (p *ExecPlayer) Play(ctx context.Context, path string) error {
	bin := p.Command
	if bin == "" {
		if runtime.GOOS == "darwin" {
			bin = "afplay"
		} else {
			bin = "aplay"
		}
	}

	if err := exec.CommandContext(ctx, bin, path).Run(); err != nil {
		return fmt.Errorf("play %s: %w", path, err)
	}
	return nil
}
