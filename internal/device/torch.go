package device

import (
	"context"
	"fmt"
	"os"
	"time"
)

// The light stays on for five seconds before shutting off on its own.
const torchOnDuration = 5 * time.Second

// LEDTorch drives the torch through a sysfs LED brightness file. Absence of
// the file means the platform exposes no torch introspection at all.
type LEDTorch struct {
	Path     string
	Duration time.Duration
}

func NewLEDTorch(path string) *LEDTorch {
	return &LEDTorch{Path: path, Duration: torchOnDuration}
}

func (t *LEDTorch) Supported() bool {
	if t.Path == "" {
		return false
	}
	_, err := os.Stat(t.Path)
	return err == nil
}

func (t *LEDTorch) Flash(ctx context.Context) error {
	if !t.Supported() {
		return ErrTorchUnsupported
	}

	if err := os.WriteFile(t.Path, []byte("1"), 0o644); err != nil {
		return fmt.Errorf("enable torch: %w", err)
	}

	d := t.Duration
	if d == 0 {
		d = torchOnDuration
	}
	time.AfterFunc(d, func() {
		// Best effort; the LED going dark on its own is acceptable.
		_ = os.WriteFile(t.Path, []byte("0"), 0o644)
	})
	return nil
}
