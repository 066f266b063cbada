// Package device wraps the best-effort hardware capabilities used when an
// alert fires: audio playback, the camera torch LED and one-shot
// geolocation. Every call is a single attempt; failures are reported to the
// caller and never retried.
package device

import (
	"context"
	"errors"

	"github.com/sos-giri/emergency-sos/internal/users/domain"
)

// ErrTorchUnsupported marks devices without torch capability introspection.
var ErrTorchUnsupported = errors.New("torch not supported")

// Player plays a bundled sound asset once, awaited to completion.
type Player interface {
	Play(ctx context.Context, path string) error
}

// Torch is the camera-flash LED used as a flashlight.
type Torch interface {
	// Supported reports whether the device exposes torch capability
	// introspection at all.
	Supported() bool
	// Flash enables the torch and schedules it off after a fixed delay.
	Flash(ctx context.Context) error
}

// Locator performs a single position query. Callers treat any failure as
// "no location available".
type Locator interface {
	Locate(ctx context.Context) (*domain.Location, error)
}
