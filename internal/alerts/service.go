// Package alerts runs the local alert routine: sound, torch, confirmation.
// Nothing is transmitted to any contact, server or third party; the loop is
// closed on the device.
package alerts

import (
	"context"
	"log"
	"sync"

	"github.com/sos-giri/emergency-sos/internal/device"
	"github.com/sos-giri/emergency-sos/internal/notify"
	"github.com/sos-giri/emergency-sos/internal/users/domain"
)

type Service struct {
	player    device.Player
	torch     device.Torch
	soundPath string
}

func NewService(player device.Player, torch device.Torch, soundPath string) *Service {
	return &Service{player: player, torch: torch, soundPath: soundPath}
}

// Trigger fires the alert routine for one tier. Audio and torch run
// concurrently with no ordering between their completions; each failure
// becomes its own toast. The confirmation toast is appended unconditionally,
// whatever the device attempts did.
func (s *Service) Trigger(ctx context.Context, tier domain.AlertType) []notify.Toast {
	var (
		mu     sync.Mutex
		toasts []notify.Toast
		wg     sync.WaitGroup
	)
	add := func(t notify.Toast) {
		mu.Lock()
		toasts = append(toasts, t)
		mu.Unlock()
	}

	wg.Add(2)

	go func() {
		defer wg.Done()
		if err := s.player.Play(ctx, s.soundPath); err != nil {
			log.Printf("[error] operation=alert.sound error=%v", err)
			add(notify.Error(notify.MsgSoundFailed))
		}
	}()

	go func() {
		defer wg.Done()
		if !s.torch.Supported() {
			add(notify.Error(notify.MsgTorchUnsupported))
			return
		}
		if err := s.torch.Flash(ctx); err != nil {
			log.Printf("[error] operation=alert.torch error=%v", err)
			add(notify.Error(notify.MsgFlashlightFailed))
		}
	}()

	wg.Wait()

	toasts = append(toasts, notify.AlertTriggered(string(tier)))
	return toasts
}
