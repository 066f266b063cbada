package main

import (
	"context"
	"log"

	"github.com/sos-giri/emergency-sos/config"
	"github.com/sos-giri/emergency-sos/internal/bootstrap"
	"github.com/sos-giri/emergency-sos/internal/device"
	"github.com/sos-giri/emergency-sos/internal/session"
	"github.com/sos-giri/emergency-sos/internal/users/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	var users repository.Store
	if cfg.Firebase.CredentialsPath != "" {
		client, err := bootstrap.OpenFirestore(ctx, &cfg.Firebase)
		if err != nil {
			log.Fatalf("firestore: %v", err)
		}
		defer client.Close()
		users = repository.NewFirestoreRepo(client)
	} else {
		// Credential-less runs keep records in memory. Useful for local
		// development; nothing survives a restart.
		log.Println("FIREBASE_CREDENTIALS_PATH not set, using in-memory user store")
		users = repository.NewMemoryRepo()
	}

	redisClient, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{Config: &cfg.Redis})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer redisClient.Close()

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "emergency-sos",
		Version:        cfg.App.Version,
		Users:          users,
		Sessions:       session.NewRedisStore(redisClient),
		SessionsClient: redisClient,
		Player:         device.NewExecPlayer(),
		Torch:          device.NewLEDTorch(cfg.Device.TorchPath),
		Locator:        device.NewHTTPLocator(cfg.Device.GeoEndpoint),
		SoundPath:      cfg.Device.SoundPath,
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
