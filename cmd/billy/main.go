package main

import (
	"context"
	"fmt"
	"os"

	"billy-pet/internal/console"
	"billy-pet/internal/domain/pets"
	"billy-pet/internal/platform/config"
	"billy-pet/internal/platform/logger"
	"billy-pet/internal/platform/random"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Out:    os.Stderr,
	})

	pet, err := pets.New(cfg.PetName)
	if err != nil {
		return fmt.Errorf("create pet: %w", err)
	}

	c := console.New(console.Options{
		In:     os.Stdin,
		Out:    os.Stdout,
		Rand:   random.New(cfg.Seed),
		Logger: log,
	})

	if _, err := c.Run(ctx, pet); err != nil {
		return fmt.Errorf("run session: %w", err)
	}
	return nil
}
