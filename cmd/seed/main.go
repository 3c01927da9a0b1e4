// Command seed creates the first superadmin of an empty user directory.
//
//	SEED_NAME="Jane Admin" SEED_EMAIL=jane@example.com SEED_PASSWORD=... go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"procurement/cmd"
	"procurement/internal/adapters/out/postgres"
	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/labstack/gommon/log"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	gormDB, err := postgres.Open(config.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err = postgres.Migrate(gormDB); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	app := cmd.NewCompositionRoot(config, gormDB, logger)

	command, err := commands.NewBootstrapSuperadminCommand(
		kernel.NewUUID(),
		os.Getenv("SEED_NAME"),
		os.Getenv("SEED_EMAIL"),
		os.Getenv("SEED_PASSWORD"),
	)
	if err != nil {
		log.Fatalf("invalid seed input: %v", err)
	}

	user, err := app.CreateBootstrapSuperadminCommandHandler().Handle(context.Background(), command)
	if errors.Is(err, errs.ErrGuardFailed) {
		logger.Info("Users already exist, nothing to seed")
		return
	}
	if err != nil {
		log.Fatalf("seed superadmin: %v", err)
	}

	logger.Info("Superadmin created", "id", user.ID().String(), "email", user.Email())
}
