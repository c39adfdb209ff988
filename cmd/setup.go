package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/playq/internal/library"
	"github.com/desertthunder/playq/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupDatabase writes a config file from the template when none exists, initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	if _, err := os.Stat(configPath); err != nil {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err := shared.LoadConfig(configPath); err == nil {
				r.config = config
				r.configPath = configPath
			} else {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
			}
		}
	}

	r.logger.Info("initializing database", "driver", r.config.Database.Driver, "path", r.config.Database.Path)

	tm, err := r.manager(ctx)
	if err != nil {
		return err
	}
	version, err := shared.CurrentVersion(ctx, r.db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if r.config.Library.Seed {
		if _, err := library.Seed(ctx, tm, r.logger); err != nil {
			return err
		}
	}

	r.logger.Infof("setup complete for database: %v", r.config.Database.Path)
	return r.writePlain("✓ Database ready at %s (schema version %d)\n", r.config.Database.Path, version)
}
