package migrate

import (
	"context"
	"fmt"

	"github.com/WillBladon-Whittam/Parana-Database/pkg/config"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/db"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/logger"
)

// MaybeRun applies pending migrations on session start when the app runs
// in dev mode and the feature flag is enabled. With the default sqlite
// store this is what creates the schema on first run; prod deployments
// migrate explicitly through cmd/migrate.
func MaybeRun(ctx context.Context, cfg *config.Config, logg *logger.Logger, client *db.Client) error {
	if !cfg.App.IsDev() || !cfg.FeatureFlags.AutoMigrate {
		return nil
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	meta := map[string]any{"env": cfg.App.Env, "dir": DefaultDir}
	ctx = logg.WithFields(ctx, meta)
	logg.Debug(ctx, "running goose migrations (auto-run)")

	if err := Run(ctx, sqlDB, cfg.DB.Driver, DefaultDir, "up"); err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	logg.Debug(ctx, "goose migrations completed")
	return nil
}
