package main

import (
	"context"
	"flag"
	"os"

	"github.com/WillBladon-Whittam/Parana-Database/internal/basket"
	"github.com/WillBladon-Whittam/Parana-Database/internal/catalog"
	"github.com/WillBladon-Whittam/Parana-Database/internal/checkout"
	"github.com/WillBladon-Whittam/Parana-Database/internal/orders"
	"github.com/WillBladon-Whittam/Parana-Database/internal/session"
	"github.com/WillBladon-Whittam/Parana-Database/internal/shoppers"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/config"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/db"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/logger"
	"github.com/WillBladon-Whittam/Parana-Database/pkg/migrate"
	"github.com/joho/godotenv"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "shopper"})

	dotenvErr := godotenv.Load()

	shopperID := flag.Int64("shopper", 0, "shopper ID (prompted when omitted)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "shopper",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	// Prod gets its environment from the deployment, so a missing .env file
	// is only worth mentioning elsewhere.
	if dotenvErr != nil && !cfg.App.IsProd() {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}

	// Close explicitly so every exit path releases the connection.
	runErr := run(context.Background(), cfg, logg, dbClient, *shopperID)
	if closeErr := dbClient.Close(); closeErr != nil {
		logg.Error(context.Background(), "error closing database", closeErr)
	}
	if runErr != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger, dbClient *db.Client, shopperID int64) error {
	if err := dbClient.Ping(ctx); err != nil {
		logg.Error(ctx, "database not reachable", err)
		return err
	}

	if err := migrate.MaybeRun(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run migrations", err)
		return err
	}

	basketService, err := basket.NewService(basket.NewRepository(dbClient.DB()), dbClient)
	if err != nil {
		logg.Error(ctx, "failed to create basket service", err)
		return err
	}

	checkoutService, err := checkout.NewService(checkout.NewRepository(dbClient.DB()), dbClient)
	if err != nil {
		logg.Error(ctx, "failed to create checkout service", err)
		return err
	}

	orderService, err := orders.NewService(orders.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(ctx, "failed to create orders service", err)
		return err
	}

	controller, err := session.NewController(
		shoppers.NewRepository(dbClient.DB()),
		catalog.NewRepository(dbClient.DB()),
		basketService,
		checkoutService,
		orderService,
		logg,
	)
	if err != nil {
		logg.Error(ctx, "failed to create session controller", err)
		return err
	}

	if shopperID > 0 {
		return controller.Run(ctx, shopperID, os.Stdin, os.Stdout)
	}
	return controller.RunInteractive(ctx, os.Stdin, os.Stdout)
}
