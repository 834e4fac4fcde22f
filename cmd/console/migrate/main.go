package main

import (
	"context"
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/bridge-console/pkg/config"
	"github.com/chainsafe/bridge-console/pkg/migrations/consoledb"
	"github.com/chainsafe/bridge-console/pkg/pgutil"
	mghelper "github.com/chainsafe/bridge-console/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	ctx := context.Background()
	db, err := pgutil.ConnectDB(ctx, &cfg.Database, nil)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for bridge console database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, consoledb.Migrations)
	if err := mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf(err.Error())
	}
}
