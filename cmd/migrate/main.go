package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/kelseyhightower/envconfig"
)

// Applies migrations/ with the atlas CLI. Only the DB_* variables are read.
func main() {
	dir := flag.String("dir", "file://migrations", "migration directory URL")
	atlasBin := flag.String("atlas", "atlas", "path to the atlas binary")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall timeout")
	flag.Parse()

	if err := run(*dir, *atlasBin, *timeout); err != nil {
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

func run(dir, atlasBin string, timeout time.Duration) error {
	var dbCfg config.DBConfig
	if err := envconfig.Process("", &dbCfg); err != nil {
		return errs.Wrap(err, "load database config")
	}

	client, err := atlasexec.NewClient(".", atlasBin)
	if err != nil {
		return errs.Wrap(err, "initialize atlas client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: dir,
	})
	if err != nil {
		return errs.Wrap(err, "apply migrations")
	}

	slog.Info("Migrations applied", "applied", len(res.Applied), "current", res.Current, "target", res.Target)
	return nil
}
