// Applies the SQL files under migrations/ in name order.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"spacerental/config"
	"spacerental/util/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		slog.Error("glob migrations", "err", err)
		os.Exit(1)
	}
	sort.Strings(files)

	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			slog.Error("read migration", "file", f, "err", err)
			os.Exit(1)
		}
		if _, err := db.ExecContext(ctx, string(b)); err != nil {
			slog.Error("apply migration", "file", f, "err", err)
			os.Exit(1)
		}
		slog.Info("applied", "file", f)
	}
}
