// Command recategorize re-runs the classifier over every deal in the saved
// collection. Run it after the rule table changes so older entries pick up
// the new categories.
package main

import (
	"log/slog"
	"os"

	"dealsync/internal/config"
	"dealsync/internal/scheduler"
	"dealsync/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	coll, err := store.Load(cfg.DataFile)
	if err != nil {
		log.Error("load collection", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}
	if len(coll.Deals) == 0 {
		log.Info("collection is empty, nothing to recategorize", "path", cfg.DataFile)
		return
	}

	changed := scheduler.Reclassify(coll.Deals)

	if err := store.Save(cfg.DataFile, coll.Deals); err != nil {
		log.Error("save collection", "path", cfg.DataFile, "error", err)
		os.Exit(1)
	}

	log.Info("recategorized collection", "deals", len(coll.Deals), "changed", changed)
}
