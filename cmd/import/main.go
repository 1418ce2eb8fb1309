// Command import replaces the deal collection with the contents of a
// spreadsheet CSV export. The next sync pass treats the imported deals as
// the baseline, so their curated categories and links are never overwritten
// by feed data.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"dealsync/internal/config"
	"dealsync/internal/sheet"
	"dealsync/internal/store"
)

func main() {
	output := flag.String("output", "", "output data file (default: DATA_FILE)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: import [-output path] <sheet-export.csv>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	dataFile := cfg.DataFile
	if *output != "" {
		dataFile = *output
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	deals, err := sheet.ImportFile(flag.Arg(0))
	if err != nil {
		log.Error("import sheet", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}
	if len(deals) == 0 {
		log.Error("no deals found in sheet export", "path", flag.Arg(0))
		os.Exit(1)
	}

	if err := store.Save(dataFile, deals); err != nil {
		log.Error("save collection", "path", dataFile, "error", err)
		os.Exit(1)
	}

	log.Info("imported sheet export", "deals", len(deals), "path", dataFile)
}
