// Command import-phrases loads reference phrases from a YAML file into the
// database in a single transaction. It is intended for content tooling, not
// for end users.
//
// Flags:
//
//	--file     path to the phrase YAML file (required)
//	--dry-run  parse and validate without writing to DB
//	--config   path to the service configuration file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/myenglish-dictation/internal/app"
	"github.com/heartmarshall/myenglish-dictation/internal/config"
)

func main() {
	fileFlag := flag.String("file", "", "path to the phrase YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	configPath := flag.String("config", "", "path to the YAML configuration file")
	flag.Parse()

	if *fileFlag == "" {
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	n, err := app.ImportPhrases(ctx, cfg, logger, *fileFlag, *dryRunFlag)
	if err != nil {
		logger.Error("import failed", slog.String("file", *fileFlag), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("import completed", slog.String("file", *fileFlag), slog.Int("phrases", n))
}
