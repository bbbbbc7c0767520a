package main

import (
	"flag"
	"log"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/gostonefire/cavehash"
	"github.com/gostonefire/cavehash/ingest"
)

func main() {
	csvFile := flag.String("csv", "Dataset2.csv", "input CSV dataset file")
	storeFile := flag.String("store", "", "output store file, defaults to the CSV name with a .bin extension")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	out := *storeFile
	if out == "" {
		out = strings.TrimSuffix(*csvFile, filepath.Ext(*csvFile)) + ".bin"
	}

	records, widths, err := ingest.ParseFile(*csvFile)
	if err != nil {
		logger.Fatal("parse CSV dataset", zap.Error(err))
	}

	writer, err := cavehash.NewStoreWriter(out, widths)
	if err != nil {
		logger.Fatal("create store", zap.Error(err))
	}

	for _, r := range records {
		if err = writer.Write(r); err != nil {
			logger.Fatal("write record", zap.Error(err))
		}
	}

	if err = writer.Close(); err != nil {
		logger.Fatal("close store", zap.Error(err))
	}

	logger.Info("store written",
		zap.String("file", out),
		zap.Int("records", len(records)),
		zap.Int64("recordSize", widths.RecordSize()),
	)
}
