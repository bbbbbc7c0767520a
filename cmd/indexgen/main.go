package main

import (
	"flag"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/gostonefire/cavehash"
)

func main() {
	storeFile := flag.String("store", "Dataset2.bin", "store file to index")
	indexFile := flag.String("index", "cavehash.idx", "output index file")
	capacity := flag.Int64("capacity", 0, "bucket capacity, 0 selects the default")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	store, err := cavehash.OpenStore(*storeFile)
	if err != nil {
		logger.Fatal("open store", zap.Error(err))
	}
	defer store.Close()

	builder, err := cavehash.NewIndexBuilder(store, cavehash.IndexBuilderConf{
		IndexFileName:  *indexFile,
		BucketCapacity: *capacity,
		Logger:         logger,
	})
	if err != nil {
		logger.Fatal("create index builder", zap.Error(err))
	}
	defer builder.Close()

	if err = builder.Build(); err != nil {
		logger.Fatal("build index", zap.Error(err))
	}

	stats, err := builder.Stats()
	if err != nil {
		logger.Fatal("compute bucket statistics", zap.Error(err))
	}

	fmt.Printf("Number of buckets: %d\n", stats.NumBuckets)
	fmt.Printf("Lowest bucket occupancy: %d\n", stats.Lowest)
	fmt.Printf("Highest bucket occupancy: %d\n", stats.Highest)
	fmt.Printf("Mean bucket occupancy: %.2f\n", stats.Mean)
	fmt.Printf("Median bucket occupancy: %.2f\n", stats.Median)
}
