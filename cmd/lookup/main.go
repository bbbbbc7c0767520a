package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/gostonefire/cavehash"
	"github.com/gostonefire/cavehash/record"
)

// stopSentinel - Entered by the user to end the query session
const stopSentinel = "-1000"

func main() {
	storeFile := flag.String("store", "Dataset2.bin", "store file to query")
	indexFile := flag.String("index", "cavehash.idx", "index file built over the store")
	capacity := flag.Int64("capacity", 0, "bucket capacity the index was built with, 0 selects the default")
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

	reader, err := cavehash.OpenIndex(*indexFile, store, cavehash.IndexReaderConf{BucketCapacity: *capacity})
	if err != nil {
		logger.Fatal("open index", zap.Error(err))
	}
	defer reader.Close()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("Enter a Data.entry value or %s to stop searching: ", stopSentinel)

		if !scanner.Scan() {
			break
		}

		input := scanner.Text()
		if input == stopSentinel {
			break
		}

		r, err := reader.Lookup(input)
		if errors.Is(err, cavehash.NoRecordFound{}) {
			fmt.Printf("The target value %s was not found.\n", input)
			continue
		}
		if err != nil {
			logger.Fatal("lookup", zap.Error(err))
		}

		fmt.Println(formatMatch(r, store.Widths()))
	}
}

// formatMatch - Renders a matched record with each field padded back to its
// stored width, so the output lines up regardless of field length.
func formatMatch(r record.Record, widths record.FieldWidths) string {
	return fmt.Sprintf("[%-*s][%-*s][%-*s]", widths.SeqID, r.SeqID, widths.Country, r.Country, widths.Cave, r.Cave)
}
