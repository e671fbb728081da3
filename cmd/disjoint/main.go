package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"statewords/internal/pipeline"
)

func main() {
	statesFile := flag.String("states", "states.txt", "File containing state names, one per line")
	wordsFile := flag.String("words", "words.txt", "File containing words, one per line")
	workers := flag.Int("workers", pipeline.DefaultWorkers, "Worker pool size for the parallel stages")
	reportFile := flag.String("report", "", "Optional path for a JSON performance report")
	flag.Parse()

	// Track start time for elapsed time reporting
	programStart := time.Now()

	// Progress callback that shows elapsed time
	progress := func(msg string) {
		elapsed := time.Since(programStart)
		fmt.Fprintf(os.Stderr, "[%s] %s\n", formatElapsed(elapsed), msg)
	}

	result, err := pipeline.Run(*statesFile, *wordsFile, pipeline.Options{
		Workers:  *workers,
		Progress: progress,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// All pairs are emitted in one pass, in merged order.
	for _, pair := range result.Pairs {
		fmt.Printf("%s => %s\n", pair.State.Original, pair.Word.Original)
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, summaryTable(result))

	if *reportFile != "" {
		if err := result.Report.Write(*reportFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		progress(fmt.Sprintf("Performance report written to %s", *reportFile))
	}
}

// formatElapsed formats a duration into a human-readable elapsed time string
func formatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf("%dm%02ds", minutes, seconds)
	}
	return fmt.Sprintf("%ds", seconds)
}
