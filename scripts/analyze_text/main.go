package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"labelscan/pkg/label"
)

// Debugging aid for tuning the keyword/typo tables: feed label text straight
// through the extraction engine without OCR.
func main() {
	file := flag.String("file", "", "text file to analyze (default stdin)")
	secondary := flag.String("secondary", "", "optional secondary-language text file")
	debug := flag.Bool("debug", false, "log sanitizer repairs and discards")
	flag.Parse()

	label.Debug = *debug

	text, err := readInput(*file)
	if err != nil {
		log.Fatalf("read input: %v", err)
	}
	secondaryText := ""
	if *secondary != "" {
		secondaryText, err = readInput(*secondary)
		if err != nil {
			log.Fatalf("read secondary: %v", err)
		}
	}

	rec := label.AnalyzeBilingual(text, secondaryText)
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(out))
}

func readInput(path string) (string, error) {
	if path == "" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}
