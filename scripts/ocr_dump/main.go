package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"

	"labelscan/pkg/label"
	"labelscan/pkg/ocr"
)

func main() {
	path := flag.String("path", "", "image path")
	verbose := flag.Bool("verbose", false, "per-pass OCR logging")
	flag.Parse()
	if *path == "" {
		log.Fatal("--path is required")
	}
	ocr.Verbose = *verbose

	text, err := ocr.RecognizeLabel(*path)
	if err != nil {
		log.Fatalf("ocr error: %v", err)
	}
	fmt.Println("---- merged OCR text ----")
	fmt.Println(text)
	fmt.Println("---- extracted record ----")
	rec := label.Analyze(text)
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		log.Fatalf("marshal: %v", err)
	}
	fmt.Println(string(out))
}
