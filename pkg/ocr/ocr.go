package ocr

import (
	"fmt"
	"image"
	"log"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Verbose enables per-pass logging.
var Verbose = false

func logV(format string, args ...interface{}) {
	if Verbose {
		log.Printf(format, args...)
	}
}

// Languages used for the mixed-script passes. Nutrition tables carry both
// hangul keywords and latin units on the same line.
var Languages = []string{"kor", "eng"}

// psmModes tried per variant. Tables confuse the auto segmenter, so the
// single-block and single-column modes usually carry the useful lines;
// sparse mode picks up text outside the table frame.
var psmModes = []gosseract.PageSegMode{
	gosseract.PSM_SINGLE_BLOCK,
	gosseract.PSM_SINGLE_COLUMN,
	gosseract.PSM_AUTO,
	gosseract.PSM_SPARSE_TEXT,
}

type variant struct {
	name string
	img  image.Image
}

// buildVariants prepares the preprocessed renditions of the label photo that
// the recognition passes run over. Each targets a different failure mode:
// low contrast, uneven lighting, dark backgrounds, tiny print.
func buildVariants(path string) ([]variant, error) {
	orig, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	gray := imaging.Grayscale(upscale(orig, 1800))

	enhanced := imaging.Sharpen(imaging.AdjustContrast(gray, 25), 0.7)

	tableGray := imaging.Grayscale(upscale(orig, 1500))
	table := binarize(imaging.AdjustContrast(tableGray, 30), otsuLevel(tableGray))

	inverted := imaging.AdjustContrast(imaging.Invert(gray), 15)

	adaptive := dilate(adaptiveThreshold(gray, 11, 2), 1)

	large := imaging.AdjustContrast(imaging.Grayscale(upscale(orig, 2500)), 40)

	return []variant{
		{"original", orig},
		{"enhanced", enhanced},
		{"table", table},
		{"inverted", inverted},
		{"adaptive", adaptive},
		{"large", large},
		{"equalized", equalize(gray)},
	}, nil
}

// RecognizeLabel runs Tesseract over every preprocessed variant of the image
// with several page segmentation modes, then merges the deduplicated lines of
// all passes into one text block for the extraction engine. A line that any
// single pass read correctly survives into the merge, so downstream keyword
// matching gets the best reading of each row of the table.
func RecognizeLabel(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("label image: %w", err)
	}
	variants, err := buildVariants(path)
	if err != nil {
		return "", err
	}

	var lines []string
	for _, v := range variants {
		tmp, err := saveTemp(v.img)
		if err != nil {
			logV("OCR variant %s: save failed: %v", v.name, err)
			continue
		}
		for _, mode := range psmModes {
			text := runPass(tmp, Languages, mode)
			logV("OCR %s psm=%d chars=%d", v.name, mode, len(text))
			lines = append(lines, strings.Split(text, "\n")...)
		}
		// hangul-only pass; mixed models sometimes misread 글 as latin
		lines = append(lines, strings.Split(runPass(tmp, []string{"kor"}, gosseract.PSM_SINGLE_BLOCK), "\n")...)
		_ = os.Remove(tmp)
	}

	merged := mergeLines(lines)
	if merged == "" {
		return "", ErrNoText
	}
	log.Printf("OCR %s variants=%d merged=%d chars snippet=%q", path, len(variants), len(merged), snippet(merged, 120))
	return merged, nil
}

func runPass(imgPath string, langs []string, mode gosseract.PageSegMode) string {
	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(langs...); err != nil {
		logV("OCR set language %v: %v", langs, err)
		return ""
	}
	_ = client.SetPageSegMode(mode)
	client.SetImage(imgPath)
	text, err := client.Text()
	if err != nil {
		logV("OCR pass psm=%d: %v", mode, err)
		return ""
	}
	return text
}

func saveTemp(img image.Image) (string, error) {
	f, err := os.CreateTemp("", "label-ocr-*.png")
	if err != nil {
		return "", err
	}
	name := f.Name()
	_ = f.Close()
	if err := imaging.Save(img, name); err != nil {
		_ = os.Remove(name)
		return "", err
	}
	return name, nil
}
