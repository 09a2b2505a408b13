package ocr

import (
	"image"
	"image/color"
	"testing"
)

func TestMergeLines(t *testing.T) {
	got := mergeLines([]string{
		"  열량 192kcal ",
		"",
		"나트륨 160mg",
		"열량 192kcal",
		"   ",
		"나트 륨 1 60mg",
	})
	want := "열량 192kcal\n나트륨 160mg\n나트 륨 1 60mg"
	if got != want {
		t.Errorf("mergeLines = %q, want %q", got, want)
	}
}

func TestMergeLinesEmpty(t *testing.T) {
	if got := mergeLines(nil); got != "" {
		t.Errorf("mergeLines(nil) = %q", got)
	}
	if got := mergeLines([]string{"", "  ", "\t"}); got != "" {
		t.Errorf("mergeLines(blanks) = %q", got)
	}
}

func TestSnippet(t *testing.T) {
	if got := snippet("short", 10); got != "short" {
		t.Errorf("snippet = %q", got)
	}
	if got := snippet("0123456789abcdef", 10); got != "0123456789…" {
		t.Errorf("snippet = %q", got)
	}
}

func twoTone(dark, light uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v := light
			if x < 5 {
				v = dark
			}
			img.Set(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func TestOtsuSeparatesTwoTones(t *testing.T) {
	img := twoTone(40, 200)
	th := otsuLevel(img)
	if th < 40 || th >= 200 {
		t.Errorf("otsuLevel = %d, want between the two tones", th)
	}
	bin := binarize(img, th)
	r0, _, _, _ := bin.At(0, 0).RGBA()
	r9, _, _, _ := bin.At(9, 0).RGBA()
	if r0 != 0 {
		t.Error("dark side should binarize to black")
	}
	if r9>>8 != 255 {
		t.Error("light side should binarize to white")
	}
}

func TestAdaptiveThresholdKeepsLocalContrast(t *testing.T) {
	// dark dot on a mid-gray field should come out black
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			img.Set(x, y, color.NRGBA{140, 140, 140, 255})
		}
	}
	img.Set(10, 10, color.NRGBA{10, 10, 10, 255})
	out := adaptiveThreshold(img, 5, 4)
	r, _, _, _ := out.At(10, 10).RGBA()
	if r != 0 {
		t.Error("dark pixel lost by adaptive threshold")
	}
}
