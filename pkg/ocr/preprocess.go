package ocr

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

func luma(c color.Color) int {
	r, g, b, _ := c.RGBA()
	return int((r + g + b) / 3 >> 8)
}

// otsuLevel picks a global threshold by maximizing between-class variance of
// the grayscale histogram. Label photos vary a lot in exposure, so a fixed
// cutoff misses either dark tables or washed-out print.
func otsuLevel(img image.Image) uint8 {
	var hist [256]int
	b := img.Bounds()
	total := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[luma(img.At(x, y))]++
			total++
		}
	}
	if total == 0 {
		return 128
	}
	sum := 0.0
	for i, n := range hist {
		sum += float64(i) * float64(n)
	}
	var sumB, wB float64
	best, bestVar := 128, 0.0
	for i := 0; i < 256; i++ {
		wB += float64(hist[i])
		if wB == 0 {
			continue
		}
		wF := float64(total) - wB
		if wF == 0 {
			break
		}
		sumB += float64(i) * float64(hist[i])
		mB := sumB / wB
		mF := (sum - sumB) / wF
		v := wB * wF * (mB - mF) * (mB - mF)
		if v > bestVar {
			bestVar = v
			best = i
		}
	}
	return uint8(best)
}

// binarize applies a global threshold, black text on white.
func binarize(img image.Image, threshold uint8) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			var v uint8 = 255
			if luma(img.At(x, y)) <= int(threshold) {
				v = 0
			}
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}

// adaptiveThreshold binarizes against the local mean over a square window,
// computed with a summed-area table. Handles labels with uneven lighting
// where one global threshold loses half the table.
func adaptiveThreshold(img image.Image, window int, bias int) *image.NRGBA {
	if window < 3 {
		window = 3
	}
	if window%2 == 0 {
		window++
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
	half := window / 2
	ints := make([]int, w*h)
	for y := 0; y < h; y++ {
		rowSum := 0
		for x := 0; x < w; x++ {
			rowSum += luma(img.At(x, y))
			idx := y*w + x
			if y == 0 {
				ints[idx] = rowSum
			} else {
				ints[idx] = ints[(y-1)*w+x] + rowSum
			}
		}
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := x-half, y-half
			x1, y1 := x+half, y+half
			if x0 < 0 {
				x0 = 0
			}
			if y0 < 0 {
				y0 = 0
			}
			if x1 >= w {
				x1 = w - 1
			}
			if y1 >= h {
				y1 = h - 1
			}
			A := ints[y0*w+x0]
			B := ints[y0*w+x1]
			C := ints[y1*w+x0]
			D := ints[y1*w+x1]
			mean := (D - B - C + A) / ((x1 - x0 + 1) * (y1 - y0 + 1))
			th := mean - bias
			if th < 0 {
				th = 0
			}
			c := color.NRGBA{255, 255, 255, 255}
			if luma(img.At(x, y)) < th {
				c = color.NRGBA{0, 0, 0, 255}
			}
			out.Set(x, y, c)
		}
	}
	return out
}

// dilate grows black regions by a 4-neighborhood, radius times. Reconnects
// hangul strokes that thresholding broke apart.
func dilate(img *image.NRGBA, radius int) *image.NRGBA {
	if radius <= 0 {
		return img
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	cur := img
	for r := 0; r < radius; r++ {
		next := imaging.New(w, h, color.NRGBA{255, 255, 255, 255})
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				black := false
				for _, d := range [][2]int{{0, 0}, {1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
					x2 := x + d[0]
					y2 := y + d[1]
					if x2 < 0 || y2 < 0 || x2 >= w || y2 >= h {
						continue
					}
					rv, gv, bv, _ := cur.At(x2, y2).RGBA()
					if rv+gv+bv == 0 {
						black = true
						break
					}
				}
				if black {
					next.Set(x, y, color.NRGBA{0, 0, 0, 255})
				}
			}
		}
		cur = next
	}
	return cur
}

// equalize stretches the grayscale histogram over the full range. Evens out
// brightness across photos shot under store lighting.
func equalize(img image.Image) *image.NRGBA {
	var hist [256]int
	b := img.Bounds()
	total := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			hist[luma(img.At(x, y))]++
			total++
		}
	}
	var lut [256]uint8
	if total > 0 {
		cum := 0
		for i := 0; i < 256; i++ {
			cum += hist[i]
			lut[i] = uint8(cum * 255 / total)
		}
	}
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := lut[luma(img.At(x, y))]
			out.Set(x, y, color.NRGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return out
}

// upscale widens the image to at least target pixels, preserving aspect.
// Tesseract's hangul models need roughly 30px glyph height.
func upscale(img image.Image, target int) image.Image {
	if img.Bounds().Dx() >= target {
		return img
	}
	return imaging.Resize(img, target, 0, imaging.Lanczos)
}
