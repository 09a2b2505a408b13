package ocr

import "errors"

// ErrNoText is returned when every OCR pass over an image comes back empty.
var ErrNoText = errors.New("no text recognized")
