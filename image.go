package iconset

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/mkoval/iconset/utils"
	"golang.org/x/image/bmp"
)

// decodeImg decodes an image file to type image.Image
func decodeImg(src string) (image.Image, error) {
	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the source file: %v", err)
	}
	defer file.Close()

	ctype, err := utils.DetectContentType(file.Name())
	if err != nil {
		return nil, err
	}

	if !strings.Contains(ctype, "image") {
		return nil, fmt.Errorf("the source should be an image file")
	}

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the source file: %v", err)
	}

	return img, nil
}

// encodeImg encodes an image to a destination of type io.Writer
// using the encoder belonging to the requested format.
func encodeImg(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatJPG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("%v file type not supported", format)
	}
}
