package iconset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/mkoval/iconset/utils"
	ico "github.com/sergeymakinen/go-ico"
)

// The supported output formats of the per-size files.
const (
	FormatPNG = "png"
	FormatJPG = "jpg"
	FormatBMP = "bmp"
)

// fileNamePattern is the naming scheme shared by all generation modes.
const fileNamePattern = "icon_%d.%s"

// icoFileName is the name of the optionally bundled Windows icon.
const icoFileName = "icon.ico"

// DefaultLetter is the glyph stamped on rendered icons when none is configured.
const DefaultLetter = 'A'

// The notices printed once the whole size list has been written.
// They are deliberately skipped when a write fails partway through.
const (
	completionNotice  = "Icon generation complete!"
	placeholderNotice = "Note: these are placeholder icons. Replace them with real artwork before release."
)

// Generator options
type Generator struct {
	// Sizes is the ordered list of icon dimensions to produce.
	// DefaultSizes is used when the list is empty.
	Sizes []int
	// OutputDir is the directory the files are written into.
	// It is created recursively when missing.
	OutputDir string
	// Source is an optional image file path or URL. When set, the source
	// image is resampled to each size instead of writing the placeholder.
	Source string
	// Render draws a real per-size glyph badge instead of the placeholder.
	Render bool
	// Letter is the glyph stamped on rendered icons. Defaults to DefaultLetter.
	Letter rune
	// Format selects the per-size file encoding: png (default), jpg or bmp.
	// Placeholder mode accepts only png since the payload is a PNG.
	Format string
	// BundleICO additionally writes the generated images into a single icon.ico.
	BundleICO bool
	// Log receives the per-file progress notices. Defaults to os.Stdout.
	Log io.Writer
}

// Generate writes one icon file per configured size into the output directory,
// creating the directory first in case it is missing. The files are produced
// strictly in size list order and existing files are overwritten without
// confirmation. A failed write aborts the remaining sizes and leaves the
// already written files in place.
func (g *Generator) Generate() error {
	sizes := g.sizes()
	for _, size := range sizes {
		if size <= 0 {
			return fmt.Errorf("icon size must be a positive integer, got %d", size)
		}
	}
	if g.OutputDir == "" {
		return errors.New("no output directory provided")
	}
	if g.Source != "" && g.Render {
		return errors.New("the source image and the render mode are mutually exclusive")
	}

	if err := os.MkdirAll(g.OutputDir, 0755); err != nil {
		return fmt.Errorf("unable to create the output directory: %w", err)
	}

	switch {
	case g.Source != "":
		src, err := g.loadSource()
		if err != nil {
			return err
		}
		return g.generateImages(sizes, func(size int) (*image.NRGBA, error) {
			return imaging.Resize(src, size, size, imaging.Lanczos), nil
		})
	case g.Render:
		letter := g.Letter
		if letter == 0 {
			letter = DefaultLetter
		}
		return g.generateImages(sizes, func(size int) (*image.NRGBA, error) {
			return drawIcon(size, letter), nil
		})
	default:
		return g.generatePlaceholders(sizes)
	}
}

// generatePlaceholders copies the decoded placeholder payload into one file
// per size. The file content is byte-identical across all sizes.
func (g *Generator) generatePlaceholders(sizes []int) error {
	if g.Format != "" && g.Format != FormatPNG {
		return errors.New("the placeholder payload is a PNG; combine the format option with a source image or the render mode")
	}

	data, err := PlaceholderBytes()
	if err != nil {
		return fmt.Errorf("unable to decode the placeholder payload: %w", err)
	}

	for _, size := range sizes {
		name := fmt.Sprintf(fileNamePattern, size, FormatPNG)
		if err := os.WriteFile(filepath.Join(g.OutputDir, name), data, 0644); err != nil {
			return fmt.Errorf("unable to write %s: %w", name, err)
		}
		g.logf("Generated %s\n", name)
	}

	if g.BundleICO {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("unable to decode the placeholder payload: %w", err)
		}
		if err := g.writeICO([]image.Image{img}); err != nil {
			return err
		}
	}

	g.logf("%s\n", completionNotice)
	g.logf("%s\n", placeholderNotice)

	return nil
}

// generateImages encodes one rendered image per size into the output directory.
func (g *Generator) generateImages(sizes []int, render func(size int) (*image.NRGBA, error)) error {
	ext, err := g.ext()
	if err != nil {
		return err
	}

	var bundle []image.Image
	for _, size := range sizes {
		img, err := render(size)
		if err != nil {
			return err
		}

		name := fmt.Sprintf(fileNamePattern, size, ext)
		f, err := os.Create(filepath.Join(g.OutputDir, name))
		if err != nil {
			return fmt.Errorf("unable to create the destination file: %w", err)
		}
		if err := encodeImg(f, img, ext); err != nil {
			f.Close()
			return fmt.Errorf("unable to encode %s: %w", name, err)
		}
		if err := f.Close(); err != nil {
			return err
		}

		g.logf("Generated %s\n", name)
		if g.BundleICO {
			bundle = append(bundle, img)
		}
	}

	if g.BundleICO {
		if err := g.writeICO(bundle); err != nil {
			return err
		}
	}

	g.logf("%s\n", completionNotice)

	return nil
}

// writeICO bundles the generated images into a single multi-entry ICO file.
func (g *Generator) writeICO(images []image.Image) error {
	f, err := os.Create(filepath.Join(g.OutputDir, icoFileName))
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer f.Close()

	if err := ico.EncodeAll(f, images); err != nil {
		return fmt.Errorf("unable to encode %s: %w", icoFileName, err)
	}
	g.logf("Generated %s\n", icoFileName)

	return nil
}

// loadSource reads and decodes the source image, be it a local file or a URL.
func (g *Generator) loadSource() (image.Image, error) {
	if utils.IsValidUrl(g.Source) {
		tmp, err := utils.DownloadImage(g.Source)
		if tmp != nil {
			defer os.Remove(tmp.Name())
			defer tmp.Close()
		}
		if err != nil {
			return nil, err
		}
		return decodeImg(tmp.Name())
	}
	return decodeImg(g.Source)
}

// ext maps the configured format to the file extension used by the image modes.
func (g *Generator) ext() (string, error) {
	switch g.Format {
	case "", FormatPNG:
		return FormatPNG, nil
	case FormatJPG, "jpeg":
		return FormatJPG, nil
	case FormatBMP:
		return FormatBMP, nil
	default:
		return "", fmt.Errorf("%v file type not supported", g.Format)
	}
}

// sizes returns the configured size list, falling back to DefaultSizes.
func (g *Generator) sizes() []int {
	if len(g.Sizes) == 0 {
		return DefaultSizes
	}
	return g.Sizes
}

// logf writes a progress notice to the configured log writer.
func (g *Generator) logf(format string, args ...any) {
	w := g.Log
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprintf(w, format, args...)
}
