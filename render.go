package iconset

import (
	"image"
	"image/color"

	"github.com/mkoval/iconset/utils"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// badgeColor is the fill color of the rendered glyph badge.
var badgeColor = color.NRGBA{R: 0x2e, G: 0x8b, B: 0x57, A: 0xff}

// ssFactor is the supersampling factor used to keep the disc edge smooth
// after downscaling.
const ssFactor = 4

// drawIcon renders a size×size badge icon: a filled disc on a transparent
// background with the letter stamped in its center.
func drawIcon(size int, letter rune) *image.NRGBA {
	big := image.NewNRGBA(image.Rect(0, 0, size*ssFactor, size*ssFactor))
	fillDisc(big, badgeColor)

	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), big, big.Bounds(), xdraw.Over, nil)

	stampLetter(dst, letter)

	return dst
}

// fillDisc fills the largest circle fitting into the image bounds.
func fillDisc(img *image.NRGBA, c color.NRGBA) {
	b := img.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	r := utils.Min(cx, cy)

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r*r {
				img.SetNRGBA(x, y, c)
			}
		}
	}
}

// stampLetter draws the letter at its native glyph resolution, then rescales
// it onto the center of the destination image at roughly half its height.
func stampLetter(dst *image.NRGBA, letter rune) {
	face := basicfont.Face7x13
	glyph := image.NewNRGBA(image.Rect(0, 0, face.Advance, face.Ascent+face.Descent))

	d := &font.Drawer{
		Dst:  glyph,
		Src:  image.NewUniform(color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(string(letter))

	gh := dst.Bounds().Dy() / 2
	gw := gh * face.Advance / (face.Ascent + face.Descent)
	if gh < 1 || gw < 1 {
		return
	}

	x0 := (dst.Bounds().Dx() - gw) / 2
	y0 := (dst.Bounds().Dy() - gh) / 2
	rect := image.Rect(x0, y0, x0+gw, y0+gh)
	xdraw.CatmullRom.Scale(dst, rect, glyph, glyph.Bounds(), xdraw.Over, nil)
}
