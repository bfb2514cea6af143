package iconset

import (
	"testing"
)

func TestRender_ShouldMatchRequestedSize(t *testing.T) {
	for _, size := range []int{16, 48, 128, 256} {
		img := drawIcon(size, 'A')
		if img.Bounds().Dx() != size || img.Bounds().Dy() != size {
			t.Errorf("rendered icon expected to be %dx%d. Got %dx%d",
				size, size, img.Bounds().Dx(), img.Bounds().Dy())
		}
	}
}

func TestRender_ShouldKeepCornersTransparent(t *testing.T) {
	size := 64
	img := drawIcon(size, 'A')

	corners := [][2]int{{0, 0}, {size - 1, 0}, {0, size - 1}, {size - 1, size - 1}}
	for _, c := range corners {
		_, _, _, a := img.At(c[0], c[1]).RGBA()
		if a != 0 {
			t.Errorf("corner (%d,%d) expected to be transparent. Got alpha %v", c[0], c[1], a)
		}
	}
}

func TestRender_ShouldFillDiscCenter(t *testing.T) {
	size := 64
	img := drawIcon(size, ' ')

	// A space glyph leaves the disc fill visible at the center.
	r, g, b, a := img.At(size/2, size/4).RGBA()
	if a == 0 {
		t.Fatalf("the disc expected to be opaque inside its radius")
	}
	if r>>8 != uint32(badgeColor.R) || g>>8 != uint32(badgeColor.G) || b>>8 != uint32(badgeColor.B) {
		t.Errorf("the disc fill expected to match the badge color. Got #%02x%02x%02x",
			r>>8, g>>8, b>>8)
	}
}
