package imaging

import (
	"image"
	"image/color"
	"testing"
)

func opaqueCount(img *image.NRGBA) int {
	b := img.Bounds()
	n := 0
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			if img.Pix[y*img.Stride+x*4+3] > 0 {
				n++
			}
		}
	}
	return n
}

func alphaAt(img *image.NRGBA, x, y int) uint8 {
	return img.Pix[y*img.Stride+x*4+3]
}

func TestErodeShrinksBlock(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for y := 1; y <= 8; y++ {
		for x := 1; x <= 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}

	out := Erode(img, 1)

	// The rim of the block loses its alpha, the 6x6 core survives.
	if alphaAt(out, 1, 1) != 0 {
		t.Error("rim pixel (1,1) should be eroded")
	}
	if alphaAt(out, 2, 2) == 0 {
		t.Error("core pixel (2,2) should survive")
	}
	if got := opaqueCount(out); got != 36 {
		t.Errorf("opaque count after erode = %d, want 36", got)
	}
	// Color channels survive even where alpha was cleared.
	i := 1*out.Stride + 1*4
	if out.Pix[i] != 200 || out.Pix[i+1] != 100 || out.Pix[i+2] != 50 {
		t.Error("erode must not touch RGB channels")
	}
	// Source untouched.
	if alphaAt(img, 1, 1) != 255 {
		t.Error("Erode modified its input")
	}
}

func TestErodeBorderCountsAsTransparent(t *testing.T) {
	img := newAlphaImage(5, 5, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	out := Erode(img, 1)
	if alphaAt(out, 0, 2) != 0 || alphaAt(out, 2, 0) != 0 {
		t.Error("border pixels should erode against the image edge")
	}
	if alphaAt(out, 2, 2) == 0 {
		t.Error("center should survive radius-1 erosion of a full image")
	}
}

func TestErodeZeroRadiusClones(t *testing.T) {
	img := newAlphaImage(4, 4, color.NRGBA{A: 128})
	out := Erode(img, 0)
	if out == img {
		t.Fatal("Erode must return a new raster")
	}
	for i := range img.Pix {
		if out.Pix[i] != img.Pix[i] {
			t.Fatalf("radius 0 clone differs at byte %d", i)
		}
	}
}

func TestFeatherInwardRamp(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 1))
	for x := 1; x < 10; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{A: 200})
	}

	out := FeatherInward(img, 4)

	tests := []struct {
		x    int
		want uint8
	}{
		{0, 0},   // transparent seed stays transparent
		{1, 50},  // 200 * 1/4
		{2, 100}, // 200 * 2/4
		{3, 150}, // 200 * 3/4
		{4, 200}, // at radius, original value
		{7, 200}, // beyond radius, untouched
	}
	for _, tt := range tests {
		if got := alphaAt(out, tt.x, 0); got != tt.want {
			t.Errorf("alpha at x=%d: got %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestFeatherInwardNoSeedsClones(t *testing.T) {
	img := newAlphaImage(6, 6, color.NRGBA{R: 9, A: 255})
	out := FeatherInward(img, 3)
	for i := range img.Pix {
		if out.Pix[i] != img.Pix[i] {
			t.Fatal("image with no transparent pixel must come back unchanged")
		}
	}
}

func TestBleedGrowsAndAttributesColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 7, 5))
	img.SetNRGBA(0, 2, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(6, 2, color.NRGBA{B: 255, A: 255})

	out := Bleed(img, 2, 0)

	// Each side of the canvas inherits its nearest source's color.
	li := 2*out.Stride + 1*4
	if out.Pix[li] != 255 || out.Pix[li+3] != 255 {
		t.Errorf("pixel (1,2) should be red fill, got RGBA %v", out.Pix[li:li+4])
	}
	ri := 2*out.Stride + 5*4
	if out.Pix[ri+2] != 255 || out.Pix[ri+3] != 255 {
		t.Errorf("pixel (5,2) should be blue fill, got RGBA %v", out.Pix[ri:ri+4])
	}
	// Sources pass through verbatim.
	si := 2 * out.Stride
	if out.Pix[si] != 255 || out.Pix[si+3] != 255 {
		t.Error("source pixel (0,2) should be copied unchanged")
	}
	// (0,0) is Chebyshev distance 2 from the red source, so it fills.
	if alphaAt(out, 0, 0) == 0 {
		t.Error("pixel (0,0) within radius should be filled")
	}
	// The middle column is distance 3 from both sources.
	if alphaAt(out, 3, 2) != 0 {
		t.Error("pixel (3,2) beyond radius of both sources should stay transparent")
	}
}

func TestBleedFeatherRamp(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 9, 9))
	img.SetNRGBA(4, 4, color.NRGBA{G: 255, A: 255})

	out := Bleed(img, 3, 2)

	tests := []struct {
		x, y int
		want uint8
	}{
		{5, 4, 255}, // d=1 <= radius-feather
		{6, 4, 127}, // d=2, ramp 255*(3-2)/2
		{7, 4, 0},   // d=3, ramp bottoms out
		{8, 4, 0},   // beyond radius
	}
	for _, tt := range tests {
		if got := alphaAt(out, tt.x, tt.y); got != tt.want {
			t.Errorf("alpha at (%d,%d): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestBleedNoSourcesOrZeroRadius(t *testing.T) {
	empty := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	if got := opaqueCount(Bleed(empty, 3, 0)); got != 0 {
		t.Errorf("bleed of empty image has %d opaque pixels, want 0", got)
	}
	src := newAlphaImage(4, 4, color.NRGBA{A: 255})
	if got := opaqueCount(Bleed(src, 0, 0)); got != 0 {
		t.Errorf("bleed with radius 0 has %d opaque pixels, want 0", got)
	}
}

func TestErodeThenBleedApproximatesOriginal(t *testing.T) {
	// A filled disk opened by erode+bleed at the same radius should come
	// back close to itself: the erosion ring is regrown, with only
	// boundary rounding artifacts left over.
	img := image.NewNRGBA(image.Rect(0, 0, 13, 13))
	for y := 0; y < 13; y++ {
		for x := 0; x < 13; x++ {
			dx, dy := x-6, y-6
			if dx*dx+dy*dy <= 16 {
				img.SetNRGBA(x, y, color.NRGBA{R: 80, A: 255})
			}
		}
	}
	before := opaqueCount(img)

	out := Bleed(Erode(img, 2), 2, 0)
	after := opaqueCount(out)

	// Every original pixel must be recovered.
	for y := 0; y < 13; y++ {
		for x := 0; x < 13; x++ {
			if alphaAt(img, x, y) > 0 && alphaAt(out, x, y) == 0 {
				t.Errorf("original pixel (%d,%d) lost in round trip", x, y)
			}
		}
	}
	if after < before || after > before+16 {
		t.Errorf("area %d -> %d, want growth bounded by corner rounding", before, after)
	}
}
