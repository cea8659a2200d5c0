package preview

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Caption returns a copy of img with a text strip of the given pixel size
// added below it.
func Caption(img image.Image, text string, size float64) (*image.RGBA, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	defer func() { _ = face.Close() }()

	m := face.Metrics()
	strip := (m.Ascent + m.Descent).Ceil() + 8

	b := img.Bounds()
	d := &font.Drawer{Face: face}
	width := max(b.Dx(), d.MeasureString(text).Ceil()+8)

	out := image.NewRGBA(image.Rect(0, 0, width, b.Dy()+strip))
	draw.Draw(out, out.Bounds(), image.NewUniform(color.RGBA{R: 24, G: 32, B: 24, A: 255}), image.Point{}, draw.Src)
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), img, b.Min, draw.Src)

	d.Dst = out
	d.Src = image.NewUniform(color.White)
	d.Dot = fixed.P(4, b.Dy()+4+m.Ascent.Ceil())
	d.DrawString(text)
	return out, nil
}
