package systems

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// srcTileSize is the pixel size of one glyph in the sprite sheet
const srcTileSize = 12

// Tileset draws Code Page 437 glyphs from a 16x16 sprite sheet
type Tileset struct {
	Image    *ebiten.Image
	TileSize int
	Width    int // Glyph columns in the sheet
	Height   int // Glyph rows in the sheet
}

// NewTileset loads a sprite sheet from a PNG file
func NewTileset(filename string, tileSize int) (*Tileset, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open tileset: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tileset %s: %w", filename, err)
	}

	bounds := img.Bounds()
	return &Tileset{
		Image:    ebiten.NewImageFromImage(img),
		TileSize: tileSize,
		Width:    bounds.Dx() / srcTileSize,
		Height:   bounds.Dy() / srcTileSize,
	}, nil
}

// GlyphCell returns the sheet column and row of a glyph
func GlyphCell(glyph rune) (int, int) {
	index := int(glyph)
	return index % 16, index / 16
}

// DrawTile draws one glyph at grid cell (x, y), tinted with clr
func (t *Tileset) DrawTile(target *ebiten.Image, glyph rune, x, y int, clr color.Color) {
	col, row := GlyphCell(glyph)
	if col >= t.Width || row >= t.Height {
		col, row = GlyphCell('?')
		clr = color.RGBA{255, 0, 255, 255}
	}

	sx := col * srcTileSize
	sy := row * srcTileSize

	op := &ebiten.DrawImageOptions{}
	scale := float64(t.TileSize) / float64(srcTileSize)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x*t.TileSize), float64(y*t.TileSize))
	if clr != nil {
		op.ColorScale.ScaleWithColor(clr)
	}

	rect := image.Rect(sx, sy, sx+srcTileSize, sy+srcTileSize)
	target.DrawImage(t.Image.SubImage(rect).(*ebiten.Image), op)
}

// DrawString draws text left to right starting at grid cell (x, y)
func (t *Tileset) DrawString(target *ebiten.Image, text string, x, y int, clr color.Color) {
	for i, glyph := range []rune(text) {
		t.DrawTile(target, glyph, x+i, y, clr)
	}
}
