// internal/ui/fonts.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts - набор шрифтов интерфейса
type Fonts struct {
	Regular font.Face
	Title   font.Face
}

// LoadFonts загружает встроенный Go Regular в двух размерах.
func LoadFonts(size, titleSize float64) (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	regular, err := newFace(tt, size)
	if err != nil {
		return nil, err
	}
	title, err := newFace(tt, titleSize)
	if err != nil {
		return nil, err
	}
	return &Fonts{Regular: regular, Title: title}, nil
}

func newFace(tt *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face (size %.0f): %w", size, err)
	}
	return face, nil
}
