package assets

import (
	"fmt"
	"log"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager управляет загрузкой и кэшированием шрифтов по размерам.
type FontManager struct {
	mu    sync.Mutex
	font  *opentype.Font
	faces map[int]font.Face
}

// NewFontManager загружает TTF из path. Пустой путь или ошибка загрузки
// дают встроенный Go Regular.
func NewFontManager(path string) (*FontManager, error) {
	data := goregular.TTF
	if path != "" {
		custom, err := os.ReadFile(path)
		if err != nil {
			log.Printf("WARNING: font %s not loaded, using builtin: %v", path, err)
		} else {
			data = custom
		}
	}

	tt, err := opentype.Parse(data)
	if err != nil {
		if path == "" {
			return nil, fmt.Errorf("failed to parse builtin font: %w", err)
		}
		log.Printf("WARNING: font %s is invalid, using builtin: %v", path, err)
		if tt, err = opentype.Parse(goregular.TTF); err != nil {
			return nil, fmt.Errorf("failed to parse builtin font: %w", err)
		}
	}

	return &FontManager{font: tt, faces: make(map[int]font.Face)}, nil
}

// Face возвращает шрифт размера size (округляется до пикселя, минимум 1).
func (m *FontManager) Face(size float64) (font.Face, error) {
	px := int(math.Round(size))
	if px < 1 {
		px = 1
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if face, ok := m.faces[px]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    float64(px),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create face of size %d: %w", px, err)
	}
	m.faces[px] = face
	return face, nil
}

// Close освобождает все созданные начертания.
func (m *FontManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
}
