package utils

import (
	"image/color"
	"math"
	"math/rand"
	"time"
)

// PRNGService — это обертка над стандартным генератором случайных чисел Go,
// которая позволяет использовать предсказуемый (seeded) рандом во всей игре.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
// Если сид равен 0, используется текущее время.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	source := rand.NewSource(seed)
	return &PRNGService{
		rng: rand.New(source),
	}
}

// Float64 возвращает случайное число с плавающей точкой в диапазоне [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// RangeInt возвращает floor(min + r*(max-min)) для r в [0, 1).
// Порядок границ не важен; при равных границах возвращается сама граница.
func (s *PRNGService) RangeInt(a, b float64) int {
	lo, hi := math.Min(a, b), math.Max(a, b)
	if lo == hi {
		return int(math.Floor(lo))
	}
	return int(math.Floor(lo + s.Float64()*(hi-lo)))
}

// RangeFloat возвращает равномерное число в [min, max).
func (s *PRNGService) RangeFloat(a, b float64) float64 {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return lo + s.Float64()*(hi-lo)
}

// Chance возвращает true с вероятностью p (p обрезается до [0, 1]).
func (s *PRNGService) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return s.Float64() < p
}

// Sign возвращает -1 или +1 с равной вероятностью.
func (s *PRNGService) Sign() float64 {
	if s.Float64() < 0.5 {
		return 1
	}
	return -1
}

// Color возвращает непрозрачный цвет, каждый канал которого лежит в [lo, hi).
func (s *PRNGService) Color(lo, hi int) color.RGBA {
	return color.RGBA{
		R: uint8(s.RangeInt(float64(lo), float64(hi))),
		G: uint8(s.RangeInt(float64(lo), float64(hi))),
		B: uint8(s.RangeInt(float64(lo), float64(hi))),
		A: 255,
	}
}
