package storage

import (
	"log"
	"strconv"
	"strings"

	"go-target-rush/internal/config"
)

// LoadHighScore reads the high score slot. Missing or malformed values yield 0.
func LoadHighScore(s Store) int {
	raw, ok, err := s.Get(config.HighScoreKey)
	if err != nil {
		log.Printf("storage: failed to read high score: %v", err)
		return 0
	}
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		log.Printf("storage: ignoring malformed high score %q", raw)
		return 0
	}
	return v
}

// SaveHighScore writes score when it beats the stored value.
// Returns true if the slot was updated.
func SaveHighScore(s Store, score int) (bool, error) {
	if score <= LoadHighScore(s) {
		return false, nil
	}
	if err := s.Set(config.HighScoreKey, strconv.Itoa(score)); err != nil {
		return false, err
	}
	return true, nil
}
