package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	seedName         = "TARGETS_SEED"
	savePathName     = "TARGETS_SAVE_PATH"
	tuningPathName   = "TARGETS_TUNING_PATH"
	windowWidthName  = "TARGETS_WINDOW_WIDTH"
	windowHeightName = "TARGETS_WINDOW_HEIGHT"
	mutedName        = "TARGETS_MUTED"
	pprofAddrName    = "TARGETS_PPROF_ADDR"
)

// Settings — параметры запуска, которые можно переопределить окружением.
type Settings struct {
	Seed         int64
	SavePath     string
	TuningPath   string
	WindowWidth  int
	WindowHeight int
	Muted        bool
	PprofAddr    string
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		SavePath:     "target_rush_save.json",
		TuningPath:   "tuning.yaml",
		WindowWidth:  ScreenWidth,
		WindowHeight: ScreenHeight,
	}
}

// LoadEnvFile подгружает .env, если он есть. Отсутствие файла не ошибка.
func LoadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err == nil {
		log.Printf("loaded environment from %s", path)
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", path, err)
}

// LoadSettings читает настройки из окружения поверх значений по умолчанию.
func LoadSettings() (Settings, error) {
	s := DefaultSettings()

	if v := os.Getenv(seedName); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return s, fmt.Errorf("invalid %s: %w", seedName, err)
		}
		s.Seed = seed
	}
	if v := os.Getenv(savePathName); v != "" {
		s.SavePath = v
	}
	if v := os.Getenv(tuningPathName); v != "" {
		s.TuningPath = v
	}
	if v := os.Getenv(windowWidthName); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil || w <= 0 {
			return s, fmt.Errorf("invalid %s: %q", windowWidthName, v)
		}
		s.WindowWidth = w
	}
	if v := os.Getenv(windowHeightName); v != "" {
		h, err := strconv.Atoi(v)
		if err != nil || h <= 0 {
			return s, fmt.Errorf("invalid %s: %q", windowHeightName, v)
		}
		s.WindowHeight = h
	}
	if v := os.Getenv(mutedName); v != "" {
		muted, err := strconv.ParseBool(v)
		if err != nil {
			return s, fmt.Errorf("invalid %s: %w", mutedName, err)
		}
		s.Muted = muted
	}
	s.PprofAddr = os.Getenv(pprofAddrName)

	return s, nil
}
