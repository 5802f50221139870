package defs

// Tuning holds every gameplay number that shapes difficulty and scoring.
type Tuning struct {
	Spawn      SpawnTuning      `yaml:"spawn"`
	Target     TargetTuning     `yaml:"target"`
	Scoring    ScoringTuning    `yaml:"scoring"`
	Difficulty DifficultyTuning `yaml:"difficulty"`
	Limits     LimitTuning      `yaml:"limits"`
}

// SpawnTuning controls how often and what kind of targets appear.
type SpawnTuning struct {
	BaseFrequencyMs      float64 `yaml:"base_frequency_ms"`
	MinFrequencyMs       float64 `yaml:"min_frequency_ms"`
	BasePolygonFrequency float64 `yaml:"base_polygon_frequency"`
	MaxPolygonFrequency  float64 `yaml:"max_polygon_frequency"`
	PolygonFrequencyStep float64 `yaml:"polygon_frequency_step"`
	BonusChance          float64 `yaml:"bonus_chance"`
}

// TargetTuning controls target size, shrink speed and drift.
// Factors are relative to the shorter screen side unless noted.
type TargetTuning struct {
	MinRadius        float64 `yaml:"min_radius"`
	MaxRadius        float64 `yaml:"max_radius"`
	MinShrink        float64 `yaml:"min_shrink"` // relative to radius
	MaxShrink        float64 `yaml:"max_shrink"` // relative to radius
	ShrinkLevelStep  float64 `yaml:"shrink_level_step"`
	BonusShrinkMin   float64 `yaml:"bonus_shrink_min"`
	BonusShrinkMax   float64 `yaml:"bonus_shrink_max"`
	DriftStartLevel  int     `yaml:"drift_start_level"`
	DriftBaseChance  float64 `yaml:"drift_base_chance"`
	DriftChanceStep  float64 `yaml:"drift_chance_step"`
	DriftMinSpeed    float64 `yaml:"drift_min_speed"`
	DriftMaxSpeed    float64 `yaml:"drift_max_speed"`
	DriftSpeedStep   float64 `yaml:"drift_speed_step"`
	MinLineWeight    float64 `yaml:"min_line_weight"`
	MaxLineWeight    float64 `yaml:"max_line_weight"`
	MinRotationSpeed float64 `yaml:"min_rotation_speed"`
	MaxRotationSpeed float64 `yaml:"max_rotation_speed"`
}

// ScoringTuning holds point formulas.
type ScoringTuning struct {
	BasePoints        float64 `yaml:"base_points"`
	CleanRatio        float64 `yaml:"clean_ratio"`
	ComboStep         float64 `yaml:"combo_step"`
	BonusMultiplier   float64 `yaml:"bonus_multiplier"`
	PolygonMultiplier float64 `yaml:"polygon_multiplier"`
	MissPenalty       int     `yaml:"miss_penalty"`
}

// DifficultyTuning controls level progression.
type DifficultyTuning struct {
	HitsPerLevel        int     `yaml:"hits_per_level"`
	FrequencyFactor     float64 `yaml:"frequency_factor"`
	FrequencyFactorStep float64 `yaml:"frequency_factor_step"`
}

// LimitTuning holds the game-over thresholds (strictly greater than).
type LimitTuning struct {
	MaxFails  int `yaml:"max_fails"`
	MaxMissed int `yaml:"max_missed"`
}

// DefaultTuning returns the stock game balance.
func DefaultTuning() Tuning {
	return Tuning{
		Spawn: SpawnTuning{
			BaseFrequencyMs:      2000,
			MinFrequencyMs:       350,
			BasePolygonFrequency: 0.04,
			MaxPolygonFrequency:  0.2,
			PolygonFrequencyStep: 0.015,
			BonusChance:          0.02,
		},
		Target: TargetTuning{
			MinRadius:        0.15,
			MaxRadius:        0.2,
			MinShrink:        0.3,
			MaxShrink:        0.4,
			ShrinkLevelStep:  0.05,
			BonusShrinkMin:   2,
			BonusShrinkMax:   2.5,
			DriftStartLevel:  5,
			DriftBaseChance:  0.1,
			DriftChanceStep:  0.05,
			DriftMinSpeed:    0.15,
			DriftMaxSpeed:    0.2,
			DriftSpeedStep:   0.015,
			MinLineWeight:    0.01,
			MaxLineWeight:    0.02,
			MinRotationSpeed: 5,
			MaxRotationSpeed: 15,
		},
		Scoring: ScoringTuning{
			BasePoints:        50,
			CleanRatio:        0.8,
			ComboStep:         0.05,
			BonusMultiplier:   1.5,
			PolygonMultiplier: -3,
			MissPenalty:       50,
		},
		Difficulty: DifficultyTuning{
			HitsPerLevel:        10,
			FrequencyFactor:     0.9,
			FrequencyFactorStep: 0.02,
		},
		Limits: LimitTuning{
			MaxFails:  3,
			MaxMissed: 10,
		},
	}
}
