package config

import "image/color"

const (
	ScreenWidth  = 1024
	ScreenHeight = 768
	WindowTitle  = "Target Rush"
	MaxDeltaTime = 0.06

	MaxTargets        = 7
	PlacementAttempts = 100
	PlacementMargin   = 0.2 // доля от screenMin

	TitleSpawnInterval = 1200.0 // ms
	CountdownSeconds   = 3.0
	CollapseSpeed      = 2.0 // единиц прогресса в секунду

	CirclePieces    = 4
	PolygonMinSides = 3
	PolygonMaxSides = 6

	BubbleLifetime   = 0.5
	BubbleGrowth     = 1.01
	BubbleSizeFactor = 0.05 // доля от screenMin

	ColorChannelMin = 25
	ColorChannelMax = 255

	HighScoreKey = "highScore"

	FontSizeFactor      = 0.04 // доля от screenMin
	TitleFontSizeFactor = 0.1
	HUDMargin           = 20.0
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	TextLightColor  = color.RGBA{255, 255, 255, 255}
	TextDimColor    = color.RGBA{160, 160, 160, 255}
	ButtonColor     = color.RGBA{70, 130, 180, 220}
	ButtonStroke    = color.RGBA{240, 240, 240, 255}
	MutedColor      = color.RGBA{220, 60, 60, 220}
	BonusRedColors  = []color.RGBA{
		{255, 40, 40, 255},
		{200, 20, 20, 255},
	}
	BonusGreenColors = []color.RGBA{
		{40, 255, 90, 255},
		{20, 190, 60, 255},
	}
	BubbleColors = []color.RGBA{
		{255, 255, 255, 255},
		{255, 215, 0, 255},
		{255, 120, 40, 255},
		{255, 215, 0, 255},
	}
	PenaltyBubbleColors = []color.RGBA{
		{255, 60, 60, 255},
		{180, 30, 30, 255},
	}
)
