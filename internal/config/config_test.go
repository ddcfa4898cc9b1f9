package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/tc-track-viz/internal/domain"
)

func TestDefaultRender(t *testing.T) {
	cfg := DefaultRender("IDA", "IDA_2021_track.png")

	assert.Equal(t, "IDA", cfg.StormName)
	assert.Equal(t, "IDA_2021_track.png", cfg.OutputPath)
	assert.Equal(t, "crimson", cfg.ColorR34)
	assert.Equal(t, "blue", cfg.ColorR50)
	assert.Equal(t, "green", cfg.ColorR64)
	assert.Equal(t, 70.0, cfg.RadiusScale)
	assert.Equal(t, 10.0, cfg.MapPadding)
	assert.Equal(t, 1600, cfg.Width)
	assert.Equal(t, 2000, cfg.Height)

	require.NoError(t, cfg.Validate())
}

func TestThresholdColor(t *testing.T) {
	cfg := DefaultRender("IDA", "out.png")
	assert.Equal(t, "crimson", cfg.ThresholdColor(domain.R34))
	assert.Equal(t, "blue", cfg.ThresholdColor(domain.R50))
	assert.Equal(t, "green", cfg.ThresholdColor(domain.R64))
}

func TestValidate_Failures(t *testing.T) {
	t.Run("empty output path", func(t *testing.T) {
		cfg := DefaultRender("IDA", "")
		require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)
	})

	t.Run("non-positive scale", func(t *testing.T) {
		cfg := DefaultRender("IDA", "out.png")
		cfg.RadiusScale = 0
		require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)
	})

	t.Run("negative padding", func(t *testing.T) {
		cfg := DefaultRender("IDA", "out.png")
		cfg.MapPadding = -1
		require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)
	})

	t.Run("bad color", func(t *testing.T) {
		cfg := DefaultRender("IDA", "out.png")
		cfg.ColorR50 = "chartreuse-ish"
		require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)
	})

	t.Run("zero image size", func(t *testing.T) {
		cfg := DefaultRender("IDA", "out.png")
		cfg.Width = 0
		require.ErrorIs(t, cfg.Validate(), domain.ErrInvalidConfig)
	})
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("crimson")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xdc, 0x14, 0x3c, 0xff}, c)

	c, err = ParseColor("#1a2b3c")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x1a, 0x2b, 0x3c, 0xff}, c)

	c, err = ParseColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0x00, 0x00, 0xff}, c)

	_, err = ParseColor("not-a-color")
	require.ErrorIs(t, err, domain.ErrInvalidConfig)

	_, err = ParseColor("#12345")
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}
