package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/zigen/config"
	"github.com/katalvlaran/zigen/glyph"
	"github.com/katalvlaran/zigen/sieve"
)

const sample = `
degenerator:
  feature_map: {竖钩: 竖}
  no_cross: true
sieves: [根少优先, 全符笔顺]
strong: [口]
weak: [丿]
decisions: {一: a, 丨: b, 口: k}
gap: 10
`

// TestLoad decodes every field on top of the defaults.
func TestLoad(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(sample))
	require.NoError(t, err)

	assert.True(t, cfg.Degenerator.NoCross)
	assert.Equal(t, glyph.Shu, cfg.Degenerator.Degenerate(glyph.ShuGou))
	assert.Equal(t, glyph.Dian, cfg.Degenerator.Degenerate(glyph.Na), "defaults kept")
	assert.Equal(t, []string{sieve.FewerRoots, sieve.StrokeOrder}, cfg.Sieves)
	assert.Equal(t, []string{"口"}, cfg.Strong)
	assert.Equal(t, []string{"丿"}, cfg.Weak)
	assert.Equal(t, []string{"一", "丨", "口"}, cfg.Roots())
	assert.Equal(t, 10.0, cfg.Gap)
	require.NoError(t, cfg.Validate(sieve.DefaultRegistry()))
}

// TestLoad_Empty returns the defaults.
func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	def := config.Default()
	assert.Equal(t, def, cfg)
	assert.Equal(t, sieve.DefaultOrder, cfg.Sieves)
	assert.Equal(t, 20.0, cfg.Gap)
	assert.Empty(t, cfg.Roots())
}

// TestLoad_Errors covers parse and validation failures.
func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(strings.NewReader("sieves: [unclosed"))
	assert.ErrorIs(t, err, config.ErrParse)
	_, err = config.Load(strings.NewReader("colour: red"))
	assert.ErrorIs(t, err, config.ErrParse, "unknown fields are rejected")

	cfg := config.Default()
	cfg.Sieves = append(cfg.Sieves, "随便")
	assert.ErrorIs(t, cfg.Validate(sieve.DefaultRegistry()), sieve.ErrUnknownSieve)

	cfg = config.Default()
	cfg.Gap = -1
	assert.ErrorIs(t, cfg.Validate(sieve.DefaultRegistry()), config.ErrInvalid)

	cfg = config.Default()
	cfg.Degenerator.FeatureMap["怪"] = glyph.Heng
	assert.ErrorIs(t, cfg.Validate(sieve.DefaultRegistry()), config.ErrInvalid)
}

// TestClone checks the copy shares no maps or slices.
func TestClone(t *testing.T) {
	cfg := config.Default()
	cfg.Decisions["一"] = "a"
	cp := cfg.Clone()
	cp.Decisions["丨"] = "b"
	cp.Sieves[0] = sieve.Smaller
	cp.Degenerator.FeatureMap[glyph.ShuGou] = glyph.Shu

	assert.Len(t, cfg.Decisions, 1)
	assert.Equal(t, sieve.Integrity, cfg.Sieves[0])
	assert.NotContains(t, cfg.Degenerator.FeatureMap, glyph.ShuGou)
}
