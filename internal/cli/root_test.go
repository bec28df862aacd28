// Tests for CLI option plumbing and capability formatting.
// Related: internal/cli/root.go, internal/cli/doctor.go
// Tags: cli, options, config
package cli

import (
	"strings"
	"testing"

	"github.com/ariel-frischer/barline/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestRenderOptions_WidthOverride(t *testing.T) {
	cfg := &config.Configuration{Width: 50, GradientHue: 210, GradientSaturation: 0.6}

	opts := renderOptions(cfg)

	if assert.NotNil(t, opts.Profile, "a configured width forces an explicit profile") {
		assert.Equal(t, 50, opts.Profile.Columns)
	}
}

func TestRenderOptions_AutodetectWidth(t *testing.T) {
	cfg := &config.Configuration{Width: 0}

	opts := renderOptions(cfg)

	assert.Nil(t, opts.Profile, "width 0 leaves detection to the bar")
}

func TestRenderOptions_GradientPassthrough(t *testing.T) {
	cfg := &config.Configuration{TrueColor: true, GradientHue: 120, GradientSaturation: 0.4}

	opts := renderOptions(cfg)

	assert.True(t, opts.TrueColor)
	assert.Equal(t, 120.0, opts.GradientHue)
	assert.Equal(t, 0.4, opts.GradientSaturation)
}

func TestCapability(t *testing.T) {
	assert.True(t, strings.Contains(capability(true), "yes"))
	assert.True(t, strings.Contains(capability(false), "no"))
}

func TestRootCommandGroups(t *testing.T) {
	names := make(map[string]string)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = c.GroupID
	}

	assert.Equal(t, GroupDemos, names["demo"])
	assert.Equal(t, GroupDemos, names["workers"])
	assert.Equal(t, GroupUtility, names["doctor"])
	assert.Equal(t, GroupUtility, names["version"])
}
