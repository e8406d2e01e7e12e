package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":4002", cfg.Port)
	assert.True(t, strings.HasPrefix(cfg.SchedulerURL, "https://cal.com/northlight-studio/"))
	assert.Equal(t, "/", cfg.FormAction)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("WEBSITE_PORT", "8080")
	t.Setenv("SCHEDULER_URL", "https://cal.example/other?embed=true")
	t.Setenv("BOOKING_FORM_ACTION", "https://forms.example/submit")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Port)
	assert.Equal(t, "https://cal.example/other?embed=true", cfg.SchedulerURL)
	assert.Equal(t, "https://forms.example/submit", cfg.FormAction)
}

func TestLoadKeepsExplicitColon(t *testing.T) {
	t.Setenv("WEBSITE_PORT", ":9000")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Port)
}
