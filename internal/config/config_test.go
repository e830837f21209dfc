package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cfg := &Config{
		InstagramSync: InstagramSync{ProfileIDs: []string{" 123 ", "", "456"}},
		Cors:          Cors{AllowedOrigins: []string{"http://localhost:3000", " "}},
	}

	cfg.normalize()

	assert.Equal(t, []string{"123", "456"}, cfg.InstagramSync.ProfileIDs)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, 25, cfg.Instagram.MediaLimit)
	assert.Equal(t, 5, cfg.Instagram.TopN)
	assert.Equal(t, 1, cfg.InstagramSync.MaxConcurrentJobs)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)
}

func TestGraphURLs(t *testing.T) {
	cfg := &Config{Instagram: Instagram{
		GraphURL:         "https://graph.instagram.com",
		GraphVersion:     "v24.0",
		FacebookGraphURL: "https://graph.facebook.com",
		FacebookVersion:  "v24.0",
	}}

	assert.Equal(t, "https://graph.instagram.com/v24.0", cfg.InstagramURL())
	assert.Equal(t, "https://graph.facebook.com/v24.0", cfg.FacebookURL())
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{}).IsDevelopment())
	assert.True(t, (&Config{App: App{Env: "dev"}}).IsDevelopment())
	assert.False(t, (&Config{App: App{Env: "production"}}).IsDevelopment())
}
