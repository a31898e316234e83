package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/stuartcarroll/chatextract/internal/config"
)

func TestMustLoadByPath(t *testing.T) {
	input := `env: "test"
http:
  port: 9090
  request_timeout: 3s
importer:
  poll_period: 1s
`
	path := createTempConfigFile(t, "test_config.yaml", input)
	defer os.Remove(path)

	cfg := config.MustLoadByPath(path)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, 9090, cfg.Http.Port)
	assert.Equal(t, 3*time.Second, cfg.Http.RequestTimeout)
	assert.Equal(t, time.Second, cfg.Importer.PollPeriod)
}

func TestMustLoadByPath_missingFile(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoadByPath("no_such_config.yaml")
	})
}

func createTempConfigFile(t *testing.T, path string, content string) string {
	tmpFile, err := os.Create(path)
	if err != nil {
		t.Fatalf("Can't create temp test config file: %v", err)
	}
	defer tmpFile.Close()

	if _, err := tmpFile.Write([]byte(content)); err != nil {
		t.Fatalf("Can't write into temp test config file: %v", err)
	}

	return tmpFile.Name()
}
