package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, int64(16), cfg.Server.MaxUploadSizeMB)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoDB.URI)
	assert.Equal(t, "files_manager", cfg.MongoDB.Database)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "local", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/files_manager", cfg.Storage.FolderPath)
	assert.False(t, cfg.OTEL.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MAX_UPLOAD_SIZE_MB", "64")
	t.Setenv("MONGODB_DATABASE", "filehaven_test")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("S3_ENDPOINT", "http://localhost:8333")
	t.Setenv("S3_BUCKET", "uploads")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(64), cfg.Server.MaxUploadSizeMB)
	assert.Equal(t, "filehaven_test", cfg.MongoDB.Database)
	assert.Equal(t, "s3", cfg.Storage.Backend)
	assert.Equal(t, "http://localhost:8333", cfg.Storage.S3.Endpoint)
	assert.Equal(t, "uploads", cfg.Storage.S3.Bucket)
}

func TestLoadInvalidIntFallsBack(t *testing.T) {
	t.Setenv("MAX_UPLOAD_SIZE_MB", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(16), cfg.Server.MaxUploadSizeMB)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "local backend with folder path",
			mutate: func(c *Config) {},
		},
		{
			name:    "local backend without folder path",
			mutate:  func(c *Config) { c.Storage.FolderPath = "" },
			wantErr: "FOLDER_PATH",
		},
		{
			name: "s3 backend without endpoint",
			mutate: func(c *Config) {
				c.Storage.Backend = "s3"
				c.Storage.S3.Bucket = "uploads"
			},
			wantErr: "S3_ENDPOINT",
		},
		{
			name: "s3 backend without bucket",
			mutate: func(c *Config) {
				c.Storage.Backend = "s3"
				c.Storage.S3.Endpoint = "http://localhost:8333"
				c.Storage.S3.Bucket = ""
			},
			wantErr: "S3_BUCKET",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Storage.Backend = "ftp" },
			wantErr: "STORAGE_BACKEND",
		},
		{
			name:    "otel enabled without endpoint",
			mutate:  func(c *Config) { c.OTEL.Enabled = true },
			wantErr: "OTEL_ENDPOINT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.Storage.Backend = "local"
			cfg.Storage.FolderPath = "/tmp/files_manager"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
