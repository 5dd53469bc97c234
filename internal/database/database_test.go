package database

import (
	"testing"

	"github.com/sid2487/Instagram-Clone/internal/config"
	"github.com/sid2487/Instagram-Clone/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestConfigurePool(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	cfg := &config.Config{
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           5,
		DBConnMaxLifetimeMinutes: 15,
	}

	assert.NoError(t, configurePool(db, cfg))

	// Zero values fall back to defaults rather than disabling pooling.
	assert.NoError(t, configurePool(db, &config.Config{}))
}

func TestSchemaPolicy(t *testing.T) {
	tests := []struct {
		name     string
		mode     string
		env      string
		wantSQL  bool
		wantAuto bool
		wantErr  bool
	}{
		{name: "hybrid dev", mode: "hybrid", env: "development", wantSQL: true, wantAuto: true},
		{name: "hybrid prod", mode: "hybrid", env: "production", wantSQL: true, wantAuto: false},
		{name: "default is hybrid", mode: "", env: "staging", wantSQL: true, wantAuto: false},
		{name: "sql only", mode: "sql", env: "production", wantSQL: true, wantAuto: false},
		{name: "auto dev", mode: "auto", env: "development", wantSQL: false, wantAuto: true},
		{name: "auto refused in prod", mode: "auto", env: "production", wantErr: true},
		{name: "unknown mode", mode: "bogus", env: "development", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{DBSchemaMode: tt.mode, Env: tt.env}
			runSQL, runAuto, err := schemaPolicy(cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantSQL, runSQL)
			assert.Equal(t, tt.wantAuto, runAuto)
		})
	}
}

func TestPersistentModelsCoverDomain(t *testing.T) {
	wantMessage := false
	wantFollow := false
	for _, model := range PersistentModels() {
		switch model.(type) {
		case *models.Message:
			wantMessage = true
		case *models.Follow:
			wantFollow = true
		}
	}
	require.True(t, wantMessage, "PersistentModels should include Message")
	require.True(t, wantFollow, "PersistentModels should include Follow")
}

func TestRegisteredMigrationsArePaired(t *testing.T) {
	ms := GetMigrations()
	require.NotEmpty(t, ms)
	for _, m := range ms {
		assert.NotEmpty(t, m.UpScript, "migration %s missing up script", m.String())
		assert.NotEmpty(t, m.DownScript, "migration %s missing down script", m.String())
	}
}
