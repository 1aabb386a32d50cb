package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/myenglish-dictation/internal/config"
)

func TestPoolConfig_SessionSettings(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{
		DSN:              "postgres://u:p@localhost:5432/dictation",
		MaxConns:         10,
		MinConns:         2,
		MaxConnLifetime:  time.Hour,
		MaxConnIdleTime:  time.Minute,
		ApplicationName:  "dictation",
		StatementTimeout: 2500 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(10), cfg.MaxConns)
	assert.Equal(t, int32(2), cfg.MinConns)
	assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
	assert.Equal(t, time.Minute, cfg.MaxConnIdleTime)
	assert.Equal(t, "dictation", cfg.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "2500", cfg.ConnConfig.RuntimeParams["statement_timeout"])
}

func TestPoolConfig_ZeroTimeoutLeavesServerDefault(t *testing.T) {
	t.Parallel()

	cfg, err := poolConfig(config.DatabaseConfig{DSN: "postgres://u:p@localhost:5432/dictation", MaxConns: 1})
	require.NoError(t, err)

	_, ok := cfg.ConnConfig.RuntimeParams["statement_timeout"]
	assert.False(t, ok)
}

func TestPoolConfig_BadDSN(t *testing.T) {
	t.Parallel()

	_, err := poolConfig(config.DatabaseConfig{DSN: "postgres://u:p@localhost:notaport/db"})
	assert.Error(t, err)
}
