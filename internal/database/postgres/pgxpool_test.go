package postgres

import (
	"context"
	"testing"
	"time"

	"jobmatch/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	cfg := config.DatabaseConfig{
		DBHost:         " db.internal ",
		DBPort:         "6432",
		DBName:         "jobmatch",
		DBUser:         "svc",
		DBPassword:     "p@ss word",
		DBSSLMode:      "require",
		ConnectTimeout: 3 * time.Second,
		PoolMaxConns:   7,
	}

	pcfg, err := PoolConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", pcfg.ConnConfig.Host)
	assert.Equal(t, uint16(6432), pcfg.ConnConfig.Port)
	assert.Equal(t, "jobmatch", pcfg.ConnConfig.Database)
	assert.Equal(t, "svc", pcfg.ConnConfig.User)
	assert.Equal(t, "p@ss word", pcfg.ConnConfig.Password)
	assert.Equal(t, 3*time.Second, pcfg.ConnConfig.ConnectTimeout)
	assert.Equal(t, int32(7), pcfg.MaxConns)
}

func TestNilPool(t *testing.T) {
	var p *Pool
	assert.Error(t, p.Ping(context.Background()))
	assert.NoError(t, p.Close())
	assert.Nil(t, p.SQLDB())

	var id string
	assert.Error(t, p.QueryRow(context.Background(), "SELECT 1").Scan(&id))
}
