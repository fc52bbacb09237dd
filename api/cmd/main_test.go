package main

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"github.com/eventboard/eventboard/internal/config"
)

func TestNewApp(t *testing.T) {
	// Mock DB and an in-process redis so wiring needs no real backends
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	mr := miniredis.RunT(t)

	cfg := &config.Config{
		AppName:  "eventboard",
		HTTPAddr: ":8081",
		RedisURL: "redis://" + mr.Addr(),
	}

	t.Run("should_correctly_wire_dependencies", func(t *testing.T) {
		app := NewApp(cfg, db)

		assert.NotNil(t, app)
		assert.Equal(t, cfg.HTTPAddr, app.Server.Addr)
		assert.NotNil(t, app.Server.Handler, "HTTP Handler should be initialized")
		assert.Nil(t, app.Publisher, "no broker configured means no publisher")
	})
}

func TestSysClock_Now(t *testing.T) {
	clock := sysClock{}
	now := clock.Now()

	assert.Equal(t, "UTC", now.Location().String())
}
