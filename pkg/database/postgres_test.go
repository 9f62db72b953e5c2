package database

import (
	"context"
	"errors"
	"io/fs"
	"testing"

	"bga-backend/pkg/database/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
	ctx context.Context
}

func (p *stubPinger) Ping(ctx context.Context) error {
	p.ctx = ctx
	return p.err
}

func TestHealthCheck(t *testing.T) {
	ok := &stubPinger{}
	require.NoError(t, HealthCheck(context.Background(), ok))
	_, hasDeadline := ok.ctx.Deadline()
	assert.True(t, hasDeadline)

	down := &stubPinger{err: errors.New("connection refused")}
	err := HealthCheck(context.Background(), down)
	assert.ErrorContains(t, err, "database ping: connection refused")
}

func TestMigrationsAreEmbedded(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	body, err := fs.ReadFile(migrations.FS, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CONSTRAINT users_email_key UNIQUE (email)")
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := Connect(context.Background(), "postgres://%zz")
	assert.ErrorContains(t, err, "parse database url")
}
