package redis_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/muhammadheryan/fw-development/constant"
	"github.com/muhammadheryan/fw-development/model"
	redisrepo "github.com/muhammadheryan/fw-development/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Init(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := redisrepo.NewRepository(db)

	mock.ExpectPing().SetVal("PONG")
	require.NoError(t, repo.Init(context.Background()))

	mock.ExpectPing().SetErr(errors.New("connection refused"))
	assert.Error(t, repo.Init(context.Background()))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Init_NilClient(t *testing.T) {
	repo := redisrepo.NewRepository(nil)
	assert.Error(t, repo.Init(context.Background()))
}

func TestRepository_KeyValue(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := redisrepo.NewRepository(db)
	ctx := context.Background()

	mock.ExpectSet("order:FW123456", "payload", time.Hour).SetVal("OK")
	require.NoError(t, repo.SetWithTTL(ctx, "order:FW123456", "payload", time.Hour))

	mock.ExpectGet("order:FW123456").SetVal("payload")
	got, err := repo.Get(ctx, "order:FW123456")
	require.NoError(t, err)
	assert.Equal(t, "payload", got)

	mock.ExpectGet("order:missing").RedisNil()
	_, err = repo.Get(ctx, "order:missing")
	assert.ErrorIs(t, err, redisrepo.ErrNil)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Session(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := redisrepo.NewRepository(db)
	ctx := context.Background()

	session := &model.Session{
		ID:        "jti-1",
		Username:  "admin",
		Name:      "FW Development",
		Role:      constant.RoleAdmin,
		ExpiresAt: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
	}
	b, _ := json.Marshal(session)

	mock.ExpectSet("session:jti-1", string(b), 30*time.Minute).SetVal("OK")
	require.NoError(t, repo.SetSession(ctx, session, 30*time.Minute))

	mock.ExpectGet("session:jti-1").SetVal(string(b))
	got, err := repo.GetSession(ctx, "jti-1")
	require.NoError(t, err)
	assert.Equal(t, session.Username, got.Username)
	assert.True(t, got.IsAdmin())

	mock.ExpectGet("session:broken").SetVal("{not json")
	_, err = repo.GetSession(ctx, "broken")
	assert.Error(t, err)

	mock.ExpectDel("session:jti-1").SetVal(1)
	require.NoError(t, repo.ClearSession(ctx, "jti-1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
