package lib

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestCacheGetJSONMissWithoutClient(t *testing.T) {
	NewRedisClient(nil)

	var out []string
	assert.False(t, CacheGetJSON(context.Background(), "nope", &out))
}

func TestCacheGetJSONMissOnAbsentKey(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	NewRedisClient(rdb)
	defer NewRedisClient(nil)

	mock.ExpectGet("catalog:categories").RedisNil()

	var out []string
	assert.False(t, CacheGetJSON(context.Background(), "catalog:categories", &out))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheRoundTrip(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	NewRedisClient(rdb)
	defer NewRedisClient(nil)

	payload := `["New York","Chicago"]`
	mock.ExpectSet("catalog:cities", payload, time.Hour).SetVal("OK")
	mock.ExpectGet("catalog:cities").SetVal(payload)

	CacheSetJSON(context.Background(), "catalog:cities", []string{"New York", "Chicago"}, time.Hour)

	var out []string
	assert.True(t, CacheGetJSON(context.Background(), "catalog:cities", &out))
	assert.Equal(t, []string{"New York", "Chicago"}, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCacheGetJSONRejectsCorruptValue(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	NewRedisClient(rdb)
	defer NewRedisClient(nil)

	mock.ExpectGet("catalog:cities").SetVal("{not json")

	var out []string
	assert.False(t, CacheGetJSON(context.Background(), "catalog:cities", &out))
}
