package config

import (
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestConnectRedis_SkippedInTestEnv(t *testing.T) {
	freshConfig(t, map[string]string{"APPENV": "test", "REDIS_ADDR": "localhost:6379"})
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestConnectRedis_NoAddress(t *testing.T) {
	freshConfig(t, map[string]string{"APPENV": "development", "REDIS_ADDR": ""})
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)

	rdb, err := ConnectRedis()
	assert.NoError(t, err)
	assert.Nil(t, rdb)
}

func TestConnectRedis_ConcurrentCalls(t *testing.T) {
	freshConfig(t, map[string]string{"APPENV": "test"})
	ResetRedisClientForTest()
	t.Cleanup(ResetRedisClientForTest)

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := ConnectRedis()
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Nil(t, GetRedisClient())
}

func TestRedisTestHelpers_SetAndReset(t *testing.T) {
	original := GetRedisClient()
	t.Cleanup(func() { SetRedisClientForTest(original) })

	client := redis.NewClient(&redis.Options{Addr: "localhost:0"})
	t.Cleanup(func() { _ = client.Close() })

	SetRedisClientForTest(client)
	assert.Same(t, client, GetRedisClient())

	ResetRedisClientForTest()
	assert.Nil(t, GetRedisClient())
}

func TestRedisOptions(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want *redis.Options
	}{
		{"test env", Config{AppEnv: "test", RedisAddr: "localhost:6379"}, nil},
		{"no address", Config{AppEnv: "production"}, nil},
		{"configured", Config{AppEnv: "production", RedisAddr: "cache:6379", RedisPassword: "s3cret", RedisDB: 2},
			&redis.Options{Addr: "cache:6379", Password: "s3cret", DB: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redisOptions(&tt.cfg))
		})
	}
}
