package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedis_InvalidConfig(t *testing.T) {
	cfg := RedisConfig{
		Host: "invalid-host-that-does-not-exist",
		Port: "6379",
	}

	client, err := NewRedis(cfg)

	assert.Error(t, err)
	assert.Nil(t, client)
}
