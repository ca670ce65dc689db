package redisstore_test

import (
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Warrick-api/internal/infrastructure/redisstore"
)

func TestBackend_KeyConPrefijo(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	defer client.Close()

	b := redisstore.New(client, "tenant1:")
	assert.Equal(t, "tenant1:warrick_invoices", b.Key("warrick_invoices"))

	plain := redisstore.New(client, "")
	assert.Equal(t, "warrick_invoices", plain.Key("warrick_invoices"))
}
