package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientOptions_KeepsCommandDeadlines(t *testing.T) {
	opts := clientOptions("localhost:6379", "secret", 2)

	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
	// Кэш больниц не должен зависать на остановившемся Redis
	assert.Equal(t, commandTimeout, opts.ReadTimeout)
	assert.Equal(t, commandTimeout, opts.WriteTimeout)
	assert.Positive(t, opts.ReadTimeout)
}
