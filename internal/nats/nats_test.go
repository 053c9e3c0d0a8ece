package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveURL(t *testing.T) {
	t.Setenv("NATS_URL", "")
	assert.Equal(t, defaultURL, resolveURL())

	t.Setenv("NATS_URL", "nats://queue.scorely.app:4222")
	assert.Equal(t, "nats://queue.scorely.app:4222", resolveURL())
}
