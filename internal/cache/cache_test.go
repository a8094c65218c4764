package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLStore(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

	store := NewTTLStore(15 * time.Minute)
	store.now = func() time.Time { return now }

	t.Run("Chave inexistente não é encontrada", func(t *testing.T) {
		_, ok := store.Get("conta-1")
		assert.False(t, ok)
	})

	t.Run("Valor gravado é lido dentro do TTL", func(t *testing.T) {
		store.Set("conta-1", "narrativa")

		now = now.Add(14 * time.Minute)

		value, ok := store.Get("conta-1")
		assert.True(t, ok)
		assert.Equal(t, "narrativa", value)
	})

	t.Run("Valor expira após o TTL", func(t *testing.T) {
		now = now.Add(2 * time.Minute)

		_, ok := store.Get("conta-1")
		assert.False(t, ok)
	})

	t.Run("Regravar renova o prazo", func(t *testing.T) {
		store.Set("conta-1", "nova narrativa")

		now = now.Add(10 * time.Minute)

		value, ok := store.Get("conta-1")
		assert.True(t, ok)
		assert.Equal(t, "nova narrativa", value)
	})

	t.Run("A última escrita vence", func(t *testing.T) {
		store.Set("conta-2", "primeira")
		store.Set("conta-2", "segunda")

		value, ok := store.Get("conta-2")
		assert.True(t, ok)
		assert.Equal(t, "segunda", value)
	})

	t.Run("Cleanup descarta apenas as entradas expiradas", func(t *testing.T) {
		store.Set("viva", 1)

		now = now.Add(16 * time.Minute)
		store.Set("recente", 2)

		removed := store.Cleanup()
		assert.GreaterOrEqual(t, removed, 1)

		_, ok := store.Get("viva")
		assert.False(t, ok)

		_, ok = store.Get("recente")
		assert.True(t, ok)
	})
}

func TestHourlyCounter(t *testing.T) {
	now := time.Date(2025, 3, 15, 10, 30, 0, 0, time.UTC)

	counter := NewHourlyCounter()
	counter.now = func() time.Time { return now }

	t.Run("Incrementos acumulam dentro da mesma hora", func(t *testing.T) {
		assert.Equal(t, 1, counter.Increment("conta-1"))
		assert.Equal(t, 2, counter.Increment("conta-1"))
		assert.Equal(t, 1, counter.Increment("conta-2"))

		now = now.Add(20 * time.Minute)
		assert.Equal(t, 3, counter.Increment("conta-1"))
	})

	t.Run("Contagem zera na virada da hora", func(t *testing.T) {
		now = now.Add(15 * time.Minute) // 11:05

		assert.Equal(t, 0, counter.Count("conta-1"))
		assert.Equal(t, 1, counter.Increment("conta-1"))
	})
}
