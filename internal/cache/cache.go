// Package cache fornece um armazenamento em memória com expiração por TTL
// e um contador de chamadas por janela de hora cheia. Ambos são injetados
// nos handlers; não há persistência entre reinícios do processo.
package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     interface{}
	expiresAt time.Time
}

// TTLStore guarda valores por chave com expiração fixa por escrita.
// Escritas concorrentes na mesma chave seguem last-write-wins.
type TTLStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// NewTTLStore cria um armazenamento com o TTL informado
func NewTTLStore(ttl time.Duration) *TTLStore {
	return &TTLStore{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get retorna o valor da chave, se existir e não tiver expirado
func (s *TTLStore) Get(key string) (interface{}, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || s.now().After(e.expiresAt) {
		return nil, false
	}

	return e.value, true
}

// Set grava o valor da chave renovando o prazo de expiração
func (s *TTLStore) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry{
		value:     value,
		expiresAt: s.now().Add(s.ttl),
	}
}

// Delete remove a chave, se existir
func (s *TTLStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
}

// Cleanup descarta as entradas já expiradas e retorna quantas removeu
func (s *TTLStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0

	for key, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, key)
			removed++
		}
	}

	return removed
}

// HourlyCounter conta ocorrências por chave dentro da hora cheia corrente.
// A contagem zera na virada da hora; a leitura seguida de incremento não é
// atômica entre chamadas, o que é aceitável para limitação de uso.
type HourlyCounter struct {
	mu     sync.Mutex
	counts map[string]int
	window time.Time
	now    func() time.Time
}

// NewHourlyCounter cria um contador por hora cheia
func NewHourlyCounter() *HourlyCounter {
	return &HourlyCounter{
		counts: make(map[string]int),
		now:    time.Now,
	}
}

// Increment soma uma ocorrência para a chave e retorna o total da hora
func (c *HourlyCounter) Increment(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rotate()
	c.counts[key]++

	return c.counts[key]
}

// Count retorna o total de ocorrências da chave na hora corrente
func (c *HourlyCounter) Count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.rotate()

	return c.counts[key]
}

func (c *HourlyCounter) rotate() {
	window := c.now().Truncate(time.Hour)
	if !window.Equal(c.window) {
		c.window = window
		c.counts = make(map[string]int)
	}
}
