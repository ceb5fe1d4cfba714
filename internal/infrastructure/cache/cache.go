package cache

import (
	"sync"
	"time"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache é um cache em memória com expiração por TTL, usado na frente do fetch
// de planilhas para não rebaixar cada requisição do dashboard a um round-trip
// HTTP. O core de transformação nunca lê daqui; o cache guarda apenas as
// matrizes brutas já materializadas.
type Cache struct {
	mu    sync.RWMutex
	items map[string]entry
	stop  chan struct{}
}

func New() *Cache {
	c := &Cache{
		items: make(map[string]entry),
		stop:  make(chan struct{}),
	}
	go c.janitor()
	return c
}

// Close encerra a goroutine de limpeza. O cache continua utilizável; apenas a
// coleta periódica de entradas expiradas para (Get ainda respeita o TTL).
func (c *Cache) Close() {
	close(c.stop)
}

// Set grava o valor com o TTL informado.
func (c *Cache) Set(key string, value any, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry{value: value, expiresAt: time.Now().Add(ttl)}
}

// Get retorna o valor e um booleano indicando se existe e ainda é válido.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Delete remove a chave, se presente.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Flush descarta todas as entradas.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]entry)
}

func (c *Cache) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for k, e := range c.items {
				if now.After(e.expiresAt) {
					delete(c.items, k)
				}
			}
			c.mu.Unlock()
		}
	}
}
