package services

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/prefeitura-rio/app-relatorio-cobertura/internal/models"
	"go.uber.org/zap"
)

// cacheEntry representa uma entrada no cache
type cacheEntry struct {
	key        string
	payload    *models.CoveragePayload
	expiration time.Time
}

// CoverageCache é um cache LRU thread-safe de payloads de cobertura com TTL
type CoverageCache struct {
	capacity int
	ttl      time.Duration
	mu       sync.Mutex
	cache    map[string]*list.Element
	lruList  *list.List

	hits   uint64
	misses uint64
}

// CacheStats são as estatísticas expostas no health check
type CacheStats struct {
	Size   int    `json:"size"`
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
}

// NewCoverageCache cria um cache com a capacidade e TTL informados
func NewCoverageCache(capacity int, ttl time.Duration) *CoverageCache {
	if capacity <= 0 {
		capacity = 500
	}
	return &CoverageCache{
		capacity: capacity,
		ttl:      ttl,
		cache:    make(map[string]*list.Element),
		lruList:  list.New(),
	}
}

// Enabled indica se o cache guarda algo (TTL zero desativa)
func (c *CoverageCache) Enabled() bool {
	return c.ttl > 0
}

// Get recupera um payload do cache
func (c *CoverageCache) Get(key string) *models.CoveragePayload {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, found := c.cache[key]; found {
		entry := element.Value.(*cacheEntry)

		if time.Now().After(entry.expiration) {
			c.removeElement(element)
			c.misses++
			return nil
		}

		c.lruList.MoveToBack(element)
		c.hits++
		return entry.payload
	}

	c.misses++
	return nil
}

// Set adiciona ou atualiza um payload no cache
func (c *CoverageCache) Set(key string, payload *models.CoveragePayload) {
	if !c.Enabled() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	expiration := time.Now().Add(c.ttl)

	if element, found := c.cache[key]; found {
		c.lruList.MoveToBack(element)
		entry := element.Value.(*cacheEntry)
		entry.payload = payload
		entry.expiration = expiration
		return
	}

	// Cache cheio: remove o menos recentemente usado
	if c.lruList.Len() >= c.capacity {
		if oldest := c.lruList.Front(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	element := c.lruList.PushBack(&cacheEntry{
		key:        key,
		payload:    payload,
		expiration: expiration,
	})
	c.cache[key] = element
}

// Clear limpa todo o cache
func (c *CoverageCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*list.Element)
	c.lruList.Init()
}

// Stats retorna tamanho, acertos e faltas
func (c *CoverageCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{Size: c.lruList.Len(), Hits: c.hits, Misses: c.misses}
}

// removeElement remove um elemento da lista e do mapa (deve ser chamado com lock)
func (c *CoverageCache) removeElement(element *list.Element) {
	c.lruList.Remove(element)
	entry := element.Value.(*cacheEntry)
	delete(c.cache, entry.key)
}

// CleanupExpired remove todos os itens expirados do cache
func (c *CoverageCache) CleanupExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	removed := 0

	var next *list.Element
	for element := c.lruList.Front(); element != nil; element = next {
		next = element.Next()
		entry := element.Value.(*cacheEntry)

		if now.After(entry.expiration) {
			c.removeElement(element)
			removed++
		}
	}

	return removed
}

// StartCleanupRoutine limpa entradas expiradas periodicamente até o contexto ser cancelado
func (c *CoverageCache) StartCleanupRoutine(ctx context.Context, interval time.Duration, logger *zap.Logger) {
	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if removed := c.CleanupExpired(); removed > 0 {
					logger.Debug("Cache cleanup", zap.Int("removed", removed))
				}
			}
		}
	}()
}
