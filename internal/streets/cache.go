package streets

import "sync"

// Cache memoizes generated networks per Config. It is safe for concurrent use and
// hands out the same *Network for every request with an equal Config.
type Cache struct {
	mu       *sync.Mutex
	networks map[Config]*Network
}

func NewCache() *Cache {
	return &Cache{
		mu:       &sync.Mutex{},
		networks: make(map[Config]*Network),
	}
}

// Get returns the network for cfg, generating it on first use.
func (c *Cache) Get(cfg Config) *Network {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.networks[cfg]; ok {
		return n
	}
	n := Generate(cfg)
	c.networks[cfg] = n
	return n
}

// Len returns the number of memoized networks.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.networks)
}
