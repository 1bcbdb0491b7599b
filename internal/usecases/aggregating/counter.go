package aggregating

import "github.com/vfg2006/downloads-insights/internal/domain"

// counter acumula contagens por chave preservando a ordem da primeira aparição
type counter struct {
	counts map[string]int64
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int64)}
}

func (c *counter) add(key string, n int64) {
	if _, exists := c.counts[key]; !exists {
		c.order = append(c.order, key)
	}
	c.counts[key] += n
}

// max retorna a chave de maior contagem; em empate vence a que apareceu primeiro.
// Retorna nil quando nada foi contado.
func (c *counter) max() *domain.Pair {
	var best *domain.Pair
	for _, key := range c.order {
		if best == nil || c.counts[key] > best.Count {
			best = &domain.Pair{ID: key, Count: c.counts[key]}
		}
	}

	return best
}

func (c *counter) pairs() []domain.Pair {
	pairs := make([]domain.Pair, 0, len(c.order))
	for _, key := range c.order {
		pairs = append(pairs, domain.Pair{ID: key, Count: c.counts[key]})
	}

	return pairs
}
