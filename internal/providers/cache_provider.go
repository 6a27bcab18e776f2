package providers

import (
	json "github.com/goccy/go-json"
	"pitwall/internal/structures"

	"github.com/coocood/freecache"
)

// CacheProviderInterface holds rendered feed bodies keyed by FeedKey.String.
type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
}

// FeedKey identifies one rendered feed body. Feeds only grow and records
// never change, so a body is valid for as long as its feed exists.
type FeedKey struct {
	Session string `json:"session"`
	FeedID  string `json:"feed"`
	Len     int    `json:"len"`
	Filters string `json:"filters"`
	Limit   int    `json:"limit"`
}

// String encodes the key as JSON so free-form filter values cannot run into
// the neighbouring fields.
func (k FeedKey) String() string {
	data, _ := json.Marshal(k)
	return "feed:" + string(data)
}

// FeedCache is a freecache-backed store for rendered feed bodies.
type FeedCache struct {
	cache *freecache.Cache
	ttl   int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Feed cache off, every feed request renders")
		return &noopCache{}
	}

	ttl := max(int(conf.Cache.TTL.Seconds()), 1)
	logger.Infof(TypeApp, "Feed cache on: %dMB, bodies kept %ds", conf.Cache.Size, ttl)

	return &FeedCache{
		cache: freecache.NewCache(conf.Cache.Size << 20),
		ttl:   ttl,
	}
}

func (c *FeedCache) Get(key string) ([]byte, bool) {
	body, err := c.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return body, true
}

func (c *FeedCache) Set(key string, body []byte) {
	_ = c.cache.Set([]byte(key), body, c.ttl)
}

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool) { return nil, false }
func (n *noopCache) Set(_ string, _ []byte)      {}
