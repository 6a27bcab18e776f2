package feed

import (
	"errors"
	"math/rand/v2"
	"pitwall/internal/models"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

const (
	DefaultInterval  = 5 * time.Second
	DefaultSeedCount = 3
)

type Source string

const (
	SourceSeed      Source = "seed"
	SourceGenerator Source = "generator"
	SourcePrompt    Source = "prompt"
)

// Sink observes every record right after it is appended to the feed.
type Sink func(rec models.StatRecord, source Source)

var ErrAlreadyStarted = errors.New("generator already started")

type Options struct {
	Interval  time.Duration
	SeedCount int
	// UnifyKind takes the record kind from the catalog entry instead of
	// drawing it independently.
	UnifyKind bool
	NewTicker TickerFactory
	Rand      *rand.Rand
	Now       func() time.Time
	Sink      Sink
}

// Generator appends synthetic stat records to one feed: SeedCount records
// on Start and then one per Interval until cancelled. A generator is single
// use; a new dashboard mount gets a new generator.
type Generator struct {
	catalog *Catalog
	feed    *models.Feed
	opts    Options
	rndMu   sync.Mutex
	started atomic.Bool
	running atomic.Bool
}

func NewGenerator(catalog *Catalog, feed *models.Feed, opts Options) *Generator {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.SeedCount < 0 {
		opts.SeedCount = 0
	}
	if opts.NewTicker == nil {
		opts.NewTicker = NewWallTicker
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Generator{catalog: catalog, feed: feed, opts: opts}
}

// Next draws one record without appending it. Content comes uniformly from
// the catalog; kind is drawn independently over all four kinds, so a weather
// entry may come out as a video.
func (g *Generator) Next() models.StatRecord {
	g.rndMu.Lock()
	entry := g.catalog.Entries[g.opts.Rand.IntN(len(g.catalog.Entries))]
	kind := models.Kinds[g.opts.Rand.IntN(len(models.Kinds))]
	g.rndMu.Unlock()

	if g.opts.UnifyKind && entry.Kind != "" {
		kind = entry.Kind
	}

	now := g.opts.Now()
	return models.StatRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     entry.Title,
		Content:   entry.Content,
		Timestamp: models.FormatTimestamp(now),
		Driver:    entry.Driver,
		Team:      entry.Team,
		Category:  entry.Category,
		CreatedAt: now,
	}
}

func (g *Generator) emit(source Source) {
	rec := g.Next()
	g.feed.Append(rec)
	if g.opts.Sink != nil {
		g.opts.Sink(rec, source)
	}
}

func (g *Generator) Running() bool {
	return g.running.Load()
}

// Start seeds the feed and launches the interval loop. The returned cancel
// func is idempotent and blocks until the loop has exited; no record is
// appended once it returns.
func (g *Generator) Start() (func(), error) {
	if !g.started.CompareAndSwap(false, true) {
		return nil, ErrAlreadyStarted
	}

	for i := 0; i < g.opts.SeedCount; i++ {
		g.emit(SourceSeed)
	}

	ticker := g.opts.NewTicker(g.opts.Interval)
	done := make(chan struct{})
	exited := make(chan struct{})
	g.running.Store(true)

	go func() {
		defer close(exited)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C():
				// both channels may be ready; cancellation wins
				select {
				case <-done:
					return
				default:
				}
				g.emit(SourceGenerator)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			<-exited
			g.running.Store(false)
		})
	}, nil
}
