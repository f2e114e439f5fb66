// Mediapager - Keyset Pagination Engine for Media Catalogues
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mediapager

package pagination

import (
	"context"
	"errors"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/mediapager/internal/cache"
	"github.com/tomtom215/mediapager/internal/config"
	"github.com/tomtom215/mediapager/internal/cursor"
	"github.com/tomtom215/mediapager/internal/database"
	"github.com/tomtom215/mediapager/internal/database/query"
	"github.com/tomtom215/mediapager/internal/logging"
	"github.com/tomtom215/mediapager/internal/metrics"
	"github.com/tomtom215/mediapager/internal/monitor"
)

// Cache operation names.
const (
	OpList  = "media_list"
	OpCount = "media_count"
)

// Store executes listing statements.
type Store interface {
	FetchRows(ctx context.Context, stmt string, args ...interface{}) ([]database.Row, error)
	CountRows(ctx context.Context, stmt string, args ...interface{}) (int64, error)
}

// PageCache stores pages and counts.
type PageCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, payload interface{}, ttl time.Duration) error
	InvalidatePattern(pattern string) (int, error)
}

// Recorder receives one metric per Fetch.
type Recorder interface {
	Record(metric monitor.QueryMetric)
}

// Config holds the listing defaults.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int
	DefaultSort     string
	DefaultOrder    cursor.Order
	PageTTL         time.Duration
	CountTTL        time.Duration
}

// DefaultConfig returns the built-in listing defaults.
func DefaultConfig() Config {
	return Config{
		DefaultPageSize: 20,
		MaxPageSize:     config.HardMaxPageSize,
		DefaultSort:     cursor.IdentifierColumn,
		DefaultOrder:    cursor.OrderDesc,
		PageTTL:         5 * time.Minute,
		CountTTL:        10 * time.Minute,
	}
}

// ConfigFrom maps the application configuration onto a service Config.
func ConfigFrom(cfg *config.Config) Config {
	return Config{
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
		DefaultSort:     cfg.Pagination.DefaultSort,
		DefaultOrder:    cursor.ParseOrder(cfg.Pagination.DefaultOrder),
		PageTTL:         cfg.Cache.PageTTL,
		CountTTL:        cfg.Cache.CountTTL,
	}
}

// Request is one listing request. Zero values select the defaults.
type Request struct {
	Filters   query.Filters
	Cursor    string
	Direction cursor.Direction
	Limit     int
	SortBy    string
	SortOrder cursor.Order
}

// Page is one page of a listing.
type Page struct {
	Rows          []database.Row   `json:"rows"`
	NextCursor    *string          `json:"next_cursor"`
	PrevCursor    *string          `json:"prev_cursor"`
	HasMore       bool             `json:"has_more"`
	TotalEstimate *int64           `json:"total_estimate,omitempty"`
	SortField     string           `json:"sort_field"`
	Direction     cursor.Direction `json:"direction"`
	CacheHit      bool             `json:"cache_hit"`
	QueryTime     time.Duration    `json:"query_time"`
}

// Option configures a Service.
type Option func(*Service)

// WithCache enables page caching.
func WithCache(c PageCache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithRecorder reports every Fetch to r.
func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		s.recorder = r
	}
}

// Service serves keyset-paginated listings.
type Service struct {
	store    Store
	registry *cursor.Registry
	cfg      Config
	cache    PageCache
	recorder Recorder
	group    singleflight.Group
}

// NewService creates a listing service. Missing page sizes fall back to
// DefaultConfig and the maximum is capped at config.HardMaxPageSize.
func NewService(store Store, registry *cursor.Registry, cfg Config, opts ...Option) *Service {
	def := DefaultConfig()
	if cfg.MaxPageSize <= 0 || cfg.MaxPageSize > config.HardMaxPageSize {
		cfg.MaxPageSize = def.MaxPageSize
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = def.DefaultPageSize
	}
	if cfg.DefaultPageSize > cfg.MaxPageSize {
		cfg.DefaultPageSize = cfg.MaxPageSize
	}
	if cfg.DefaultOrder == "" {
		cfg.DefaultOrder = def.DefaultOrder
	}

	s := &Service{
		store:    store,
		registry: registry,
		cfg:      cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// plan is a request after defaults, clamping and cursor decoding.
type plan struct {
	sort      cursor.Spec
	direction cursor.Direction
	limit     int
	position  *cursor.Position
	token     string
	filters   query.Filters
}

func (s *Service) resolve(ctx context.Context, req Request) plan {
	log := logging.Ctx(ctx)

	name := req.SortBy
	if name == "" {
		name = s.cfg.DefaultSort
	}
	field, err := s.registry.Resolve(name)
	if err != nil {
		metrics.InvalidSortFields.Inc()
		log.Warn().Str("sort_by", name).Str("fallback", field.Name).Msg("Unknown sort field")
	}

	order := req.SortOrder
	if order != cursor.OrderAsc && order != cursor.OrderDesc {
		order = s.cfg.DefaultOrder
	}

	p := plan{
		sort:      cursor.Spec{Field: field, Order: order},
		direction: req.Direction,
		limit:     s.clampLimit(req.Limit),
		filters:   req.Filters,
	}

	if req.Cursor != "" {
		pos, err := cursor.Decode(req.Cursor, field)
		if err != nil {
			metrics.InvalidCursors.Inc()
			log.Debug().Err(err).Str("cursor", req.Cursor).Str("sort_by", field.Name).Msg("Ignoring invalid cursor")
		} else {
			p.position = &pos
			p.token = req.Cursor
		}
	}
	if p.position == nil || p.direction != cursor.DirectionPrev {
		p.direction = cursor.DirectionNext
	}
	return p
}

func (s *Service) clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return s.cfg.DefaultPageSize
	case limit > s.cfg.MaxPageSize:
		return s.cfg.MaxPageSize
	default:
		return limit
	}
}

func (p plan) cacheKey() string {
	pairs := p.filters.Pairs()
	pairs["cursor"] = p.token
	pairs["direction"] = string(p.direction)
	pairs["limit"] = strconv.Itoa(p.limit)
	pairs["sort"] = p.sort.Field.Name + ":" + string(p.sort.Order)
	return cache.Key(OpList, pairs)
}

// Fetch returns one page of the listing described by req.
func (s *Service) Fetch(ctx context.Context, req Request) (*Page, error) {
	start := time.Now()
	p := s.resolve(ctx, req)
	key := p.cacheKey()

	if page, ok := s.cached(key); ok {
		page.CacheHit = true
		page.QueryTime = time.Since(start)
		s.observe(p, page, nil, start)
		return page, nil
	}

	// The shared load outlives any one caller; the store's query timeout
	// bounds it. Each caller stops waiting when its own context ends.
	ch := s.group.DoChan(key, func() (interface{}, error) {
		lctx := context.WithoutCancel(ctx)
		page, err := s.load(lctx, p)
		if err != nil {
			return nil, err
		}
		s.put(lctx, key, page, s.cfg.PageTTL)
		return page, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		s.observe(p, nil, ctx.Err(), start)
		return nil, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		s.observe(p, nil, res.Err, start)
		return nil, res.Err
	}

	page := *res.Val.(*Page)
	page.QueryTime = time.Since(start)
	s.observe(p, &page, nil, start)
	return &page, nil
}

// cached returns a copy of the page stored under key.
func (s *Service) cached(key string) (*Page, bool) {
	if s.cache == nil {
		return nil, false
	}
	v, ok := s.cache.Get(key)
	if !ok {
		return nil, false
	}
	page, ok := v.(*Page)
	if !ok {
		return nil, false
	}
	cp := *page
	return &cp, true
}

func (s *Service) put(ctx context.Context, key string, payload interface{}, ttl time.Duration) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(key, payload, ttl); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("key", key).Msg("Failed to cache result")
	}
}

func (s *Service) load(ctx context.Context, p plan) (*Page, error) {
	stmt, args := query.BuildPage(query.PageQuery{
		Filters:   p.filters,
		Position:  p.position,
		Direction: p.direction,
		Sort:      p.sort,
		Limit:     p.limit,
	})

	var (
		rows  []database.Row
		total *int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rows, err = s.store.FetchRows(gctx, stmt, args...)
		if err != nil {
			return &StorageError{Op: "fetch page", Err: err}
		}
		return nil
	})
	if p.position == nil {
		g.Go(func() error {
			total = s.count(gctx, p.filters)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	hasMore := len(rows) > p.limit
	if hasMore {
		rows = rows[:p.limit]
	}
	if p.direction == cursor.DirectionPrev {
		reverse(rows)
	}

	page := &Page{
		Rows:          rows,
		HasMore:       hasMore,
		TotalEstimate: total,
		SortField:     p.sort.Field.Name,
		Direction:     p.direction,
	}
	s.deriveCursors(page, p)
	return page, nil
}

// count returns the cached or freshly counted total. Failures only cost the
// estimate, so they are logged and reported as nil.
func (s *Service) count(ctx context.Context, f query.Filters) *int64 {
	key := cache.Key(OpCount, f.Pairs())
	if s.cache != nil {
		if v, ok := s.cache.Get(key); ok {
			if n, ok := v.(int64); ok {
				return &n
			}
		}
	}

	stmt, args := query.BuildCount(f)
	n, err := s.store.CountRows(ctx, stmt, args...)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to count listing, omitting total")
		}
		return nil
	}
	s.put(ctx, key, n, s.cfg.CountTTL)
	return &n
}

func (s *Service) deriveCursors(page *Page, p plan) {
	if len(page.Rows) == 0 {
		// Nothing lies beyond the cursor; hand it back so the client can turn around.
		if p.position != nil {
			token := p.token
			if p.direction == cursor.DirectionPrev {
				page.NextCursor = &token
			} else {
				page.PrevCursor = &token
			}
		}
		return
	}
	first := page.Rows[0]
	last := page.Rows[len(page.Rows)-1]

	if p.direction == cursor.DirectionPrev {
		if page.HasMore {
			page.PrevCursor = s.encode(first, p.sort.Field)
		}
		page.NextCursor = s.encode(last, p.sort.Field)
		return
	}

	if page.HasMore {
		page.NextCursor = s.encode(last, p.sort.Field)
	}
	if p.position != nil {
		page.PrevCursor = s.encode(first, p.sort.Field)
	}
}

func (s *Service) encode(row database.Row, field cursor.Field) *string {
	id, ok := rowID(row)
	if !ok {
		logging.Warn().Interface("id", row[cursor.IdentifierColumn]).Msg("Row without integer id, cursor omitted")
		return nil
	}
	var primary interface{}
	if field.Kind.Composite() {
		primary = row[field.Column]
	}
	token := cursor.Encode(field, primary, id)
	return &token
}

func rowID(row database.Row) (int64, bool) {
	switch v := row[cursor.IdentifierColumn].(type) {
	case int64:
		return v, true
	case int32:
		return int64(v), true
	case int:
		return int64(v), true
	case float64:
		return int64(v), v == float64(int64(v))
	default:
		return 0, false
	}
}

func reverse(rows []database.Row) {
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}

func (s *Service) observe(p plan, page *Page, err error, start time.Time) {
	latency := time.Since(start)
	rows := 0
	hit := false
	if page != nil {
		rows = len(page.Rows)
		hit = page.CacheHit
	}
	metrics.RecordPage(p.sort.Field.Name, string(p.direction), hit, rows, latency)

	if s.recorder == nil {
		return
	}
	s.recorder.Record(monitor.QueryMetric{
		Operation:    OpList + ":" + p.sort.Field.Name,
		Latency:      latency,
		RowsReturned: rows,
		CacheHit:     hit,
		FilterCount:  p.filters.Count(),
		UsedCursor:   p.position != nil,
		Err:          err,
	})
}
