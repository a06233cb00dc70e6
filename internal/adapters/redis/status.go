package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/datagate/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// StatusMirror implements ports.ReportSink using Redis.
// It keeps the latest report under one key and a capped history list.
type StatusMirror struct {
	client  *backend.Client
	prefix  string
	history int64
	ttl     time.Duration
}

type Option func(*StatusMirror)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *StatusMirror) {
		s.prefix = prefix
	}
}

// WithHistory sets how many reports the history list keeps.
func WithHistory(n int64) Option {
	return func(s *StatusMirror) {
		s.history = n
	}
}

// WithTTL sets the expiration of the latest report key.
func WithTTL(ttl time.Duration) Option {
	return func(s *StatusMirror) {
		s.ttl = ttl
	}
}

// New creates a new Redis status mirror with options.
func New(address, password string, db int, opts ...Option) *StatusMirror {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis status mirror from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *StatusMirror {
	s := &StatusMirror{
		client:  client,
		prefix:  "datagate:",
		history: 20,
		ttl:     0, // No expiration by default
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *StatusMirror) latestKey() string {
	return s.prefix + "status:latest"
}

func (s *StatusMirror) historyKey() string {
	return s.prefix + "status:history"
}

// Publish stores the report as the latest status and prepends it to the history.
func (s *StatusMirror) Publish(ctx context.Context, report *domain.Report) error {
	data, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.latestKey(), data, s.ttl)
	pipe.LPush(ctx, s.historyKey(), data)
	if s.history > 0 {
		pipe.LTrim(ctx, s.historyKey(), 0, s.history-1)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish to redis: %w", err)
	}
	return nil
}

// Latest returns the most recently published report.
// Returns domain.ErrStatusNotFound if nothing has been published.
func (s *StatusMirror) Latest(ctx context.Context) (*domain.Report, error) {
	val, err := s.client.Get(ctx, s.latestKey()).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, domain.ErrStatusNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(val), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &report, nil
}

// History returns up to n reports, newest first.
func (s *StatusMirror) History(ctx context.Context, n int64) ([]*domain.Report, error) {
	if n <= 0 {
		return nil, nil
	}
	vals, err := s.client.LRange(ctx, s.historyKey(), 0, n-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	reports := make([]*domain.Report, 0, len(vals))
	for _, val := range vals {
		var report domain.Report
		if err := json.Unmarshal([]byte(val), &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		reports = append(reports, &report)
	}
	return reports, nil
}

// Ping checks connectivity.
func (s *StatusMirror) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the redis client.
func (s *StatusMirror) Close() error {
	return s.client.Close()
}
