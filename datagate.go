package datagate

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aretw0/datagate/internal/adapters/file"
	"github.com/aretw0/datagate/internal/adapters/memory"
	"github.com/aretw0/datagate/internal/adapters/redis"
	"github.com/aretw0/datagate/internal/config"
	"github.com/aretw0/datagate/internal/logging"
	"github.com/aretw0/datagate/internal/metrics"
	"github.com/aretw0/datagate/internal/validator"
	"github.com/aretw0/datagate/pkg/common"
	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/ports"
	"github.com/aretw0/datagate/pkg/schema"
	"github.com/prometheus/client_golang/prometheus"
)

// Gate is the high-level entry point for the datagate library.
// It wires configuration, the validator and the optional sinks together.
// Runs on the same Gate are serialized because they share one status file.
type Gate struct {
	validator *validator.Validator
	manager   *config.Manager
	utils     *common.Utils
	store     ports.StatusStore
	mirror    *redis.StatusMirror
	logger    *slog.Logger

	mu sync.Mutex
}

type options struct {
	logger     *slog.Logger
	registerer prometheus.Registerer
	loader     ports.TableLoader
	store      ports.StatusStore
	sinks      []ports.ReportSink
	hooks      domain.ValidationHooks
	noRedis    bool
	noDirs     bool
}

// Option defines a functional option for configuring the Gate.
type Option func(*options)

// WithLogger sets the logger used by every component.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRegisterer exports validation metrics on reg.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// WithTableLoader replaces the CSV loader.
func WithTableLoader(loader ports.TableLoader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithStatusStore replaces the filesystem status store.
func WithStatusStore(store ports.StatusStore) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithSinks publishes every report to the given sinks.
func WithSinks(sinks ...ports.ReportSink) Option {
	return func(o *options) {
		o.sinks = append(o.sinks, sinks...)
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.ValidationHooks) Option {
	return func(o *options) {
		o.hooks = hooks
	}
}

// WithoutRedis ignores the redis section of config.yaml.
func WithoutRedis() Option {
	return func(o *options) {
		o.noRedis = true
	}
}

// WithDryRun validates without side effects on disk or Redis. Reports are kept in
// memory, the redis section is ignored and no artifact directories are created.
func WithDryRun() Option {
	return func(o *options) {
		o.store = memory.NewStatusStore()
		o.noRedis = true
		o.noDirs = true
	}
}

// New reads configPath and schemaPath and prepares a Gate.
// Empty paths fall back to config/config.yaml and schema.yaml.
func New(configPath, schemaPath string, opts ...Option) (*Gate, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.NewNop()
	}
	if o.store == nil {
		o.store = file.NewStatusStore()
	}

	utils := common.New(o.logger)
	var managerOpts []config.ManagerOption
	if o.noDirs {
		managerOpts = append(managerOpts, config.WithoutDirectories())
	}
	manager, err := config.NewManager(utils, o.logger, configPath, schemaPath, managerOpts...)
	if err != nil {
		return nil, err
	}
	cfg, err := manager.DataValidationConfig()
	if err != nil {
		return nil, err
	}

	g := &Gate{
		manager: manager,
		utils:   utils,
		store:   o.store,
		logger:  o.logger,
	}

	sinks := o.sinks
	if rc := manager.Config().Redis; rc.Enabled() && !o.noRedis {
		g.mirror = redis.New(rc.Addr, rc.Password, rc.DB,
			redis.WithPrefix(rc.Prefix),
			redis.WithHistory(rc.History),
		)
		sinks = append(sinks, g.mirror)
	}

	hooks := o.hooks
	if o.registerer != nil {
		collector, err := metrics.New(o.registerer)
		if err != nil {
			return nil, err
		}
		hooks = collector.Hooks().Merge(hooks)
	}

	g.validator = validator.New(cfg, o.loader,
		validator.WithLogger(o.logger),
		validator.WithStatusStore(o.store),
		validator.WithSinks(sinks...),
		validator.WithHooks(hooks),
	)
	return g, nil
}

// Validate runs the validation and reports whether the dataset conforms.
func (g *Gate) Validate(ctx context.Context) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.validator.Validate(ctx)
}

// Run runs the validation and returns the full report.
func (g *Gate) Run(ctx context.Context) (*domain.Report, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.validator.Run(ctx)
}

// Status reads back the last status file.
// Returns domain.ErrStatusNotFound if no run has written one yet.
func (g *Gate) Status() (*ports.StatusRecord, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.store.Read(g.validator.Config().StatusPath)
}

// LatestMirrored returns the last report mirrored to Redis.
func (g *Gate) LatestMirrored(ctx context.Context) (*domain.Report, error) {
	if g.mirror == nil {
		return nil, errors.New("redis mirror is not configured")
	}
	return g.mirror.Latest(ctx)
}

// Config returns the validation record built from config.yaml and schema.yaml.
func (g *Gate) Config() domain.ValidationConfig {
	return g.validator.Config()
}

// Schema returns the expected columns.
func (g *Gate) Schema() schema.Schema {
	return g.manager.Schema()
}

// ServerPort returns the configured HTTP port.
func (g *Gate) ServerPort() string {
	return g.manager.Config().Server.Port
}

// Utils returns the file helpers bound to the Gate's logger.
func (g *Gate) Utils() *common.Utils {
	return g.utils
}

// Logger returns the Gate's logger.
func (g *Gate) Logger() *slog.Logger {
	return g.logger
}

// Close releases the Redis connection, if any.
func (g *Gate) Close() error {
	if g.mirror != nil {
		return g.mirror.Close()
	}
	return nil
}
