package table

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/voxel-oss/dynamodel/envconf"
	"github.com/voxel-oss/dynamodel/logger"
	"github.com/voxel-oss/dynamodel/schema"
)

// Registry holds the table definitions of a process and hands out their
// accessors. All methods are safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	client Client
	cfg    Config
	log    zerolog.Logger
	valid  *schema.Validator
	defs   map[string]Definition
	order  []string

	cfgSet bool
	logSet bool
}

// Option customizes a Registry at construction time.
type Option func(*Registry)

// WithConfig supplies the mapper settings explicitly instead of loading
// them from the environment.
func WithConfig(cfg Config) Option {
	return func(r *Registry) {
		r.cfg = cfg
		r.cfgSet = true
	}
}

// WithLogger replaces the logger built from Config.Log.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Registry) {
		r.log = log
		r.logSet = true
	}
}

// WithValidator replaces the default validator, e.g. one carrying custom
// constraints or a deterministic identifier generator for tests.
func WithValidator(v *schema.Validator) Option {
	return func(r *Registry) { r.valid = v }
}

// New builds a registry on top of a DynamoDB client. Without WithConfig
// the settings come from the DYNAMODEL_* environment variables.
func New(client Client, opts ...Option) *Registry {
	r := &Registry{
		client: client,
		defs:   make(map[string]Definition),
	}
	for _, opt := range opts {
		opt(r)
	}
	if !r.cfgSet {
		cfg := Config{}
		if err := envconf.Load(&cfg); err == nil {
			r.cfg = cfg
		}
	}
	if !r.logSet {
		r.log = logger.Configure(r.cfg.Log)
	}
	if r.valid == nil {
		r.valid = schema.New()
	}
	return r
}

// Define registers a table definition and returns its accessor. Redefining
// an existing name is a DefinitionError; use Reset to start over.
func (r *Registry) Define(def Definition) (*Accessor, error) {
	if err := def.validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[def.Name]; exists {
		return nil, &DefinitionError{Table: def.Name, Reason: "already defined"}
	}
	r.defs[def.Name] = def
	r.order = append(r.order, def.Name)

	r.log.Info().Str("table", def.Name).Msg("table defined")

	return &Accessor{
		def:    def,
		client: r.client,
		cfg:    r.cfg,
		valid:  r.valid,
		log:    r.log.With().Str("table", def.Name).Logger(),
	}, nil
}

// Definitions returns the registered definitions in registration order,
// for provisioning tooling and introspection.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.defs[name])
	}
	return defs
}

// Reset discards every registered definition. Accessors handed out before
// the reset keep working; only the registry forgets them.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.defs = make(map[string]Definition)
	r.order = nil
	r.log.Info().Msg("registry reset")
}
