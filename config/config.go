// Package config provides configuration management for the saga coordinator.
package config

import (
	"fmt"
	"time"
)

// Config is the global configuration for the coordinator.
type Config struct {
	// App is the application configuration.
	App AppConfig `mapstructure:"app" validate:"required"`

	// Server is the HTTP server configuration.
	Server ServerConfig `mapstructure:"server" validate:"required"`

	// Log is the logging configuration.
	Log LogConfig `mapstructure:"log" validate:"required"`

	// Budget bounds the downstream call chain of one inbound request.
	Budget BudgetConfig `mapstructure:"budget"`

	// Services maps every downstream microservice to its base URL.
	Services ServicesConfig `mapstructure:"services" validate:"required"`

	// Metrics is the observability configuration.
	Metrics MetricsConfig `mapstructure:"metrics"`

	// Tracing is the distributed tracing configuration.
	Tracing TracingConfig `mapstructure:"tracing"`

	// Events configures the saga event stream.
	Events EventsConfig `mapstructure:"events"`

	// RateLimit configures per-client ingress rate limiting.
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// AppConfig holds application metadata and settings.
type AppConfig struct {
	// Name is the application name.
	Name string `mapstructure:"name" validate:"required"`

	// Version is the application version.
	Version string `mapstructure:"version"`

	// Environment is the runtime environment (development, staging, production).
	Environment string `mapstructure:"environment" validate:"oneof=development staging production"`

	// Debug enables debug mode with verbose logging.
	Debug bool `mapstructure:"debug"`
}

// ServerConfig holds the HTTP server configuration.
type ServerConfig struct {
	// Host is the bind address.
	Host string `mapstructure:"host"`

	// Port is the HTTP API port.
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`

	// HTTP is the HTTP server configuration.
	HTTP HTTPConfig `mapstructure:"http"`

	// CORS is the CORS configuration.
	CORS CORSConfig `mapstructure:"cors"`
}

// HTTPConfig holds HTTP-specific settings.
type HTTPConfig struct {
	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration before timing out writes.
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// IdleTimeout is the maximum amount of time to wait for the next request.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown.
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// MaxHeaderBytes limits the size of request headers.
	MaxHeaderBytes int `mapstructure:"max_header_bytes"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	// Enabled enables CORS support.
	Enabled bool `mapstructure:"enabled"`

	// AllowedOrigins is the list of allowed origins.
	AllowedOrigins []string `mapstructure:"allowed_origins"`

	// AllowedMethods is the list of allowed HTTP methods.
	AllowedMethods []string `mapstructure:"allowed_methods"`

	// AllowedHeaders is the list of allowed headers.
	AllowedHeaders []string `mapstructure:"allowed_headers"`

	// ExposedHeaders is the list of headers exposed to the client.
	ExposedHeaders []string `mapstructure:"exposed_headers"`

	// AllowCredentials indicates whether credentials are allowed.
	AllowCredentials bool `mapstructure:"allow_credentials"`

	// MaxAge is the maximum age of CORS preflight cache in seconds.
	MaxAge int `mapstructure:"max_age"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`

	// Format is the output format (json, text).
	Format string `mapstructure:"format" validate:"oneof=json text"`

	// Output is the output destination (stdout, stderr, or file path).
	Output string `mapstructure:"output"`
}

// BudgetConfig holds the time budget settings.
type BudgetConfig struct {
	// Default is the initial remaining-time allowance granted to the
	// downstream call chain of one inbound request.
	Default time.Duration `mapstructure:"default" validate:"min=0"`
}

// ServicesConfig holds the base URL of every downstream microservice plus
// the public endpoints the coordinator embeds into payloads it produces.
type ServicesConfig struct {
	// Users is the users microservice base URL.
	Users string `mapstructure:"users" validate:"required,base_url"`

	// Stores is the stores microservice base URL.
	Stores string `mapstructure:"stores" validate:"required,base_url"`

	// Orders is the orders microservice base URL.
	Orders string `mapstructure:"orders" validate:"required,base_url"`

	// Billing is the billing microservice base URL.
	Billing string `mapstructure:"billing" validate:"required,base_url"`

	// Warehouses is the warehouses microservice base URL.
	Warehouses string `mapstructure:"warehouses" validate:"required,base_url"`

	// Delivery is the delivery microservice base URL.
	Delivery string `mapstructure:"delivery" validate:"required,base_url"`

	// Notifications is the notifications microservice base URL.
	Notifications string `mapstructure:"notifications" validate:"required,base_url"`

	// Cluster is the public storefront base URL, used to build the links
	// embedded in order notifications.
	Cluster string `mapstructure:"cluster" validate:"omitempty,base_url"`

	// PaymentPage is the public payment page base URL; the invoice id is
	// appended to produce the payment link returned by the order workflows.
	PaymentPage string `mapstructure:"payment_page" validate:"omitempty,base_url"`
}

// MetricsConfig holds observability settings.
type MetricsConfig struct {
	// Enabled enables metrics collection.
	Enabled bool `mapstructure:"enabled"`

	// Path is the metrics endpoint path.
	Path string `mapstructure:"path"`
}

// TracingConfig holds distributed tracing settings.
type TracingConfig struct {
	// Enabled enables distributed tracing.
	Enabled bool `mapstructure:"enabled"`

	// Endpoint is the OTLP gRPC collector endpoint.
	Endpoint string `mapstructure:"endpoint"`

	// Insecure disables transport security towards the collector.
	Insecure bool `mapstructure:"insecure"`

	// SampleRate is the fraction of traces to sample (0.0-1.0).
	SampleRate float64 `mapstructure:"sample_rate" validate:"min=0,max=1"`
}

// EventsConfig holds the saga event stream settings.
type EventsConfig struct {
	// BufferSize is the per-subscriber channel capacity. Slow subscribers
	// above this backlog lose events instead of blocking the engine.
	BufferSize int `mapstructure:"buffer_size" validate:"min=1"`

	// PingInterval is the websocket keepalive ping interval.
	PingInterval time.Duration `mapstructure:"ping_interval"`
}

// RateLimitConfig holds ingress rate limiting settings.
type RateLimitConfig struct {
	// Enabled enables rate limiting on the workflow endpoints.
	Enabled bool `mapstructure:"enabled"`

	// RPS is the sustained allowance per client.
	RPS float64 `mapstructure:"rps" validate:"min=0"`

	// Burst is the instantaneous allowance per client.
	Burst int `mapstructure:"burst" validate:"min=0"`
}

// Validate performs validation on the configuration.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// String returns a string representation of the configuration (without sensitive data).
func (c *Config) String() string {
	return fmt.Sprintf("Config{App: %s, Server: :%d, Env: %s}",
		c.App.Name, c.Server.Port, c.App.Environment)
}
