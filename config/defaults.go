package config

import "time"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name:        "saga-coordinator",
			Version:     "dev",
			Environment: "development",
			Debug:       false,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
			HTTP: HTTPConfig{
				ReadTimeout:     30 * time.Second,
				WriteTimeout:    30 * time.Second,
				IdleTimeout:     120 * time.Second,
				ShutdownTimeout: 30 * time.Second,
				MaxHeaderBytes:  1 << 20, // 1MB
			},
			CORS: CORSConfig{
				Enabled:          true,
				AllowedOrigins:   []string{"*"},
				AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Correlation-Id", "Currency", "Request-Timeout"},
				ExposedHeaders:   []string{},
				AllowCredentials: false,
				MaxAge:           300,
			},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		Budget: BudgetConfig{
			Default: 5 * time.Second,
		},
		Services: ServicesConfig{
			Users:         "http://users",
			Stores:        "http://stores",
			Orders:        "http://orders",
			Billing:       "http://billing",
			Warehouses:    "http://warehouses",
			Delivery:      "http://delivery",
			Notifications: "http://notifications",
			Cluster:       "http://localhost:3000",
			PaymentPage:   "http://localhost:3000/payment",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Tracing: TracingConfig{
			Enabled:    false,
			Endpoint:   "localhost:4317",
			Insecure:   true,
			SampleRate: 0.1,
		},
		Events: EventsConfig{
			BufferSize:   64,
			PingInterval: 30 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
			RPS:     50,
			Burst:   100,
		},
	}
}
