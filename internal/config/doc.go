// Package config loads and validates configuration for the retreat
// directory server from environment variables.
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // every problem is reported at once
//	}
//
// # Environment Variables
//
//	SERVER_PORT               - HTTP port (default: 8080)
//	SERVER_ENV                - development, production or test
//	SERVER_READ_TIMEOUT       - e.g. 15s
//	SERVER_WRITE_TIMEOUT      - e.g. 15s
//	CORS_ALLOWED_ORIGINS      - comma separated (default: *)
//	LOG_LEVEL                 - debug, info, warn or error
//	CATALOG_SOURCE            - embedded, file or surrealdb
//	CATALOG_PATH              - YAML or TOML definitions when CATALOG_SOURCE=file
//	CATALOG_WATCH             - reload when CATALOG_PATH changes
//	CATALOG_REFRESH_INTERVAL  - periodic reload, 0 disables
//	DB_HOST, DB_PORT, DB_NAMESPACE, DB_DATABASE, DB_USER, DB_PASSWORD
//	RATE_LIMIT_RPM            - requests per minute per client IP, 0 disables
//	RATE_LIMIT_BURST          - extra requests allowed above the rate
package config
