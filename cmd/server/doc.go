// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

/*
Package main is the entry point for the Mercatus server application.

Mercatus is a product catalog analytics engine that serves filtered product
listings, item and query recommendations, review sentiment summaries,
category price comparisons, store policy lookups, and a chat-style
assistant over CSV-backed catalog data held in an in-memory snapshot.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("mercatus")
	├── CatalogSupervisor ("catalog-layer")
	│   └── Stats Service (snapshot gauges, uptime)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (REST API + Swagger)

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Catalog Store: CSV sources parsed into an immutable snapshot
 4. Supervisor Tree: Suture v4 process supervision
 5. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	PORT=8080                    # HTTP server port
	HOST=0.0.0.0                 # Bind address
	HTTP_TIMEOUT=30s             # Read/write timeout
	ENVIRONMENT=development      # development, staging, production

	# Catalog
	DATA_DIR=data                # Directory with the CSV sources
	REFRESH_WINDOW=30s           # Snapshot trust window

	# API limits
	API_DEFAULT_PAGE_SIZE=100    # Result cap for product listings
	API_MAX_PAGE_SIZE=500        # Upper bound callers may raise the cap to

	# Security
	RATE_LIMIT_REQS=100          # Requests per window per IP
	RATE_LIMIT_WINDOW=1m         # Rate limit window
	DISABLE_RATE_LIMIT=false     # Disable rate limiting entirely
	CORS_ORIGINS=*               # Comma-separated allowed origins

	# Logging
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	LOG_CALLER=false             # Include caller file:line

A YAML config file is read from config.yaml, config.yml,
/etc/mercatus/config.yaml or /etc/mercatus/config.yml, or from the path
named by CONFIG_PATH.

# Catalog Data

DATA_DIR must contain three CSV files:

	products.csv        # id, name, brand, category, price, description, stock, rating
	reviews.csv         # product_id, rating, text, date
	store_policies.csv  # policy_type, description, conditions, timeframe

Extra columns are ignored; a missing required column fails the load. The
catalog loads lazily on the first query. Once the trust window elapses, the
next query compares source modification times and reloads only when a file
changed. A failed reload keeps serving the previous snapshot.

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:

 1. Stops accepting new HTTP connections
 2. Waits for in-flight requests (10s timeout)
 3. Stops the stats service
 4. Reports any services that failed to stop

# Usage Examples

Development (console logging):

	export LOG_FORMAT=console
	export DATA_DIR=./data
	go run ./cmd/server

Production:

	export ENVIRONMENT=production
	export DATA_DIR=/var/lib/mercatus/data
	./mercatus

Docker:

	docker run -d \
	  -v $(pwd)/data:/data \
	  -e DATA_DIR=/data \
	  -p 8080:8080 \
	  ghcr.io/tomtom215/mercatus

# API Documentation

Swagger documentation is available at /swagger/index.html when the server
is running. Endpoints are organized into categories:

  - core: Health checks, readiness probes, catalog status
  - catalog: Product listing, recommendations, price comparison
  - reviews: Review listing and sentiment summaries
  - policies: Return and warranty policy resolution
  - chat: Natural-language assistant over catalog intents

Prometheus metrics are exposed at /metrics.

# See Also

  - internal/config: Configuration management
  - internal/catalog: CSV loading and snapshot lifecycle
  - internal/supervisor: Process supervision
  - internal/api: HTTP handlers and routing
*/
package main
