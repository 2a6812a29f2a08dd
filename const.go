package main

import "time"

const (
	serviceName = "minelab"
	apiVersion  = "1"

	// Mining policy bounds. The hard hash ceiling protects the host from
	// unbounded CPU burn regardless of what a single request asks for.
	minMineDifficulty = 1
	maxMineDifficulty = 7
	hardMaxHashes     = 1_000_000

	// Per-field defaults applied when the request body omits them.
	defaultMineData        = "Hello, Bitcoin!"
	defaultMineDifficulty  = 4
	defaultMineStartNonce  = 0
	defaultMineMaxHashes   = 200_000
	defaultMineTimeLimitMS = 1500

	maxRequestBodyBytes = 1 << 20

	httpReadHeaderTimeout = 10 * time.Second
	httpReadTimeout       = 15 * time.Second
	httpWriteTimeout      = 30 * time.Second
	httpIdleTimeout       = 2 * time.Minute
	shutdownTimeout       = 10 * time.Second

	// Diagnostic endpoint samples at most this many table names.
	diagTableSampleLimit = 10
)
