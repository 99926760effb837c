// Package config loads bookfinder's TOML configuration.
//
// The file lives at ~/.config/bookfinder/config.toml unless a path is given.
// A missing file is not an error: Load returns Default(). Every key is
// optional. String values are trimmed, and empty strings fall back to their
// defaults.
//
//	search_url          = "https://openlibrary.org/search.json"
//	covers_url          = "https://covers.openlibrary.org"
//	user_agent          = "bookfinder/0.1"
//	request_timeout     = "10s"   # unset or "0s" keeps the transport default
//	requests_per_second = 5.0     # 0 disables pacing
//	log_file            = "~/.local/state/bookfinder/bookfinder.log"
//	log_level           = "info"  # debug, info, warn, error
//	metrics_addr        = ""      # e.g. "127.0.0.1:9464" to expose /metrics
//
// A malformed file, or a request_timeout that does not parse as a
// non-negative Go duration, is reported as an error. The caller treats it as
// fatal at startup.
package config
