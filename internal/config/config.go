package config // package config loads application configuration from environment variables

import (
    "log"  // log is used to report configuration errors and halt execution
    "os"   // os provides access to environment variables
    "time" // time is used for scan de-duplication TTLs
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  The service renders pages and forwards every
// business operation to the external booking platform, so most of the
// configuration is about where that platform lives.
type Config struct {
    Env             string        // application environment (e.g. "dev", "prod")
    Port            string        // HTTP port to listen on
    APIBaseURL      string        // browser-facing base URL of the booking API gateway
    APIInternalURL  string        // service-to-service base URL (gateway reachable inside the deployment network)
    CookieName      string        // name of the session cookie holding the auth payload
    ScanDedupTTL    time.Duration // how long a scanned booking code is remembered to drop repeats
    AutoTLSDomain   string        // when set, serve HTTPS via ACME for this domain
    AutoTLSCacheDir string        // directory where ACME certificates are cached
}

// Load reads configuration values from environment variables and returns a
// Config.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.  The internal API
// base URL falls back to the public one for single-network deployments.
// Neither base URL is validated here; a bad value surfaces as failed
// requests against the API.
func Load() Config {
    cfg := Config{
        Env:             must("APP_ENV"),      // environment (dev/test/prod)
        Port:            must("APP_PORT"),     // port to bind the HTTP server
        APIBaseURL:      must("API_BASE_URL"), // e.g. http://localhost:3000/api
        APIInternalURL:  os.Getenv("API_INTERNAL_URL"),
        CookieName:      getenv("SESSION_COOKIE_NAME", "token"),
        ScanDedupTTL:    parseDur(getenv("SCAN_DEDUP_TTL", "30s")),
        AutoTLSDomain:   os.Getenv("AUTO_TLS_DOMAIN"),
        AutoTLSCacheDir: getenv("AUTO_TLS_CACHE_DIR", ".autocert"),
    }
    if cfg.APIInternalURL == "" {
        cfg.APIInternalURL = cfg.APIBaseURL
    }
    return cfg
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
