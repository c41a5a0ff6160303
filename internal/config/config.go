// Package config provides functionality for managing configuration options
// for the application using a JSON config file, command-line flags and
// environment variables (in increasing order of precedence).
package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Options holds the configuration values for the application.
type Options struct {
	// Port defines the server's listening address (ip:port).
	Port string `json:"server_address" env:"SERVER_ADDRESS"`

	// DataDir is the directory holding one JSON file per resource.
	DataDir string `json:"data_dir" env:"DATA_DIR"`

	// DatabaseDSN switches storage to Postgres when set.
	DatabaseDSN string `json:"database_dsn" env:"DATABASE_DSN"`

	// InMemory keeps records in process memory only.
	InMemory bool `json:"in_memory" env:"IN_MEMORY"`

	EnablePprof bool `json:"enable_pprof" env:"ENABLE_PPROF"`

	// EnableHTTPS serves on :443 with autocert certificates for TLSHosts.
	EnableHTTPS bool     `json:"enable_https" env:"ENABLE_HTTPS"`
	TLSHosts    []string `json:"tls_hosts" env:"TLS_HOSTS" envSeparator:","`

	// TrustedSubnet restricts /metrics to a CIDR. Empty means unrestricted.
	TrustedSubnet string `json:"trusted_subnet" env:"TRUSTED_SUBNET"`

	LogLevel string `json:"log_level" env:"LOG_LEVEL"`

	// Timezone is the IANA zone used to bucket feedings by day.
	Timezone string `json:"chart_tz" env:"CHART_TZ"`

	// RateLimit is the number of mutating requests per second allowed per client.
	RateLimit float64 `json:"rate_limit_rps" env:"RATE_LIMIT_RPS"`
	RateBurst int     `json:"rate_limit_burst" env:"RATE_LIMIT_BURST"`

	// MaxBodyBytes caps JSON request bodies; image data URLs need a few MB.
	MaxBodyBytes int64 `json:"max_body_bytes" env:"MAX_BODY_BYTES"`

	// Config is the path of the JSON config file.
	Config string `json:"-" env:"CONFIG"`
}

func defaults() *Options {
	return &Options{
		Port:         "localhost:8080",
		DataDir:      "data",
		TLSHosts:     []string{"catfeed.website", "www.catfeed.website"},
		LogLevel:     "info",
		Timezone:     "Local",
		RateLimit:    10,
		RateBurst:    20,
		MaxBodyBytes: 8 << 20,
	}
}

// bind registers flags on fs; the current values of o are the flag defaults.
func bind(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.Port, "a", o.Port, "run on ip:port server")
	fs.StringVar(&o.DataDir, "f", o.DataDir, "directory for resource files")
	fs.StringVar(&o.DatabaseDSN, "d", o.DatabaseDSN, "postgres dsn")
	fs.BoolVar(&o.InMemory, "m", o.InMemory, "keep records in memory only")
	fs.BoolVar(&o.EnablePprof, "p", o.EnablePprof, "enable pprof")
	fs.BoolVar(&o.EnableHTTPS, "s", o.EnableHTTPS, "enable https")
	fs.Func("hosts", "comma separated hosts for TLS certificates", func(v string) error {
		o.TLSHosts = splitList(v)
		return nil
	})
	fs.StringVar(&o.TrustedSubnet, "t", o.TrustedSubnet, "trusted subnet (CIDR) for /metrics")
	fs.StringVar(&o.LogLevel, "l", o.LogLevel, "log level")
	fs.StringVar(&o.Timezone, "tz", o.Timezone, "time zone for daily feeding counts")
	fs.Float64Var(&o.RateLimit, "r", o.RateLimit, "mutating requests per second per client")
	fs.IntVar(&o.RateBurst, "burst", o.RateBurst, "rate limiter burst")
	fs.Int64Var(&o.MaxBodyBytes, "max-body", o.MaxBodyBytes, "max JSON body size in bytes")
	fs.StringVar(&o.Config, "c", o.Config, "path to JSON config file")
}

// Parse reads the configuration for the process arguments and environment.
func Parse() (*Options, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs builds Options from defaults, the config file, args and the
// environment.
func ParseArgs(args []string) (*Options, error) {
	options := defaults()

	// first pass only locates the config file
	probe := *options
	pre := flag.NewFlagSet("catfeed", flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	bind(pre, &probe)
	_ = pre.Parse(args)

	path := probe.Config
	if fromEnv := os.Getenv("CONFIG"); fromEnv != "" {
		path = fromEnv
	}
	if path != "" {
		if err := loadFile(path, options); err != nil {
			return nil, err
		}
	}

	fs := flag.NewFlagSet("catfeed", flag.ContinueOnError)
	bind(fs, options)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Override flags with environment variables if set
	if err := env.Parse(options); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	return options, nil
}

// Location resolves Timezone. An empty zone means UTC, as in time.LoadLocation.
func (o *Options) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(o.Timezone)
	if err != nil {
		return nil, fmt.Errorf("chart time zone: %w", err)
	}
	return loc, nil
}

func loadFile(path string, o *Options) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	if err := json.Unmarshal(b, o); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	o.Config = path

	return nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
