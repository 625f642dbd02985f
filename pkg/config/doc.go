// Package config loads application configuration from environment
// variables into tagged structs, wrapping github.com/joho/godotenv and
// github.com/caarlos0/env/v11.
//
// Each configuration type is parsed once per process and cached, so
// packages can load their own config independently without repeated
// environment scans. Reset clears the cache for tests.
package config
