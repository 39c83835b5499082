// Package config loads and validates the settings of the booking platform.
//
// Settings are read from an optional YAML file, an optional .env file and
// SIMONE_* environment variables, in that order, and every section is
// validated before the application starts.
package config
