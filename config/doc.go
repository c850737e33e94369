// Package config loads supplier-kit configuration from YAML files and
// environment variables using viper, with optional .env loading via
// godotenv. A configuration declares the logging setup and named supplier
// groups as lists of registered supplier names; the supplier package
// turns those declarations into queryable groups.
package config
