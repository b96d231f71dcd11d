// Package config parses environment variables into tagged structs.
//
// It loads a .env file once per process through godotenv (a missing file is
// not an error) and then maps variables onto struct fields with
// github.com/caarlos0/env/v11 tags:
//
//	type Config struct {
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("FORMCHECK_")); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
//
// Every call parses afresh, so tests can change the environment between calls.
package config
