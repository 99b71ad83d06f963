// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/ymd"
	"cloudeng.io/ymd/rdate"
)

// Config represents the optional configuration file.
type Config struct {
	Parser      ymd.Parser `yaml:"parser"`
	Concurrency int        `yaml:"concurrency"`
	ChunkSize   int        `yaml:"chunk_size"`
}

func (c Config) String() string {
	return fmt.Sprintf("years: %v..%v, concurrency: %v, chunk size: %v",
		c.Parser.MinYear, c.Parser.MaxYear, c.Concurrency, c.ChunkSize)
}

func loadConfig(ctx context.Context, cf *CommonFlags) (Config, error) {
	cfg := Config{Parser: ymd.DefaultParser, Concurrency: 1, ChunkSize: rdate.DefaultChunkSize}
	if len(cf.Config) > 0 {
		if err := cmdyaml.ParseConfigFile(ctx, cf.Config, &cfg); err != nil {
			return Config{}, err
		}
	}
	if cf.Concurrency > 0 {
		cfg.Concurrency = cf.Concurrency
	}
	return cfg, nil
}

// setup creates the logger, reads the configuration file and returns a
// context carrying the logger, a Converter, the parser to use and a
// cleanup function.
func setup(ctx context.Context, cf *CommonFlags) (context.Context, *rdate.Converter, ymd.Parser, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, nil, ymd.Parser{}, nil, err
	}
	ctx = ctxlog.WithLogger(ctx, logger.Logger)
	cfg, err := loadConfig(ctx, cf)
	if err != nil {
		logger.Close()
		return ctx, nil, ymd.Parser{}, nil, err
	}
	ctxlog.Logger(ctx).Info("configuration", "config", cfg.String())
	cv := rdate.NewConverter(
		rdate.WithParser(cfg.Parser),
		rdate.WithConcurrency(cfg.Concurrency),
		rdate.WithChunkSize(cfg.ChunkSize))
	return ctx, cv, cfg.Parser, func() { logger.Close() }, nil
}
