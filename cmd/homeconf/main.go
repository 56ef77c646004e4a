// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/homeconf/internal/app"
	"github.com/MKhiriev/homeconf/internal/cli"
	"github.com/MKhiriev/homeconf/internal/config"
	"github.com/MKhiriev/homeconf/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// settings configure the homeconf process itself, not the application whose
// configuration it inspects.
type settings struct {
	App             string `env:"HOMECONF_APP" envDefault:"homeconf"`
	ConfigSubFolder string `env:"HOMECONF_CONFIG_SUBFOLDER"`
	LogLevel        string `env:"HOMECONF_LOG_LEVEL" envDefault:"warn"`
}

func main() {
	os.Exit(run())
}

func run() int {
	var s settings
	if err := env.Parse(&s); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.MsgInvalidSettings, err)
		return 2
	}

	level, err := logger.ParseLevel(s.LogLevel, zerolog.WarnLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", app.MsgInvalidSettings, err)
		return 2
	}
	log := logger.New("homeconf", os.Stderr, level)

	opts := config.Options{
		AppFolder:       s.App,
		ConfigSubFolder: s.ConfigSubFolder,
		StrictArgs:      true,
	}
	cfg, err := config.Load(opts, os.Args[1:], config.OSSystem(), log)
	if err != nil {
		log.Error().Err(err).Msg(app.MsgLoadFailed)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	root := cli.NewRootCommand(cfg, cli.BuildInfo{
		Version: buildVersion,
		Date:    buildDate,
		Commit:  buildCommit,
	})
	root.SetArgs(cfg.Args)

	if err = root.ExecuteContext(log.WithContext(context.Background())); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
