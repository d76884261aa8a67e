// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"errors"
	"fmt"

	"github.com/H0llyW00dzZ/trust-chain-inspector/src/config"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/dns/resolver"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/trust-chain-inspector/src/logger"
	"github.com/spf13/cobra"
)

var (
	// ErrNameRequired is returned when dnsseccheck or namecheck runs without names.
	ErrNameRequired = errors.New("cli: please specify at least one name")
	// ErrHostRequired is returned when certcheck runs without hosts.
	ErrHostRequired = errors.New("cli: please specify at least one FQDN (with optional port) to connect to")
)

// options holds the flags shared by the commands. Each command owns its own
// instance, so commands built in the same process do not share state.
type options struct {
	configFile string
	resolvConf string
	output     string
	logFormat  string
	quiet      bool
}

func (o *options) bindCommon(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.configFile, "config", "c", "", "configuration file (.json, .yaml or .yml); defaults to $"+config.EnvConfigFile)
	cmd.Flags().StringVar(&o.logFormat, "log-format", logger.FormatText, "diagnostic format on stderr: text or json")
	cmd.Flags().BoolVarP(&o.quiet, "quiet", "q", false, "suppress diagnostics on stderr")
}

func (o *options) bindResolver(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.resolvConf, "resolv-conf", "", "resolv.conf-format file listing nameservers (default "+config.DefaultResolvConf+")")
}

func (o *options) bindOutput(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "json", "output format: json or table")
}

// load reads the configuration and applies flag overrides.
func (o *options) load() (*config.Config, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	if o.resolvConf != "" {
		cfg.DNS.ResolvConf = o.resolvConf
		cfg.DNS.Servers = nil
	}
	return cfg, nil
}

// diagnostics returns the logger for a run. The base logger is kept for plain
// text output; any other flag combination gets a logger on the command's error
// stream.
func (o *options) diagnostics(cmd *cobra.Command, base logger.Logger) (logger.Logger, error) {
	if base != nil && !o.quiet && (o.logFormat == "" || o.logFormat == logger.FormatText) {
		return base, nil
	}
	return logger.New(o.logFormat, cmd.ErrOrStderr(), o.quiet)
}

// newResolver builds a resolver from cfg. An explicit server list wins over
// the resolv.conf file.
func newResolver(cfg *config.Config, log logger.Logger) (*resolver.Resolver, error) {
	servers := cfg.DNS.Servers
	if len(servers) == 0 {
		var err error
		if servers, err = resolver.ServersFromFile(cfg.DNS.ResolvConf); err != nil {
			return nil, err
		}
	}

	return resolver.New(resolver.Config{
		Servers:    servers,
		Timeout:    cfg.LookupTimeout(),
		Attempts:   uint(cfg.DNS.Attempts),
		RetryDelay: cfg.RetryDelay(),
		UDPSize:    uint16(cfg.DNS.UDPSize),
	}, log)
}

// requireArgs returns a positional argument validator failing with err when
// no arguments are given.
func requireArgs(err error) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return err
		}
		return nil
	}
}

// newCommand creates a command with the settings shared by every tool.
func newCommand(fallbackName, args, short, version string) *cobra.Command {
	return &cobra.Command{
		Use:           fmt.Sprintf("%s [FLAGS] %s", posix.GetExecutableName(fallbackName), args),
		Short:         short,
		Version:       version,
		SilenceErrors: true,
	}
}
