// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the
// NetAddress. Range checks are left to the resolver.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return fmt.Errorf("port %q is not an integer", rawPort)
	}

	a.Host = host
	a.Port = port
	return nil
}

// FlagSource reads settings from the command-line flags of the service
// binary.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-name service name
//	-prefix route prefix
//	-log-level minimum log level
//	-debug enable debug mode
//
// Only flags that were actually given end up in the returned settings.
type FlagSource struct {
	name string
	args []string
}

// NewFlagSource returns a Source over args, which exclude the program name.
func NewFlagSource(name string, args []string) *FlagSource {
	return &FlagSource{name: name, args: args}
}

// Load implements [Source].
func (s *FlagSource) Load() (RawSettings, error) {
	var (
		address        NetAddress
		jsonConfigPath string
		name           string
		prefix         string
		logLevel       string
		debug          bool
	)

	fs := flag.NewFlagSet(s.name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&name, "name", "", "Service name")
	fs.StringVar(&prefix, "prefix", "", "Route prefix")
	fs.StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&debug, "debug", false, "Enable debug mode")

	if err := fs.Parse(s.args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	raw := RawSettings{}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "a":
			raw.Set(KeyBindHost, address.Host)
			raw.Set(KeyPort, address.Port)
		case "c", "config":
			raw.Set(KeyConfigFile, jsonConfigPath)
		case "name":
			raw.Set(KeyName, name)
		case "prefix":
			raw.Set(KeyPrefix, prefix)
		case "log-level":
			raw.Set("dev.log_level", logLevel)
		case "debug":
			raw.Set("dev.debug", debug)
		}
	})
	return raw, nil
}
