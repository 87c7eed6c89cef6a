// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"
	"strconv"
	"strings"
)

// DefaultLaunchers lists the program names recognized as external server
// launchers. A program matches when its path ends with one of them.
var DefaultLaunchers = []string{"uvicorn", "fastapi", "gunicorn"}

// LaunchContext describes how the process was started. It is captured once
// in main and handed to the resolver, which never reads process state.
type LaunchContext struct {
	// Program is argv[0].
	Program string
	// Args are the arguments after the program name.
	Args []string
}

// NewLaunchContext splits argv (typically os.Args) into program and args.
func NewLaunchContext(argv []string) LaunchContext {
	if len(argv) == 0 {
		return LaunchContext{}
	}
	return LaunchContext{Program: argv[0], Args: slices.Clone(argv[1:])}
}

// launcher returns the recognized launcher name, or "" when the program is
// not one of launchers.
func (lc LaunchContext) launcher(launchers []string) string {
	for _, name := range launchers {
		if name != "" && strings.HasSuffix(lc.Program, name) {
			return name
		}
	}
	return ""
}

// launchOverride is the outcome of scanning the launch arguments.
type launchOverride struct {
	launcher     string
	forceHTTPS   bool
	host         string
	hostProvided bool
	port         int
	portProvided bool
}

func (o launchOverride) underLauncher() bool {
	return o.launcher != ""
}

// scanLaunchArgs extracts --ssl*, --host and --port from the launch
// arguments. Arguments are only inspected under a recognized launcher.
// When a flag repeats, the last occurrence wins.
func scanLaunchArgs(lc LaunchContext, launchers []string) (launchOverride, error) {
	o := launchOverride{launcher: lc.launcher(launchers)}
	if !o.underLauncher() {
		return o, nil
	}

	args := lc.Args
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case strings.HasPrefix(arg, "--ssl"):
			o.forceHTTPS = true

		case strings.HasPrefix(arg, "--host="):
			o.host, o.hostProvided = strings.TrimPrefix(arg, "--host="), true
		case arg == "--host" && i+1 < len(args):
			i++
			o.host, o.hostProvided = args[i], true

		case strings.HasPrefix(arg, "--port="):
			port, err := parsePortFlag(strings.TrimPrefix(arg, "--port="))
			if err != nil {
				return o, err
			}
			o.port, o.portProvided = port, true
		case arg == "--port" && i+1 < len(args):
			i++
			port, err := parsePortFlag(args[i])
			if err != nil {
				return o, err
			}
			o.port, o.portProvided = port, true
		}
	}

	if !o.hostProvided {
		o.host = defaultHost(o.launcher, args)
	}
	return o, nil
}

func parsePortFlag(value string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &MalformedLaunchArgument{Flag: "--port", Value: value, Err: err}
	}
	return port, nil
}

// defaultHost is the address a launcher binds to when no --host flag is
// given: "fastapi run" listens on all interfaces, everything else on
// loopback.
func defaultHost(launcher string, args []string) string {
	if launcher == "fastapi" && len(args) > 0 && args[0] == "run" {
		return WildcardHost
	}
	return LoopbackHost
}
