// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// Builder collects raw settings layers and resolves them into a [Config].
// Layers added later take precedence; errors from every layer are joined
// and reported by Build.
type Builder struct {
	layers []RawSettings
	err    error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		layers: make([]RawSettings, 0, 4),
	}
}

// WithSource loads src and adds it as the highest priority layer so far.
func (b *Builder) WithSource(src Source) *Builder {
	raw, err := src.Load()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, raw)
	return b
}

// WithEnv adds the API_ environment variables.
func (b *Builder) WithEnv() *Builder {
	return b.WithSource(NewEnvSource())
}

// WithFlags adds the command-line flags of the service binary. Under one of
// the DefaultLaunchers the arguments belong to the launcher and are only
// read by the launch override.
func (b *Builder) WithFlags(launch LaunchContext) *Builder {
	if launch.launcher(DefaultLaunchers) != "" {
		return b
	}
	return b.WithSource(NewFlagSource(launch.Program, launch.Args))
}

// WithJSON adds the JSON file named by the config_file setting of the
// layers loaded so far, if any. The file is the lowest priority layer.
func (b *Builder) WithJSON() *Builder {
	var jsonPath string
	for _, layer := range b.layers {
		if v, ok := layer.Lookup(KeyConfigFile); ok {
			jsonPath, _ = v.(string)
		}
	}
	if jsonPath == "" {
		return b
	}

	raw, err := NewJSONSource(jsonPath).Load()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append([]RawSettings{raw}, b.layers...)
	return b
}

// Build merges the layers and resolves the result against launch.
func (b *Builder) Build(launch LaunchContext, opts ...Option) (*Config, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	raw, err := mergeLayers(b.layers...)
	if err != nil {
		return nil, err
	}
	raw.Delete(KeyConfigFile)

	return Resolve(raw, launch, opts...)
}

// mergeLayers deep-merges layers into a fresh mapping. Values of later
// layers override earlier ones; nested groups are merged key by key.
func mergeLayers(layers ...RawSettings) (RawSettings, error) {
	merged := RawSettings{}
	for _, layer := range layers {
		if err := mergo.Merge(&merged, layer.Clone(), mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, nil
}

// Load resolves the configuration from the JSON file named by
// API_CONFIG_FILE and the API_ environment variables.
func Load(launch LaunchContext, opts ...Option) (*Config, error) {
	return NewBuilder().
		WithEnv().
		WithJSON().
		Build(launch, opts...)
}
