// Package config resolves the service configuration.
//
// Raw settings are collected from several sources and layered in the
// following priority order (later layers override earlier ones):
//  1. JSON config file (path from API_CONFIG_FILE or -c/-config)
//  2. Environment variables prefixed with API_
//  3. Command-line flags of the service binary
//
// Missing settings fall back to [DefaultSettings]. The merged mapping is
// handed to a [Resolver], which validates every field, expands the
// {api_version}, {api_prefix}, {api_slug} and {tmp_dir} placeholders,
// reconciles the result with the arguments of an external launcher and
// freezes it into an immutable [Config].
//
// The main entry point is [Load]; [Resolve] and [NewResolver] work on an
// already collected [RawSettings].
package config
