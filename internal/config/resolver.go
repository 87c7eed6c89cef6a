// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"slices"

	"github.com/MKhiriev/apiconf/internal/logger"
	"github.com/MKhiriev/apiconf/internal/validators"
)

// Stage is a point in the one-way resolution lifecycle.
type Stage int

const (
	StageUnvalidated Stage = iota
	StageFieldsValidated
	StageCrossReferenced
	StageOverridden
	StageFrozen
)

var stageNames = [...]string{
	StageUnvalidated:     "unvalidated",
	StageFieldsValidated: "fields-validated",
	StageCrossReferenced: "cross-referenced",
	StageOverridden:      "overridden",
	StageFrozen:          "frozen",
}

// String implements fmt.Stringer.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// Step names of the cross-reference and override phases. Field steps are
// named after the setting they validate.
const (
	StepExpandPrefix      = "expand:prefix"
	StepExpandDocs        = "expand:docs"
	StepExpandPaths       = "expand:paths"
	StepCheckPlaceholders = "check:placeholders"
	StepLaunchOverride    = "override:launch"
	StepTLS               = "override:tls"
)

var rootRules = struct {
	name          validators.String
	slugInput     validators.String
	slug          validators.String
	scheme        validators.String
	bindHost      validators.String
	port          validators.Int
	version       validators.String
	prefix        validators.String
	gzipMinSize   validators.Int
	behindProxy   validators.Bool
	behindCFProxy validators.Bool
}{
	name:          validators.String{Field: KeyName, Required: true, MinLen: 2, MaxLen: 128},
	slugInput:     validators.String{Field: KeySlug},
	slug:          validators.String{Field: KeySlug, Required: true, MinLen: 2, MaxLen: 128},
	scheme:        validators.String{Field: KeyHTTPScheme, Required: true, OneOf: []string{string(SchemeHTTP), string(SchemeHTTPS)}},
	bindHost:      validators.String{Field: KeyBindHost, Required: true, MinLen: 2, MaxLen: 128},
	port:          validators.Int{Field: KeyPort, Min: 80, Max: 65536, MaxExclusive: true},
	version:       validators.String{Field: KeyVersion, Required: true, MinLen: 1, MaxLen: 16},
	prefix:        validators.String{Field: KeyPrefix, MaxLen: 128},
	gzipMinSize:   validators.Int{Field: KeyGzipMinSize, Min: 0, Max: 10485760},
	behindProxy:   validators.Bool{Field: KeyBehindProxy},
	behindCFProxy: validators.Bool{Field: KeyBehindCFProxy},
}

// draft accumulates validated values while the resolver walks its steps.
// done records the steps that completed so later steps can check that
// their inputs are available.
type draft struct {
	name          string
	slug          string
	scheme        Scheme
	bindHost      string
	port          int
	version       string
	prefix        string
	gzipMinSize   int
	behindProxy   bool
	behindCFProxy bool

	dev      devDraft
	security securityDraft
	docs     docsDraft
	paths    pathsDraft

	launch launchOverride

	done map[string]bool
}

type step struct {
	name string
	run  func(r *Resolver, d *draft) error
}

// phase is a group of steps whose completion moves the resolver to
// reaches.
type phase struct {
	reaches Stage
	steps   []step
}

// phases is the complete resolution order. Field steps run in declaration
// order so that name precedes slug and version precedes prefix.
var phases = []phase{
	{
		reaches: StageFieldsValidated,
		steps: []step{
			{KeyName, (*Resolver).validateName},
			{KeySlug, (*Resolver).validateSlug},
			{KeyHTTPScheme, (*Resolver).validateScheme},
			{KeyBindHost, (*Resolver).validateBindHost},
			{KeyPort, (*Resolver).validatePort},
			{KeyVersion, (*Resolver).validateVersion},
			{KeyPrefix, (*Resolver).validatePrefix},
			{KeyGzipMinSize, (*Resolver).validateGzipMinSize},
			{KeyBehindProxy, (*Resolver).validateBehindProxy},
			{KeyBehindCFProxy, (*Resolver).validateBehindCFProxy},
			{KeyDev, (*Resolver).validateDev},
			{KeySecurity, (*Resolver).validateSecurity},
			{KeyDocs, (*Resolver).validateDocs},
			{KeyPaths, (*Resolver).validatePaths},
		},
	},
	{
		reaches: StageCrossReferenced,
		steps: []step{
			{StepExpandPrefix, (*Resolver).expandPrefix},
			{StepExpandDocs, (*Resolver).expandDocs},
			{StepExpandPaths, (*Resolver).expandPaths},
			{StepCheckPlaceholders, (*Resolver).checkPlaceholders},
		},
	},
	{
		reaches: StageOverridden,
		steps: []step{
			{StepLaunchOverride, (*Resolver).applyLaunchOverride},
			{StepTLS, (*Resolver).reconcileTLS},
		},
	},
}

// Resolver turns raw settings and a launch context into a frozen [Config].
// A Resolver is single use and not safe for concurrent use.
type Resolver struct {
	settings  layered
	launch    LaunchContext
	launchers []string
	logger    *logger.Logger

	stage Stage
	spent bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDefaults replaces the declarative defaults used for settings missing
// from the raw mapping.
func WithDefaults(defaults RawSettings) Option {
	return func(r *Resolver) {
		r.settings.defaults = defaults.Clone()
	}
}

// WithLaunchers replaces the recognized launcher names.
func WithLaunchers(names ...string) Option {
	return func(r *Resolver) {
		r.launchers = slices.Clone(names)
	}
}

// WithLogger sets the logger receiving stage transitions at debug level.
func WithLogger(l *logger.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewResolver returns a Resolver over a private copy of raw.
func NewResolver(raw RawSettings, launch LaunchContext, opts ...Option) *Resolver {
	r := &Resolver{
		settings: layered{
			raw:      raw.Clone(),
			defaults: DefaultSettings(),
		},
		launch: LaunchContext{
			Program: launch.Program,
			Args:    slices.Clone(launch.Args),
		},
		launchers: slices.Clone(DefaultLaunchers),
		logger:    logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is shorthand for NewResolver(raw, launch, opts...).Resolve().
func Resolve(raw RawSettings, launch LaunchContext, opts ...Option) (*Config, error) {
	return NewResolver(raw, launch, opts...).Resolve()
}

// Stage returns the stage the resolver has reached. After a failure it is
// the last stage fully completed.
func (r *Resolver) Stage() Stage {
	return r.stage
}

// Resolve runs every step in order and freezes the result. The first
// failing step aborts resolution with a *ResolutionError; no partial
// Config is ever returned. Calling Resolve again returns
// ErrAlreadyResolved.
func (r *Resolver) Resolve() (*Config, error) {
	if r.spent {
		return nil, ErrAlreadyResolved
	}
	r.spent = true

	d := &draft{done: make(map[string]bool)}
	for _, p := range phases {
		for _, s := range p.steps {
			if err := s.run(r, d); err != nil {
				r.logger.Debug().
					Err(err).
					Str("stage", r.stage.String()).
					Str("step", s.name).
					Msg("config resolution failed")
				return nil, &ResolutionError{Stage: r.stage, Step: s.name, Err: err}
			}
			d.done[s.name] = true
		}
		r.stage = p.reaches
		r.logger.Debug().Str("stage", r.stage.String()).Msg("config stage reached")
	}

	cfg := d.freeze()
	r.stage = StageFrozen
	r.logger.Debug().Str("stage", r.stage.String()).Object("config", cfg).Msg("config resolved")
	return cfg, nil
}

func (r *Resolver) validateName(d *draft) (err error) {
	d.name, err = rootRules.name.Apply(r.settings.get(KeyName))
	return err
}

// validateSlug derives the slug from the validated name when none is
// given, then applies the slug rule to the result.
func (r *Resolver) validateSlug(d *draft) error {
	slug, err := rootRules.slugInput.Apply(r.settings.get(KeySlug))
	if err != nil {
		return err
	}
	if slug == "" && d.done[KeyName] {
		slug = deriveSlug(d.name)
	}
	d.slug, err = rootRules.slug.Apply(slug)
	return err
}

func (r *Resolver) validateScheme(d *draft) error {
	scheme, err := rootRules.scheme.Apply(r.settings.get(KeyHTTPScheme))
	if err != nil {
		return err
	}
	d.scheme = Scheme(scheme)
	return nil
}

func (r *Resolver) validateBindHost(d *draft) (err error) {
	d.bindHost, err = rootRules.bindHost.Apply(r.settings.get(KeyBindHost))
	return err
}

func (r *Resolver) validatePort(d *draft) (err error) {
	d.port, err = rootRules.port.Apply(r.settings.get(KeyPort))
	return err
}

func (r *Resolver) validateVersion(d *draft) (err error) {
	d.version, err = rootRules.version.Apply(r.settings.get(KeyVersion))
	return err
}

func (r *Resolver) validatePrefix(d *draft) (err error) {
	d.prefix, err = rootRules.prefix.Apply(r.settings.get(KeyPrefix))
	return err
}

func (r *Resolver) validateGzipMinSize(d *draft) (err error) {
	d.gzipMinSize, err = rootRules.gzipMinSize.Apply(r.settings.get(KeyGzipMinSize))
	return err
}

func (r *Resolver) validateBehindProxy(d *draft) (err error) {
	d.behindProxy, err = rootRules.behindProxy.Apply(r.settings.get(KeyBehindProxy))
	return err
}

func (r *Resolver) validateBehindCFProxy(d *draft) (err error) {
	d.behindCFProxy, err = rootRules.behindCFProxy.Apply(r.settings.get(KeyBehindCFProxy))
	return err
}

func (r *Resolver) validateDev(d *draft) (err error) {
	d.dev, err = loadDev(r.settings)
	return err
}

func (r *Resolver) validateSecurity(d *draft) (err error) {
	d.security, err = loadSecurity(r.settings)
	return err
}

func (r *Resolver) validateDocs(d *draft) (err error) {
	d.docs, err = loadDocs(r.settings)
	return err
}

func (r *Resolver) validatePaths(d *draft) (err error) {
	d.paths, err = loadPaths(r.settings)
	return err
}

// expandPrefix substitutes the version into the prefix. The expanded
// prefix must still satisfy the prefix length rule.
func (r *Resolver) expandPrefix(d *draft) (err error) {
	if d.prefix == "" || !containsToken(d.prefix, TokenAPIVersion) || !d.done[KeyVersion] {
		return nil
	}
	d.prefix, err = rootRules.prefix.Apply(expandToken(d.prefix, TokenAPIVersion, d.version))
	return err
}

func (r *Resolver) expandDocs(d *draft) error {
	if d.docs.enabled && d.done[StepExpandPrefix] {
		d.docs.expand(d.prefix)
	}
	return nil
}

func (r *Resolver) expandPaths(d *draft) error {
	if d.done[KeySlug] {
		d.paths.expand(d.slug)
	}
	return nil
}

// checkPlaceholders rejects any known token that survived expansion.
// Docs URLs are only checked when docs are exposed.
func (r *Resolver) checkPlaceholders(d *draft) error {
	if err := checkExpanded(KeyPrefix, d.prefix, knownTokens...); err != nil {
		return err
	}
	if d.docs.enabled {
		if err := d.docs.checkExpanded(); err != nil {
			return err
		}
	}
	return d.paths.checkExpanded()
}

// applyLaunchOverride reconciles the binding with the launch arguments of
// a recognized launcher. A launcher's default host never replaces a
// bind_host given explicitly by a source.
func (r *Resolver) applyLaunchOverride(d *draft) error {
	o, err := scanLaunchArgs(r.launch, r.launchers)
	if err != nil {
		return err
	}
	d.launch = o
	if !o.underLauncher() {
		return nil
	}

	r.logger.Debug().
		Str("launcher", o.launcher).
		Bool("force_https", o.forceHTTPS).
		Bool("host_flag", o.hostProvided).
		Bool("port_flag", o.portProvided).
		Msg("launcher detected")

	if o.hostProvided || !r.settings.explicit(KeyBindHost) {
		if d.bindHost, err = rootRules.bindHost.Apply(o.host); err != nil {
			return err
		}
	}
	if o.portProvided {
		if d.port, err = rootRules.port.Apply(o.port); err != nil {
			return err
		}
	}
	return nil
}

// reconcileTLS makes the scheme agree with the TLS triggers. Under a
// launcher an --ssl* flag or ssl.enabled upgrades to https and the
// declared scheme is kept otherwise. Without a launcher ssl.enabled alone
// decides.
func (r *Resolver) reconcileTLS(d *draft) error {
	sslEnabled := d.security.SSL.Enabled
	switch {
	case d.launch.underLauncher():
		if d.launch.forceHTTPS || sslEnabled {
			d.scheme = SchemeHTTPS
		}
	case sslEnabled:
		d.scheme = SchemeHTTPS
	default:
		d.scheme = SchemeHTTP
	}
	return nil
}

func (d *draft) freeze() *Config {
	return &Config{
		name:          d.name,
		slug:          d.slug,
		scheme:        d.scheme,
		bindHost:      d.bindHost,
		port:          d.port,
		version:       d.version,
		prefix:        d.prefix,
		gzipMinSize:   d.gzipMinSize,
		behindProxy:   d.behindProxy,
		behindCFProxy: d.behindCFProxy,
		dev:           d.dev.freeze(),
		security:      d.security.freeze(),
		docs:          d.docs.freeze(),
		paths:         d.paths.freeze(),
	}
}
