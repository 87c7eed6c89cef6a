// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"context"
	"slices"

	"github.com/MKhiriev/apiconf/internal/validators"
)

// SSL holds TLS termination settings for the service itself.
type SSL struct {
	enabled  bool
	certFile string
	keyFile  string
}

// Enabled reports whether the service terminates TLS itself.
func (s SSL) Enabled() bool { return s.enabled }

// CertFile returns the PEM certificate path. Set whenever Enabled is true.
func (s SSL) CertFile() string { return s.certFile }

// KeyFile returns the PEM private key path. Set whenever Enabled is true.
func (s SSL) KeyFile() string { return s.keyFile }

// Security holds TLS and host-trust settings.
type Security struct {
	ssl               SSL
	allowedHosts      []string
	forwardedAllowIPs []string
}

// SSL returns the TLS settings.
func (s Security) SSL() SSL { return s.ssl }

// AllowedHosts returns a copy of the accepted Host header values. "*"
// accepts any host.
func (s Security) AllowedHosts() []string { return slices.Clone(s.allowedHosts) }

// ForwardedAllowIPs returns a copy of the proxy addresses (IPs, CIDRs or
// "*") trusted to set forwarding headers.
func (s Security) ForwardedAllowIPs() []string { return slices.Clone(s.forwardedAllowIPs) }

var securityRules = struct {
	sslEnabled        validators.Bool
	certFile          validators.String
	keyFile           validators.String
	allowedHosts      validators.Strings
	forwardedAllowIPs validators.Strings
}{
	sslEnabled:        validators.Bool{Field: "security.ssl.enabled"},
	certFile:          validators.String{Field: "security.ssl.cert_file", MaxLen: 1024},
	keyFile:           validators.String{Field: "security.ssl.key_file", MaxLen: 1024},
	allowedHosts:      validators.Strings{Field: "security.allowed_hosts", MinItems: 1, ItemMaxLen: 255},
	forwardedAllowIPs: validators.Strings{Field: "security.forwarded_allow_ips", ItemRule: "ip|cidr|eq=*"},
}

// securityValidator checks the rules that relate sibling fields once each
// field passed its own constraint.
var securityValidator = validators.NewStructValidator(KeySecurity)

type sslDraft struct {
	Enabled  bool   `setting:"enabled"`
	CertFile string `setting:"cert_file" validate:"required_if=Enabled true"`
	KeyFile  string `setting:"key_file" validate:"required_if=Enabled true"`
}

type securityDraft struct {
	SSL               sslDraft `setting:"ssl"`
	AllowedHosts      []string `setting:"allowed_hosts"`
	ForwardedAllowIPs []string `setting:"forwarded_allow_ips"`
}

func loadSecurity(s layered) (securityDraft, error) {
	var (
		d   securityDraft
		err error
	)
	if err = s.checkGroup(KeySecurity); err != nil {
		return d, err
	}
	if err = s.checkGroup("security.ssl"); err != nil {
		return d, err
	}
	if d.SSL.Enabled, err = securityRules.sslEnabled.Apply(s.get("security.ssl.enabled")); err != nil {
		return d, err
	}
	if d.SSL.CertFile, err = securityRules.certFile.Apply(s.get("security.ssl.cert_file")); err != nil {
		return d, err
	}
	if d.SSL.KeyFile, err = securityRules.keyFile.Apply(s.get("security.ssl.key_file")); err != nil {
		return d, err
	}
	if d.AllowedHosts, err = securityRules.allowedHosts.Apply(s.get("security.allowed_hosts")); err != nil {
		return d, err
	}
	if d.ForwardedAllowIPs, err = securityRules.forwardedAllowIPs.Apply(s.get("security.forwarded_allow_ips")); err != nil {
		return d, err
	}

	if err = securityValidator.Validate(context.Background(), d); err != nil {
		return d, err
	}
	return d, nil
}

func (d securityDraft) freeze() Security {
	return Security{
		ssl: SSL{
			enabled:  d.SSL.Enabled,
			certFile: d.SSL.CertFile,
			keyFile:  d.SSL.KeyFile,
		},
		allowedHosts:      slices.Clone(d.AllowedHosts),
		forwardedAllowIPs: slices.Clone(d.ForwardedAllowIPs),
	}
}
