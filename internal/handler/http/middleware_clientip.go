// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net"
	"net/http"
	"net/netip"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

const cfConnectingIPHeader = "CF-Connecting-IP"

// withClientIP rewrites r.RemoteAddr to the client address reported by a
// trusted proxy. Only peers listed in forwarded_allow_ips are trusted.
// Behind Cloudflare the CF-Connecting-IP header wins; behind a plain proxy
// True-Client-IP, X-Real-IP and X-Forwarded-For are honored.
func (h *Handler) withClientIP(next http.Handler) http.Handler {
	trusted := newTrustedProxies(h.cfg.Security().ForwardedAllowIPs())

	forwarded := next
	if h.cfg.BehindProxy() {
		forwarded = middleware.RealIP(next)
	}
	cloudflare := h.cfg.BehindCFProxy()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !trusted.contains(r.RemoteAddr) {
			next.ServeHTTP(w, r)
			return
		}

		if cloudflare {
			if ip := strings.TrimSpace(r.Header.Get(cfConnectingIPHeader)); net.ParseIP(ip) != nil {
				r.RemoteAddr = ip
				next.ServeHTTP(w, r)
				return
			}
		}

		forwarded.ServeHTTP(w, r)
	})
}

// trustedProxies matches peer addresses against forwarded_allow_ips
// entries: "*", single addresses and CIDR prefixes. Malformed entries
// match nothing.
type trustedProxies struct {
	any      bool
	prefixes []netip.Prefix
}

func newTrustedProxies(entries []string) trustedProxies {
	var t trustedProxies
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		switch {
		case entry == anyHost:
			t.any = true
		case strings.Contains(entry, "/"):
			if p, err := netip.ParsePrefix(entry); err == nil {
				t.prefixes = append(t.prefixes, p.Masked())
			}
		default:
			if a, err := netip.ParseAddr(entry); err == nil {
				t.prefixes = append(t.prefixes, netip.PrefixFrom(a, a.BitLen()))
			}
		}
	}
	return t
}

func (t trustedProxies) contains(remoteAddr string) bool {
	if t.any {
		return true
	}

	addr, err := parseRemoteAddr(remoteAddr)
	if err != nil {
		return false
	}
	for _, p := range t.prefixes {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

func parseRemoteAddr(remoteAddr string) (netip.Addr, error) {
	if ap, err := netip.ParseAddrPort(remoteAddr); err == nil {
		return ap.Addr().Unmap(), nil
	}
	a, err := netip.ParseAddr(remoteAddr)
	if err != nil {
		return netip.Addr{}, err
	}
	return a.Unmap(), nil
}
