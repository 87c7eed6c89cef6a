// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/apiconf/internal/validators"

// Paths holds the filesystem layout of the service with every placeholder
// expanded.
type Paths struct {
	tmpDir     string
	uploadsDir string
	dataDir    string
}

// TmpDir returns the scratch directory.
func (p Paths) TmpDir() string { return p.tmpDir }

// UploadsDir returns the directory receiving uploaded files.
func (p Paths) UploadsDir() string { return p.uploadsDir }

// DataDir returns the persistent data directory.
func (p Paths) DataDir() string { return p.dataDir }

// All returns the three directories in tmp, uploads, data order.
func (p Paths) All() []string {
	return []string{p.tmpDir, p.uploadsDir, p.dataDir}
}

func pathRule(field string) validators.String {
	return validators.String{Field: field, Required: true, MinLen: 1, MaxLen: 1024}
}

type pathsDraft struct {
	tmpDir     string
	uploadsDir string
	dataDir    string
}

func loadPaths(s layered) (pathsDraft, error) {
	var (
		d   pathsDraft
		err error
	)
	if err = s.checkGroup(KeyPaths); err != nil {
		return d, err
	}
	if d.tmpDir, err = pathRule("paths.tmp_dir").Apply(s.get("paths.tmp_dir")); err != nil {
		return d, err
	}
	if d.uploadsDir, err = pathRule("paths.uploads_dir").Apply(s.get("paths.uploads_dir")); err != nil {
		return d, err
	}
	if d.dataDir, err = pathRule("paths.data_dir").Apply(s.get("paths.data_dir")); err != nil {
		return d, err
	}
	return d, nil
}

// expand resolves the directory templates in order: tmp_dir first, then
// uploads_dir (slug form preferred, else the tmp_dir form using the
// already expanded tmp_dir), then data_dir.
func (d *pathsDraft) expand(slug string) {
	d.tmpDir = expandToken(d.tmpDir, TokenAPISlug, slug)

	switch {
	case containsToken(d.uploadsDir, TokenAPISlug):
		d.uploadsDir = expandToken(d.uploadsDir, TokenAPISlug, slug)
	case containsToken(d.uploadsDir, TokenTmpDir):
		d.uploadsDir = expandToken(d.uploadsDir, TokenTmpDir, d.tmpDir)
	}

	d.dataDir = expandToken(d.dataDir, TokenAPISlug, slug)
}

func (d *pathsDraft) checkExpanded() error {
	if err := checkExpanded("paths.tmp_dir", d.tmpDir, knownTokens...); err != nil {
		return err
	}
	if err := checkExpanded("paths.uploads_dir", d.uploadsDir, knownTokens...); err != nil {
		return err
	}
	return checkExpanded("paths.data_dir", d.dataDir, knownTokens...)
}

func (d pathsDraft) freeze() Paths {
	return Paths(d)
}
