// Package runner sequences one gate run: extraction per profile in configured
// order, one comparison pass, then rendering by the caller. A run either
// produces a complete report or fails outright; partial reports are never
// returned.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/gobwas/glob"

	"github.com/sdkgate/sdkgate/internal/config"
	"github.com/sdkgate/sdkgate/internal/extract"
	"github.com/sdkgate/sdkgate/internal/surface"
)

var (
	// ErrNoCanonical indicates compat mode without a canonical profile
	ErrNoCanonical = errors.New("no profile marked canonical")

	// ErrNoTargets indicates compat mode with nothing to check
	ErrNoTargets = errors.New("no target profiles to check against the reference")

	// ErrUnknownTarget indicates a requested target profile id that is not configured
	ErrUnknownTarget = errors.New("unknown target profile")

	// ErrReferenceUnavailable indicates a missing canonical reference source in
	// compat mode
	ErrReferenceUnavailable = errors.New("canonical reference source unavailable")
)

// Progress receives per-profile extraction progress. Implementations must not
// assume they run on any particular goroutine.
type Progress interface {
	Start(total int)
	Step(profileID string)
	Done()
}

type nopProgress struct{}

func (nopProgress) Start(int)   {}
func (nopProgress) Step(string) {}
func (nopProgress) Done()       {}

// Runner executes comparison runs over a loaded configuration.
type Runner struct {
	cfg      *config.Config
	progress Progress
}

// New creates a runner. A nil progress disables progress reporting.
func New(cfg *config.Config, progress Progress) *Runner {
	if progress == nil {
		progress = nopProgress{}
	}
	return &Runner{cfg: cfg, progress: progress}
}

// Audit extracts every profile's surface and compares them symmetrically
// against their union.
func (r *Runner) Audit(ctx context.Context) (*surface.Report, error) {
	surfaces, warnings, err := r.buildSurfaces(ctx, r.cfg.Profiles)
	if err != nil {
		return nil, err
	}

	report := surface.Audit(surfaces)
	report.Warnings = warnings
	return report, nil
}

// Compat extracts the canonical reference surface plus one target surface and
// checks the target for breaking removals and arity mismatches. An empty
// targetID selects the first non-canonical profile. A missing reference source
// is fatal: without the canonical surface there is nothing to compare against,
// and an empty reference would turn every target key into an informational
// extra and pass vacuously. A missing target source stays non-fatal; it shows
// up as the whole reference surface missing and fails on its own.
func (r *Runner) Compat(ctx context.Context, targetID string) (*surface.Report, error) {
	reference, targets := r.cfg.Canonical()
	if reference == nil {
		return nil, ErrNoCanonical
	}
	if len(targets) == 0 {
		return nil, ErrNoTargets
	}

	target := targets[0]
	if targetID != "" {
		found := false
		for _, t := range targets {
			if t.ID == targetID {
				target = t
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTarget, targetID)
		}
	}

	r.progress.Start(2)
	defer r.progress.Done()

	refSurface, refWarning, err := r.buildSurface(ctx, reference)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", reference.ID, err)
	}
	if refWarning != "" {
		return nil, fmt.Errorf("%w: profile %s: %s", ErrReferenceUnavailable, reference.ID, reference.Path)
	}
	r.progress.Step(reference.ID)

	tgtSurface, tgtWarning, err := r.buildSurface(ctx, &target)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", target.ID, err)
	}
	r.progress.Step(target.ID)

	report := surface.Compat(refSurface, tgtSurface)
	if tgtWarning != "" {
		report.Warnings = append(report.Warnings, tgtWarning)
	}
	return report, nil
}

// buildSurfaces runs one extraction pass per profile. Extraction is a pure
// function of each profile's own source text; no state is shared across
// profiles.
func (r *Runner) buildSurfaces(ctx context.Context, profiles []config.Profile) ([]*surface.Surface, []string, error) {
	r.progress.Start(len(profiles))
	defer r.progress.Done()

	surfaces := make([]*surface.Surface, 0, len(profiles))
	var warnings []string
	for i := range profiles {
		p := &profiles[i]
		s, warning, err := r.buildSurface(ctx, p)
		if err != nil {
			return nil, nil, fmt.Errorf("profile %s: %w", p.ID, err)
		}
		if warning != "" {
			warnings = append(warnings, warning)
		}
		surfaces = append(surfaces, s)
		r.progress.Step(p.ID)
	}
	return surfaces, warnings, nil
}

// buildSurface extracts, filters, and normalizes one profile. A missing source
// file yields an empty surface plus a warning; any other read or decode
// failure is fatal so a half-built comparison can never masquerade as a
// verdict.
func (r *Runner) buildSurface(ctx context.Context, p *config.Profile) (*surface.Surface, string, error) {
	s := surface.NewSurface(p.ID)

	path := p.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.cfg.Root, path)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, fmt.Sprintf("%s: source unavailable: %s", p.ID, path), nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", path, err)
	}
	if !utf8.Valid(data) {
		return nil, "", fmt.Errorf("%s is not valid UTF-8", path)
	}

	extractor, err := extract.ForProfile(p.Language, p.Patterns)
	if err != nil {
		return nil, "", err
	}

	ops, err := extractor.Extract(ctx, data)
	if err != nil {
		return nil, "", fmt.Errorf("extracting %s: %w", path, err)
	}

	excludes, err := compileExcludes(p.Exclude)
	if err != nil {
		return nil, "", err
	}

	conv, err := surface.ParseConvention(p.Naming)
	if err != nil {
		return nil, "", err
	}

	for _, op := range ops {
		// Exclusions and private markers are filtered before normalization;
		// they can never surface in missing or extra lists.
		if strings.HasPrefix(op.Name, "_") {
			continue
		}
		if matchesAny(excludes, op.Name) {
			continue
		}
		s.Add(op.Name, surface.Normalize(op.Name, conv), op.Params)
	}

	return s, "", nil
}

func compileExcludes(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func matchesAny(globs []glob.Glob, name string) bool {
	for _, g := range globs {
		if g.Match(name) {
			return true
		}
	}
	return false
}
