package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/gobwas/glob"

	"github.com/sdkgate/sdkgate/internal/surface"
)

var (
	// ErrNoProfiles indicates an empty profile table
	ErrNoProfiles = errors.New("no language profiles configured")

	// ErrEmptyProfileID indicates a profile without an id
	ErrEmptyProfileID = errors.New("empty profile id")

	// ErrDuplicateProfile indicates two profiles sharing an id
	ErrDuplicateProfile = errors.New("duplicate profile id")

	// ErrEmptyPath indicates a profile without a source path
	ErrEmptyPath = errors.New("empty profile path")

	// ErrInvalidNaming indicates an unknown naming convention tag
	ErrInvalidNaming = errors.New("invalid naming convention")

	// ErrInvalidExclude indicates an exclusion glob that does not compile
	ErrInvalidExclude = errors.New("invalid exclude pattern")

	// ErrInvalidPattern indicates a declaration regex that does not compile
	ErrInvalidPattern = errors.New("invalid declaration pattern")

	// ErrMultipleCanonical indicates more than one canonical profile
	ErrMultipleCanonical = errors.New("multiple canonical profiles")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if len(cfg.Profiles) == 0 {
		errs = append(errs, ErrNoProfiles)
	}

	seen := make(map[string]bool)
	canonical := 0
	for i := range cfg.Profiles {
		p := &cfg.Profiles[i]
		if err := validateProfile(p); err != nil {
			errs = append(errs, err)
		}
		if p.ID != "" && seen[p.ID] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateProfile, p.ID))
		}
		seen[p.ID] = true
		if p.Canonical {
			canonical++
		}
	}
	if canonical > 1 {
		errs = append(errs, fmt.Errorf("%w: found %d, want at most 1", ErrMultipleCanonical, canonical))
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

func validateProfile(p *Profile) error {
	var errs []error

	if strings.TrimSpace(p.ID) == "" {
		errs = append(errs, ErrEmptyProfileID)
	}

	if strings.TrimSpace(p.Path) == "" {
		errs = append(errs, fmt.Errorf("%w: profile %s", ErrEmptyPath, p.ID))
	}

	if _, err := surface.ParseConvention(p.Naming); err != nil {
		errs = append(errs, fmt.Errorf("%w: profile %s: %v", ErrInvalidNaming, p.ID, err))
	}

	for _, pattern := range p.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			errs = append(errs, fmt.Errorf("%w: profile %s: %q: %v", ErrInvalidExclude, p.ID, pattern, err))
		}
	}

	for _, pattern := range p.Patterns {
		if _, err := regexp.Compile(pattern); err != nil {
			errs = append(errs, fmt.Errorf("%w: profile %s: %q: %v", ErrInvalidPattern, p.ID, pattern, err))
		}
	}

	if len(errs) > 0 {
		return joinErrors(errs)
	}

	return nil
}

// joinErrors combines multiple errors into a single error with clear formatting.
func joinErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	if len(errs) == 1 {
		return errs[0]
	}

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}

	return fmt.Errorf("validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}
