package config

import (
	"fmt"
	"regexp"
	"strings"

	"codecheck/internal/spec"
)

// Issue captures a validation problem with a config field.
type Issue struct {
	Field   string
	Message string
}

// ValidationError aggregates config validation issues.
type ValidationError struct {
	Issues []Issue
}

// Error renders validation errors as a multi-line string.
func (err *ValidationError) Error() string {
	if err == nil || len(err.Issues) == 0 {
		return "config validation failed"
	}
	lines := make([]string, 0, len(err.Issues))
	for _, issue := range err.Issues {
		lines = append(lines, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return strings.Join(lines, "\n")
}

var (
	certificatePattern = regexp.MustCompile(`^\d{4}-\d{3}$`)
	orcidPattern       = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[0-9X]$`)

	// certificatePlaceholderPattern matches identifiers that fit the
	// YYYY-NNN format but still carry a template year.
	certificatePlaceholderPattern = regexp.MustCompile(`^(0000|9999)-\d{3}$`)
)

// placeholderMarkers flag values copied from the certificate template without
// being filled in.
var placeholderMarkers = []string{"FIXME", "TODO", "XXXXX", "YYYY", "example", "placeholder", "template"}

// Validate checks a config for completeness. An incomplete certificate must
// not render, so every missing required field becomes an issue.
func Validate(cfg *spec.Config) error {
	var issues []Issue
	add := func(field, message string) {
		issues = append(issues, Issue{Field: field, Message: message})
	}

	if cfg.Certificate == "" {
		add("certificate", "is required")
	} else if !certificatePattern.MatchString(cfg.Certificate) {
		add("certificate", fmt.Sprintf("%q does not match the YYYY-NNN certificate format", cfg.Certificate))
	} else if certificatePlaceholderPattern.MatchString(cfg.Certificate) {
		add("certificate", fmt.Sprintf("%q uses a template year", cfg.Certificate))
	}

	if cfg.Report == "" {
		add("report", "is required")
	}
	if cfg.Repository == "" {
		add("repository", "is required")
	}
	for _, field := range []struct{ name, value string }{
		{"certificate", cfg.Certificate},
		{"report", cfg.Report},
		{"repository", cfg.Repository},
	} {
		if marker := placeholderIn(field.value); marker != "" {
			add(field.name, fmt.Sprintf("contains placeholder %q", marker))
		}
	}

	if cfg.Paper.Title == "" {
		add("paper.title", "is required")
	}
	if cfg.Paper.Reference == "" {
		add("paper.reference", "is required")
	}
	if len(cfg.Paper.Authors) == 0 {
		add("paper.authors", "at least one author is required")
	}
	for i, author := range cfg.Paper.Authors {
		validatePerson(author, fmt.Sprintf("paper.authors[%d]", i), add)
	}
	validatePerson(cfg.Codechecker, "codechecker", add)

	if cfg.CheckTime == "" {
		add("check_time", "is required")
	} else if _, err := spec.ParseCheckTime(cfg.CheckTime); err != nil {
		add("check_time", fmt.Sprintf("%q is not an ISO-8601 timestamp", cfg.CheckTime))
	}

	if cfg.Summary == "" {
		add("summary", "is required")
	}

	if len(cfg.Manifest) == 0 {
		add("manifest", "at least one entry is required")
	}
	seen := map[string]struct{}{}
	for i, entry := range cfg.Manifest {
		fieldPrefix := fmt.Sprintf("manifest[%d]", i)
		if entry.File == "" {
			add(fieldPrefix+".file", "is required")
			continue
		}
		if _, exists := seen[entry.File]; exists {
			add(fieldPrefix+".file", fmt.Sprintf("duplicate path %q", entry.File))
		} else {
			seen[entry.File] = struct{}{}
		}
		if strings.HasPrefix(entry.File, "/") || strings.Contains(entry.File, "..") {
			add(fieldPrefix+".file", fmt.Sprintf("path %q must stay inside the output directory", entry.File))
		}
		if entry.Size != nil && *entry.Size < 0 {
			add(fieldPrefix+".size", fmt.Sprintf("must be >= 0, got %d", *entry.Size))
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}

func validatePerson(p spec.Person, field string, add func(field, message string)) {
	if p.Name == "" {
		add(field+".name", "is required")
	}
	if p.ORCID != "" && !orcidPattern.MatchString(p.ORCID) {
		add(field+".ORCID", fmt.Sprintf("%q is not a valid ORCID", p.ORCID))
	}
}

func placeholderIn(value string) string {
	for _, marker := range placeholderMarkers {
		if strings.Contains(value, marker) {
			return marker
		}
	}
	return ""
}
