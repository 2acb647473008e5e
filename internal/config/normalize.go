package config

import (
	"strings"

	"codecheck/internal/spec"
)

// Normalize trims incidental whitespace from config fields. Order of authors
// and manifest entries is never changed.
func Normalize(cfg *spec.Config) {
	cfg.Certificate = strings.TrimSpace(cfg.Certificate)
	cfg.Report = strings.TrimSpace(cfg.Report)
	cfg.Repository = strings.TrimSpace(cfg.Repository)
	cfg.CheckTime = strings.TrimSpace(cfg.CheckTime)
	cfg.Summary = strings.TrimSpace(cfg.Summary)

	cfg.Paper.Title = strings.TrimSpace(cfg.Paper.Title)
	cfg.Paper.Reference = strings.TrimSpace(cfg.Paper.Reference)
	for i := range cfg.Paper.Authors {
		normalizePerson(&cfg.Paper.Authors[i])
	}
	normalizePerson(&cfg.Codechecker)

	for i := range cfg.Manifest {
		cfg.Manifest[i].File = strings.TrimSpace(cfg.Manifest[i].File)
		cfg.Manifest[i].Comment = strings.TrimSpace(cfg.Manifest[i].Comment)
	}
}

func normalizePerson(p *spec.Person) {
	p.Name = strings.TrimSpace(p.Name)
	p.ORCID = strings.TrimSpace(p.ORCID)
}
