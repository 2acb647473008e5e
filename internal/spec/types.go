package spec

// Config models a codecheck.yml configuration document.
type Config struct {
	Certificate string          `yaml:"certificate"`
	Report      string          `yaml:"report"`
	Paper       Paper           `yaml:"paper"`
	Repository  string          `yaml:"repository"`
	Codechecker Person          `yaml:"codechecker"`
	CheckTime   string          `yaml:"check_time"`
	Summary     string          `yaml:"summary"`
	Manifest    []ManifestEntry `yaml:"manifest"`
}

// Paper describes the checked publication.
type Paper struct {
	Title     string   `yaml:"title"`
	Authors   []Person `yaml:"authors"`
	Reference string   `yaml:"reference"`
}

// Person is a named participant with an optional ORCID identifier.
// An empty ORCID means none was given.
type Person struct {
	Name  string `yaml:"name"`
	ORCID string `yaml:"ORCID"`
}

// ManifestEntry describes one expected output file of the check.
// A nil Size means the size must be probed from disk.
type ManifestEntry struct {
	File    string `yaml:"file"`
	Comment string `yaml:"comment"`
	Size    *int64 `yaml:"size"`
}
