package types

import pep440 "github.com/aquasecurity/go-pep440-version"

// Requirement is one parsed dependency specifier line from a
// requirements-style manifest.
type Requirement struct {
	// Name is the package name exactly as written.
	Name string
	// NormalizedName is Name normalized per PEP 503.
	NormalizedName string
	// Extras lists requested extras, e.g. llama-index[weaviate].
	Extras []string
	// RawSpecifier is the specifier set as written, e.g. ">=1.28.0,<2.0.0".
	// Empty for a bare name.
	RawSpecifier string
	// Specifiers is the parsed PEP 440 specifier set.
	Specifiers pep440.Specifiers
	// Optional marks requirements whose trailing comment declares them
	// optional; a missing optional dependency is not an error.
	Optional bool
	// Comment is the trailing comment text, without the leading "#".
	Comment string
	// Line is the 1-based line number in the source file.
	Line int
}

// Manifest is a parsed requirements manifest.
type Manifest struct {
	Source       string
	Requirements []Requirement
	// Comments holds full-line comments in file order.
	Comments []string
}

// ManifestProblem describes one validation finding against a manifest.
type ManifestProblem struct {
	Line    int
	Subject string
	Detail  string
}
