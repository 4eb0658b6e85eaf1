// Package manifest parses and validates requirements-style dependency
// manifests: one specifier per line, of the form
// <name>[extras]<specifier-set>, with #-prefixed comments.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"mbti-chat/internal/shared"
	"mbti-chat/internal/types"
)

// opTokens is the ordered list of specifier operators recognized at the
// start of a specifier set. Longer tokens must precede shorter ones to
// avoid false matches (e.g. ">=" before ">").
var opTokens = []string{"===", "==", "!=", "~=", ">=", "<=", ">", "<"}

// Parse reads a requirements manifest line by line. Blank lines are
// skipped, full-line comments are collected, and every remaining line
// must parse as a requirement.
func Parse(r io.Reader, source string) (types.Manifest, error) {
	m := types.Manifest{Source: source}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" {
			continue
		}
		if strings.HasPrefix(raw, "#") {
			m.Comments = append(m.Comments, strings.TrimSpace(strings.TrimPrefix(raw, "#")))
			continue
		}
		req, err := ParseRequirement(raw, line)
		if err != nil {
			return types.Manifest{}, err
		}
		m.Requirements = append(m.Requirements, req)
	}
	if err := scanner.Err(); err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read manifest").
			WithCause(err)
	}
	return m, nil
}

// ParseRequirement parses a single requirement line such as
// "streamlit>=1.28.0,<2.0.0  # pin to v1". A trailing comment containing
// the word "optional" marks the requirement optional.
func ParseRequirement(raw string, line int) (types.Requirement, error) {
	spec, comment := splitComment(raw)
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return types.Requirement{}, invalidLine(line, raw, "empty requirement")
	}
	if strings.Contains(spec, ";") {
		return types.Requirement{}, invalidLine(line, raw, "environment markers are not supported")
	}

	name, extras, rest, err := splitName(spec, line, raw)
	if err != nil {
		return types.Requirement{}, err
	}

	req := types.Requirement{
		Name:           name,
		NormalizedName: shared.NormalizeRequirementName(name),
		Extras:         extras,
		RawSpecifier:   rest,
		Comment:        comment,
		Optional:       isOptionalComment(comment),
		Line:           line,
	}
	if rest != "" {
		specifiers, err := pep440.NewSpecifiers(rest)
		if err != nil {
			return types.Requirement{}, invalidLine(line, raw, fmt.Sprintf("invalid specifier set: %v", err))
		}
		req.Specifiers = specifiers
	}
	return req, nil
}

// Check reports whether a concrete version satisfies the requirement.
// A requirement without specifiers admits every version.
func Check(req types.Requirement, version string) (bool, error) {
	parsed, err := pep440.Parse(version)
	if err != nil {
		return false, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid version %q", version)).
			WithCause(err)
	}
	if req.RawSpecifier == "" {
		return true, nil
	}
	return req.Specifiers.Check(parsed), nil
}

// Validate runs structural checks over a parsed manifest and returns
// every finding. An empty result means the manifest is valid. Checks:
// duplicate normalized names, and specifier sets whose bounds admit no
// version (a syntactic check over the >/>=/</<= clauses, not a full
// emptiness analysis).
func Validate(m types.Manifest) []types.ManifestProblem {
	var problems []types.ManifestProblem
	seen := map[string]int{}
	for _, req := range m.Requirements {
		if first, ok := seen[req.NormalizedName]; ok {
			problems = append(problems, types.ManifestProblem{
				Line:    req.Line,
				Subject: req.Name,
				Detail:  fmt.Sprintf("duplicate of requirement on line %d", first),
			})
			continue
		}
		seen[req.NormalizedName] = req.Line
		if detail, ok := contradictoryBounds(req); ok {
			problems = append(problems, types.ManifestProblem{
				Line:    req.Line,
				Subject: req.Name,
				Detail:  detail,
			})
		}
	}
	return problems
}

// contradictoryBounds reports a specifier set whose tightest lower
// bound meets or exceeds its tightest upper bound, such as
// ">=2.0,<1.0". Clauses with unparseable versions (wildcards) are
// ignored.
func contradictoryBounds(req types.Requirement) (string, bool) {
	var (
		lower, upper             pep440.Version
		haveLower, haveUpper     bool
		lowerStrict, upperStrict bool
	)
	for _, clause := range strings.Split(req.RawSpecifier, ",") {
		op, rest := splitOperator(strings.TrimSpace(clause))
		version, err := pep440.Parse(rest)
		if err != nil {
			continue
		}
		switch op {
		case ">", ">=":
			switch {
			case !haveLower || version.GreaterThan(lower):
				lower, lowerStrict, haveLower = version, op == ">", true
			case version.Equal(lower) && op == ">":
				lowerStrict = true
			}
		case "<", "<=":
			switch {
			case !haveUpper || version.LessThan(upper):
				upper, upperStrict, haveUpper = version, op == "<", true
			case version.Equal(upper) && op == "<":
				upperStrict = true
			}
		}
	}
	if !haveLower || !haveUpper {
		return "", false
	}
	if lower.GreaterThan(upper) || (lower.Equal(upper) && (lowerStrict || upperStrict)) {
		return fmt.Sprintf("no version can satisfy %q", req.RawSpecifier), true
	}
	return "", false
}

// splitOperator cuts the leading comparison operator off a specifier
// clause.
func splitOperator(clause string) (string, string) {
	for _, op := range opTokens {
		if strings.HasPrefix(clause, op) {
			return op, strings.TrimSpace(strings.TrimPrefix(clause, op))
		}
	}
	return "", clause
}

// splitComment separates the specifier text from a trailing comment.
func splitComment(raw string) (string, string) {
	if idx := strings.Index(raw, "#"); idx >= 0 {
		return raw[:idx], strings.TrimSpace(raw[idx+1:])
	}
	return raw, ""
}

// splitName cuts the package name (and optional [extras] suffix) off the
// front of a requirement, returning the remaining specifier set.
func splitName(spec string, line int, raw string) (string, []string, string, error) {
	var extras []string
	rest := spec
	name := spec
	if open := strings.Index(spec, "["); open >= 0 {
		closeIdx := strings.Index(spec, "]")
		if closeIdx < open {
			return "", nil, "", invalidLine(line, raw, "unterminated extras bracket")
		}
		name = strings.TrimSpace(spec[:open])
		for _, extra := range strings.Split(spec[open+1:closeIdx], ",") {
			extra = strings.TrimSpace(extra)
			if extra != "" {
				extras = append(extras, extra)
			}
		}
		rest = strings.TrimSpace(spec[closeIdx+1:])
	} else {
		cut := len(spec)
		for _, op := range opTokens {
			if idx := strings.Index(spec, op); idx >= 0 && idx < cut {
				cut = idx
			}
		}
		name = strings.TrimSpace(spec[:cut])
		rest = strings.TrimSpace(spec[cut:])
	}
	if name == "" {
		return "", nil, "", invalidLine(line, raw, "missing package name")
	}
	if !validName(name) {
		return "", nil, "", invalidLine(line, raw, fmt.Sprintf("invalid package name %q", name))
	}
	return name, extras, rest, nil
}

// validName accepts PEP 508 name characters: letters, digits, and
// interior ., -, _ runs.
func validName(name string) bool {
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.' || r == '-' || r == '_':
			if i == 0 || i == len(name)-1 {
				return false
			}
		default:
			return false
		}
	}
	return name != ""
}

func isOptionalComment(comment string) bool {
	return strings.Contains(strings.ToLower(comment), "optional")
}

func invalidLine(line int, raw string, detail string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("line %d: %s: %s", line, detail, strings.TrimSpace(raw)))
}
