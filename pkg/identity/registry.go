// Package identity resolves raw competitor display names to stable canonical
// keys. Resolution is table driven: a registry of known competitors with
// their aliases is built once and validated for injectivity, replacing any
// ad hoc substring matching.
package identity

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnresolvedIdentity = errors.New("identity could not be resolved")
	ErrAmbiguousIdentity  = errors.New("identity is ambiguous")
)

// Entry describes one known competitor.
type Entry struct {
	// Key is the stable canonical key ("senna").
	Key string `yaml:"key" json:"key"`
	// DisplayName is the full preferred name ("Ayrton Senna").
	DisplayName string `yaml:"displayName" json:"displayName"`
	GivenName   string `yaml:"givenName"   json:"givenName"`
	FamilyName  string `yaml:"familyName"  json:"familyName"`
	// Aliases are additional full-name spellings seen upstream.
	Aliases []string `yaml:"aliases,omitempty" json:"aliases,omitempty"`
	// RequireGivenName marks family names shared by different real
	// people; a raw name then only resolves when it also carries the
	// given name.
	RequireGivenName bool `yaml:"requireGivenName,omitempty" json:"requireGivenName,omitempty"`
	// CareerFrom/CareerTo bound the active career (inclusive years).
	// Events outside the range are never attributed to this competitor.
	CareerFrom int `yaml:"careerFrom" json:"careerFrom"`
	CareerTo   int `yaml:"careerTo"   json:"careerTo"`
}

// Registry is the validated canonicalization table.
type Registry struct {
	entries  []Entry
	byKey    map[string]*Entry
	byAlias  map[string]*Entry // folded full alias -> entry
	byFamily map[string][]*Entry
}

// NewRegistry builds and validates a registry. It fails when the table is not
// injective: two entries sharing a key, a folded alias, or a family name
// without RequireGivenName set on all of them.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		entries:  entries,
		byKey:    make(map[string]*Entry),
		byAlias:  make(map[string]*Entry),
		byFamily: make(map[string][]*Entry),
	}
	for i := range entries {
		e := &r.entries[i]
		if e.Key == "" || e.FamilyName == "" {
			return nil, fmt.Errorf("entry %q: key and familyName are required", e.DisplayName)
		}
		if _, dup := r.byKey[e.Key]; dup {
			return nil, fmt.Errorf("duplicate canonical key %q", e.Key)
		}
		r.byKey[e.Key] = e
		for _, alias := range append([]string{e.DisplayName}, e.Aliases...) {
			folded := Fold(alias)
			if prev, dup := r.byAlias[folded]; dup && prev != e {
				return nil, fmt.Errorf("alias %q maps to both %q and %q", alias, prev.Key, e.Key)
			}
			r.byAlias[folded] = e
		}
		fam := Fold(e.FamilyName)
		r.byFamily[fam] = append(r.byFamily[fam], e)
	}
	for fam, shared := range r.byFamily {
		if len(shared) < 2 {
			continue
		}
		for _, e := range shared {
			if !e.RequireGivenName {
				return nil, fmt.Errorf(
					"family name %q is shared by %d entries but %q does not require a given name",
					fam, len(shared), e.Key)
			}
		}
	}
	return r, nil
}

// LoadEntries reads a competitor reference table from a YAML file.
func LoadEntries(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Competitors []Entry `yaml:"competitors"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc.Competitors, nil
}

// Resolve maps a raw display name to a canonical key. The lookup order is
// exact folded alias, then family-name token match (with the given-name token
// required for ambiguous family names).
func (r *Registry) Resolve(rawName string) (string, error) {
	folded := Fold(rawName)
	if folded == "" {
		return "", fmt.Errorf("%w: empty name", ErrUnresolvedIdentity)
	}
	if e, ok := r.byAlias[folded]; ok {
		return e.Key, nil
	}
	tokens := strings.Fields(folded)
	for _, tok := range tokens {
		shared, ok := r.byFamily[tok]
		if !ok {
			continue
		}
		if len(shared) == 1 && !shared[0].RequireGivenName {
			return shared[0].Key, nil
		}
		matches := lo.Filter(shared, func(e *Entry, _ int) bool {
			return e.GivenName != "" && lo.Contains(tokens, Fold(e.GivenName))
		})
		switch len(matches) {
		case 1:
			return matches[0].Key, nil
		case 0:
			return "", fmt.Errorf("%w: %q needs a given name to disambiguate",
				ErrAmbiguousIdentity, rawName)
		default:
			return "", fmt.Errorf("%w: %q matches multiple entries",
				ErrAmbiguousIdentity, rawName)
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnresolvedIdentity, rawName)
}

// Entry returns the entry for a canonical key.
func (r *Registry) Entry(key string) (*Entry, bool) {
	e, ok := r.byKey[key]
	return e, ok
}

// Keys returns all canonical keys in table order.
func (r *Registry) Keys() []string {
	return lo.Map(r.entries, func(e Entry, _ int) string { return e.Key })
}

// CareerRange returns the active-career bounds for a key.
func (r *Registry) CareerRange(key string) (from, to int, ok bool) {
	e, found := r.byKey[key]
	if !found {
		return 0, 0, false
	}
	return e.CareerFrom, e.CareerTo, true
}

var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Fold lower-cases a name and strips diacritics, so that
// "Räikkönen" and "Raikkonen" fold to the same form.
func Fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}
