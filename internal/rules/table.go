package rules

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/vvka-141/labschema/pkg/labschema"
)

// Table is the immutable validation rule table.
type Table struct {
	sets map[labschema.Category]policySet
	doc  document
}

type policySet struct {
	attributes []Policy
	children   []Policy
}

// Categories returns the canonical categories the table covers.
func (t *Table) Categories() []labschema.Category {
	var out []labschema.Category
	for _, c := range labschema.CanonicalCategories() {
		if _, ok := t.sets[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// Attributes returns the attribute-row policies of a category, code first.
func (t *Table) Attributes(c labschema.Category) []Policy {
	return clonePolicies(t.sets[c.Canonical()].attributes)
}

// Children returns the sub-table policies of a category, code first.
// It is empty for categories without a sub-table.
func (t *Table) Children(c labschema.Category) []Policy {
	return clonePolicies(t.sets[c.Canonical()].children)
}

// Policy returns the attribute policy stored under key.
func (t *Table) Policy(c labschema.Category, key string) (Policy, bool) {
	for _, p := range t.sets[c.Canonical()].attributes {
		if p.Key == key {
			return p, true
		}
	}
	return Policy{}, false
}

// ChildPolicy returns the sub-table policy stored under key.
func (t *Table) ChildPolicy(c labschema.Category, key string) (Policy, bool) {
	for _, p := range t.sets[c.Canonical()].children {
		if p.Key == key {
			return p, true
		}
	}
	return Policy{}, false
}

func clonePolicies(in []Policy) []Policy {
	if len(in) == 0 {
		return nil
	}
	out := make([]Policy, len(in))
	copy(out, in)
	return out
}

// build compiles a parsed document into a Table and checks it is total.
// Every problem is reported, each wrapping ErrInvalidRules.
func build(doc document) (*Table, error) {
	var errs []error
	fail := func(format string, args ...interface{}) {
		errs = append(errs, fmt.Errorf(format+": %w", append(args, labschema.ErrInvalidRules)...))
	}

	t := &Table{sets: make(map[labschema.Category]policySet), doc: doc}

	names := make([]string, 0, len(doc.Categories))
	for name := range doc.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cd := doc.Categories[name]
		cat, ok := labschema.ParseCategory(name)
		if !ok {
			fail("unknown category %q", name)
			continue
		}
		canonical := cat.Canonical()
		if _, dup := t.sets[canonical]; dup {
			fail("category %s declared more than once (synonyms fold to %s)", name, canonical)
			continue
		}

		attrs, aerrs := compileSection(canonical, "attributes", cd.Attributes, labschema.AttributeKeys(canonical))
		errs = append(errs, aerrs...)

		var children []Policy
		switch {
		case canonical.Child() == labschema.ChildNone && len(cd.Children) > 0:
			fail("%s has no sub-table but declares children", canonical)
		case canonical.Child() != labschema.ChildNone:
			var cerrs []error
			children, cerrs = compileSection(canonical, "children", cd.Children, labschema.ChildKeys(canonical))
			errs = append(errs, cerrs...)
		}

		t.sets[canonical] = policySet{attributes: attrs, children: children}
	}

	for _, c := range labschema.CanonicalCategories() {
		if _, ok := t.sets[c]; !ok {
			fail("category %s has no rules", c)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return t, nil
}

// compileSection turns policy documents into Policies, checking that the
// expected keys are each covered exactly once and nothing else is declared.
func compileSection(cat labschema.Category, section string, docs []policyDoc, expected []string) ([]Policy, []error) {
	var errs []error
	fail := func(format string, args ...interface{}) {
		prefix := fmt.Sprintf("%s.%s: ", cat, section)
		errs = append(errs, fmt.Errorf(prefix+format+": %w", append(args, labschema.ErrInvalidRules)...))
	}

	want := make(map[string]bool, len(expected))
	for _, k := range expected {
		want[k] = true
	}

	seenKeys := make(map[string]bool)
	seenHeaders := make(map[string]bool)
	var policies []Policy

	for i, pd := range docs {
		p, err := pd.compile()
		if err != nil {
			fail("policy %d (%s): %v", i, pd.Key, err)
			continue
		}
		if !want[p.Key] {
			fail("unknown key %q", p.Key)
			continue
		}
		if seenKeys[p.Key] {
			fail("key %q declared more than once", p.Key)
			continue
		}
		seenKeys[p.Key] = true
		for _, h := range p.Headers() {
			norm := strings.ToLower(strings.TrimSpace(h))
			if seenHeaders[norm] {
				fail("header %q used by more than one key", h)
			}
			seenHeaders[norm] = true
		}
		if p.Extra == ExtraReducedVersion && p.Key == labschema.KeyCode {
			fail("the code field cannot be checked against itself")
		}
		policies = append(policies, p)
	}

	for _, k := range expected {
		if !seenKeys[k] {
			fail("missing policy for key %q", k)
		}
	}

	return codeFirst(policies), errs
}

// codeFirst moves the code policy to the front; later checks depend on the code.
func codeFirst(in []Policy) []Policy {
	out := make([]Policy, 0, len(in))
	for _, p := range in {
		if p.Key == labschema.KeyCode {
			out = append(out, p)
		}
	}
	for _, p := range in {
		if p.Key != labschema.KeyCode {
			out = append(out, p)
		}
	}
	return out
}

func (pd policyDoc) compile() (Policy, error) {
	if strings.TrimSpace(pd.Header) == "" {
		return Policy{}, errors.New("header is required")
	}
	if strings.TrimSpace(pd.Key) == "" {
		return Policy{}, errors.New("key is required")
	}

	kinds := 0
	for _, set := range []bool{pd.Boolean, pd.DataType, pd.URL} {
		if set {
			kinds++
		}
	}
	if kinds > 1 {
		return Policy{}, errors.New("boolean, data_type and url are mutually exclusive")
	}

	extra := Extra(pd.Extra)
	if extra != ExtraNone && extra != ExtraReducedVersion {
		return Policy{}, fmt.Errorf("unknown extra check %q", pd.Extra)
	}

	p := Policy{
		Header:     strings.TrimSpace(pd.Header),
		Aliases:    pd.Aliases,
		Key:        pd.Key,
		Hint:       pd.Hint,
		Boolean:    pd.Boolean,
		DataType:   pd.DataType,
		URL:        pd.URL,
		Extra:      extra,
		AllowEmpty: pd.AllowEmpty,
		Optional:   pd.Optional,
	}
	if pd.Pattern != "" {
		re, err := regexp.Compile(pd.Pattern)
		if err != nil {
			return Policy{}, fmt.Errorf("invalid pattern: %w", err)
		}
		p.Pattern = re
	}
	return p, nil
}
