package domain

import (
	"slices"
	"strings"
)

// Section is the list of packages a group declares for a single backend.
type Section struct {
	// Name identifies the backend the packages belong to (e.g. "arch").
	Name string

	// Packages are kept in declaration order.
	Packages []string
}

// Group is a named declaration of packages, read from a single group file.
type Group struct {
	// Name is unique and case-sensitive.
	Name string

	// Path is the file the group was read from.
	Path string

	// Sections are kept in the order they first appear in the file.
	Sections []Section
}

// Packages returns the packages declared for the given section.
func (g Group) Packages(section string) []string {
	var packages []string
	for _, s := range g.Sections {
		if s.Name == section {
			packages = append(packages, s.Packages...)
		}
	}
	return packages
}

// Groups is the full set of groups loaded for a session, sorted by name.
// It is read-only after loading.
type Groups []Group

// NewGroups sorts groups by name.
func NewGroups(groups ...Group) Groups {
	sorted := slices.Clone(groups)
	slices.SortFunc(sorted, func(a, b Group) int {
		return strings.Compare(a.Name, b.Name)
	})
	return sorted
}

// Names returns the group names in sorted order.
func (gs Groups) Names() []string {
	names := make([]string, 0, len(gs))
	for _, g := range gs {
		names = append(names, g.Name)
	}
	slices.Sort(names)
	return names
}

// Declared returns the union of the packages every group declares for section.
// A package declared by several groups appears once.
func (gs Groups) Declared(section string) PackageSet {
	declared := NewPackageSet()
	for _, g := range gs {
		declared = declared.Union(g.Packages(section))
	}
	return declared
}

// SectionNames returns every section name used by any group, sorted.
func (gs Groups) SectionNames() []string {
	var names []string
	for _, g := range gs {
		for _, s := range g.Sections {
			names = append(names, s.Name)
		}
	}
	slices.Sort(names)
	return slices.Compact(names)
}
