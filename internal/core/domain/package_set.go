package domain

import "slices"

// PackageSet is an ordered, duplicate-free sequence of package names.
// The order is lexicographic ascending so that output and diffs are reproducible.
type PackageSet []string

// NewPackageSet builds a PackageSet from arbitrary names.
// Empty names are dropped, duplicates collapse.
func NewPackageSet(names ...string) PackageSet {
	set := make(PackageSet, 0, len(names))
	for _, name := range names {
		if name != "" {
			set = append(set, name)
		}
	}
	slices.Sort(set)
	return slices.Clip(slices.Compact(set))
}

// Contains reports whether name is in the set. Names are compared byte for byte.
func (s PackageSet) Contains(name string) bool {
	_, found := slices.BinarySearch(s, name)
	return found
}

// Difference returns the names in s that are not in other.
func (s PackageSet) Difference(other PackageSet) PackageSet {
	diff := make(PackageSet, 0, len(s))
	for _, name := range s {
		if !other.Contains(name) {
			diff = append(diff, name)
		}
	}
	return diff
}

// Union returns the names present in either set.
func (s PackageSet) Union(other PackageSet) PackageSet {
	merged := make([]string, 0, len(s)+len(other))
	merged = append(merged, s...)
	merged = append(merged, other...)
	return NewPackageSet(merged...)
}

// IsEmpty reports whether the set has no names.
func (s PackageSet) IsEmpty() bool {
	return len(s) == 0
}

// Len returns the number of names in the set.
func (s PackageSet) Len() int {
	return len(s)
}
