package manifest

// Package is one unique entry of the manifest.
//
// Group is nil for ungrouped components and serializes as JSON null. NPM is the
// derived package-manager identifier, see [ScopedName].
type Package struct {
	Group *string `json:"group" toml:"group,omitempty"`
	Name  string  `json:"name" toml:"name"`
	NPM   string  `json:"npm" toml:"npm"`
}

// NewPackage builds a manifest entry for a component and derives its
// identifier. A nil or empty group yields an unscoped identifier; the group
// field keeps whatever the repository reported.
func NewPackage(group *string, name string) Package {
	g := ""
	if group != nil {
		g = *group
	}
	return Package{
		Group: group,
		Name:  name,
		NPM:   ScopedName(g, name),
	}
}

// ScopedName returns the npm-style identifier for a component:
// "@group/name" for grouped components, the bare name otherwise.
func ScopedName(group, name string) string {
	if group == "" {
		return name
	}
	return "@" + group + "/" + name
}
