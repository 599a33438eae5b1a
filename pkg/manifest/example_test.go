package manifest_test

import (
	"fmt"

	"github.com/matzehuels/pkgsync/pkg/manifest"
)

func ExampleScopedName() {
	fmt.Println(manifest.ScopedName("babel", "core"))
	fmt.Println(manifest.ScopedName("", "lodash"))
	// Output:
	// @babel/core
	// lodash
}

func ExampleSet() {
	group := "g1"
	other := "g2"

	s := manifest.NewSet()
	s.Add(manifest.NewPackage(&group, "a"))
	s.Add(manifest.NewPackage(nil, "b"))
	s.Add(manifest.NewPackage(&other, "a")) // ignored: "a" is already present

	for _, p := range s.Packages() {
		fmt.Println(p.Name, p.NPM)
	}
	// Output:
	// a @g1/a
	// b b
}
