// Package manifest defines the package manifest produced by a sync run.
//
// # Overview
//
// A manifest lists every distinct component name found in a repository,
// once, with an npm-style identifier derived from the component group:
//
//	{
//	    "packages": [
//	        {"group": "babel", "name": "core", "npm": "@babel/core"},
//	        {"group": null, "name": "lodash", "npm": "lodash"}
//	    ]
//	}
//
// # Deduplication
//
// [Set] keeps packages in the order their names were first seen and ignores
// later packages with a name it already holds, even when the group differs.
//
// # Output
//
// [Export] writes a [Document] as JSON (default, four-space indent) or TOML.
package manifest
