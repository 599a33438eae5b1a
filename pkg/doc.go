// Package pkg provides the libraries behind pkgsync.
//
// # Overview
//
// pkgsync reads the full component listing of one Nexus repository and writes
// a manifest with one entry per component name. The pkg directory is organized
// into four areas:
//
//  1. [integrations] - HTTP clients for the repository manager
//  2. [manifest] - Package entries, the deduplicating set and encoders
//  3. [pipeline] - Orchestration (fetch → merge → write)
//  4. Support: [config], [errors], [httputil], [observability], [buildinfo]
//
// # Architecture
//
// The data flow of one run:
//
//	Environment
//	     ↓
//	[config] package (Config, read once)
//	     ↓
//	[integrations/nexus] package (one page per request, continuation tokens)
//	     ↓
//	[manifest] package (first component per name wins)
//	     ↓
//	JSON/TOML manifest file
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/pkgsync/pkg/config"
//	    "github.com/matzehuels/pkgsync/pkg/pipeline"
//	)
//
//	cfg, err := config.FromEnv()
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(pipeline.NewClient(cfg), nil)
//	result, err := runner.Execute(context.Background(), cfg)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("%d packages written to %s\n", result.Stats.Unique, result.OutputFile)
//
// # Error Handling
//
// Failures carry a code from [errors] (INVALID_CONFIG, NETWORK_ERROR,
// HTTP_STATUS, DECODE_ERROR, WRITE_ERROR). Nothing is retried; the first
// failure ends the run and the manifest is left as it was.
//
// [integrations]: https://pkg.go.dev/github.com/matzehuels/pkgsync/pkg/integrations
// [integrations/nexus]: https://pkg.go.dev/github.com/matzehuels/pkgsync/pkg/integrations/nexus
// [manifest]: https://pkg.go.dev/github.com/matzehuels/pkgsync/pkg/manifest
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pkgsync/pkg/pipeline
// [config]: https://pkg.go.dev/github.com/matzehuels/pkgsync/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/pkgsync/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/matzehuels/pkgsync/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/pkgsync/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pkgsync/pkg/buildinfo
package pkg
