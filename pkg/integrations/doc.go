// Package integrations provides HTTP clients for repository manager APIs.
//
// # Overview
//
// Each API has its own subpackage built on the shared [Client]:
//
//   - [nexus]: Sonatype Nexus Repository Manager REST API
//
// # Client Pattern
//
// API clients embed [Client] and add typed fetch methods:
//
//	client := nexus.NewClient(httputil.TransportOptions{InsecureSkipVerify: true})
//	page, err := client.FetchPage(ctx, nexus.ComponentsURL("https://nexus.example.com", "npm-hosted"))
//
// # Errors
//
// [Client] never retries. Every failure is returned to the caller with a code
// from [errors]: NETWORK_ERROR, HTTP_STATUS or DECODE_ERROR. Use [StatusCode]
// to recover the HTTP status of a rejected request.
//
// [nexus]: github.com/matzehuels/pkgsync/pkg/integrations/nexus
// [errors]: github.com/matzehuels/pkgsync/pkg/errors
package integrations
