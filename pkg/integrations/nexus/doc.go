// Package nexus provides an HTTP client for the Nexus Repository Manager REST API.
//
// # Overview
//
// This package lists the components of a hosted, proxy or group repository
// through GET /service/rest/v1/components. The listing is paginated with an
// opaque continuation token:
//
//	client := nexus.NewClient(httputil.TransportOptions{InsecureSkipVerify: true})
//	listURL := nexus.ComponentsURL("https://nexus.example.com", "npm-hosted")
//
//	pageURL := listURL
//	for {
//	    page, err := client.FetchPage(ctx, pageURL)
//	    if err != nil {
//	        return err
//	    }
//	    // ... use page.Items
//	    token := page.NextToken()
//	    if token == "" {
//	        break
//	    }
//	    if pageURL, err = nexus.PageURL(listURL, token); err != nil {
//	        return err
//	    }
//	}
//
// # Page URLs
//
// [PageURL] always sets the token on the first-page URL, never on the URL of
// the previous page.
//
// # Authentication
//
// Requests are anonymous. The repository must allow anonymous read access.
package nexus
