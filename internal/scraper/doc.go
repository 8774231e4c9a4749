// Package scraper fetches the gob.pe holiday page and extracts holiday entries.
//
// The page is parsed with goquery and scanned by an ordered set of rules, one per
// structural region (the featured "next holiday" block, then the holiday list).
// Rules locate entries through CSS class markers; when the upstream markup changes,
// rules.go is the only place that needs updating.
//
// Extract never fails: fetch and parse errors are logged and produce an empty result.
package scraper
