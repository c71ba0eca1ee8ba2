// Package wikistat provides a small client that looks up a single
// encyclopedia article by title and reports statistics about its text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or remote service (e.g., http/, goquery/,
// mediawiki/).
package wikistat
