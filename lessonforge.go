// Package lessonforge turns scraped web content into printable homeschool
// worksheets. It fetches and cleans educational text from a URL, then derives
// typed worksheet activities (vocabulary, matching, fill-in-blank, and so on)
// together with consistent answer keys.
//
// This package contains domain types, pure text-analysis logic, and the
// worksheet generators themselves. Implementations with external dependencies
// live in subdirectories named after their primary dependency (e.g. rod/,
// goquery/, sqlite/), following Ben Johnson's Standard Package Layout.
package lessonforge
