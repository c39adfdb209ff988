// Package library fills the catalog, either with a built-in sample set or from the tags of local audio files.
package library
