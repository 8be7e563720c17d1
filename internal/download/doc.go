// Package download implements the file fetcher: it resolves Google Drive share
// links to their download endpoint, walks through the large-file confirmation
// step, streams the file into the destination directory under the name the
// provider suggests, and remembers which spreadsheet rows requested each file.
package download
