// Package notesearch serves a notebook of Markdown notes and searches it, showing each result with
// excerpts that mark the query's keywords and most relevant passages.
package notesearch
