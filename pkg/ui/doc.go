// Package ui renders will records for the command line: plain text, styled
// terminal output, JSON and markdown.
package ui
