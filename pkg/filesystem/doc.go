// Package filesystem provides the types.FS implementations used by the
// file-backed will store: the OS filesystem and an in-memory one for tests,
// both through afero.
package filesystem
