// Package utils provides common utility functions for the kmi-checker application.
// It holds the loose conversions used when reading form values and query strings.
package utils
