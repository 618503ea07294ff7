// Package manifest reads requirement manifests made of exact
// `package==version` pins. Lines without the separator are ignored; a line
// with more than one separator is rejected.
package manifest
