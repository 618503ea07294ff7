// Package engine runs the pincheck pipeline: read a manifest, match its pins
// against an insecure-version table and hand back the findings. This package
// is internal; external consumers should use the stable facade in pkg/core.
package engine
