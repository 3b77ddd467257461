// Package download streams the server artifact to disk. The HTTP body is
// written to a temporary sibling of the destination and atomically renamed
// into place on completion, so the final name never points at a partially
// written file — even if the process dies mid-transfer. Progress is printed
// at a throttled cadence: percentage when the server reports a total size,
// raw byte count when it does not.
package download
