// Package properties patches the server's line-oriented key=value files:
// eula.txt and server.properties. Files are parsed into an ordered list of
// raw lines (comments, blanks, anything malformed) and key references, so a
// rewrite preserves every original line and its position verbatim. Keys that
// were not present are appended at the end in the order they were first set.
// The patcher never drops a line it does not understand.
package properties
