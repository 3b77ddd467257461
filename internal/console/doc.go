// Package console implements the interactive yes/no confirmation used for
// decisions the tool refuses to take silently: replacing an existing server
// jar, accepting the EULA, and the optional second bootstrap run. The
// Prompter interface keeps the orchestration layer testable with scripted
// answers instead of a terminal.
package console
