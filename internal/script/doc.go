// Package script generates the platform start scripts for the server
// directory: start.bat for Windows shells and an executable start.sh for
// POSIX shells. Both invoke the same java command line; generation is
// deterministic and an idempotent overwrite.
package script
