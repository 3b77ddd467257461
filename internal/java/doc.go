// Package java locates the Java launcher and runs the server jar with it.
// JAVA_HOME wins over the command search path. Runs are classified into an
// explicit outcome instead of leaking raw exit codes to callers, because the
// server's first-run behavior legitimately varies across versions.
package java
