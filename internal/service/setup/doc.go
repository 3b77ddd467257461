// Package setup orchestrates provisioning a local Minecraft Java server
// directory: version resolution against the Mojang manifest, the artifact
// download, start script generation, the first-run bootstrap that makes the
// server emit eula.txt, EULA acceptance, an optional second run to
// materialize server.properties, and the property toggles.
//
// Pure decisions (flag validation, toggle derivation, exit code mapping)
// are separated from the effectful confirmation prompts, which reach the
// runner only through the injected console.Prompter.
package setup
