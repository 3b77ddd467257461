// Package manifest resolves Minecraft versions against Mojang's public
// version manifest. The manifest lists every version id with a metadata URL
// plus a "latest release" pointer; per-version metadata carries the server
// jar download URL. Fetching falls back across an injected ordered list of
// mirrors and only surfaces the last error when all of them fail.
package manifest
