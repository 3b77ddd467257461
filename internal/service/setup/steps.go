package setup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/oshokin/minecraft-server-setup/internal/download"
	"github.com/oshokin/minecraft-server-setup/internal/java"
	"github.com/oshokin/minecraft-server-setup/internal/logger"
	"github.com/oshokin/minecraft-server-setup/internal/manifest"
	"github.com/oshokin/minecraft-server-setup/internal/properties"
	"github.com/oshokin/minecraft-server-setup/internal/script"
)

// resolveDownloadURL fetches the manifest, resolves the requested version,
// and returns the server artifact URL from the version metadata.
func (r *runner) resolveDownloadURL(ctx context.Context) (string, error) {
	logger.Info(ctx, "Fetching the Mojang version manifest")

	m, err := r.manifestClient.Fetch(ctx)
	if err != nil {
		return "", err
	}

	selected, err := manifest.Resolve(m, r.opts.Version)
	if err != nil {
		return "", err
	}

	logger.InfoKV(ctx, "Selected Minecraft version", "version", selected.ID, "server_dir", r.serverDir)

	downloadURL, err := r.manifestClient.ServerDownloadURL(ctx, selected.URL)
	if err != nil {
		return "", err
	}

	return downloadURL, nil
}

// ensureArtifact downloads the server jar, or keeps an existing one unless
// the operator confirms replacement. There is no silent overwrite.
func (r *runner) ensureArtifact(ctx context.Context, downloadURL string) error {
	jarPath := filepath.Join(r.serverDir, r.cfg.JarName)

	if _, err := os.Stat(jarPath); err == nil {
		r.warnIfJavaRunning(ctx)

		overwrite, err := r.prompter.Confirm(r.cfg.JarName+" already exists. Re-download and overwrite?", false)
		if err != nil {
			return err
		}

		if !overwrite {
			logger.Infof(ctx, "Keeping existing %s", r.cfg.JarName)
			return nil
		}

		if err = os.Remove(jarPath); err != nil {
			return fmt.Errorf("remove existing %s: %w", r.cfg.JarName, err)
		}
	}

	logger.Info(ctx, "Downloading the official server jar from Mojang")

	if err := download.File(ctx, r.downloadClient, downloadURL, jarPath, r.progressOut); err != nil {
		return fmt.Errorf("download server jar: %w", err)
	}

	return nil
}

// warnIfJavaRunning scans the process list and warns when a java process is
// up: the existing jar may belong to a running server.
func (r *runner) warnIfJavaRunning(ctx context.Context) {
	processList, err := ps.Processes()
	if err != nil {
		logger.DebugKV(ctx, "Process scan failed", "error", err)
		return
	}

	for _, process := range processList {
		name := strings.TrimSuffix(strings.ToLower(process.Executable()), ".exe")
		if name != "java" {
			continue
		}

		logger.WarnKV(ctx, "A java process is running; the existing server jar may be in use",
			"pid", process.Pid())

		return
	}
}

// writeStartScripts emits start.bat and start.sh into the server directory.
func (r *runner) writeStartScripts(ctx context.Context) error {
	if err := script.Write(r.serverDir, r.launchParams()); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Wrote start scripts", "scripts", script.BatchFilename+", "+script.ShellFilename)

	return nil
}

// bootstrapEULA runs the server once when eula.txt is absent, so the server
// generates it, and verifies it exists afterwards. The server intentionally
// halts on this run because the license is unaccepted, so a benign exit is
// expected; anything else is only a warning, since first-run exit behavior
// varies across server versions.
func (r *runner) bootstrapEULA(ctx context.Context) error {
	if !properties.EULAExists(r.serverDir) {
		logger.Info(ctx, "Running the server once to generate eula.txt (expected to stop immediately)")

		outcome, err := r.runJava(ctx, r.javaPath, r.serverDir, r.launchParams().LaunchArgs())
		if err != nil {
			return err
		}

		if outcome.Result != java.ResultClean && outcome.Result != java.ResultBenign {
			logger.WarnKV(ctx, "Server exited abnormally (this can be normal on first run)",
				"result", outcome.Result.String(), "exit_code", outcome.ExitCode)
		}
	}

	if !properties.EULAExists(r.serverDir) {
		return ErrEULAStillMissing
	}

	return nil
}

// acceptEULA decides on EULA acceptance (flag or prompt) and applies it.
func (r *runner) acceptEULA(ctx context.Context) (bool, error) {
	accepted := r.opts.AgreeEULA
	if !accepted {
		logger.Info(ctx, "Mojang requires accepting the Minecraft EULA to run a server. "+
			"You can review it here: https://www.minecraft.net/eula")

		var err error

		accepted, err = r.prompter.Confirm("Do you accept the Minecraft EULA and want to set eula=true?", false)
		if err != nil {
			return false, err
		}
	}

	if !accepted {
		return false, nil
	}

	if err := properties.AcceptEULA(r.serverDir); err != nil {
		return false, err
	}

	logger.Info(ctx, "Set eula=true in eula.txt")

	return true, nil
}

// generateRemainingFiles offers a second server run so it materializes
// server.properties and the rest of its files.
func (r *runner) generateRemainingFiles(ctx context.Context) error {
	runAgain, err := r.prompter.Confirm("Run the server now to generate the remaining files (server.properties, etc.)?", true)
	if err != nil {
		return err
	}

	if !runAgain {
		return nil
	}

	outcome, err := r.runJava(ctx, r.javaPath, r.serverDir, r.launchParams().LaunchArgs())
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Server run finished. If it's still running, type 'stop' in the server console",
		"result", outcome.Result.String(), "exit_code", outcome.ExitCode)

	return nil
}

// patchProperties applies the whitelist and online-mode toggles derived from
// the flags. Absent server.properties makes this a silent no-op.
func (r *runner) patchProperties(ctx context.Context) error {
	whitelist := toggleFromFlags(r.opts.Whitelist, r.opts.NoWhitelist)
	onlineMode := toggleFromFlags(r.opts.OnlineMode, r.opts.OfflineMode)

	if whitelist == nil && onlineMode == nil {
		return nil
	}

	if err := properties.PatchServerProperties(r.serverDir, whitelist, onlineMode); err != nil {
		return err
	}

	logger.InfoKV(ctx, "Patched "+properties.PropertiesFilename,
		"whitelist", formatToggle(whitelist), "online_mode", formatToggle(onlineMode))

	return nil
}

// printNextSteps logs human-readable guidance for starting the server.
func (r *runner) printNextSteps(ctx context.Context) {
	var builder strings.Builder

	builder.WriteString("Done. To start the server:\n")

	if runtime.GOOS == "windows" {
		builder.WriteString("  ")
		builder.WriteString(filepath.Join(r.serverDir, script.BatchFilename))
	} else {
		builder.WriteString("  cd ")
		builder.WriteString(r.serverDir)
		builder.WriteString(" && ./")
		builder.WriteString(script.ShellFilename)
	}

	builder.WriteString("\nNext steps:\n")
	builder.WriteString("  - Set a whitelist (recommended).\n")
	builder.WriteString("  - Port forward TCP 25565 to this machine's LAN IP if hosting publicly.\n")
	builder.WriteString("  - Consider a dynamic DNS service for a stable hostname if your IP changes.")

	logger.Info(ctx, builder.String())
}

// formatToggle renders an optional toggle for logging.
func formatToggle(toggle *bool) string {
	if toggle == nil {
		return "unchanged"
	}

	return fmt.Sprintf("%t", *toggle)
}
