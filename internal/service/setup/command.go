package setup

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/oshokin/minecraft-server-setup/internal/config"
	"github.com/oshokin/minecraft-server-setup/internal/console"
	"github.com/oshokin/minecraft-server-setup/internal/java"
	"github.com/oshokin/minecraft-server-setup/internal/logger"
	"github.com/oshokin/minecraft-server-setup/internal/manifest"
	"github.com/oshokin/minecraft-server-setup/internal/script"
)

// Options are inputs accepted by the setup entry point, mirroring the CLI flags.
type Options struct {
	// ConfigPath is the optional path to the settings YAML file.
	ConfigPath string
	// Dir is the server directory to create or reuse.
	Dir string
	// Version is an explicit version id; empty means the latest release.
	Version string
	// Latest explicitly requests the latest release. Conflicts with Version.
	Latest bool
	// Xms is the initial heap size passed through to the launcher.
	Xms string
	// Xmx is the maximum heap size passed through to the launcher.
	Xmx string
	// NoGUI suppresses the server's graphical console.
	NoGUI bool
	// AgreeEULA accepts the EULA without prompting.
	AgreeEULA bool
	// Whitelist enables the whitelist in server.properties.
	Whitelist bool
	// NoWhitelist disables the whitelist in server.properties.
	NoWhitelist bool
	// OnlineMode sets online-mode=true in server.properties.
	OnlineMode bool
	// OfflineMode sets online-mode=false in server.properties.
	OfflineMode bool
}

// javaRunner invokes the launcher; injected so tests can script server runs.
type javaRunner func(ctx context.Context, javaPath, dir string, args []string) (java.Outcome, error)

// runner holds the resolved state for a single setup execution.
// It is intentionally unexported—call Run(ctx, Options) from callers.
type runner struct {
	// opts are the validated caller inputs.
	opts *Options
	// cfg is the loaded settings file (or defaults).
	cfg *config.Config
	// serverDir is the absolute server directory path.
	serverDir string
	// javaPath is the located launcher.
	javaPath string
	// manifestClient resolves versions and metadata.
	manifestClient *manifest.Client
	// downloadClient carries the artifact download timeout.
	downloadClient *http.Client
	// prompter asks the operator the yes/no questions.
	prompter console.Prompter
	// runJava launches the server jar.
	runJava javaRunner
	// progressOut receives download progress lines.
	progressOut io.Writer
}

// Run executes the setup lifecycle and is the public entry point for the CLI.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "mc-server-setup")

	r, err := newRunner(ctx, opts)
	if err != nil {
		return err
	}

	if err = r.Run(ctx); err != nil {
		logger.ErrorKV(ctx, "Setup failed", "error", err)
		return err
	}

	return nil
}

// newRunner validates the flags before any network or filesystem work, then
// prepares the server directory and locates the launcher.
func newRunner(ctx context.Context, opts *Options) (*runner, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	serverDir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve server directory: %w", err)
	}

	if err = os.MkdirAll(serverDir, 0o755); err != nil { //nolint:mnd // Standard directory permissions.
		return nil, fmt.Errorf("create server directory: %w", err)
	}

	javaPath, err := java.Locate()
	if err != nil {
		return nil, err
	}

	logger.DebugKV(ctx, "Located java launcher", "path", javaPath)

	return &runner{
		opts:           opts,
		cfg:            cfg,
		serverDir:      serverDir,
		javaPath:       javaPath,
		manifestClient: manifest.NewClient(cfg.ManifestURLs, cfg.FetchTimeout),
		downloadClient: &http.Client{Timeout: cfg.DownloadTimeout},
		prompter:       console.NewTerminal(os.Stdin, os.Stdout),
		runJava:        java.Run,
		progressOut:    os.Stdout,
	}, nil
}

// Run executes the provisioning pipeline:
// 1) Resolve the requested version and its server download URL.
// 2) Download the artifact (or keep the existing one).
// 3) Write the start scripts.
// 4) Bootstrap-run the server to generate eula.txt.
// 5) Accept the EULA, interactively or via flag.
// 6) Optionally run again to generate server.properties.
// 7) Apply the requested property toggles.
func (r *runner) Run(ctx context.Context) error {
	downloadURL, err := r.resolveDownloadURL(ctx)
	if err != nil {
		return err
	}

	if err = r.ensureArtifact(ctx, downloadURL); err != nil {
		return err
	}

	if err = r.writeStartScripts(ctx); err != nil {
		return err
	}

	if err = r.bootstrapEULA(ctx); err != nil {
		return err
	}

	accepted, err := r.acceptEULA(ctx)
	if err != nil {
		return err
	}

	if !accepted {
		// Declining is a valid outcome, not a failure. The server simply
		// will not start until the flag is flipped by hand.
		logger.Warnf(ctx, "EULA not accepted. Setup completed, but the server will not run until eula=true. Edit: %s",
			filepath.Join(r.serverDir, "eula.txt"))

		return nil
	}

	if err = r.generateRemainingFiles(ctx); err != nil {
		return err
	}

	if err = r.patchProperties(ctx); err != nil {
		return err
	}

	r.printNextSteps(ctx)

	return nil
}

// launchParams returns the java invocation shared by scripts and bootstrap runs.
func (r *runner) launchParams() script.Params {
	return script.Params{
		Xms:     r.opts.Xms,
		Xmx:     r.opts.Xmx,
		JarName: r.cfg.JarName,
		NoGUI:   r.opts.NoGUI,
	}
}
