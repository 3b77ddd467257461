package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/minecraft-server-setup/internal/config"
	"github.com/oshokin/minecraft-server-setup/internal/logger"
	"github.com/oshokin/minecraft-server-setup/internal/service/setup"
	"github.com/oshokin/minecraft-server-setup/internal/version"
)

var (
	// options collects the flag values passed through to the setup service.
	options setup.Options

	// logLevel is the textual logging level from --log-level.
	logLevel string

	// rootCmd represents the base command that provisions a server.
	rootCmd = &cobra.Command{
		Use:   "mc-server-setup",
		Short: "Set up a Minecraft: Java Edition server",
		Long: "mc-server-setup downloads the official Minecraft server jar, " +
			"writes start scripts, walks through EULA acceptance, " +
			"and applies common server.properties settings.",
		RunE: func(_ *cobra.Command, _ []string) error {
			if level, ok := logger.ParseLogLevel(logLevel); ok {
				logger.SetLevel(level)
			}

			// Setup graceful shutdown handling.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return setup.Run(ctx, &options)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the mc-server-setup CLI and exits with the documented status codes.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(setup.ExitCode(err))
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	flags := rootCmd.Flags()

	flags.StringVarP(&options.ConfigPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	flags.StringVarP(&options.Dir, "dir", "d", "server", "server directory to create or reuse")
	flags.StringVar(&options.Version, "version", "", "Minecraft version to install (default: latest release)")
	flags.BoolVar(&options.Latest, "latest", false, "install the latest release explicitly")
	flags.StringVar(&options.Xms, "xms", "2G", "initial Java heap size")
	flags.StringVar(&options.Xmx, "xmx", "4G", "maximum Java heap size")
	flags.BoolVar(&options.NoGUI, "nogui", true, "run the server without its graphical console")
	flags.BoolVar(&options.AgreeEULA, "agree-eula", false, "accept the Minecraft EULA without prompting")
	flags.BoolVar(&options.Whitelist, "whitelist", false, "enable the whitelist in server.properties")
	flags.BoolVar(&options.NoWhitelist, "no-whitelist", false, "disable the whitelist in server.properties")
	flags.BoolVar(&options.OnlineMode, "online-mode", false, "require Mojang authentication (online-mode=true)")
	flags.BoolVar(&options.OfflineMode, "offline-mode", false, "skip Mojang authentication (online-mode=false)")
	flags.StringVar(&logLevel, "log-level", "info", "logging level (debug, info, warn, error)")
}
