package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/seqren/internal"
	pkgconfig "github.com/starford/seqren/pkg/config"
)

var version = "dev"

// loadConfig reads the optional config file and applies flag overrides.
func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	cfg := internal.NewDefaultConfig()
	if _, err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cmd.IsSet("log-level") {
		if err := cfg.App.LogLevel.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
			return nil, fmt.Errorf("invalid --log-level: %w", err)
		}
	}
	if cmd.IsSet("follow-symlinks") {
		cfg.Renamer.FollowSymlinks = cmd.Bool("follow-symlinks")
	}
	if cmd.IsSet("verify") {
		cfg.Renamer.Verify = cmd.Bool("verify")
	}
	if cmd.IsSet("monitor") {
		cfg.Renamer.Monitor = cmd.Bool("monitor")
	}
	if cmd.IsSet("root") {
		cfg.Serve.Root = cmd.String("root")
	}
	if cmd.IsSet("port") {
		cfg.App.HTTP.Port = int(cmd.Int("port"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func options(cmd *cli.Command) ([]internal.Option, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return []internal.Option{
		internal.WithConfig(cfg),
		internal.WithVersion(version),
	}, nil
}

func requireDir(cmd *cli.Command) (string, error) {
	dir := cmd.Args().First()
	if dir == "" {
		return "", fmt.Errorf("%s: directory argument is required", cmd.Name)
	}
	return dir, nil
}

func followSymlinksFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "follow-symlinks",
		Usage: "Treat symlinks to regular files as files to rename",
	}
}

func batchFlags() []cli.Flag {
	return []cli.Flag{
		followSymlinksFlag(),
		&cli.BoolFlag{
			Name:  "verify",
			Usage: "Check file contents by SHA-256 before and after the batch",
		},
		&cli.BoolFlag{
			Name:  "monitor",
			Usage: "Watch the directory during the batch and report changes made by other processes",
		},
	}
}

func rootFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "root",
		Usage:   "Directory that API and MCP requests are confined to",
		Sources: cli.EnvVars("SEQREN_ROOT"),
	}
}

func renameCommand() *cli.Command {
	return &cli.Command{
		Name:      "rename",
		Usage:     "Rename every regular file in a directory to \"part N.ext\"",
		ArgsUsage: "[DIR]",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "Do not ask for confirmation",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print the plan and change nothing",
			},
		}, batchFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := options(cmd)
			if err != nil {
				return err
			}
			return internal.Rename(ctx, internal.RenameRequest{
				Dir:    cmd.Args().First(),
				Yes:    cmd.Bool("yes"),
				DryRun: cmd.Bool("dry-run"),
			}, opts...)
		},
	}
}

func planCommand() *cli.Command {
	return &cli.Command{
		Name:      "plan",
		Usage:     "Show what a rename would do without touching the directory",
		ArgsUsage: "DIR",
		Flags:     []cli.Flag{followSymlinksFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := requireDir(cmd)
			if err != nil {
				return err
			}
			opts, err := options(cmd)
			if err != nil {
				return err
			}
			return internal.Plan(ctx, dir, opts...)
		},
	}
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Usage:     "List the files a rename would number, in order",
		ArgsUsage: "DIR",
		Flags:     []cli.Flag{followSymlinksFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir, err := requireDir(cmd)
			if err != nil {
				return err
			}
			opts, err := options(cmd)
			if err != nil {
				return err
			}
			return internal.List(ctx, dir, opts...)
		},
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP API",
		Flags: append([]cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "HTTP port",
				Sources: cli.EnvVars("SEQREN_PORT"),
			},
		}, rootFlag()),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := options(cmd)
			if err != nil {
				return err
			}
			if err := internal.Serve(ctx, opts...); err != nil {
				return fmt.Errorf("app run error: %w", err)
			}
			return nil
		},
	}
}

func mcpCommand() *cli.Command {
	return &cli.Command{
		Name:  "mcp",
		Usage: "Run the MCP server on stdio",
		Flags: []cli.Flag{rootFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := options(cmd)
			if err != nil {
				return err
			}
			return internal.ServeMCP(ctx, opts...)
		},
	}
}

func main() {
	cmd := &cli.Command{
		Name:    "seqren",
		Usage:   "Rename the files in a folder to a numbered sequence without ever overwriting one",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "Path to config file (optional)",
				DefaultText: "config/config.yaml",
				Value:       "config/config.yaml",
				Sources:     cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				Sources: cli.EnvVars("SEQREN_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			renameCommand(),
			planCommand(),
			listCommand(),
			serveCommand(),
			mcpCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
