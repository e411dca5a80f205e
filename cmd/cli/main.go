package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"ng-jenkins-demo/internal/client"
	"ng-jenkins-demo/internal/config"
	"ng-jenkins-demo/internal/core"
	"ng-jenkins-demo/internal/log"
)

func main() {
	ctx := context.Background()
	logger := log.New("cli")

	cfg, err := config.LoadConfig(ctx)
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	newClient := func(cmd *cli.Command) *client.Client {
		return client.New(cmd.String("url"), cfg.Client.Timeout, logger)
	}

	cmd := &cli.Command{
		Name:  "cli",
		Usage: "inspect a running ng-jenkins-demo deployment",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "url",
				Usage: "base url of the server",
				Value: cfg.Client.BaseURL,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "health",
				Usage: "query the /health endpoint",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "wait", Usage: "retry until the server is healthy"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					c := newClient(cmd)
					var (
						h   client.Health
						err error
					)
					if cmd.Bool("wait") {
						h, err = c.WaitHealthy(ctx, cfg.Client.WaitAttempts, cfg.Client.WaitDelay)
					} else {
						h, err = c.Health(ctx)
					}
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.Root().Writer, "Status: %s\n", h.Status)
					return nil
				},
			},
			{
				Name:  "stages",
				Usage: "list the pipeline stages",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Usage: "read stages from a local YAML file instead of the server"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					var stages []core.NumberedStage
					if path := cmd.String("file"); path != "" {
						p, err := core.LoadPipeline(path)
						if err != nil {
							return fmt.Errorf("load pipeline: %w", err)
						}
						stages = p.Numbered()
					} else {
						p, err := newClient(cmd).Pipeline(ctx)
						if err != nil {
							return err
						}
						stages = p.Stages
					}
					for _, s := range stages {
						fmt.Fprintf(cmd.Root().Writer, "%d. %s: %s\n", s.Position, s.Name, s.Description)
					}
					return nil
				},
			},
			{
				Name:      "notify",
				Usage:     "print the message behind a button (info, health, build, logs, dashboard)",
				ArgsUsage: "<action>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					action := cmd.Args().First()
					if action == "" {
						return fmt.Errorf("missing action")
					}
					n, err := newClient(cmd).Notification(ctx, action)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.Root().Writer, n.Message)
					return nil
				},
			},
			{
				Name:  "version",
				Usage: "print the client's build metadata",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					info := core.NewBuildInfo(core.ClockIDs{})
					v, err := info.Semver()
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.Root().Writer, "ng-jenkins-demo %s (%s, %s)\n", v, info.BuildID, info.Environment)
					return nil
				},
			},
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}
