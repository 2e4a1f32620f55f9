package main

import (
	"context"
	"log/slog"

	"github.com/urfave/cli/v3"
)

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "print the resolved configuration as YAML",
		Flags: append(seedFlags(),
			&cli.StringFlag{Name: "write", Aliases: []string{"w"}, Usage: "also write the YAML to this file"},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.YAML()
			if err != nil {
				return err
			}
			if _, err := cmd.Root().Writer.Write(data); err != nil {
				return err
			}
			if path := cmd.String("write"); path != "" {
				if err := cfg.WriteYAML(path); err != nil {
					return err
				}
				slog.Info("config written", "path", path)
			}
			return nil
		},
	}
}
