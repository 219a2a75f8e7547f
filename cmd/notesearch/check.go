package main

import (
	"context"
	"flag"
	"fmt"

	"go.uber.org/zap"
)

func init() {
	flagSet := flag.NewFlagSet("check", flag.ContinueOnError)

	handler := func(args []string) error {
		nb, _, logger, err := notebookFromFlags()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		nb.Logger = logger.WithOptions(zap.IncreaseLevel(zap.WarnLevel)) // not every checked link

		problems, err := nb.Check(context.Background())
		if err != nil {
			return err
		}
		if len(problems) > 0 {
			for _, problem := range problems {
				fmt.Println(problem)
			}
			return fmt.Errorf("%d problems found", len(problems))
		}
		return nil
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "check all notes for problems",
		LongDescription:  "The check subcommand checks all notes for problems, such as broken links.",
		handler:          handler,
	})
}
