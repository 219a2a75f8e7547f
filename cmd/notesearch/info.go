package main

import (
	"flag"
	"os"

	"gopkg.in/yaml.v2"
)

func init() {
	flagSet := flag.NewFlagSet("info", flag.ContinueOnError)

	handler := func(args []string) error {
		config, err := loadConfig(*configPath, os.Getenv)
		if err != nil {
			return err
		}
		return yaml.NewEncoder(os.Stdout).Encode(config)
	}

	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "print notesearch configuration",
		LongDescription:  "The info subcommand prints the resolved configuration, after environment overrides.",
		handler:          handler,
	})
}
