package main

import (
	"flag"
	"net"
	"net/http"

	"go.uber.org/zap"
)

func init() {
	flagSet := flag.NewFlagSet("serve", flag.ContinueOnError)
	var (
		httpAddr = flagSet.String("http", ":5080", "HTTP listen address")
	)

	handler := func(args []string) error {
		host, port, err := net.SplitHostPort(*httpAddr)
		if err != nil {
			return &usageError{err}
		}
		if host == "" {
			host = "0.0.0.0"
		}

		nb, _, logger, err := notebookFromFlags()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		logger.Info("notebook is available", zap.String("url", "http://"+net.JoinHostPort(host, port)))
		return http.ListenAndServe(*httpAddr, nb.Handler())
	}

	// Register the command.
	commands = append(commands, &command{
		FlagSet:          flagSet,
		ShortDescription: "start a web server to serve and search the notebook",
		LongDescription:  "The serve subcommand starts a web server to serve the notebook over HTTP, with a search page and a JSON search API. After changing a note or template file, changes are immediately visible after reloading the page.",
		handler:          handler,
	})
}
