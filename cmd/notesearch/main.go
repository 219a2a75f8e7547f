package main

import (
	"flag"
	"log"
	"os"
	"text/template"
)

var usage = template.Must(template.New("").Parse(`notesearch serves and searches a notebook of Markdown notes.

Usage:

  notesearch [options] command [command options]

The options are:

{{call .FlagUsage }}
The commands are:
{{range .Commands}}
  {{printf "%- 15s" .NameAndAliases}} {{.ShortDescription}}
{{- end}}

Use "notesearch [command] -h" for more information about a command.

`))

var (
	configPath = flag.String("config", "notesearch.yml", "search `paths` for notesearch.yml config file (separated by the OS path list separator)")
)

// commands contains all registered subcommands.
var commands commander

func main() {
	log.SetFlags(0)
	log.SetPrefix("")
	os.Exit(commands.run(flag.CommandLine, "notesearch", usage, os.Args[1:]))
}
