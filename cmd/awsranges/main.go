package main

import (
	"flag"
	"fmt"
	"os"

	"awsranges/internal/commands"
	"awsranges/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "/etc/awsranges/awsranges.conf", "Path to configuration file")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable per-entry annotations, the summary line and debug logging")
	flag.BoolVar(&ctx.Quiet, "quiet", false, "Suppress all informational output")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "AWS IP Ranges Filter\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [command options] [filter terms...]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  filter                  Print prefixes matching the given filter terms\n")
		fmt.Fprintf(os.Stderr, "  download                Download the ranges document to the cache directory\n")
		fmt.Fprintf(os.Stderr, "  serve                   Run the HTTP API server\n")
		fmt.Fprintf(os.Stderr, "  zoneset                 Convert zone-transfer records into a DNS change-set\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	// Diagnostics go to stderr so result output on stdout stays clean
	log.SetForceStdErr(true)
	if ctx.Verbose {
		log.SetVerbose(true)
	}
	if ctx.Quiet {
		log.DisableLogs()
	}

	cmds := []commands.Runner{
		commands.CreateFilterCommand(),
		commands.CreateDownloadCommand(),
		commands.CreateServeCommand(),
		commands.CreateZoneSetCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
