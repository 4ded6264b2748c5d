package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"paytrack/internal/cli"
	reportCmd "paytrack/internal/cli/report"
	seedCmd "paytrack/internal/cli/seed"
	webCmd "paytrack/internal/cli/web"
	"paytrack/internal/config"
	"paytrack/internal/logger"
	"paytrack/internal/storage/sqlite"
)

var configPath string

var subcommands = map[string]cli.Command{
	"web":    webCmd.NewCommand(),
	"report": reportCmd.NewCommand(),
	"seed":   seedCmd.NewCommand(),
}

var subcommandsFlagSets = map[string]*flag.FlagSet{
	"web":    nil,
	"report": nil,
	"seed":   nil,
}

func main() {
	if len(os.Args) < 2 {
		fmt.Printf("subcommand is required\n")
		printUsage()

		os.Exit(1)
	}

	for c, cLogic := range subcommands {
		fset := flag.NewFlagSet(c, flag.ExitOnError)
		fset.StringVar(&configPath, "c", "paytrack.toml", "Configuration file")

		cLogic.SetFlags(fset)

		subcommandsFlagSets[c] = fset
	}

	commandName := os.Args[1]
	command, ok := subcommands[commandName]
	if ok {
		subcommandsFlagSets[commandName].Parse(os.Args[2:])

		conf, err := config.Parse(configPath)
		if err != nil {
			log.Fatalf("Unable to parse the configuration: %s", err.Error())
		}

		appLogger := logger.New(conf.Logger)

		s, err := sqlite.New(conf.DB)
		if err != nil {
			appLogger.Fatal("Unable to open storage", "error", err)
		}
		defer s.Close()

		if err = s.ApplyMigrations(context.Background(), appLogger); err != nil {
			appLogger.Fatal("Unable to apply migrations", "error", err)
		}

		if err = command.Run(conf, s, appLogger); err != nil {
			appLogger.Fatal("Command failed", "command", commandName, "error", err)
		}
	} else {
		if strings.Contains(commandName, "help") {
			printHelp()

			os.Exit(0)
		}
		log.Fatalf("unsupported comand %s. \nUse 'help' command to print information about supported commands\n", commandName)
	}
}

func printHelp() {
	printUsage()

	for c, cLogic := range subcommands {
		fmt.Printf("subcommmand <%s>: %s\n", c, cLogic.Description())
		subcommandsFlagSets[c].PrintDefaults()
		fmt.Println()
		fmt.Println()
	}
}

func printUsage() {
	fmt.Printf("usage: paytrack <subcommand> [flags]\n\n")
}
