package web

import (
	"flag"
	"fmt"
	"net/http"

	"paytrack/internal/cli"
	"paytrack/internal/config"
	"paytrack/internal/logger"
	"paytrack/internal/router"
	"paytrack/internal/storage"
)

type webCommand struct {
}

func NewCommand() cli.Command {
	return webCommand{}
}

func (c webCommand) Description() string {
	return "Starts the Pay Track web application"
}

var addr string

func (c webCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&addr, "addr", "", "address to listen on (overrides the configured address)")
}

func (c webCommand) Run(conf *config.Config, s storage.Storage, log *logger.Logger) error {
	handler, err := router.New(s, conf, log)
	if err != nil {
		return fmt.Errorf("failed to create router: %w", err)
	}

	listenAddr := conf.Addr
	if addr != "" {
		listenAddr = addr
	}

	log.Info("Starting server", "addr", listenAddr)

	if err := http.ListenAndServe(listenAddr, handler); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
