package cli

import (
	"flag"

	"paytrack/internal/config"
	"paytrack/internal/logger"
	"paytrack/internal/storage"
)

type Command interface {
	SetFlags(fset *flag.FlagSet)
	Description() string
	Run(conf *config.Config, s storage.Storage, logger *logger.Logger) error
}
