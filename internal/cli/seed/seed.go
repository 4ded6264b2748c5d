package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"paytrack/internal/cli"
	"paytrack/internal/config"
	"paytrack/internal/ledger"
	"paytrack/internal/logger"
	"paytrack/internal/storage"
)

type seedCommand struct {
}

func NewCommand() cli.Command {
	return seedCommand{}
}

func (c seedCommand) Description() string {
	return "Materializes the demonstration records for a user with no data"
}

var user string

func (c seedCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&user, "user", "", "username to seed records for")
}

func (c seedCommand) Run(_ *config.Config, s storage.Storage, log *logger.Logger) error {
	if user == "" {
		return errors.New("the -user flag is required")
	}

	store := ledger.NewStore(s, log)
	expenses, err := store.Seed(context.Background(), user)
	if err != nil {
		return fmt.Errorf("unable to seed records: %w", err)
	}

	log.Info("Account ready", "user", user, "records", len(expenses))

	return nil
}
