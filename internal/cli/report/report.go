package report

import (
	"context"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path"
	"text/template"

	"paytrack/internal/cli"
	"paytrack/internal/config"
	"paytrack/internal/filter"
	"paytrack/internal/ledger"
	"paytrack/internal/logger"
	internalReport "paytrack/internal/report"
	"paytrack/internal/storage"
	"paytrack/internal/util"
)

// content holds our static content.
//
//go:embed templates/*
var content embed.FS

type reportCommand struct {
}

func NewCommand() cli.Command {
	return reportCommand{}
}

func (c reportCommand) Description() string {
	return "Displays the expense information for a user and selected filters"
}

var user string
var category string
var startDate string
var endDate string
var verbose bool

func (c reportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&user, "user", "", "username whose records to report on")
	fs.StringVar(&category, "category", filter.CategoryAll, "category to filter by")
	fs.StringVar(&startDate, "start", "", "start date (YYYY-MM-DD, inclusive)")
	fs.StringVar(&endDate, "end", "", "end date (YYYY-MM-DD, inclusive)")
	fs.BoolVar(&verbose, "v", false, "show verbose report output")
}

func (c reportCommand) Run(_ *config.Config, s storage.Storage, log *logger.Logger) error {
	if user == "" {
		return errors.New("the -user flag is required")
	}

	ctx := context.Background()

	store := ledger.NewStore(s, log)
	expenses, err := store.Expenses(ctx, user)
	if err != nil {
		return fmt.Errorf("unable to fetch expenses: %w", err)
	}

	f := filter.Filter{
		Category:  category,
		StartDate: startDate,
		EndDate:   endDate,
	}

	r := internalReport.Generate(f.Apply(expenses), f)
	r.Verbose = verbose

	return renderTemplate(os.Stdout, "report.tmpl", r)
}

var templateFuncs = template.FuncMap{
	"formatMoney": util.FormatMoney,
	"colorOutput": util.ColorOutput,
	"formatPercent": func(p float64) string {
		return fmt.Sprintf("%.0f", p)
	},
}

func renderTemplate(out io.Writer, templateName string, value interface{}) error {
	tmpl, err := content.ReadFile(path.Join("templates", templateName))
	if err != nil {
		return err
	}
	t := template.Must(template.New(templateName).Funcs(templateFuncs).Parse(string(tmpl)))
	return t.Execute(out, value)
}
