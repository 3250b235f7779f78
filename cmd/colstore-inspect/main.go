// Command colstore-inspect ingests a CSV file or a SQL query's result set
// into a ColumnStore and prints a partition or filter result, exercising
// the whole ingest -> store -> filter/partition pipeline end to end — the
// way cmd/mysqldef, cmd/psqldef etc. wrap the teacher's library packages.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/jessevdk/go-flags"
	"github.com/k0kubun/pp/v3"
	"golang.org/x/term"

	"github.com/killzin666/ozone/ingest"
	"github.com/killzin666/ozone/rowsource"
	"github.com/killzin666/ozone/rowsource/mssql"
	"github.com/killzin666/ozone/rowsource/mysql"
	"github.com/killzin666/ozone/rowsource/postgres"
	"github.com/killzin666/ozone/rowsource/sqlite3"
	"github.com/killzin666/ozone/store"
	"github.com/killzin666/ozone/util"
)

type options struct {
	CSV    string `long:"csv" description:"Ingest from this CSV file instead of a SQL source" value-name:"path"`
	Driver string `long:"driver" description:"SQL driver to ingest from: mysql, postgres, mssql, sqlite3" value-name:"driver"`
	Query  string `long:"query" description:"SQL query whose result set becomes the ingestion source" value-name:"sql"`

	Host           string `short:"h" long:"host" description:"Host to connect to" value-name:"hostname" default:"127.0.0.1"`
	Port           uint   `short:"p" long:"port" description:"Port to connect to" value-name:"port"`
	User           string `short:"U" long:"user" description:"User name" value-name:"username"`
	Password       string `short:"W" long:"password" description:"Password, prompted instead if --password-prompt is given" value-name:"password"`
	PasswordPrompt bool   `long:"password-prompt" description:"Prompt for the password instead of reading --password"`
	DbName         string `long:"dbname" description:"Database name (or file path for sqlite3)" value-name:"name"`

	Partition string `long:"partition" description:"Partition the store on this field and print each value's row count" value-name:"field"`
	Filter    string `long:"filter" description:"Filter the store by field=value and print the matching row count" value-name:"field=value"`
	Debug     bool   `long:"debug" description:"Pretty-print every field's descriptor before running --partition/--filter"`
	Help      bool   `long:"help" description:"Show this help"`
	Version   bool   `long:"version" description:"Show this version"`
}

var version string

func parseOptions(args []string) (*options, *flags.Parser) {
	var opts options
	parser := flags.NewParser(&opts, flags.None)
	parser.Usage = "[option...]"
	_, err := parser.ParseArgs(args)
	if err != nil {
		log.Fatal(err)
	}

	if opts.Help {
		parser.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	if opts.PasswordPrompt {
		fmt.Print("Enter Password: ")
		pass, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println()
		opts.Password = string(pass)
	}

	return &opts, parser
}

func openSource(ctx context.Context, opts *options) (ingest.RowSource, error) {
	if opts.CSV != "" {
		f, err := os.Open(opts.CSV)
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", opts.CSV, err)
		}
		return ingest.NewCSVReader(f)
	}

	config := rowsource.Config{
		Host:     opts.Host,
		Port:     int(opts.Port),
		User:     opts.User,
		Password: opts.Password,
		DbName:   opts.DbName,
		Query:    opts.Query,
	}

	switch strings.ToLower(opts.Driver) {
	case "mysql":
		return mysql.NewSource(ctx, config)
	case "postgres":
		return postgres.NewSource(ctx, config)
	case "mssql":
		return mssql.NewSource(ctx, config)
	case "sqlite3":
		return sqlite3.NewSource(ctx, config)
	default:
		return nil, fmt.Errorf("unknown --driver %q (want mysql, postgres, mssql, or sqlite3), or pass --csv", opts.Driver)
	}
}

func run(ctx context.Context, opts *options) error {
	src, err := openSource(ctx, opts)
	if err != nil {
		return err
	}
	defer src.Close()

	s, err := ingest.Build(ctx, src, ingest.BuildParams{Logger: ingest.StdoutLogger{}})
	if err != nil {
		return fmt.Errorf("building column store: %w", err)
	}

	fmt.Printf("ingested %d rows across %d fields\n", s.Size(), len(s.Fields()))

	if opts.Debug {
		for _, f := range s.Fields() {
			pp.Println(f.Descriptor())
		}
	}

	if opts.Partition != "" {
		if err := printPartition(s, opts.Partition); err != nil {
			return err
		}
	}
	if opts.Filter != "" {
		if err := printFilter(s, opts.Filter); err != nil {
			return err
		}
	}
	return nil
}

func printPartition(s *store.ColumnStore, fieldID string) error {
	parts, err := s.Partition(fieldID)
	if err != nil {
		return fmt.Errorf("partitioning %q: %w", fieldID, err)
	}
	for value, view := range parts {
		fmt.Printf("%s=%s: %d rows\n", fieldID, value, view.Size())
	}
	return nil
}

func printFilter(s *store.ColumnStore, expr string) error {
	fieldID, value, ok := strings.Cut(expr, "=")
	if !ok {
		return fmt.Errorf("malformed --filter %q, want field=value", expr)
	}
	view := s.FilterByValue(fieldID, value)
	fmt.Printf("%s matches %d rows\n", expr, view.Size())
	return nil
}

func main() {
	util.InitSlog()
	opts, _ := parseOptions(os.Args[1:])
	if err := run(context.Background(), opts); err != nil {
		log.Fatal(err)
	}
}
