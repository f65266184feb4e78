// Command go-sqlitefile answers dot commands and simple SELECTs by reading
// a SQLite database file directly.
package main

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	sqlitefile "github.com/wilhasse/go-sqlitefile"
	"github.com/wilhasse/go-sqlitefile/format"
	"github.com/wilhasse/go-sqlitefile/internal/config"
	"github.com/wilhasse/go-sqlitefile/internal/logging"
)

// CLI defines the command-line interface.
type CLI struct {
	Database string   `arg:"" help:"Path to the database file (plain or xz-compressed)" type:"existingfile"`
	Command  []string `arg:"" help:"Command: .dbinfo, .tables, .schema, .page N or a SELECT statement"`

	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level (${enum})"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log format (${enum})"`
	Varint    string `enum:"sqlite,additive" default:"sqlite" help:"Varint decoding (${enum})"`
	Format    string `short:"f" enum:"text,json" default:"text" help:"Output format for results (${enum})"`
}

// Config maps the flags onto the shared configuration.
func (c *CLI) Config() *config.Config {
	cfg := &config.Config{
		VarintMode:   format.VarintMode(c.Varint),
		LogLevel:     c.LogLevel,
		LogFormat:    c.LogFormat,
		OutputFormat: c.Format,
	}
	cfg.FillDefaults()
	return cfg
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("go-sqlitefile"),
		kong.Description("Read a SQLite database file without the SQLite library"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := run(&cli, os.Stdout, os.Stderr)
	ctx.FatalIfErrorf(err)
}

// run executes one command. Output is buffered so that a failing command
// writes nothing to stdout.
func run(cli *CLI, stdout, stderr io.Writer) error {
	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logFormat, err := logging.ParseFormat(cfg.LogFormat)
	if err != nil {
		return err
	}
	log := logging.InitLogger(level, logFormat, stderr)
	logging.Debug("run", "database", cli.Database, "command", strings.Join(cli.Command, " "))

	db, err := sqlitefile.Open(cli.Database, sqlitefile.Options{
		VarintMode: cfg.VarintMode,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error("close database", "database", cli.Database, "error", err)
		}
	}()

	res, err := db.Exec(strings.Join(cli.Command, " "))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	r := &renderer{w: &buf, dec: db.Executor().Decoder()}
	if cfg.OutputFormat == "json" {
		err = r.json(res)
	} else {
		err = r.text(res)
	}
	if err != nil {
		return err
	}
	n, err := stdout.Write(buf.Bytes())
	logging.Info("command done", "kind", res.Kind.String(), "bytes", n)
	return err
}
