// Command shortguid converts GUIDs between their canonical UUID form and the
// 22-character short form, generates new identifiers, and manages the MySQL
// scalar functions.
package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/Lzww0608/shortguid"
	sgmysql "github.com/Lzww0608/shortguid/mysql"
)

var dsnFlag = &cli.StringFlag{
	Name:    "dsn",
	Usage:   "MySQL data source name, e.g. user:pass@tcp(host:3306)/db",
	EnvVars: []string{"SHORTGUID_MYSQL_DSN"},
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "shortguid",
		Usage: "Convert GUIDs between their UUID form and 22-character short form",
		Commands: []*cli.Command{
			{
				Name:      "new",
				Usage:     "Generate random identifiers",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "count",
						Aliases: []string{"n"},
						Usage:   "Number of identifiers to generate",
						Value:   1,
					},
					&cli.BoolFlag{
						Name:    "uuid",
						Aliases: []string{"u"},
						Usage:   "Print the UUID form next to each identifier",
					},
				},
				Action: newCommand,
			},
			{
				Name:      "encode",
				Usage:     "Encode UUIDs to their short form",
				ArgsUsage: "<uuid>...",
				Action:    encodeCommand,
			},
			{
				Name:      "decode",
				Usage:     "Decode short identifiers to their UUID form",
				ArgsUsage: "<shortguid>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "lax",
						Usage: "Accept non-canonical encodings",
					},
				},
				Action: decodeCommand,
			},
			{
				Name:      "parse",
				Usage:     "Parse values in either form",
				ArgsUsage: "<value>...",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "lax",
						Usage: "Accept non-canonical short encodings",
					},
					&cli.BoolFlag{
						Name:    "uuid",
						Aliases: []string{"u"},
						Usage:   "Print the UUID form instead of the short form",
					},
				},
				Action: parseCommand,
			},
			{
				Name:  "mysql",
				Usage: "Manage the MySQL scalar functions",
				Subcommands: []*cli.Command{
					{
						Name:   "print",
						Usage:  "Print the DDL in mysql client format",
						Action: mysqlPrintCommand,
					},
					{
						Name:   "install",
						Usage:  "Create the scalar functions on a server",
						Flags:  []cli.Flag{dsnFlag},
						Action: mysqlInstallCommand,
					},
					{
						Name:   "drop",
						Usage:  "Remove the scalar functions from a server",
						Flags:  []cli.Flag{dsnFlag},
						Action: mysqlDropCommand,
					},
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "shortguid: %v\n", err)
		os.Exit(1)
	}
}

func newCommand(c *cli.Context) error {
	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("invalid count %d", count)
	}
	for i := 0; i < count; i++ {
		sg := shortguid.New()
		if c.Bool("uuid") {
			fmt.Fprintf(c.App.Writer, "%s\t%s\n", sg, sg.UUID())
		} else {
			fmt.Fprintln(c.App.Writer, sg)
		}
	}
	return nil
}

func encodeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: shortguid encode <uuid>...")
	}
	for _, arg := range c.Args().Slice() {
		id, err := uuid.Parse(arg)
		if err != nil {
			return fmt.Errorf("encode %q: %w", arg, err)
		}
		fmt.Fprintln(c.App.Writer, shortguid.Encode(id))
	}
	return nil
}

func decodeCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: shortguid decode <shortguid>...")
	}
	decode := shortguid.Decode
	if c.Bool("lax") {
		decode = shortguid.DecodeLax
	}
	for _, arg := range c.Args().Slice() {
		id, err := decode(arg)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.Writer, id)
	}
	return nil
}

func parseCommand(c *cli.Context) error {
	if c.NArg() < 1 {
		return errors.New("usage: shortguid parse <value>...")
	}
	parse := shortguid.Parse
	if c.Bool("lax") {
		parse = shortguid.ParseLax
	}
	for _, arg := range c.Args().Slice() {
		sg, err := parse(arg)
		if err != nil {
			return err
		}
		if c.Bool("uuid") {
			fmt.Fprintln(c.App.Writer, sg.UUID())
		} else {
			fmt.Fprintln(c.App.Writer, sg)
		}
	}
	return nil
}

// mysqlPrintCommand writes the DDL with DELIMITER guards, since the decode
// function's BEGIN...END body contains semicolons the mysql client would
// otherwise split on.
func mysqlPrintCommand(c *cli.Context) error {
	w := c.App.Writer
	for _, stmt := range sgmysql.DropStatements() {
		fmt.Fprintf(w, "%s;\n", stmt)
	}
	for _, stmt := range sgmysql.Statements() {
		fmt.Fprintf(w, "\nDELIMITER $$\n%s$$\nDELIMITER ;\n", stmt)
	}
	return nil
}

func mysqlInstallCommand(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sgmysql.Install(c.Context, db); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "installed %s and %s\n", sgmysql.EncodeFunction, sgmysql.DecodeFunction)
	return nil
}

func mysqlDropCommand(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sgmysql.Drop(c.Context, db); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "dropped %s and %s\n", sgmysql.EncodeFunction, sgmysql.DecodeFunction)
	return nil
}

func openDB(c *cli.Context) (*sql.DB, error) {
	dsn := c.String("dsn")
	if dsn == "" {
		return nil, errors.New("--dsn or SHORTGUID_MYSQL_DSN is required")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(c.Context); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect: %w", err)
	}
	return db, nil
}
