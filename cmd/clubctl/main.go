package main

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"os"

	_ "github.com/lib/pq"
	"github.com/urfave/cli/v2"

	"skkuri-backend/internal/config"
	"skkuri-backend/internal/importer"
	"skkuri-backend/internal/logger"
	"skkuri-backend/internal/repository/postgres"
)

func main() {
	cliApp := &cli.App{
		Name:  "clubctl",
		Usage: "operate the club database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config/config.dev.yaml",
				Usage:   "path to the configuration file",
				EnvVars: []string{"SKKURI_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			newMigrateCommand(),
			newImportCommand(),
			newPrintInsertsCommand(),
			newGrantManagerCommand(),
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// openDB loads configuration and connects; the caller closes the database.
func openDB(c *cli.Context) (*sql.DB, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.PingContext(c.Context); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

func newMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "database migrations",
		Subcommands: []*cli.Command{
			{
				Name:  "up",
				Usage: "apply all pending migrations",
				Action: func(c *cli.Context) error {
					db, err := openDB(c)
					if err != nil {
						return err
					}
					defer db.Close()
					return postgres.MigrateUp(db)
				},
			},
			{
				Name:  "down",
				Usage: "roll back migrations",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "steps", Value: 1, Usage: "number of migrations to roll back"},
				},
				Action: func(c *cli.Context) error {
					steps := c.Int("steps")
					if steps < 1 {
						return fmt.Errorf("steps must be at least 1")
					}
					db, err := openDB(c)
					if err != nil {
						return err
					}
					defer db.Close()
					if err := postgres.MigrateDown(db, steps); err != nil {
						return err
					}
					fmt.Printf("Rolled back %d migration(s)\n", steps)
					return nil
				},
			},
		},
	}
}

func readClubs(c *cli.Context) (*os.File, error) {
	path := c.Args().First()
	if path == "" {
		return nil, fmt.Errorf("usage: %s <file.xlsx>", c.Command.FullName())
	}
	return os.Open(path)
}

func newImportCommand() *cli.Command {
	return &cli.Command{
		Name:      "import-clubs",
		Usage:     "insert clubs from the first sheet of an xlsx file",
		ArgsUsage: "<file.xlsx>",
		Action: func(c *cli.Context) error {
			f, err := readClubs(c)
			if err != nil {
				return err
			}
			defer f.Close()

			clubs, err := importer.ParseClubs(f)
			if err != nil {
				return err
			}
			db, err := openDB(c)
			if err != nil {
				return err
			}
			defer db.Close()

			n, err := importer.Import(c.Context, postgres.NewClubRepository(db), clubs)
			fmt.Printf("Imported %d of %d club(s)\n", n, len(clubs))
			return err
		},
	}
}

func newPrintInsertsCommand() *cli.Command {
	return &cli.Command{
		Name:      "print-inserts",
		Usage:     "print INSERT statements for the clubs in an xlsx file",
		ArgsUsage: "<file.xlsx>",
		Action: func(c *cli.Context) error {
			f, err := readClubs(c)
			if err != nil {
				return err
			}
			defer f.Close()

			clubs, err := importer.ParseClubs(f)
			if err != nil {
				return err
			}
			for _, stmt := range importer.BuildInsertStatements(clubs) {
				fmt.Fprintln(c.App.Writer, stmt)
			}
			return nil
		},
	}
}

func newGrantManagerCommand() *cli.Command {
	return &cli.Command{
		Name:  "grant-manager",
		Usage: "make a registered user the manager of a club",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "email", Required: true, Usage: "email the user registered with"},
			&cli.IntFlag{Name: "club", Required: true, Usage: "club id"},
		},
		Action: func(c *cli.Context) error {
			clubID := c.Int("club")
			if clubID < 1 || clubID > math.MaxInt32 {
				return fmt.Errorf("invalid club id %d", clubID)
			}
			db, err := openDB(c)
			if err != nil {
				return err
			}
			defer db.Close()

			store := postgres.NewStore(db)
			seed := importer.ManagerSeed{
				Users:   store.UserRepository,
				Clubs:   store.ClubRepository,
				Members: store.MemberRepository,
			}
			m, err := seed.GrantManager(c.Context, c.String("email"), int32(clubID))
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "User %d is now manager of club %d\n", m.UserID, m.ClubID)
			return nil
		},
	}
}
