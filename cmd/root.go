package cmd

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trknhr/hmmtag/internal/config"
	"github.com/trknhr/hmmtag/internal/hmm"
	"github.com/trknhr/hmmtag/internal/logger"
	"github.com/trknhr/hmmtag/internal/store"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	dbPath     string
	logLevel   string
	logFile    string

	cfg    config.Config
	db     *sql.DB
	ownsDB bool
}

func NewRootCmd(db *sql.DB) *cobra.Command {
	cmd, _ := newRootCmd(db)
	return cmd
}

func newRootCmd(db *sql.DB) (*cobra.Command, *app) {
	a := &app{db: db}

	cmd := &cobra.Command{
		Use:           "hmmtag",
		Short:         "Part-of-speech tagging with a hidden Markov model",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath(), "path to YAML config file")
	cmd.PersistentFlags().StringVar(&a.dbPath, "db", "", "path to model database (default <cache dir>/hmmtag/hmmtag.db)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error, none")
	cmd.PersistentFlags().StringVar(&a.logFile, "log-file", "", "also write logs to this file")

	cmd.AddCommand(
		newTrainCmd(a),
		newTagCmd(a),
		newEvalCmd(a),
		newConsoleCmd(a),
		newModelsCmd(a),
		newDemoCmd(),
	)
	return cmd, a
}

func Execute() error {
	return execute(newRootCmd(nil))
}

// execute runs cmd and closes the database it opened, whether or not the
// command failed.
func execute(cmd *cobra.Command, a *app) error {
	err := cmd.Execute()
	if cerr := a.close(); err == nil {
		err = cerr
	}
	return err
}

func (a *app) close() error {
	if !a.ownsDB || a.db == nil {
		return nil
	}
	a.ownsDB = false
	return a.db.Close()
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("db") {
		cfg.DBPath = a.dbPath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFile != "" {
		cfg.LogFile = a.logFile
	}
	a.cfg = cfg
	return logger.Init(cfg.LogFile, cfg.LogLevel)
}

// database opens the configured database on first use.
func (a *app) database() (*sql.DB, error) {
	if a.db != nil {
		return a.db, nil
	}
	path := a.cfg.DBPath
	if path == "" {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return nil, err
		}
	}
	db, err := store.OpenDB(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.db, a.ownsDB = db, true
	return db, nil
}

// decoder returns a decoder over the named stored model, or over the
// built-in demo model when demo is set.
func (a *app) decoder(name string, demo bool) (*hmm.Decoder, error) {
	opts := []hmm.Option{hmm.WithUnseenPenalty(a.cfg.UnseenPenalty)}
	if demo {
		return hmm.NewDecoder(hmm.DemoModel(), opts...), nil
	}
	if name == "" {
		name = a.cfg.ModelName
	}
	db, err := a.database()
	if err != nil {
		return nil, err
	}
	model, err := store.NewSQLModelStore(db).LoadModel(name)
	if err != nil {
		return nil, fmt.Errorf("%w (run `hmmtag train --name %s` first)", err, name)
	}
	return hmm.NewDecoder(model, opts...), nil
}
