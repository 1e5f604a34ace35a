package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/suparena/recordstore"
	"github.com/suparena/recordstore/config"
	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/models"
)

type app struct {
	configPath string
	filePath   string
	logLevel   string

	store  *recordstore.Store
	logger *slog.Logger
}

// arity rejects calls outside [min, max] arguments; max < 0 means unbounded.
func arity(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return errors.CheckArity(cmd.Name(), min, max, len(args))
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "recordstore",
		Short:        "Create and inspect records persisted in a JSON document",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().StringVarP(&a.filePath, "file", "f", "", "document file (file backend)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")

	root.AddCommand(
		a.createCmd(),
		a.allCmd(),
		a.showCmd(),
		a.updateCmd(),
		a.kindsCmd(),
		versionCmd(),
	)
	return root
}

// open loads configuration, applies flag overrides and loads the document.
func (a *app) open(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.filePath != "" {
		cfg.File.Path = a.filePath
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("opening store", slog.String("backend", cfg.Backend), slog.String("file", cfg.File.Path))

	a.store, err = recordstore.Open(cmd.Context(), cfg, recordstore.WithLogger(a.logger))
	return err
}

func (a *app) createCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <Kind> [name=value...]",
		Short: "Create a record, set its fields and save",
		Args:  arity(1, -1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			rec, err := a.store.Create(args[0])
			if err != nil {
				return err
			}
			for _, pair := range args[1:] {
				name, raw, ok := strings.Cut(pair, "=")
				if !ok {
					return errors.NewValidationError(pair, "expected name=value")
				}
				if err := models.Assign(rec, name, parseValue(raw)); err != nil {
					return err
				}
			}
			if err := a.store.Save(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec.RecordID())
			return nil
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all [Kind]",
		Short: "Print every record, or every record of one kind",
		Args:  arity(0, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			tag := ""
			if len(args) == 1 {
				tag = args[0]
			}
			records, err := a.store.AllOf(tag)
			if err != nil {
				return err
			}
			for _, rec := range records {
				fmt.Fprintln(cmd.OutOrStdout(), rec)
			}
			return nil
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <Kind> <id>",
		Short: "Print one record",
		Args:  arity(2, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			rec, err := a.store.Get(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func (a *app) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update <Kind> <id> <name> <value>",
		Short: "Set one field of a record and save",
		Args:  arity(4, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.open(cmd); err != nil {
				return err
			}
			rec, err := a.store.Update(cmd.Context(), args[0], args[1], args[2], parseValue(args[3]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), rec)
			return nil
		},
	}
}

func (a *app) kindsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the record kinds",
		Args:  arity(0, 0),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, tag := range models.Kinds(nil).Types() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  arity(0, 0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), recordstore.GetVersionInfo())
		},
	}
}

// parseValue reads raw as a JSON value (number, bool, quoted string, list)
// and falls back to the raw text. Integers decode as int64.
func parseValue(raw string) interface{} {
	v, err := datastore.DecodeValue([]byte(raw))
	if err != nil {
		return raw
	}
	return v
}
