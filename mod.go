package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	cli "go.dedis.ch/sharerecovery/cmd"
	"go.dedis.ch/sharerecovery/peer"
	"go.dedis.ch/sharerecovery/peer/impl"
)

var (
	configPath string
	verbose    bool
)

// reportedError wraps an error that was already printed to stderr.
type reportedError struct {
	error
}

func addGlobalFlags(command *cobra.Command) {
	command.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	command.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every recovery")
}

// addRecoverCmd recovers the secret of one share document
func addRecoverCmd(command *cobra.Command) {
	recoverCmd := &cobra.Command{
		Use:   "recover <file>",
		Short: "Recover the secret of a share document",
		Long:  "Recover the secret of a JSON share document and print it in decimal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup()
			if err != nil {
				return err
			}
			err = cli.RecoverFiles(impl.NewRecoverer(*conf), args, os.Stdout, os.Stderr)
			if err != nil {
				return reportedError{err}
			}
			return nil
		},
	}
	command.AddCommand(recoverCmd)
}

// addBatchCmd recovers the secrets of several share documents in parallel
func addBatchCmd(command *cobra.Command) {
	batchCmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Recover the secrets of several share documents",
		Long:  "Recover the secrets of independent JSON share documents in parallel, one line per document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup()
			if err != nil {
				return err
			}
			err = cli.RecoverFiles(impl.NewRecoverer(*conf), args, os.Stdout, os.Stderr)
			if err != nil {
				return reportedError{err}
			}
			return nil
		},
	}
	command.AddCommand(batchCmd)
}

// addCliCmd starts the interactive menu
func addCliCmd(command *cobra.Command) {
	startCmd := &cobra.Command{
		Use:   "cli",
		Short: "Start an interactive recovery session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := setup()
			if err != nil {
				return err
			}
			cli.StartCMD(*conf)
			return nil
		},
	}
	command.AddCommand(startCmd)
}

// setup sets the log level and loads the configuration
func setup() (*peer.Configuration, error) {
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if configPath == "" {
		conf := peer.DefaultConfiguration()
		return &conf, nil
	}

	conf, err := peer.ConfigurationFromYAML(configPath)
	if err != nil {
		os.Stderr.WriteString("Error (config): " + err.Error() + "\n")
		return nil, reportedError{err}
	}
	return conf, nil
}
