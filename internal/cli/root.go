// Package cli implements the salesdir command line interface, the interactive menu
// and the one shot subcommands working on the same data file.
package cli

import (
	"fmt"
	"github.com/gostonefire/salesdirectory"
	"github.com/gostonefire/salesdirectory/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"io"
	"os"
)

// Exit codes
const (
	exitSuccess   = 0
	exitUserError = 1
)

// Version is printed by the version command
var Version = "v0.1.0"

// rootFlags holds global flag values accessible to all subcommands
type rootFlags struct {
	configFile string
	dataFile   string
	logLevel   string
}

// app holds what PersistentPreRunE resolves for the command being run
type app struct {
	flags  rootFlags
	cfg    config.Config
	logger *zap.Logger
}

// NewRootCmd creates the top-level "salesdir" command with global flags
// and all subcommands registered. Without a subcommand it runs the interactive menu.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "salesdir",
		Short: "Sales record directory keyed by customer id",
		Long: "salesdir keeps sales transaction records in a hash directory keyed by customer id\n" +
			"and persists them to a fixed width binary data file.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, err := a.loadDirectory(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return newSession(directory, cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.DataFile, a.logger).run()
		},
	}

	root.PersistentFlags().StringVar(&a.flags.configFile, "config", "", "config file (default: ./salesdir.yaml)")
	root.PersistentFlags().StringVar(&a.flags.dataFile, "data-file", "", "data file (default: "+config.DefaultDataFile+")")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn or error (default: "+config.DefaultLogLevel+")")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newListCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newDeleteCmd(a))
	root.AddCommand(newSeedCmd(a))
	root.AddCommand(newStatCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// setup resolves configuration and logger for the command about to run
func (a *app) setup(cmd *cobra.Command) (err error) {
	a.cfg, err = config.Load(a.flags.configFile, cmd.Flags())
	if err != nil {
		return
	}

	a.logger, err = newLogger(a.cfg.LogLevel)
	if err != nil {
		err = fmt.Errorf("init logger: %w", err)
	}

	return
}

// dirConf returns the directory configuration given by the resolved config
func (a *app) dirConf() salesdirectory.Conf {
	return salesdirectory.Conf{
		NumberOfBuckets: a.cfg.Buckets,
		MaxRecords:      a.cfg.MaxRecords,
		Logger:          a.logger,
	}
}

// loadDirectory loads the data file, falling back to the sample records when it can not be loaded.
// A line telling which of them happened is written to out.
func (a *app) loadDirectory(out io.Writer) (directory *salesdirectory.Directory, err error) {
	directory, err = salesdirectory.LoadFromFile(a.cfg.DataFile, a.dirConf())
	if err == nil {
		fmt.Fprintf(out, "Existing data loaded (%d records).\n", directory.Count())
		return
	}

	a.logger.Warn("unable to load data file, using sample records",
		zap.String("file", a.cfg.DataFile), zap.Error(err))

	directory, err = salesdirectory.NewSeededDirectory(a.dirConf())
	if err != nil {
		err = fmt.Errorf("create directory: %w", err)
		return
	}
	fmt.Fprintf(out, "Sample data loaded (%d records).\n", directory.Count())

	return
}
