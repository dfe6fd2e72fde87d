package cli

import (
	"fmt"
	"github.com/gostonefire/salesdirectory"
	"github.com/gostonefire/salesdirectory/internal/validate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"strconv"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		// No config or logger needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "salesdir %s\n", Version)
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputTable && output != outputYAML {
				return fmt.Errorf("unknown output format %q, use %s or %s", output, outputTable, outputYAML)
			}

			directory, err := a.loadDirectory(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if output == outputYAML {
				return printRecordYAML(cmd.OutOrStdout(), directory.Records())
			}
			return printRecordTable(cmd.OutOrStdout(), directory.Records())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or yaml")

	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <customer-id>",
		Short: "Show the record of a customer id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCustomerID(args[0])
			if err != nil {
				return err
			}

			directory, err := a.loadDirectory(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			record, err := directory.Search(id)
			if err != nil {
				return fmt.Errorf("customer id %d: %w", id, err)
			}
			printRecord(cmd.OutOrStdout(), record)

			return nil
		},
	}
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <customer-id>",
		Short: "Delete the record of a customer id and save the data file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCustomerID(args[0])
			if err != nil {
				return err
			}

			directory, err := a.loadDirectory(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if _, err = directory.Delete(id); err != nil {
				return fmt.Errorf("customer id %d: %w", id, err)
			}
			if err = directory.SaveToFile(a.cfg.DataFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Record %d deleted, %d records left.\n", id, directory.Count())

			return nil
		},
	}
}

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Overwrite the data file with the sample records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, err := salesdirectory.NewSeededDirectory(a.dirConf())
			if err != nil {
				return fmt.Errorf("create directory: %w", err)
			}
			if err = directory.SaveToFile(a.cfg.DataFile); err != nil {
				return err
			}

			a.logger.Info("seeded data file", zap.String("file", a.cfg.DataFile))
			fmt.Fprintf(cmd.OutOrStdout(), "Sample data saved to %s (%d records).\n", a.cfg.DataFile, directory.Count())

			return nil
		},
	}
}

func newStatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stat",
		Short: "Show usage statistics of the directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			directory, err := a.loadDirectory(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			stat := directory.Stat(false)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Records:       %d of max %d\n", stat.Records, directory.MaxRecords())
			fmt.Fprintf(out, "Buckets:       %d\n", directory.NumberOfBuckets())
			fmt.Fprintf(out, "Used buckets:  %d\n", stat.UsedBuckets)
			fmt.Fprintf(out, "Longest chain: %d\n", stat.LongestChain)
			fmt.Fprintf(out, "Load factor:   %.3f\n", float64(stat.Records)/float64(directory.NumberOfBuckets()))

			return nil
		},
	}
}

// parseCustomerID parses a command line customer id
func parseCustomerID(arg string) (id int32, err error) {
	n, err := strconv.ParseInt(arg, 10, 32)
	if err != nil || n < validate.MinCustomerID || n > validate.MaxCustomerID {
		err = fmt.Errorf("customer id must be a whole number between %d and %d", validate.MinCustomerID, validate.MaxCustomerID)
		return
	}

	id = int32(n)
	return
}
