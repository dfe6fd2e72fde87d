//go:build integration

package cli

import (
	"bytes"
	"github.com/gostonefire/salesdirectory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runCmd - Runs the root command with args and input, returning what was written to out and err
func runCmd(t *testing.T, input string, args ...string) (stdout, stderr string, err error) {
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(append(args, "--log-level", "error"))

	err = root.Execute()
	stdout, stderr = out.String(), errOut.String()

	return
}

// dataFile - Returns a data file name in an empty working directory
func dataFile(t *testing.T) string {
	dir := t.TempDir()
	t.Chdir(dir)

	return filepath.Join(dir, "sales.dat")
}

func TestSeedAndList(t *testing.T) {
	t.Run("seed writes sample records that list shows as yaml", func(t *testing.T) {
		// Prepare
		file := dataFile(t)

		// Execute
		seedOut, _, err := runCmd(t, "", "seed", "--data-file", file)
		require.NoError(t, err, "seeds data file")
		listOut, listErr, err := runCmd(t, "", "list", "--data-file", file, "--output", "yaml")

		// Check
		require.NoError(t, err, "lists records")
		assert.Contains(t, seedOut, "(5 records)", "seed reports count")
		assert.Contains(t, listErr, "Existing data loaded (5 records).", "data file loaded")
		var records []salesdirectory.Record
		require.NoError(t, yaml.Unmarshal([]byte(listOut), &records), "decodes yaml")
		assert.ElementsMatch(t, salesdirectory.DefaultRecords(), records, "sample records listed")
	})

	t.Run("list falls back to sample records without data file", func(t *testing.T) {
		// Prepare
		file := dataFile(t)

		// Execute
		out, errOut, err := runCmd(t, "", "list", "--data-file", file)

		// Check
		require.NoError(t, err, "lists records")
		assert.Contains(t, errOut, "Sample data loaded (5 records).", "fallback reported")
		assert.Contains(t, out, "Smartphone", "sample record listed")
		_, err = os.Stat(file)
		assert.True(t, os.IsNotExist(err), "list does not create data file")
	})

	t.Run("list rejects unknown output format", func(t *testing.T) {
		// Prepare
		file := dataFile(t)

		// Execute
		_, _, err := runCmd(t, "", "list", "--data-file", file, "--output", "json")

		// Check
		assert.Error(t, err, "unknown format rejected")
	})
}

func TestGetAndDelete(t *testing.T) {
	t.Run("delete removes record from data file", func(t *testing.T) {
		// Prepare
		file := dataFile(t)
		_, _, err := runCmd(t, "", "seed", "--data-file", file)
		require.NoError(t, err, "seeds data file")

		// Execute
		getOut, _, getErr := runCmd(t, "", "get", "1003", "--data-file", file)
		delOut, _, delErr := runCmd(t, "", "delete", "1003", "--data-file", file)
		_, _, againErr := runCmd(t, "", "get", "1003", "--data-file", file)

		// Check
		require.NoError(t, getErr, "gets record")
		assert.Contains(t, getOut, "Product: Novel (Books)", "record printed")
		require.NoError(t, delErr, "deletes record")
		assert.Contains(t, delOut, "4 records left", "delete reports count")
		assert.ErrorIs(t, againErr, salesdirectory.NoRecordFound{}, "record gone from data file")
	})

	t.Run("rejects malformed customer id", func(t *testing.T) {
		// Prepare
		file := dataFile(t)

		// Execute
		_, _, err := runCmd(t, "", "get", "abc", "--data-file", file)

		// Check
		assert.Error(t, err, "malformed id rejected")
	})
}

func TestStatAndVersion(t *testing.T) {
	t.Run("stat reports usage", func(t *testing.T) {
		// Prepare
		file := dataFile(t)

		// Execute
		out, _, err := runCmd(t, "", "stat", "--data-file", file)

		// Check
		require.NoError(t, err, "prints stat")
		assert.Contains(t, out, "Records:       5 of max 1000", "record count")
		assert.Contains(t, out, "Used buckets:  5", "used buckets")
		assert.Contains(t, out, "Longest chain: 1", "longest chain")
	})

	t.Run("version prints version", func(t *testing.T) {
		// Execute
		out, _, err := runCmd(t, "", "version")

		// Check
		require.NoError(t, err, "prints version")
		assert.Equal(t, "salesdir "+Version+"\n", out, "version line")
	})
}

func TestMenu(t *testing.T) {
	t.Run("save and exit writes data file", func(t *testing.T) {
		// Prepare
		file := dataFile(t)

		// Execute
		out, _, err := runCmd(t, "3\n1001\n6\n", "--data-file", file)

		// Check
		require.NoError(t, err, "menu ends")
		assert.Contains(t, out, "Sample data loaded (5 records).", "fallback reported")
		assert.Contains(t, out, "Data saved successfully. Exiting...", "save reported")

		directory, err := salesdirectory.LoadFromFile(file, salesdirectory.Conf{})
		require.NoError(t, err, "loads saved file")
		assert.Equal(t, int64(4), directory.Count(), "deleted record not saved")
	})

	t.Run("end of input does not write data file", func(t *testing.T) {
		// Prepare
		file := dataFile(t)

		// Execute
		_, _, err := runCmd(t, "5\n", "--data-file", file)

		// Check
		require.NoError(t, err, "menu ends")
		_, err = os.Stat(file)
		assert.True(t, os.IsNotExist(err), "no data file written")
	})

	t.Run("reads settings from salesdir.yaml", func(t *testing.T) {
		// Prepare
		file := dataFile(t)
		err := os.WriteFile("salesdir.yaml", []byte("data_file: "+file+"\nmax_records: 3\n"), 0o644)
		require.NoError(t, err, "writes config file")

		// Execute
		out, _, err := runCmd(t, "6\n")

		// Check
		require.NoError(t, err, "menu ends")
		assert.Contains(t, out, "Sample data loaded (3 records).", "max records from config")
		_, err = os.Stat(file)
		assert.NoError(t, err, "data file from config written")
	})
}
