package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export or import the full ledger as JSON",
	Long: `Export the whole ledger (accounts, trades, session) to a JSON file,
or replace it from a previous export.

Importing REPLACES all current data.

Examples:
  tradelog backup export
  tradelog backup export --out sunday.json
  tradelog backup import --file sunday.json`,
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the ledger to a JSON backup file",
	Args:  cobra.NoArgs,
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the ledger from a JSON backup file",
	Args:  cobra.NoArgs,
	RunE:  runBackupImport,
}

var (
	backupOut  string
	backupFile string
)

func init() {
	rootCmd.AddCommand(backupCmd)
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)

	backupExportCmd.Flags().StringVarP(&backupOut, "out", "o", "", "output path (default tradelog_backup_<date>.json)")
	backupImportCmd.Flags().StringVarP(&backupFile, "file", "f", "", "backup file to import (required)")
	backupImportCmd.MarkFlagRequired("file")
}

func runBackupExport(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	out := backupOut
	if out == "" {
		out = fmt.Sprintf("tradelog_backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	}

	if err := l.Export(out); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Printf("✓ Backup exported: %s\n", out)
	return nil
}

func runBackupImport(cmd *cobra.Command, args []string) error {
	l, err := openLedger()
	if err != nil {
		return err
	}
	defer l.Close()

	if err := l.Import(backupFile); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Printf("✓ Data imported from %s (previous data replaced)\n", backupFile)
	return nil
}
