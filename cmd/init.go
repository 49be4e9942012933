package cmd

import (
	"fmt"
	"os"

	"github.com/gnolang/truthtable/internal/worksheet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var forceInit bool

// initCmd: truthtable init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a worksheet file with example statements",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initWorksheetFile(cfgFile, forceInit); err != nil {
			logger.Error("Error initializing worksheet", zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Worksheet created: %s\n", cfgFile)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite an existing worksheet")
}

func initWorksheetFile(path string, force bool) error {
	if path == "" {
		path = worksheet.DefaultPath
	}
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	return worksheet.Save(path, worksheet.Default())
}
