package commands

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nextport/nextport/internal/detect"
	"github.com/nextport/nextport/internal/terminal"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor [directory]",
	Short: "Report what nextport detects without changing anything",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runDoctor(root)
	},
}

func runDoctor(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}

	setup := detect.Detect(abs)
	printSetup(abs, setup)

	terminal.Header("Tools")
	if detect.CheckNode() {
		terminal.Success("node " + detect.NodeVersion())
	} else {
		terminal.Error("node not found on PATH")
	}
	if detect.CheckPackageManager(setup.PackageManager) {
		terminal.Success(string(setup.PackageManager) + " available")
	} else {
		terminal.Error(string(setup.PackageManager) + " not found on PATH")
	}

	if setup.WorkspaceRoot {
		terminal.Warning("workspace root detected; migrate the application package, not the monorepo root")
	}
	return nil
}
