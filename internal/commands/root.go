package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nextport/nextport/internal/detect"
	"github.com/nextport/nextport/internal/migrate"
	"github.com/nextport/nextport/internal/terminal"
	"github.com/nextport/nextport/internal/update"
)

// Version is set at build time.
var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "nextport [directory]",
	Short:   "Migrate a React SPA to Next.js",
	Long:    "Nextport migrates a Vite or Create React App project to the Next.js App Router, preserving the app as a client-rendered page.",
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		return runMigrate(root)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// yesFlag skips the confirmation prompt.
var yesFlag bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(doctorCmd)
}

func runMigrate(root string) error {
	abs, err := filepath.Abs(root)
	if err != nil {
		return err
	}
	if _, err := os.Stat(filepath.Join(abs, "package.json")); err != nil {
		return fmt.Errorf("no package.json in %s; point nextport at a project root", abs)
	}

	terminal.Banner(Version)
	update.Announce(update.Check(Version))

	setup := detect.Detect(abs)
	printSetup(abs, setup)

	if setup.WorkspaceRoot {
		terminal.Warning("this looks like a monorepo workspace root; run nextport inside the application package instead")
	}

	if !yesFlag && terminal.IsInteractive() {
		if !terminal.Confirm("Migrate this project?") {
			terminal.Info("aborted")
			return nil
		}
	}

	report, err := migrate.Run(abs, setup)
	if err != nil {
		return err
	}

	printNextSteps(setup, report)
	return nil
}

func printSetup(root string, setup detect.Setup) {
	terminal.Header("Project")
	terminal.Detail("Directory", root)
	terminal.Detail("Source", string(setup.SourceKind))
	terminal.Detail("Package manager", string(setup.PackageManager))
	terminal.Detail("TypeScript", yesNo(setup.UsesTypeScript))
	terminal.Detail("Router", yesNo(setup.UsesRouter))
	terminal.Detail("CSS framework", string(setup.CSSFramework))
	if setup.OutputDir != "" {
		terminal.Detail("Output dir", setup.OutputDir)
	}
}

func printNextSteps(setup detect.Setup, report *migrate.Report) {
	terminal.Header("Done")
	if len(report.Warnings) > 0 {
		terminal.Detail("Warnings", fmt.Sprintf("%d (see above)", len(report.Warnings)))
	}
	terminal.Success(fmt.Sprintf("%d files written, %d skipped", len(report.Emit.Written), len(report.Emit.Skipped)))
	fmt.Println()
	terminal.Info("next steps:")
	terminal.Detail("1", detect.InstallCommand(setup.PackageManager))
	terminal.Detail("2", detect.RunCommand(setup.PackageManager, "dev"))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
