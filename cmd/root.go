package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// currentReleaseVersion is the chippy8 CLI's own release, reported by
// `chippy8 version` — unrelated to any ROM's CHIP-8 version, since CHIP-8
// has none.
const currentReleaseVersion = "v0.1.0"

// rootCmd is the base for all commands. Invoked with no subcommand, it just
// prints usage: every actual behavior lives under run or version.
var rootCmd = &cobra.Command{
	Use:   "chippy8 [command]",
	Short: "chippy8 is a CHIP-8 emulator",
	Long:  "chippy8 is a CHIP-8 emulator",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// versionCmd prints the CLI's own release version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print the installed chippy8 version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(currentReleaseVersion)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs chippy8 according to the user's command/subcommand/flags.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
