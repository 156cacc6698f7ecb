// Package cmd is for command line interactions with the seqlab application
package cmd

import (
	"log"

	"github.com/jjtimmons/seqlab/config"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// profiler is the running CPU profile, if --cpuprofile was passed
var profiler interface{ Stop() }

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "seqlab",
	Short: `Align, profile and deduplicate the sequences in FASTA files.
Pairwise global and local alignment, k-mer profiles, GC content and summary stats`,
	Version:           "0.1.0",
	PersistentPreRun:  startProfile,
	PersistentPostRun: stopProfile,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// startProfile writes a CPU profile to the --cpuprofile directory until stopProfile.
func startProfile(cmd *cobra.Command, args []string) {
	dir, err := cmd.Flags().GetString("cpuprofile")
	if err != nil || dir == "" {
		return
	}
	profiler = profile.Start(profile.CPUProfile, profile.ProfilePath(dir), profile.NoShutdownHook)
}

func stopProfile(cmd *cobra.Command, args []string) {
	if profiler != nil {
		profiler.Stop()
		profiler = nil
	}
}

// set flags
func init() {
	// settings is an optional parameter for a settings file (that overrides the defaults)
	RootCmd.PersistentFlags().StringP("settings", "s", config.SettingsFile, "settings file")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "whether to log timing and counts to stderr")
	RootCmd.PersistentFlags().Bool("json", false, "write results as JSON")
	RootCmd.PersistentFlags().String("cpuprofile", "", "directory to write a CPU profile to")

	viper.BindPFlag("settings", RootCmd.PersistentFlags().Lookup("settings"))
	viper.BindPFlag("verbose", RootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("json", RootCmd.PersistentFlags().Lookup("json"))
}
