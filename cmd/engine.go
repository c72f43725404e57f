package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var engineBinaryFlag string
var engineArgsFlag []string
var engineTimeoutFlag time.Duration
var engineCrashCodesFlag []int

// configureEngineFlags adds the flags shared by every command that runs the engine.
func configureEngineFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&engineBinaryFlag, engineFlagName, "e", viper.GetString(enginePathKey), "instrumented JavaScript engine binary")
	cmd.Flags().StringArrayVar(&engineArgsFlag, engineArgFlagName, viper.GetStringSlice(engineArgsKey), "argument passed to the engine before the script (can be repeated)")
	cmd.Flags().DurationVarP(&engineTimeoutFlag, timeoutFlagName, "t", viper.GetDuration(engineTimeoutKey), "timeout for a single engine run")
	cmd.Flags().IntSliceVar(&engineCrashCodesFlag, crashExitCodeFlagName, viper.GetIntSlice(engineCrashCodesKey), "exit codes treated as engine crashes")
}

// bindEngineFlags points the engine keys at the flags of the running command,
// since several commands define them.
func bindEngineFlags(cmd *cobra.Command, _ []string) {
	bindFlagToConfig(cmd.Flags().Lookup(engineFlagName), enginePathKey)
	bindFlagToConfig(cmd.Flags().Lookup(engineArgFlagName), engineArgsKey)
	bindFlagToConfig(cmd.Flags().Lookup(timeoutFlagName), engineTimeoutKey)
	bindFlagToConfig(cmd.Flags().Lookup(crashExitCodeFlagName), engineCrashCodesKey)
}
