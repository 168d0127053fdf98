//go:build linux

package main

import (
	"fmt"
	"os"
	"strings"

	"procinfo/process"
	"procinfo/process_linux"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:          "procinfo",
	Short:        "Inspect the local process table",
	Long:         `procinfo reads /proc and prints process and thread snapshots.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.procinfo.yaml)")
	flags.String("root", process_linux.DefaultRoot, "procfs mount point")
	flags.String("machine", process.LocalMachine, "machine to inspect, only the local host is supported")
	flags.Int64("page-size", 0, "bytes per resident page (default: system page size)")
	flags.Bool("strict", false, "fail on thread state characters outside the known table")
	flags.Bool("no-color", false, "disable coloured output")
	cobra.CheckErr(viper.BindPFlags(flags))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".procinfo")
	}

	// PROCINFO_ROOT, PROCINFO_PAGE_SIZE, ...
	viper.SetEnvPrefix("procinfo")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newManager() *process_linux.LinuxProcessManager {
	opts := []process_linux.Option{
		process_linux.WithRoot(viper.GetString("root")),
		process_linux.WithStrictStates(viper.GetBool("strict")),
	}
	if size := viper.GetInt64("page-size"); size > 0 {
		opts = append(opts, process_linux.WithPageSize(size))
	}
	return process_linux.NewProcessManager(opts...)
}

func machine() string {
	return viper.GetString("machine")
}

func parsePID(arg string) (process.ProcessID, error) {
	pid, ok := process_linux.ParseID(arg)
	if !ok {
		return 0, fmt.Errorf("invalid pid %q", arg)
	}
	return pid, nil
}
