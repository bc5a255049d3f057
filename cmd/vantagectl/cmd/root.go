package cmd

import (
	"github.com/spf13/cobra"
)

var (
	host        string
	username    string
	password    string
	noTLS       bool
	connTimeout int
)

var rootCmd = &cobra.Command{
	Use:     "vantagectl",
	Short:   "Query and control a Vantage InFusion controller",
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&host, "host", "", "controller hostname or IP (required)")
	rootCmd.PersistentFlags().StringVar(&username, "user", "", "login username")
	rootCmd.PersistentFlags().StringVar(&password, "password", "", "login password (prompted if omitted and --user is set)")
	rootCmd.PersistentFlags().BoolVar(&noTLS, "no-tls", false, "disable TLS (use the unencrypted ports)")
	rootCmd.PersistentFlags().IntVar(&connTimeout, "conn-timeout", 5, "dial timeout in seconds")
	rootCmd.MarkPersistentFlagRequired("host")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
