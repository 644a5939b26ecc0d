package common

import (
	"bytes"
	"io"

	"fjacquet/card-payoff/cmd/root"

	"github.com/spf13/cobra"
)

// ExecuteCommand runs sub under a fresh root command and returns what it
// wrote to stdout. Logs are discarded. Intended for command tests.
func ExecuteCommand(sub *cobra.Command, args ...string) (string, error) {
	rootCmd := root.NewCommand()
	rootCmd.AddCommand(sub)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(append([]string{sub.Name()}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}
