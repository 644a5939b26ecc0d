package common

import (
	"errors"

	"fjacquet/card-payoff/cmd/root"
	"fjacquet/card-payoff/internal/calcerror"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/fileutils"
	"fjacquet/card-payoff/internal/logging"

	"github.com/spf13/cobra"
)

// RunFunc is the body of a command once its dependencies are resolved.
type RunFunc func(cmd *cobra.Command, c *container.Container, log logging.Logger) error

// Run wraps a RunFunc as a cobra RunE: it fetches the container, tags the
// logger with the operation name, redirects output to --output when given and
// logs failures before returning them.
func Run(operation string, fn RunFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := root.GetContainer(cmd)
		if err != nil {
			return err
		}

		log := c.GetLogger().WithField(logging.FieldOperation, operation)
		log.Debug("Command started")

		outputFile, _ := cmd.Flags().GetString(root.FlagOutput)
		if outputFile != "" {
			file, err := fileutils.CreateFile(outputFile)
			if err != nil {
				log.WithError(err).Error("Cannot create output file",
					logging.Field{Key: logging.FieldFile, Value: outputFile})
				return err
			}
			defer file.Close()
			cmd.SetOut(file)
		}

		if err := fn(cmd, c, log); err != nil {
			var invalid *calcerror.InvalidInputError
			if errors.As(err, &invalid) {
				log.WithError(err).Warn("Rejected input",
					logging.Field{Key: logging.FieldInvalidInput, Value: invalid.Field})
			} else {
				log.WithError(err).Error("Command failed")
			}
			return err
		}

		if outputFile != "" {
			log.Info("Report written", logging.Field{Key: logging.FieldFile, Value: outputFile})
		}
		log.Debug("Command completed")
		return nil
	}
}
