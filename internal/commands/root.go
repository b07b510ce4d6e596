package commands

import (
	"fmt"

	"dockerls"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// RootCmd creates the dockerls command.
// It lists the files of the working directory which are not excluded by the ignore file.
func RootCmd() *cobra.Command {
	var (
		ignoreFile string
		skipHidden bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "dockerls",
		Short: "List the files not excluded by a .dockerignore",
		Long: `dockerls walks the current directory and prints every regular file whose
path does not match any regular expression of the ignore file.

The paths are printed on a single line, separated by spaces.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(cmd.ErrOrStderr())
			logger.SetLevel(log.WarnLevel)
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}

			options := []dockerls.Option{dockerls.WithLogger(logger)}
			if skipHidden {
				options = append(options, dockerls.WithoutHidden())
			}

			l := dockerls.New(options...)
			if err := l.AddFile(ignoreFile); err != nil {
				return err
			}

			files, err := l.List(".")
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), dockerls.Format(files))
			return err
		},
	}

	cmd.Flags().StringVarP(&ignoreFile, "ignore-file", "f", dockerls.DefaultIgnoreFileName, "Path of the ignore file")
	cmd.Flags().BoolVar(&skipHidden, "skip-hidden", false, "Skip files and folders starting with a dot")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every excluded file to stderr")

	return cmd
}
