// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"github.com/alvinbaena/pwd-tool/internal/util"
	"github.com/alvinbaena/pwd-tool/pkg/strength"
	"github.com/manifoldco/promptui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"io"
)

var (
	checkCmd = &cobra.Command{
		Use:   "check [PASSWORD]",
		Short: "Check the strength of a password",
		Args: func(cmd *cobra.Command, args []string) error {
			if !interactive {
				if err := cobra.ExactArgs(1)(cmd, args); err != nil {
					return err
				}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			util.ApplyCliSettings(verbose, profile, pprofPort)

			var estimator *strength.Estimator
			if estimate {
				var err error
				// a single check session does not repeat enough to need a cache
				if estimator, err = strength.NewEstimator(0); err != nil {
					return err
				}
			}

			if interactive {
				return checkInteractive(cmd.OutOrStdout(), estimator)
			}
			return checkCommand(cmd.OutOrStdout(), args[0], estimator)
		},
	}
)

func init() {
	checkCmd.Flags().BoolVarP(&interactive, "interactive", "n", false, "Interactive mode. The password is read from a prompt.")
	checkCmd.Flags().BoolVar(&showPassword, "show", false, "Show the password while typing in interactive mode.")
	checkCmd.Flags().BoolVarP(&estimate, "estimate", "e", false, "Also print the zxcvbn crack time estimate.")

	rootCmd.AddCommand(checkCmd)
}

func checkCommand(w io.Writer, password string, estimator *strength.Estimator) error {
	if err := printStrength(w, "Strength: ", strength.Evaluate(password)); err != nil {
		return err
	}

	if estimator != nil && password != "" {
		return printEstimate(w, estimator.Estimate(password))
	}

	return nil
}

// newCheckPrompt accepts empty input, it is reported with the placeholder label.
func newCheckPrompt() promptui.Prompt {
	prompt := promptui.Prompt{Label: "Password"}
	if !showPassword {
		prompt.Mask = '*'
	}
	return prompt
}

func checkInteractive(w io.Writer, estimator *strength.Estimator) error {
	prompt := newCheckPrompt()

	log.Info().Msgf("Running interactive session. ^C to exit")
	for {
		result, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				log.Info().Msgf("Goodbye")
			} else {
				log.Error().Err(err).Msgf("Error during interactive session")
			}
			// No return to avoid the default cobra error message
			return nil
		}

		if err = checkCommand(w, result, estimator); err != nil {
			log.Error().Err(err).Msg("Error writing result")
		}
	}
}
