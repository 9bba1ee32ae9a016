// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"github.com/alvinbaena/pwd-tool/internal/api"
	"github.com/alvinbaena/pwd-tool/internal/util"
	"github.com/alvinbaena/pwd-tool/pkg/generator"
	"github.com/alvinbaena/pwd-tool/pkg/strength"
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"io"
)

var (
	generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords (not cryptographically secure)",
		RunE: func(cmd *cobra.Command, args []string) error {
			util.ApplyCliSettings(verbose, profile, pprofPort)
			_, err := generateCommand(cmd.OutOrStdout(), cmd.ErrOrStderr(), generator.NewRandom())
			return err
		},
	}

	// replaced in tests
	writeClipboard = clipboard.WriteAll
)

func init() {
	generateCmd.Flags().IntVarP(&length, "length", "l", api.DefaultLength,
		fmt.Sprintf("Password length, between %d and %d", api.DefaultMinLength, api.DefaultMaxLength))
	generateCmd.Flags().BoolVar(&symbols, "symbols", true, "Include symbols (!@#$...). Use --symbols=false to disable.")
	generateCmd.Flags().IntVarP(&count, "count", "c", 1, "Number of passwords to generate")
	generateCmd.Flags().BoolVar(&copyLast, "copy", false, "Copy the generated password to the clipboard. With a count above one the last one is copied.")

	rootCmd.AddCommand(generateCmd)
}

// generateCommand writes the passwords to w, the summary goes to status so
// that w can be piped.
func generateCommand(w io.Writer, status io.Writer, gen *generator.Generator) ([]string, error) {
	if length < api.DefaultMinLength || length > api.DefaultMaxLength {
		return nil, fmt.Errorf("length must be between %d and %d, got %d", api.DefaultMinLength, api.DefaultMaxLength, length)
	}
	if count < 1 {
		return nil, fmt.Errorf("count must be at least 1, got %d", count)
	}

	cfg := generator.Config{Length: length, IncludeSymbols: symbols}
	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		password := gen.Generate(cfg)
		passwords = append(passwords, password)

		if _, err := fmt.Fprintln(w, password); err != nil {
			return passwords, err
		}
		if err := printStrength(w, "Strength: ", strength.Evaluate(password)); err != nil {
			return passwords, err
		}
	}

	if len(passwords) > 1 {
		p := message.NewPrinter(language.English)
		if _, err := p.Fprintf(status, "Generated %d passwords of %d characters\n", len(passwords), cfg.Length); err != nil {
			return passwords, err
		}
	}

	if copyLast {
		if err := copyPassword(passwords[len(passwords)-1]); err != nil {
			return passwords, err
		}
		log.Info().Msg("password copied to clipboard")
	}

	return passwords, nil
}

// copyPassword does nothing for an empty password.
func copyPassword(password string) error {
	if password == "" {
		return nil
	}

	if err := writeClipboard(password); err != nil {
		return fmt.Errorf("error copying to clipboard: %w", err)
	}

	return nil
}
