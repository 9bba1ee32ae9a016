// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"github.com/alvinbaena/pwd-tool/internal/util"
	"github.com/alvinbaena/pwd-tool/pkg/strength"
	"github.com/fatih/color"
	"github.com/rs/zerolog/log"
	"io"
)

// colorize renders the label in its display color. Color is dropped when the
// output is not a terminal (fatih/color.NoColor).
func colorize(res strength.Result) string {
	r, g, b, err := util.ParseHexColor(res.Color)
	if err != nil {
		log.Debug().Err(err).Msg("label color not usable in terminal")
		return res.Label
	}

	return color.RGB(int(r), int(g), int(b)).Add(color.Bold).Sprint(res.Label)
}

func printStrength(w io.Writer, prefix string, res strength.Result) error {
	_, err := fmt.Fprintf(w, "%s%s\n", prefix, colorize(res))
	return err
}

func printEstimate(w io.Writer, est strength.Estimate) error {
	_, err := fmt.Fprintf(w, "Estimated crack time: %s (zxcvbn score %d/4, %.2f bits)\n",
		est.CrackTimeDisplay, est.Score, est.Entropy)
	return err
}
