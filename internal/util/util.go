// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package util

import (
	"errors"
	"fmt"
	"github.com/iancoleman/strcase"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"net/http"
	_ "net/http/pprof"
)

var ErrInvalidColor = errors.New("invalid hex color")

func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Warn().Msgf("verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("profiling is enabled for this session. Server will listen on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf("localhost:%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("error starting profiling server on port %d", pprofPort)
				return
			}
		}()
	}
}

// ToScreamingSnakeCase turns Go field names (TLSCert, MinLength) and lists of
// them ("TLSCert TLSKey") into env style names (TLS_CERT, MIN_LENGTH).
func ToScreamingSnakeCase(s string) string {
	return strcase.ToScreamingSnake(s)
}

// ParseHexColor parses #rrggbb and #rgb colors.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	// colorful.Hex scans "#12345" as three groups
	if len(s) != 4 && len(s) != 7 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	r, g, b = c.RGB255()
	return r, g, b, nil
}
