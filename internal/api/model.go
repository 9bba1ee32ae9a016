package api

import (
	"github.com/alvinbaena/pwd-tool/pkg/strength"
)

type strengthRequest struct {
	// pointer so that an empty password passes the required check
	Password *string `json:"password" binding:"required"`
}

type strengthResponse struct {
	Label    string             `json:"label"`
	Color    string             `json:"color"`
	Score    int                `json:"score"`
	Estimate *strength.Estimate `json:"estimate,omitempty"`
}

type generateRequest struct {
	Length         *int  `json:"length"`
	IncludeSymbols *bool `json:"include_symbols"`
}

type generateResponse struct {
	Password string           `json:"password"`
	Length   int              `json:"length"`
	Strength strengthResponse `json:"strength"`
}
