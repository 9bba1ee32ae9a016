// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package api

import (
	"errors"
	"fmt"
	"github.com/alvinbaena/pwd-tool/pkg/generator"
	"github.com/alvinbaena/pwd-tool/pkg/strength"
	"github.com/gin-gonic/gin"
	"io"
	"net/http"
)

type passwordApi struct {
	cfg       Config
	generator *generator.Generator
	estimator *strength.Estimator
}

func (p *passwordApi) checkStrength(c *gin.Context) {
	var req strengthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	password := *req.Password
	resp := strengthOf(password)
	if password != "" {
		est := p.estimator.Estimate(password)
		resp.Estimate = &est
	}

	c.JSON(http.StatusOK, resp)
}

func (p *passwordApi) generatePassword(c *gin.Context) {
	var req generateRequest
	// an empty body means all defaults
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := generator.Config{Length: p.cfg.DefaultLength, IncludeSymbols: p.cfg.DefaultSymbols}
	if req.Length != nil {
		cfg.Length = *req.Length
	}
	if req.IncludeSymbols != nil {
		cfg.IncludeSymbols = *req.IncludeSymbols
	}

	if cfg.Length < p.cfg.MinLength || cfg.Length > p.cfg.MaxLength {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("length must be between %d and %d", p.cfg.MinLength, p.cfg.MaxLength),
		})
		return
	}

	password := p.generator.Generate(cfg)
	c.JSON(http.StatusOK, generateResponse{
		Password: password,
		Length:   len(password),
		Strength: strengthOf(password),
	})
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func strengthOf(password string) strengthResponse {
	res := strength.Evaluate(password)
	return strengthResponse{
		Label: res.Label,
		Color: res.Color,
		Score: strength.Score(password),
	}
}

// RegisterPasswordApi adds the strength and generation endpoints to group.
func RegisterPasswordApi(group *gin.RouterGroup, cfg Config, gen *generator.Generator, est *strength.Estimator) error {
	if gen == nil || est == nil {
		return errors.New("generator and estimator are required")
	}

	p := &passwordApi{cfg: cfg, generator: gen, estimator: est}

	group.POST("/strength", p.checkStrength)
	group.POST("/generate", p.generatePassword)
	group.GET("/health", health)

	return nil
}

// NewRouter builds the gin engine serving the API under /v1.
func NewRouter(cfg Config, gen *generator.Generator, est *strength.Estimator, middleware ...gin.HandlerFunc) (*gin.Engine, error) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware...)

	v1 := router.Group("/v1")
	if err := RegisterPasswordApi(v1, cfg, gen, est); err != nil {
		return nil, err
	}

	return router, nil
}
