// Package domain holds DTOs for normalize http and service contracts
package domain

import "alaynorm/internal/core/normalize"

// NormalizeInput is one text to normalize
type NormalizeInput struct {
	Text  string   `json:"text"            validate:"required"          example:"H4l0o, aku k3ren bgt!"`
	Skip  []string `json:"skip,omitempty"  validate:"omitempty,dive,stage" example:"typo"`
	Trace bool     `json:"trace,omitempty" example:"false"`
}

// NormalizeOutput is the normalized text, its counters and optionally the token trace
type NormalizeOutput struct {
	Text   string                 `json:"text"             example:"halo, aku keren banget!"`
	Counts normalize.Counts       `json:"counts"`
	Events int                    `json:"events"           example:"3"`
	Trace  []normalize.TokenTrace `json:"trace,omitempty"`
}

// TokenizeInput is one text to split
type TokenizeInput struct {
	Text string `json:"text" validate:"required" example:"aku ! kamu"`
}

// Token is one tokenizer slice
type Token struct {
	Text string `json:"text" example:"aku"`
	Kind string `json:"kind" example:"word"`
}

// TokenizeOutput lists the tokens; joining every Text gives the prepared input back
type TokenizeOutput struct {
	Tokens []Token `json:"tokens"`
	Words  int     `json:"words" example:"2"`
}

// CountsInput is one text to score
type CountsInput struct {
	Text string   `json:"text"           validate:"required"            example:"g4nt3ng bgt"`
	Skip []string `json:"skip,omitempty" validate:"omitempty,dive,stage" example:"typo"`
}

// CountsOutput holds the leet and slang event counts plus every counter
type CountsOutput struct {
	Leet   int              `json:"leet"  example:"1"`
	Slang  int              `json:"slang" example:"1"`
	Counts normalize.Counts `json:"counts"`
}
