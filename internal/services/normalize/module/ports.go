package module

import (
	"context"

	lexdomain "alaynorm/internal/services/lexicon/domain"
	normdom "alaynorm/internal/services/normalize/domain"
	normsvc "alaynorm/internal/services/normalize/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return adaptNormalizePort{svc: m.svc} }

// adaptNormalizePort adapts the normalize service to the domain port interface
type adaptNormalizePort struct{ svc normsvc.Service }

func (a adaptNormalizePort) Normalize(ctx context.Context, in normdom.NormalizeInput) (normdom.NormalizeOutput, error) {
	return a.svc.Normalize(ctx, in)
}

func (a adaptNormalizePort) Tokenize(ctx context.Context, in normdom.TokenizeInput) (normdom.TokenizeOutput, error) {
	return a.svc.Tokenize(ctx, in)
}

func (a adaptNormalizePort) Counts(ctx context.Context, in normdom.CountsInput) (normdom.CountsOutput, error) {
	return a.svc.Counts(ctx, in)
}

func (a adaptNormalizePort) Lexicon(ctx context.Context) (lexdomain.Info, error) {
	return a.svc.Lexicon(ctx)
}
