package domain

import (
	"context"

	lexdomain "alaynorm/internal/services/lexicon/domain"
)

// ServicePort defines the service contract for normalize
type ServicePort interface {
	Normalize(ctx context.Context, in NormalizeInput) (NormalizeOutput, error)
	Tokenize(ctx context.Context, in TokenizeInput) (TokenizeOutput, error)
	Counts(ctx context.Context, in CountsInput) (CountsOutput, error)
	Lexicon(ctx context.Context) (lexdomain.Info, error)
}
