package supplier

import (
	"context"

	"github.com/jerry-maheswara-github/supplier-kit/errors"
)

// testSupplier implements the Supplier interface for testing.
type testSupplier struct {
	name       string
	shouldFail bool
	queries    int
	onQuery    func(req Request)
}

func (s *testSupplier) Name() string { return s.name }

func (s *testSupplier) Query(ctx context.Context, req Request) (Response, error) {
	s.queries++
	if s.onQuery != nil {
		s.onQuery(req)
	}
	if s.shouldFail {
		return Response{}, errors.Internal(s.name + " failed")
	}
	return Response{Data: map[string]any{
		"supplier": s.name,
		"params":   req.Params,
	}}, nil
}
