package archive

import (
	"context"
	"fmt"
	"sort"

	"github.com/kharcha/kharcha/pkg/document"
)

// Service is the read-only query surface over closed months. Archives are
// immutable snapshots; nothing here ever writes.
type Service interface {
	ListMonths(ctx context.Context) ([]string, error)
	Get(ctx context.Context, monthKey string) (document.ArchivedMonth, error)
}

type ServiceImpl struct {
	store document.Store
}

func NewServiceImpl(store document.Store) *ServiceImpl {
	return &ServiceImpl{store: store}
}

// ListMonths returns archived month keys, most recent first.
func (s *ServiceImpl) ListMonths(ctx context.Context) ([]string, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}

	months := make([]string, 0, len(doc.Archives))
	for key := range doc.Archives {
		months = append(months, key)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	return months, nil
}

func (s *ServiceImpl) Get(ctx context.Context, monthKey string) (document.ArchivedMonth, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return document.ArchivedMonth{}, fmt.Errorf("failed to load ledger: %w", err)
	}

	month, ok := doc.Archives[monthKey]
	if !ok {
		return document.ArchivedMonth{}, document.ErrNotFound
	}
	return month, nil
}
