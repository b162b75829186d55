package document

import "context"

// StubStore is an in-memory Store for tests.
type StubStore struct {
	doc       *Document
	SaveCount int
	// FailSave, when set, is returned by the next Save call.
	FailSave error
}

func NewStubStore(doc *Document) *StubStore {
	doc.normalize()
	return &StubStore{doc: doc}
}

func (s *StubStore) Load(ctx context.Context) (*Document, error) {
	return s.doc.Clone(), nil
}

func (s *StubStore) Save(ctx context.Context, doc *Document) error {
	if s.FailSave != nil {
		err := s.FailSave
		s.FailSave = nil
		return err
	}
	s.doc = doc.Clone()
	s.SaveCount++
	return nil
}

// Current returns the last saved document.
func (s *StubStore) Current() *Document {
	return s.doc.Clone()
}

func (s *StubStore) Cleanup() {
	s.doc = &Document{}
	s.doc.normalize()
	s.SaveCount = 0
}
