package commands

import (
	"docvault/internal/domain"
	"docvault/internal/ports"
)

// fakeStore satisfies ports.DocumentStore for validation tests. Methods
// record the address they were called with; none touch a filesystem.
type fakeStore struct {
	entity   domain.Entity
	resolver *domain.EntityResolver

	lastAddr domain.Address
	doc      *domain.Document
	err      error
}

var _ ports.DocumentStore = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{
		entity:   domain.EntityDoc,
		resolver: domain.NewEntityResolver(domain.EntityDoc),
	}
}

func (f *fakeStore) Entity() domain.Entity            { return f.entity }
func (f *fakeStore) Root(scope domain.Scope) string   { return "/" + string(scope) }
func (f *fakeStore) Resolver() *domain.EntityResolver { return f.resolver }

func (f *fakeStore) Create(addr domain.Address, content string) (*domain.Document, error) {
	f.lastAddr = addr
	return f.doc, f.err
}

func (f *fakeStore) Read(addr domain.Address) (*domain.Document, error) {
	f.lastAddr = addr
	return f.doc, f.err
}

func (f *fakeStore) Edit(addr domain.Address, ops []domain.EditOp, expectedHash string) (*domain.Document, error) {
	f.lastAddr = addr
	return f.doc, f.err
}

func (f *fakeStore) Delete(addr domain.Address, expectedHash string) (bool, error) {
	f.lastAddr = addr
	return f.doc != nil, f.err
}

func (f *fakeStore) List(scope domain.Scope, pathPrefix string) ([]domain.Info, error) {
	return nil, f.err
}

func (f *fakeStore) Move(src domain.Address, destPath string, destScope domain.Scope) (*domain.Document, error) {
	f.lastAddr = src
	return f.doc, f.err
}
