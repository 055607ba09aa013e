package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/filehaven/filehaven/internal/domain"
)

// In-memory fakes backing the service tests. They mirror the scoping and
// error semantics of the real repositories.

type memUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*domain.User // by id
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return domain.ErrAlreadyExists
		}
	}
	r.seq++
	user.ID = fmt.Sprintf("%024x", r.seq)
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memUserRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type memFileRepo struct {
	mu    sync.Mutex
	seq   int
	nodes []*domain.FileNode // insertion order

	failCreates bool
}

func newMemFileRepo() *memFileRepo {
	return &memFileRepo{}
}

func (r *memFileRepo) Create(ctx context.Context, node *domain.FileNode) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failCreates {
		return fmt.Errorf("insert failed")
	}
	r.seq++
	node.ID = fmt.Sprintf("%024x", r.seq)
	cp := *node
	r.nodes = append(r.nodes, &cp)
	return nil
}

func (r *memFileRepo) GetByID(ctx context.Context, id, ownerID string) (*domain.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.nodes {
		if n.ID == id && n.OwnerID == ownerID {
			cp := *n
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memFileRepo) GetAny(ctx context.Context, id string) (*domain.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.nodes {
		if n.ID == id {
			cp := *n
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memFileRepo) List(ctx context.Context, ownerID, parentID string, page int64) ([]*domain.FileNode, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []*domain.FileNode
	for _, n := range r.nodes {
		if n.OwnerID == ownerID && n.ParentID == parentID {
			cp := *n
			matched = append(matched, &cp)
		}
	}
	start := page * domain.PageSize
	if start >= int64(len(matched)) {
		return nil, nil
	}
	end := start + domain.PageSize
	if end > int64(len(matched)) {
		end = int64(len(matched))
	}
	return matched[start:end], nil
}

func (r *memFileRepo) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.nodes)), nil
}

type memBlobStore struct {
	mu    sync.Mutex
	seq   int
	blobs map[string][]byte

	failWrites bool
}

func newMemBlobStore() *memBlobStore {
	return &memBlobStore{blobs: make(map[string][]byte)}
}

func (s *memBlobStore) Write(ctx context.Context, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failWrites {
		return "", fmt.Errorf("disk full")
	}
	s.seq++
	ref := fmt.Sprintf("blob-%d", s.seq)
	cp := make([]byte, len(data))
	copy(cp, data)
	s.blobs[ref] = cp
	return ref, nil
}

func (s *memBlobStore) Read(ctx context.Context, ref string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if data, ok := s.blobs[ref]; ok {
		cp := make([]byte, len(data))
		copy(cp, data)
		return cp, nil
	}
	return nil, domain.ErrNotFound
}

type memSessionStore struct {
	mu       sync.Mutex
	seq      int
	sessions map[string]string // token -> userID
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]string)}
}

func (s *memSessionStore) Issue(ctx context.Context, userID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	token := fmt.Sprintf("token-%d", s.seq)
	s.sessions[token] = userID
	return token, nil
}

func (s *memSessionStore) Resolve(ctx context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if userID, ok := s.sessions[token]; ok {
		return userID, nil
	}
	return "", domain.ErrUnauthorized
}

func (s *memSessionStore) Revoke(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
