package service

import (
	"context"
	"encoding/base64"

	"github.com/filehaven/filehaven/internal/domain"
)

// UploadRequest carries the validated fields of a node-creation request.
// ParentID is empty for a top-level node. Data is the base64 payload and
// is ignored for folders.
type UploadRequest struct {
	Name     string
	Type     string
	ParentID string
	IsPublic bool
	Data     string
}

// FileService coordinates metadata and blob persistence for file nodes
type FileService struct {
	files domain.FileRepository
	blobs domain.BlobStore
}

// NewFileService creates a new file service
func NewFileService(files domain.FileRepository, blobs domain.BlobStore) *FileService {
	return &FileService{
		files: files,
		blobs: blobs,
	}
}

// Upload validates the request against the tree invariants and persists
// the node. For non-folders the blob is written first and the metadata
// insert second; there is no transaction spanning the two, so a metadata
// failure leaves the already-written blob unreferenced.
func (s *FileService) Upload(ctx context.Context, ownerID string, req UploadRequest) (*domain.FileNode, error) {
	if req.Name == "" {
		return nil, domain.NewValidationError("Missing name")
	}
	if !domain.ValidType(req.Type) {
		return nil, domain.NewValidationError("Missing type")
	}
	if req.Type != domain.TypeFolder && req.Data == "" {
		return nil, domain.NewValidationError("Missing data")
	}

	if req.ParentID != "" {
		parent, err := s.files.GetAny(ctx, req.ParentID)
		if err != nil {
			if err == domain.ErrNotFound {
				return nil, domain.NewValidationError("Parent not found")
			}
			return nil, err
		}
		if !parent.IsFolder() {
			return nil, domain.NewValidationError("Parent is not a folder")
		}
	}

	node := &domain.FileNode{
		OwnerID:  ownerID,
		Name:     req.Name,
		Type:     req.Type,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
	}

	if req.Type != domain.TypeFolder {
		data, err := base64.StdEncoding.DecodeString(req.Data)
		if err != nil {
			return nil, domain.NewValidationError("Missing data")
		}
		ref, err := s.blobs.Write(ctx, data)
		if err != nil {
			return nil, err
		}
		node.BlobRef = ref
	}

	if err := s.files.Create(ctx, node); err != nil {
		return nil, err
	}
	return node, nil
}

// GetFile returns the node with the given id if the caller owns it.
// A node owned by someone else is reported as not found.
func (s *FileService) GetFile(ctx context.Context, ownerID, id string) (*domain.FileNode, error) {
	return s.files.GetByID(ctx, id, ownerID)
}

// ListFiles returns one page of the caller's nodes under parentID,
// in creation order. Pages are zero-indexed and fixed-size.
func (s *FileService) ListFiles(ctx context.Context, ownerID, parentID string, page int64) ([]*domain.FileNode, error) {
	if page < 0 {
		page = 0
	}
	return s.files.List(ctx, ownerID, parentID, page)
}

// FileData returns a node and its stored bytes. Public nodes are served
// to anyone; private ones only to their owner, and a mismatch is
// indistinguishable from absence. Folders carry no content.
func (s *FileService) FileData(ctx context.Context, callerID, id string) (*domain.FileNode, []byte, error) {
	node, err := s.files.GetAny(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if !node.IsPublic && node.OwnerID != callerID {
		return nil, nil, domain.ErrNotFound
	}
	if node.IsFolder() {
		return nil, nil, domain.NewValidationError("A folder doesn't have content")
	}

	data, err := s.blobs.Read(ctx, node.BlobRef)
	if err != nil {
		return nil, nil, err
	}
	return node, data, nil
}
