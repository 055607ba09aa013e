package domain

import (
	"context"
	"time"
)

// File node types
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// PageSize is the fixed number of nodes returned per listing page
const PageSize = 20

// ValidType reports whether t is a recognized node type
func ValidType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// FileNode is the metadata record for a file or folder.
// ParentID is empty for top-level nodes. BlobRef is empty iff the node
// is a folder; otherwise it names the persisted blob.
type FileNode struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	OwnerID   string    `bson:"user_id" json:"userId"`
	Name      string    `bson:"name" json:"name"`
	Type      string    `bson:"type" json:"type"`
	ParentID  string    `bson:"parent_id" json:"parentId"`
	IsPublic  bool      `bson:"is_public" json:"isPublic"`
	BlobRef   string    `bson:"blob_ref,omitempty" json:"-"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsFolder reports whether the node is a folder
func (f *FileNode) IsFolder() bool {
	return f.Type == TypeFolder
}

// FileRepository defines metadata operations for file nodes.
// GetByID is scoped strictly to the owner: a node belonging to another
// owner is indistinguishable from an absent one. GetAny is the unscoped
// lookup used for parent validation and public content access.
type FileRepository interface {
	Create(ctx context.Context, node *FileNode) error
	GetByID(ctx context.Context, id, ownerID string) (*FileNode, error)
	GetAny(ctx context.Context, id string) (*FileNode, error)
	List(ctx context.Context, ownerID, parentID string, page int64) ([]*FileNode, error)
	Count(ctx context.Context) (int64, error)
}

// BlobStore persists raw binary payloads under generated identifiers
type BlobStore interface {
	Write(ctx context.Context, data []byte) (string, error)
	Read(ctx context.Context, ref string) ([]byte, error)
}
