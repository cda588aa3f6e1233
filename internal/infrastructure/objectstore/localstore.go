package objectstore

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	apperrors "servicedesk/internal/shared/errors"
	"servicedesk/internal/shared/id"
	"servicedesk/internal/shared/logger"
)

// UploadTarget is handed to a client that wants to upload a file. The client
// PUTs the bytes to UploadURL and then records ObjectKey (or the full URL) as
// the attachment reference.
type UploadTarget struct {
	UploadURL string `json:"uploadURL"`
	ObjectKey string `json:"objectKey"`
}

// Store issues upload targets and resolves attachment references back to
// servable paths.
type Store interface {
	// IssueUploadTarget mints a fresh object key and the URL to upload it to.
	IssueUploadTarget(filename string) (*UploadTarget, error)

	// ResolveToServablePath normalizes an attachment reference (full upload
	// URL, bare key, or already-servable path) into the canonical
	// "/objects/<key>" form. Idempotent: resolving an already-resolved path
	// returns it unchanged.
	ResolveToServablePath(ref string) (string, error)

	// OpenForReading opens the stored bytes for an object key.
	OpenForReading(key string) (io.ReadCloser, error)

	// WriteObject stores the uploaded bytes for a previously issued key.
	WriteObject(key string, body io.Reader) (int64, error)
}

// LocalStore keeps uploaded objects as flat files in a directory and serves
// them back through the API under /objects/<key>.
type LocalStore struct {
	dir     string
	baseURL string
	logger  logger.Interface
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("objects directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create objects directory: %w", err)
	}

	return &LocalStore{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger.NewLogger().With("component", "objectstore"),
	}, nil
}

func (s *LocalStore) IssueUploadTarget(filename string) (*UploadTarget, error) {
	key, err := id.NewObjectKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate object key: %w", err)
	}

	if ext := sanitizedExt(filename); ext != "" {
		key = key + ext
	}

	target := &UploadTarget{
		UploadURL: fmt.Sprintf("%s/objects/upload/%s", s.baseURL, key),
		ObjectKey: key,
	}

	s.logger.Debugw("issued upload target", "object_key", key)
	return target, nil
}

func (s *LocalStore) ResolveToServablePath(ref string) (string, error) {
	if ref == "" {
		return "", fmt.Errorf("empty attachment reference")
	}

	candidate := ref
	if strings.Contains(ref, "://") {
		parsed, err := url.Parse(ref)
		if err != nil {
			return "", fmt.Errorf("failed to parse attachment reference: %w", err)
		}
		candidate = parsed.Path
	} else if i := strings.IndexByte(candidate, '?'); i >= 0 {
		candidate = candidate[:i]
	}

	// Upload targets point at the PUT endpoint; rewrite them to the
	// servable form.
	if rest, ok := strings.CutPrefix(candidate, "/objects/upload/"); ok {
		candidate = "/objects/" + rest
	}

	// Already servable: hand it back untouched so resolving twice is safe.
	if strings.HasPrefix(candidate, "/objects/") {
		return candidate, nil
	}

	key := path.Base(candidate)
	if key == "" || key == "." || key == "/" {
		return "", fmt.Errorf("attachment reference has no object key: %s", ref)
	}

	return "/objects/" + key, nil
}

func (s *LocalStore) OpenForReading(key string) (io.ReadCloser, error) {
	cleaned, err := s.objectPath(key)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(cleaned)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewNotFoundError("object not found")
		}
		return nil, fmt.Errorf("failed to open object: %w", err)
	}

	return f, nil
}

func (s *LocalStore) WriteObject(key string, body io.Reader) (int64, error) {
	cleaned, err := s.objectPath(key)
	if err != nil {
		return 0, err
	}

	f, err := os.Create(cleaned)
	if err != nil {
		return 0, fmt.Errorf("failed to create object file: %w", err)
	}
	defer f.Close()

	n, err := io.Copy(f, body)
	if err != nil {
		return 0, fmt.Errorf("failed to write object: %w", err)
	}

	s.logger.Debugw("stored object", "object_key", key, "bytes", n)
	return n, nil
}

// objectPath validates the key and maps it into the store directory. Keys may
// not contain path separators or traversal segments.
func (s *LocalStore) objectPath(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.Contains(key, "..") {
		return "", apperrors.NewBadRequestError("invalid object key")
	}
	return filepath.Join(s.dir, key), nil
}

// sanitizedExt keeps a short, plain file extension from the original filename
// so served objects get a usable content type.
func sanitizedExt(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if ext == "" || len(ext) > 10 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
