package upload

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"
	"go.uber.org/zap"
)

var ErrNoFile error = errors.New("no file attached to request")
var ErrUnsupportedType error = errors.New("unsupported file type")

// FileField is the multipart form field the image travels under.
const FileField = "image"

var imageExtensions = map[string]string{
	"image/jpg":  "jpg",
	"image/jpeg": "jpg",
	"image/png":  "png",
}

type StoredFile struct {
	Name string
	Path string
}

// Receiver stores at most one uploaded image per request into a dedicated
// directory under a sanitized, timestamp-suffixed name.
type Receiver struct {
	logs     *zap.SugaredLogger
	dir      string
	maxBytes int64
}

func NewReceiver(logger *zap.SugaredLogger, dir string, maxBytes int64) (*Receiver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create image directory: %w", err)
	}

	return &Receiver{
		logs:     logger,
		dir:      dir,
		maxBytes: maxBytes,
	}, nil
}

func (rc *Receiver) Receive(r *http.Request) (StoredFile, error) {
	if err := r.ParseMultipartForm(rc.maxBytes); err != nil {
		return StoredFile{}, fmt.Errorf("parse multipart form: %w", err)
	}

	file, header, err := r.FormFile(FileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return StoredFile{}, ErrNoFile
		}
		return StoredFile{}, fmt.Errorf("read form file: %w", err)
	}
	defer file.Close()

	ext, ok := imageExtensions[header.Header.Get("Content-Type")]
	if !ok {
		return StoredFile{}, fmt.Errorf("%w: %s", ErrUnsupportedType, header.Header.Get("Content-Type"))
	}

	base := strings.TrimSuffix(filepath.Base(header.Filename), filepath.Ext(header.Filename))
	name := fmt.Sprintf("%s_%d.%s", slug.Make(base), time.Now().UnixNano(), ext)
	path := filepath.Join(rc.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return StoredFile{}, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return StoredFile{}, fmt.Errorf("write file: %w", err)
	}

	rc.logs.Infow("image stored", "file", name)
	return StoredFile{Name: name, Path: path}, nil
}

// Remove deletes a stored image by name. Only the base name is honored so a
// crafted value cannot reach outside the image directory.
func (rc *Receiver) Remove(name string) error {
	if name == "" {
		return errors.New("file name is empty")
	}

	path := filepath.Join(rc.dir, filepath.Base(name))
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}

	return nil
}
