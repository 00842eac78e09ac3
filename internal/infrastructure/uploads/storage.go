// Package uploads almacena las imágenes de producto en un directorio público.
// El catálogo solo guarda la referencia (/uploads/<archivo>); los bytes viven
// fuera del documento de estado.
package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Storage guarda archivos subidos bajo dir con nombre único.
type Storage struct {
	dir string
}

// New crea el directorio si no existe y devuelve el storage.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de uploads %s: %w", dir, err)
	}
	return &Storage{dir: dir}, nil
}

// Dir devuelve el directorio servido como /uploads.
func (s *Storage) Dir() string {
	return s.dir
}

// Save persiste el archivo subido con un nombre único (uuid + extensión
// original) y devuelve la referencia a guardar en el producto.
func (s *Storage) Save(fh *multipart.FileHeader) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(fh.Filename))

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("crear %s: %w", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("copiar %s: %w", name, err)
	}
	return "/uploads/" + name, nil
}
