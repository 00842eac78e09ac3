// Package jsonfile implementa el gateway de persistencia sobre un único
// documento JSON en disco: se lee completo, se muta en memoria y se reescribe
// completo en cada operación.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.StateStore = (*Store)(nil)

// Store gateway de persistencia en archivo plano. Update sostiene un lock
// exclusivo durante todo el ciclo leer-modificar-escribir, así las mutaciones
// nunca se entrelazan y no hay escrituras perdidas; View toma el lock
// compartido y entrega una instantánea consistente (nunca una lectura rota a
// mitad de escritura).
type Store struct {
	mu   sync.RWMutex
	path string
}

// New construye el store sobre la ruta dada. El archivo se crea en la primera
// escritura; si no existe, el estado es vacío.
func New(path string) *Store {
	return &Store{path: path}
}

// View ejecuta fn sobre el estado actual bajo lock compartido.
func (st *Store) View(ctx context.Context, fn func(s *entity.State) error) error {
	st.mu.RLock()
	defer st.mu.RUnlock()
	state, err := st.load()
	if err != nil {
		return err
	}
	return fn(state)
}

// Update ejecuta fn bajo lock exclusivo y persiste el resultado como una sola
// escritura durable. Si fn falla no se escribe nada.
func (st *Store) Update(ctx context.Context, fn func(s *entity.State) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	state, err := st.load()
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}
	return st.save(state)
}

func (st *Store) load() (*entity.State, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return entity.NewState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrStorageUnavailable, st.path, err)
	}
	var state entity.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("%w: documento inválido en %s: %v", domain.ErrStorageUnavailable, st.path, err)
	}
	state.Normalize()
	return &state, nil
}

// save escribe a un archivo temporal del mismo directorio y renombra encima
// del documento: ante un corte el archivo nunca queda a medio escribir.
func (st *Store) save(state *entity.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializar estado: %v", domain.ErrStorageUnavailable, err)
	}
	dir := filepath.Dir(st.path)
	tmp, err := os.CreateTemp(dir, ".ventas-*.json")
	if err != nil {
		return fmt.Errorf("%w: archivo temporal en %s: %v", domain.ErrStorageUnavailable, dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrStorageUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: cerrar %s: %v", domain.ErrStorageUnavailable, tmpName, err)
	}
	if err := os.Rename(tmpName, st.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: reemplazar %s: %v", domain.ErrStorageUnavailable, st.path, err)
	}
	return nil
}
