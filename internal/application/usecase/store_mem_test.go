package usecase_test

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// memStore implementación en memoria del puerto StateStore para pruebas.
// Update clona el estado, aplica fn y solo reemplaza el original si fn no
// falla: la misma semántica todo-o-nada del gateway real.
type memStore struct {
	mu    sync.Mutex
	state *entity.State
}

func newMemStore() *memStore {
	return &memStore{state: entity.NewState()}
}

func (st *memStore) View(_ context.Context, fn func(s *entity.State) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return fn(st.state.Clone())
}

func (st *memStore) Update(_ context.Context, fn func(s *entity.State) error) error {
	st.mu.Lock()
	defer st.mu.Unlock()
	next := st.state.Clone()
	if err := fn(next); err != nil {
		return err
	}
	st.state = next
	return nil
}

// seedProduct inserta directo en el estado, sin pasar por el caso de uso.
func (st *memStore) seedProduct(p entity.Product) entity.Product {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.InsertProduct(p)
}

// snapshot devuelve una copia del estado actual para aserciones.
func (st *memStore) snapshot() *entity.State {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.state.Clone()
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
