// Package postgres implementa el gateway de persistencia sobre PostgreSQL con
// la misma semántica de documento completo que jsonfile: cargar todo el
// estado, mutarlo y reemplazarlo dentro de una transacción.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.StateStore = (*Store)(nil)

// stateLockKey clave del advisory lock que serializa los escritores del
// documento (un solo documento por base, una sola clave).
const stateLockKey = 784100

// Store gateway de persistencia del documento de estado sobre PostgreSQL.
// Update corre en una transacción con pg_advisory_xact_lock, así dos ciclos
// leer-modificar-escribir nunca se entrelazan; View lee dentro de una
// transacción de solo lectura (instantánea consistente).
type Store struct {
	pool *pgxpool.Pool
}

// NewStore construye el gateway con el pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// View ejecuta fn sobre una instantánea consistente del estado.
func (st *Store) View(ctx context.Context, fn func(s *entity.State) error) error {
	tx, err := st.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return storageErr("begin", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	state, err := loadState(ctx, tx)
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}
	return nil
}

// Update carga el estado bajo el advisory lock, ejecuta fn y reemplaza el
// documento completo. Commit o Rollback: todo o nada.
func (st *Store) Update(ctx context.Context, fn func(s *entity.State) error) error {
	tx, err := st.pool.Begin(ctx)
	if err != nil {
		return storageErr("begin", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, stateLockKey); err != nil {
		return storageErr("advisory lock", err)
	}
	state, err := loadState(ctx, tx)
	if err != nil {
		return err
	}
	if err := fn(state); err != nil {
		return err
	}
	if err := replaceState(ctx, tx, state); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return storageErr("commit", err)
	}
	return nil
}

func loadState(ctx context.Context, tx pgx.Tx) (*entity.State, error) {
	state := entity.NewState()

	rows, err := tx.Query(ctx, `
		SELECT id, name, category, price, cost_price, quantity, COALESCE(image, '')
		FROM products ORDER BY ord`)
	if err != nil {
		return nil, storageErr("query products", err)
	}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.CostPrice, &p.Quantity, &p.Image); err != nil {
			rows.Close()
			return nil, storageErr("scan product", err)
		}
		state.Products = append(state.Products, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate products", err)
	}

	rows, err = tx.Query(ctx, `
		SELECT id, product_id, quantity, date
		FROM sales ORDER BY ord`)
	if err != nil {
		return nil, storageErr("query sales", err)
	}
	for rows.Next() {
		var v entity.Sale
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Quantity, &v.Date); err != nil {
			rows.Close()
			return nil, storageErr("scan sale", err)
		}
		state.Sales = append(state.Sales, v)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate sales", err)
	}

	err = tx.QueryRow(ctx, `SELECT product_seq, sale_seq FROM state_seq WHERE id = 1`).
		Scan(&state.ProductSeq, &state.SaleSeq)
	if err != nil {
		return nil, storageErr("query state_seq", err)
	}

	state.Normalize()
	return state, nil
}

// replaceState borra y reinserta ambas colecciones. El volumen es pequeño por
// diseño; mantener la semántica de "reemplazar todo" uniforme entre drivers
// pesa más que la eficiencia por fila.
func replaceState(ctx context.Context, tx pgx.Tx, state *entity.State) error {
	if _, err := tx.Exec(ctx, `DELETE FROM sales`); err != nil {
		return storageErr("delete sales", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM products`); err != nil {
		return storageErr("delete products", err)
	}
	for i, p := range state.Products {
		_, err := tx.Exec(ctx, `
			INSERT INTO products (id, ord, name, category, price, cost_price, quantity, image)
			VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''))`,
			p.ID, i, p.Name, p.Category, p.Price, p.CostPrice, p.Quantity, p.Image,
		)
		if err != nil {
			return storageErr("insert product", err)
		}
	}
	for i, v := range state.Sales {
		_, err := tx.Exec(ctx, `
			INSERT INTO sales (id, ord, product_id, quantity, date)
			VALUES ($1, $2, $3, $4, $5)`,
			v.ID, i, v.ProductID, v.Quantity, v.Date,
		)
		if err != nil {
			return storageErr("insert sale", err)
		}
	}
	_, err := tx.Exec(ctx, `
		UPDATE state_seq SET product_seq = $1, sale_seq = $2 WHERE id = 1`,
		state.ProductSeq, state.SaleSeq,
	)
	if err != nil {
		return storageErr("update state_seq", err)
	}
	return nil
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStorageUnavailable, op, err)
}
