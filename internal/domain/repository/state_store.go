package repository

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// StateStore define el puerto de persistencia del documento de estado
// completo (DIP). El modelo es "cargar todo, mutar en memoria, reemplazar
// todo": el adaptador serializa las mutaciones para que dos ciclos
// leer-modificar-escribir nunca se entrelacen y no haya escrituras perdidas.
type StateStore interface {
	// View ejecuta fn sobre una instantánea consistente del estado.
	// fn no debe mutar el estado recibido.
	View(ctx context.Context, fn func(s *entity.State) error) error

	// Update carga el estado bajo exclusión mutua, ejecuta fn y persiste el
	// resultado como una sola escritura durable. Si fn devuelve error no se
	// persiste nada (todo o nada).
	Update(ctx context.Context, fn func(s *entity.State) error) error
}
