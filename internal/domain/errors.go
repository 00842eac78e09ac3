package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los casos de uso los
// envuelven con fmt.Errorf("%w: ...") para nombrar el id o producto ofensor;
// la capa HTTP los traduce con errors.Is.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrStorageUnavailable = errors.New("almacenamiento no disponible")
)
