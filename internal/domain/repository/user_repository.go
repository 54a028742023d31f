package repository

import (
	"context"

	"github.com/velaparedes/backrrhh-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La ausencia de un usuario NO es un error: FindByDNI devuelve (nil, nil).
// Un error no nil siempre significa un fallo de infraestructura (DB caída,
// timeout), que el caller debe propagar sin convertirlo en rechazo de
// credenciales.
type UserRepository interface {
	FindByDNI(ctx context.Context, dni string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}
