package domain

import "errors"

// Tipos de error de dominio (sin dependencias externas). Cualquier otro error es de infraestructura.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUnauthorized = errors.New("no autorizado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// Entidades referenciadas en los errores.
const (
	EntityClient      = "client"
	EntityUnit        = "unit"
	EntityReservation = "reservation"
	EntitySale        = "sale"
	EntityUser        = "user"
)

// Mensajes de conflicto del ciclo de vida de la unidad.
const (
	MsgUnitNotAvailable        = "unit not available"
	MsgUnitActiveReservation   = "unit already has an active reservation"
	MsgUnitNotAvailableForSale = "unit not available for sale"
	MsgUnitAlreadySold         = "unit already sold"
)

// Error error tipado: Kind es uno de los sentinels de arriba; errors.Is(err, ErrConflict) funciona.
type Error struct {
	Kind    error
	Entity  string
	Message string
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Entity != "":
		return e.Entity + ": " + e.Message
	case e.Message != "":
		return e.Message
	case e.Entity != "":
		return e.Entity + ": " + e.Kind.Error()
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() error { return e.Kind }

// NotFound construye un error NotFound para la entidad indicada.
func NotFound(entity string) error {
	return &Error{Kind: ErrNotFound, Entity: entity, Message: entity + " not found"}
}

// Conflict construye un error Conflict con mensaje.
func Conflict(entity, msg string) error {
	return &Error{Kind: ErrConflict, Entity: entity, Message: msg}
}

// Unauthorized construye un error Unauthorized con mensaje.
func Unauthorized(msg string) error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

// InvalidInput construye un error de validación.
func InvalidInput(msg string) error {
	return &Error{Kind: ErrInvalidInput, Message: msg}
}

// Message devuelve el mensaje legible de un error de dominio, o "" si no lo es.
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		if de.Message != "" {
			return de.Message
		}
		return de.Kind.Error()
	}
	return ""
}
