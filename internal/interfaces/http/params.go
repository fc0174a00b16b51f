package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jhoicas/direcional-api/internal/application/dto"
	"github.com/jhoicas/direcional-api/internal/domain"
)

// pageQuery lee ?offset=&limit= ; valores ausentes o no numéricos quedan en cero y
// DefaultPage los normaliza.
func pageQuery(c *fiber.Ctx) dto.PageRequest {
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(dto.DefaultLimit)))
	page := dto.PageRequest{Offset: offset, Limit: limit}
	page.DefaultPage()
	return page
}

// idParam devuelve :id en forma canónica. Un id que no es UUID no puede existir: NotFound(entity).
func idParam(c *fiber.Ctx, entity string) (string, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return "", domain.NotFound(entity)
	}
	return id.String(), nil
}
