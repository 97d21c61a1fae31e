// Package http expone la API REST sobre Fiber: un handler por entidad,
// middleware de autenticación JWT y el router que los conecta.
package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/appjingle/tienda-erp/internal/application/dto"
)

// parseIDParam lee el parámetro de ruta :id como int64; 0 si es inválido.
func parseIDParam(c *fiber.Ctx) int64 {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// storeIDQuery lee el filtro opcional ?storeId=N; 0 significa sin filtro.
func storeIDQuery(c *fiber.Ctx) int64 {
	return int64(c.QueryInt("storeId", 0))
}

// terminalID identifica el carrito del POS. Cada caja envía su propio
// X-Terminal-ID; sin cabecera todas comparten la terminal por defecto.
func terminalID(c *fiber.Ctx) string {
	return c.Get("X-Terminal-ID")
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
}

func internalErr(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: message})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
