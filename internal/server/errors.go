package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jcarrillo/cpgo/internal/domain"
	"github.com/jcarrillo/cpgo/internal/storage"
)

// ErrorResponse is the JSON body of every non-2xx answer.
type ErrorResponse struct {
	Code    string `json:"codigo"`
	Message string `json:"mensaje"`
}

// translateError maps domain errors onto HTTP statuses: invalid input is 422,
// a missing row is 404, a broken catalog is 500. Anything unknown stays 500
// without leaking internals.
func translateError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, storage.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.IsCatalog(err):
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Code: "CATALOG", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Code: "INTERNAL", Message: "error interno"})
	}
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Code: "INVALID_BODY", Message: message})
}

func persistenceUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Code: "NO_STORAGE", Message: "persistencia no configurada"})
}
