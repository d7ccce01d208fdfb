package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/mini-erp/internal/application/dto"
	"github.com/tu-usuario/mini-erp/internal/domain"
)

// fail mapea un centinela de dominio a código HTTP y cuerpo de error.
// Todos los errores se recuperan aquí y se entregan como mensaje al
// usuario; ninguno tumba el proceso.
func fail(c *fiber.Ctx, err error) error {
	type mapping struct {
		status int
		code   string
	}
	for sentinel, m := range map[error]mapping{
		domain.ErrInvalidInput:      {fiber.StatusBadRequest, "VALIDATION"},
		domain.ErrEmptyInput:        {fiber.StatusBadRequest, "EMPTY_INPUT"},
		domain.ErrNotANumber:        {fiber.StatusBadRequest, "NOT_A_NUMBER"},
		domain.ErrNotInteger:        {fiber.StatusBadRequest, "NOT_INTEGER"},
		domain.ErrNonPositive:       {fiber.StatusBadRequest, "NON_POSITIVE"},
		domain.ErrDuplicateKey:      {fiber.StatusConflict, "DUPLICATE_KEY"},
		domain.ErrInsufficientStock: {fiber.StatusConflict, "INSUFFICIENT_STOCK"},
		domain.ErrNotFound:          {fiber.StatusNotFound, "NOT_FOUND"},
		domain.ErrEmptyDataset:      {fiber.StatusNotFound, "EMPTY_DATASET"},
		domain.ErrDivideByZero:      {fiber.StatusUnprocessableEntity, "DIVIDE_BY_ZERO"},
	} {
		if errors.Is(err, sentinel) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: sentinel.Error()})
		}
	}
	// ErrStorage y cualquier fallo no clasificado.
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "STORAGE",
		Message: domain.ErrStorage.Error(),
	})
}
