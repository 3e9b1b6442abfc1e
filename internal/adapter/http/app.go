package http

import (
	"errors"

	"wolfeye-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// NewApp builds the Fiber app with routes registered and an error handler
// that never leaks internals on unhandled errors.
func NewApp(h *Handler, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "wolfeye-backend",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(model.ErrorResponse{Detail: fe.Message})
			}
			logger.Error("unhandled request error", zap.String("path", c.Path()), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Detail: "internal server error"})
		},
	})

	h.Register(app)

	return app
}
