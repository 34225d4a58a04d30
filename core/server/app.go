package server

import (
	"github.com/GiyoMoon/WitchTrade-BE/core/apperr"
	"github.com/GiyoMoon/WitchTrade-BE/core/logger"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// NewApp creates the Fiber application with the shared codec and limits.
func NewApp(cfg Config) *fiber.App {
	return fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.BodyLimit(),
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
	})
}

// RespondError writes a classified error as {"error": message}. Internal errors
// are logged with their cause and answered with a generic message.
func RespondError(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := apperr.Status(err)
	log := logger.WithRayID(l, c)
	if status >= fiber.StatusInternalServerError {
		log.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
	} else {
		log.Debug("Request rejected", zap.String("path", c.Path()), zap.Error(err))
	}

	return c.Status(status).JSON(fiber.Map{
		"error": apperr.PublicMessage(err),
	})
}
