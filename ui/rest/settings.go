package rest

import (
	"context"
	"fmt"

	"github.com/AzielCF/az-chatbox/pkg/notice"
	pkgError "github.com/AzielCF/az-chatbox/pkg/error"
	"github.com/AzielCF/az-chatbox/pkg/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type SettingsManager interface {
	Snapshot(ctx context.Context) (map[string]string, error)
	Update(ctx context.Context, values map[string]string) error
	Reset(ctx context.Context) error
}

type Notifier interface {
	Notify(n notice.Notice)
}

type Settings struct {
	Service  SettingsManager
	Notifier Notifier
}

func InitRestSettings(app fiber.Router, service SettingsManager, notifier Notifier) Settings {
	rest := Settings{Service: service, Notifier: notifier}
	app.Get("/settings", rest.GetSettings)
	app.Put("/settings", rest.UpdateSettings)
	app.Post("/settings/reset", rest.ResetSettings)

	return rest
}

func (handler *Settings) GetSettings(c *fiber.Ctx) error {
	values, err := handler.Service.Snapshot(c.UserContext())
	if err != nil {
		logrus.WithError(err).Warn("[SETTINGS] Serving defaults only")
	}

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Settings retrieved",
		Results: values,
	})
}

func (handler *Settings) UpdateSettings(c *fiber.Ctx) error {
	var request map[string]string
	err := c.BodyParser(&request)
	if err != nil {
		utils.PanicIfNeeded(pkgError.ValidationError("invalid request body"))
	}

	err = handler.Service.Update(c.UserContext(), request)
	if err != nil {
		handler.notify(notice.ClassError, err.Error())
	}
	utils.PanicIfNeeded(err)

	handler.notify(notice.ClassSuccess, fmt.Sprintf("%d setting(s) saved.", len(request)))

	values, err := handler.Service.Snapshot(c.UserContext())
	utils.PanicIfNeeded(err)

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Settings updated",
		Results: values,
	})
}

func (handler *Settings) ResetSettings(c *fiber.Ctx) error {
	err := handler.Service.Reset(c.UserContext())
	utils.PanicIfNeeded(err)

	handler.notify(notice.ClassInfo, "Settings restored to defaults.")

	return c.JSON(utils.ResponseData{
		Status:  200,
		Code:    "SUCCESS",
		Message: "Settings reset to defaults",
	})
}

func (handler *Settings) notify(class notice.Class, message string) {
	if handler.Notifier != nil {
		handler.Notifier.Notify(notice.New(class, message))
	}
}
