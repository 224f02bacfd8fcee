package controllers

import (
	"time"

	"backoffice-app/dmss"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
)

// DmssController exposes the camera-management client over the API. It holds
// the one shared Client for the process.
type DmssController struct {
	Client *dmss.Client
}

func NewDmssController(client *dmss.Client) *DmssController {
	return &DmssController{Client: client}
}

type dmssCredentials struct {
	Server   string `json:"server" validate:"required"`
	Port     string `json:"port"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (c *DmssController) Connect(ctx *fiber.Ctx) error {
	var input dmssCredentials
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Client.Connect(input.Server, input.Port, input.Username, input.Password); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Connected", "data": fiber.Map{"state": c.Client.State()}})
}

func (c *DmssController) ConnectQR(ctx *fiber.Ctx) error {
	var input struct {
		Payload string `json:"payload" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := c.Client.ConnectQR(input.Payload); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Connected", "data": fiber.Map{"state": c.Client.State()}})
}

func (c *DmssController) Disconnect(ctx *fiber.Ctx) error {
	c.Client.Disconnect()
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Disconnected", "data": fiber.Map{"state": c.Client.State()}})
}

func (c *DmssController) Status(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Connection status",
		"data": fiber.Map{
			"state":     c.Client.State(),
			"connected": c.Client.IsConnected(),
		},
	})
}

// TestConnection validates credentials without touching the shared session.
func (c *DmssController) TestConnection(ctx *fiber.Ctx) error {
	var input dmssCredentials
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := dmss.TestConnection(input.Server, input.Port, input.Username, input.Password); err != nil {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Connection test passed"})
}

func (c *DmssController) TestQRConnection(ctx *fiber.Ctx) error {
	var input struct {
		Payload string `json:"payload" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := dmss.TestQRConnection(input.Payload); err != nil {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Connection test passed"})
}

func (c *DmssController) ListCameras(ctx *fiber.Ctx) error {
	cameras, err := c.Client.ListCameras()
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Cameras found", "data": cameras, "total": len(cameras)})
}

func (c *DmssController) SystemInfo(ctx *fiber.Ctx) error {
	info, err := c.Client.SystemInfo()
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "System info", "data": info})
}

func (c *DmssController) StartRecording(ctx *fiber.Ctx) error {
	cameraID := ctx.Params("id")
	if err := c.Client.StartRecording(cameraID); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Recording started"})
}

func (c *DmssController) StopRecording(ctx *fiber.Ctx) error {
	cameraID := ctx.Params("id")
	if err := c.Client.StopRecording(cameraID); err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Recording stopped"})
}

// ListRecordings reads ?start=&end= as RFC3339 and defaults to the last 24h.
func (c *DmssController) ListRecordings(ctx *fiber.Ctx) error {
	cameraID := ctx.Params("id")

	end := time.Now()
	start := end.Add(-24 * time.Hour)
	if s := ctx.Query("start"); s != "" {
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "start must be RFC3339"})
		}
		start = parsed
	}
	if e := ctx.Query("end"); e != "" {
		parsed, err := time.Parse(time.RFC3339, e)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end must be RFC3339"})
		}
		end = parsed
	}

	recordings, err := c.Client.ListRecordings(cameraID, start, end)
	if err != nil {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Recordings found", "data": recordings, "total": len(recordings)})
}

func (c *DmssController) StreamURL(ctx *fiber.Ctx) error {
	streamURL, err := c.Client.StreamURL(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Stream URL", "data": fiber.Map{"url": streamURL}})
}

func (c *DmssController) ThumbnailURL(ctx *fiber.Ctx) error {
	thumbURL, err := c.Client.ThumbnailURL(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Thumbnail URL", "data": fiber.Map{"url": thumbURL}})
}

func (c *DmssController) Health(ctx *fiber.Ctx) error {
	if err := c.Client.Health(); err != nil {
		return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Camera server healthy"})
}
