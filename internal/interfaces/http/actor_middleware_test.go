package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/niwatnet1979-coder/168InteriorLighting/internal/interfaces/http"
)

func buildTestApp() *fiber.App {
	app := fiber.New()
	app.Use(apphttp.ActorMiddleware())
	app.Get("/whoami", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"actor": apphttp.GetActor(c)})
	})
	return app
}

func whoami(t *testing.T, app *fiber.App, header string) string {
	t.Helper()
	req := httptest.NewRequest("GET", "/whoami", nil)
	if header != "" {
		req.Header.Set("X-Actor", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out struct {
		Actor string `json:"actor"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	return out.Actor
}

func TestActorFromHeader(t *testing.T) {
	app := buildTestApp()
	assert.Equal(t, "Nok", whoami(t, app, "Nok"))
}

func TestActorDefaultsToAdmin(t *testing.T) {
	app := buildTestApp()
	assert.Equal(t, apphttp.DefaultActor, whoami(t, app, ""))
}
