package handler

import (
	"github.com/gofiber/fiber/v2"

	"cookbook/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Handlers stay minimal; business logic lives in the services.
func RegisterRoutes(app *fiber.App, db Pinger, recipes service.RecipeService, auth service.AuthService, files service.FileService, uploadDir string) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.SendFile("openapi.yaml")
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Health endpoints: /health checks DB connectivity, /healthz is liveness only
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	// Recipes
	app.Post("/create", CreateRecipe(recipes))
	app.Get("/menu", Menu(recipes))

	// Uploads
	app.Post("/upload", UploadFile(files))
	app.Get("/files", ListFiles(files))

	// Auth
	app.Post("/login", Login(auth))
	app.Post("/register", Register(auth))

	// Serve the upload directory as-is
	app.Static("/uploads", uploadDir)
}
