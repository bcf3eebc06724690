package handler

import (
	"github.com/gofiber/fiber/v2"

	"cookbook/internal/service"
)

// UploadFile handles POST /upload (multipart/form-data, field name: file).
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		stored, err := svc.Upload(c.UserContext(), f, fh.Filename)
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "UPLOAD_FAILED", "Error uploading file")
		}

		return c.JSON(fiber.Map{
			"message": "File uploaded successfully",
			"file":    stored,
		})
	}
}

// ListFiles handles GET /files: the upload directory as name/url pairs.
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "SCAN_FAILED", "Unable to scan files")
		}

		return c.JSON(fiber.Map{
			"message": "Files retrieved successfully",
			"files":   files,
		})
	}
}
