package handler

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sixtyday/jobboard/internal/dto"
	"github.com/sixtyday/jobboard/internal/usecase"
	"github.com/sixtyday/jobboard/internal/util"
)

const maxResumeSize = 5 * 1024 * 1024

type ApplicationHandler struct {
	uc *usecase.ApplicationUsecase
}

func NewApplicationHandler(uc *usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/jobs/:id/apply", h.Apply)
	app.Get("/jobs/:id/applications", h.ForJob)
	app.Get("/applications", h.ForCandidate)
	app.Get("/applications/:id/resume", h.Resume)
}

// Apply accepts the multipart application form. The resume part is optional.
func (h *ApplicationHandler) Apply(c *fiber.Ctx) error {
	jobID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	req := dto.ApplyRequest{
		JobID:             uint(jobID),
		CandidateUsername: c.FormValue("candidate_username"),
		Message:           c.FormValue("message"),
		FirstName:         c.FormValue("first_name"),
		LastName:          c.FormValue("last_name"),
		Email:             c.FormValue("email"),
		Phone:             c.FormValue("phone"),
	}
	if req.CandidateUsername == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "candidate_username is required",
		})
	}

	if file, err := c.FormFile("resume"); err == nil {
		if file.Size > maxResumeSize {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "resume file is too large (max 5MB)",
			})
		}
		src, err := file.Open()
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "cannot read resume file",
			}, err)
		}
		defer src.Close()
		req.Resume, err = io.ReadAll(src)
		if err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Message: "cannot read resume file",
			}, err)
		}
		req.ResumeFilename = file.Filename
	}

	id, err := h.uc.Submit(req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to submit application",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Application submitted",
		Data:    fiber.Map{"id": id},
	})
}

func (h *ApplicationHandler) ForJob(c *fiber.Ctx) error {
	jobID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	apps, err := h.uc.ForJob(uint(jobID))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list applications",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: dto.NewApplicationResponses(apps),
	})
}

func (h *ApplicationHandler) ForCandidate(c *fiber.Ctx) error {
	username := c.Query("candidate")
	if username == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "candidate is required",
		})
	}

	apps, err := h.uc.ForCandidate(username)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list applications",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: dto.NewCandidateApplicationResponses(apps),
	})
}

func (h *ApplicationHandler) Resume(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid application id",
		}, err)
	}

	app, err := h.uc.Resume(id)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load application",
		}, err)
	}
	if app == nil || len(app.Resume) == 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: "no resume for this application",
		})
	}

	filename := app.ResumeFilename
	if filename == "" {
		filename = "resume.pdf"
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(app.Resume)
}
