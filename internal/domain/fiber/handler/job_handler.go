package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sixtyday/jobboard/internal/dto"
	"github.com/sixtyday/jobboard/internal/usecase"
	"github.com/sixtyday/jobboard/internal/util"
)

type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/jobs", h.Create)
	app.Get("/jobs", h.List)
	app.Get("/jobs/mine", h.Mine)
	app.Get("/jobs/:id/skills", h.Skills)
	app.Get("/skills", h.AllSkills)
}

func (h *JobHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	if req.Title == "" || req.Description == "" || req.Location == "" || req.SalaryRange == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "title, description, location and salary_range are required",
		})
	}
	if req.PostedBy == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "posted_by is required",
		})
	}

	id, err := h.uc.Post(req)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to post job",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Job posted",
		Data:    fiber.Map{"id": id},
	})
}

// List serves the browse view. Filter criteria arrive as query parameters;
// exclude_for names the acting candidate whose applied jobs are hidden.
func (h *JobHandler) List(c *fiber.Ctx) error {
	var filter dto.JobFilter
	if err := c.QueryParser(&filter); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid filter",
		}, err)
	}

	jobs, err := h.uc.Browse(filter, c.Query("exclude_for"))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: dto.NewJobResponses(jobs),
	})
}

func (h *JobHandler) Mine(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "username is required",
		})
	}

	jobs, err := h.uc.PostedBy(username)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to list jobs",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: dto.NewJobResponses(jobs),
	})
}

func (h *JobHandler) Skills(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job id",
		}, err)
	}

	skills, err := h.uc.SkillsForJob(uint(id))
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load skills",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: fiber.Map{"skills": skills},
	})
}

func (h *JobHandler) AllSkills(c *fiber.Ctx) error {
	names, err := h.uc.AllSkills()
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load skills",
		}, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code: fiber.StatusOK,
		Data: names,
	})
}
