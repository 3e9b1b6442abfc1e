package http

import (
	"errors"

	"wolfeye-backend/internal/domain"
	"wolfeye-backend/internal/model"
	"wolfeye-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	processor *usecase.Processor
	store     usecase.Store
	catalog   []domain.Vacancy
	logger    *zap.Logger
}

func NewHandler(p *usecase.Processor, s usecase.Store, catalog []domain.Vacancy, logger *zap.Logger) *Handler {
	return &Handler{processor: p, store: s, catalog: catalog, logger: logger}
}

// Register wires every route onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", h.Health)
	app.Get("/vacancies", h.ListVacancies)
	app.Post("/process_resumes", h.ProcessResumes)
	app.Get("/results/:transaction_id", h.GetResults)
	app.Get("/all_results", h.AllResults)
	app.Get("/preview/:transaction_id", h.Preview)
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (h *Handler) ListVacancies(c *fiber.Ctx) error {
	resp := make([]model.VacancyResponse, 0, len(h.catalog))
	for _, v := range h.catalog {
		resp = append(resp, model.VacancyResponse{
			ID:   v.ID,
			Name: v.Title,
			// fresh tracking id per listing, callers use it to follow up
			TransactionID:    uuid.NewString(),
			CountRespondents: v.RespondentCount,
		})
	}
	return c.JSON(resp)
}

func (h *Handler) ProcessResumes(c *fiber.Ctx) error {
	if err := model.ValidateProcessResumes(c.Body()); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ErrorResponse{Detail: err.Error()})
	}

	var req model.ProcessResumesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(model.ErrorResponse{Detail: "invalid payload"})
	}

	t := h.processor.Process(c.Context(), req.Name, req.URLs)

	return c.JSON(model.NewTransactionResponse(t))
}

func (h *Handler) GetResults(c *fiber.Ctx) error {
	t, err := h.lookup(c.Params("transaction_id"))
	if err != nil {
		return err
	}
	return c.JSON(model.NewTransactionResponse(t))
}

func (h *Handler) AllResults(c *fiber.Ctx) error {
	all := h.store.List()
	resp := model.AllResultsResponse{Results: make([]model.TransactionSummary, 0, len(all))}
	for _, t := range all {
		resp.Results = append(resp.Results, model.NewTransactionSummary(t))
	}
	return c.JSON(resp)
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	t, err := h.lookup(c.Params("transaction_id"))
	if err != nil {
		return err
	}
	return c.JSON(model.NewPreviewResponse(t))
}

func (h *Handler) lookup(id string) (*domain.Transaction, error) {
	t, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrTransactionNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}
		return nil, err
	}
	return t, nil
}
