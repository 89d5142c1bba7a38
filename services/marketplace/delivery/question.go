package delivery

import (
	"yumi/domain"

	"github.com/gofiber/fiber/v2"
)

type questionHandler struct {
	quc domain.QuestionUseCase
}

func NewQuestionDelivery(router fiber.Router, uc domain.QuestionUseCase) {
	handler := &questionHandler{
		quc: uc,
	}

	route := router.Group("/questions")
	route.Post("/", handler.AskQuestion)
	route.Get("/", handler.ListQuestions)
	route.Post("/:id/answer", handler.AnswerQuestion)
}

func (h *questionHandler) AskQuestion(c *fiber.Ctx) error {
	var req domain.QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "AskQuestion", "Invalid request body")
	}

	q, err := h.quc.Ask(c.Context(), &req)
	if err != nil {
		return respondError(c, "AskQuestion", "Failed to submit question", err)
	}
	return respond(c, fiber.StatusCreated, "AskQuestion", "Question submitted successfully", q)
}

func (h *questionHandler) ListQuestions(c *fiber.Ctx) error {
	answered, err := queryBool(c, "answered")
	if err != nil {
		return respondError(c, "ListQuestions", "Invalid answered filter", err)
	}

	questions, err := h.quc.List(c.Context(), answered)
	if err != nil {
		return respondError(c, "ListQuestions", "Failed to retrieve questions", err)
	}
	return respond(c, fiber.StatusOK, "ListQuestions", "Questions retrieved successfully", questions)
}

func (h *questionHandler) AnswerQuestion(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, "AnswerQuestion", "Invalid question id", err)
	}

	var req domain.AnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "AnswerQuestion", "Invalid request body")
	}

	q, err := h.quc.Answer(c.Context(), id, &req)
	if err != nil {
		return respondError(c, "AnswerQuestion", "Failed to answer question", err)
	}
	return respond(c, fiber.StatusOK, "AnswerQuestion", "Question answered successfully", q)
}
