package middleware

import (
	"errors"

	"go.uber.org/zap"

	"jobhunter/internal/ai"
	"jobhunter/internal/pkg/response"
	"jobhunter/internal/repository"
	"jobhunter/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *zap.Logger
}

func NewErrorMiddleware(logger *zap.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Error("panic recovered", zap.Any("panic", r))
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := m.normalizeError(err)
		return response.Error(c, status, msg, data)
	}
}

// domainStatus maps domain sentinels to HTTP statuses so handlers can return
// usecase errors directly.
func domainStatus(err error) (int, string, bool) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return fiber.StatusBadRequest, "invalid input", true
	case errors.Is(err, usecase.ErrNoActiveConfigs):
		return fiber.StatusBadRequest, "no active search configurations found, create a search config first", true
	case errors.Is(err, usecase.ErrEmptyKnowledgeBase):
		return fiber.StatusBadRequest, "no knowledge base entries found, add your profile information first", true
	case errors.Is(err, usecase.ErrApplicationExists):
		return fiber.StatusConflict, "an application already exists for this job", true
	case errors.Is(err, repository.ErrJobNotFound):
		return fiber.StatusNotFound, "job not found", true
	case errors.Is(err, repository.ErrSearchConfigNotFound):
		return fiber.StatusNotFound, "search config not found", true
	case errors.Is(err, repository.ErrKnowledgeEntryNotFound):
		return fiber.StatusNotFound, "knowledge entry not found", true
	case errors.Is(err, repository.ErrApplicationNotFound):
		return fiber.StatusNotFound, "application not found", true
	case errors.Is(err, repository.ErrQuestionNotFound):
		return fiber.StatusNotFound, "question not found", true
	case errors.Is(err, ai.ErrNotConfigured):
		return fiber.StatusBadRequest, "anthropic api key not configured", true
	default:
		return 0, "", false
	}
}

func (m *ErrorMiddleware) normalizeError(err error) (int, string, interface{}) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.StatusCode
		if status <= 0 || status >= 500 {
			m.logger.Error("request failed", zap.Error(err))
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg, appErr.Data
	}

	if status, msg, ok := domainStatus(err); ok {
		return status, msg, nil
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		status := fiberErr.Code
		if status <= 0 || status >= 500 {
			m.logger.Error("request failed", zap.Error(err))
			return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
		}
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(status)
		}
		return status, msg, nil
	}

	m.logger.Error("request failed", zap.Error(err))
	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}
