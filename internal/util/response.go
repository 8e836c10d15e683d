package util

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/talentpulse/backend/internal/apperr"
	"github.com/talentpulse/backend/internal/config"
	"github.com/talentpulse/backend/internal/response"
)

type SuccessResponseFormat struct {
	Code       int
	Message    string
	Data       any
	Pagination *response.Pagination
	Meta       any
}

type OrderedSuccessResponse struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Meta       any                  `json:"meta,omitempty"`
	Pagination *response.Pagination `json:"pagination,omitempty"`
	Data       any                  `json:"data,omitempty"`
}

type ErrorResponseFormat struct {
	Code       int
	Message    string
	DevMessage string
	Details    any
	Trace      string
}

type OrderedErrorResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	DevMessage string `json:"dev_message,omitempty"`
	Details    any    `json:"details,omitempty"`
	Trace      string `json:"trace,omitempty"`
}

// SuccessResponse writes the standard success envelope.
func SuccessResponse(c *fiber.Ctx, params SuccessResponseFormat) error {
	if params.Code == 0 {
		params.Code = fiber.StatusOK
	}
	return c.Status(params.Code).JSON(OrderedSuccessResponse{
		Success:    true,
		Message:    params.Message,
		Data:       params.Data,
		Pagination: params.Pagination,
		Meta:       params.Meta,
	})
}

// ErrorResponse writes the standard error envelope. Developer details and
// stack traces are only included outside production.
func ErrorResponse(c *fiber.Ctx, params ErrorResponseFormat, errs ...error) error {
	resp := OrderedErrorResponse{
		Success: false,
		Message: params.Message,
	}
	if params.Details != nil {
		resp.Details = params.Details
	}
	if config.LoadAppConfig().Env != "production" {
		if len(errs) > 0 && errs[0] != nil {
			resp.DevMessage = errs[0].Error()
			resp.Trace = string(debug.Stack())
		}
		if params.DevMessage != "" {
			resp.DevMessage = params.DevMessage
		}
		if params.Trace != "" {
			resp.Trace = params.Trace
		}
	}

	code := params.Code
	if code == 0 {
		code = fiber.StatusInternalServerError
	}
	return c.Status(code).JSON(resp)
}

// FromError maps a typed app error onto the envelope with the matching HTTP
// status. Plain errors fall through as 500s.
func FromError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*apperr.Error); ok {
		params := ErrorResponseFormat{
			Code:    statusForKind(appErr.Kind),
			Message: appErr.Message,
		}
		if len(appErr.Fields) > 0 {
			params.Details = fiber.Map{"fields": appErr.Fields}
		}
		return ErrorResponse(c, params, appErr.Err)
	}
	return ErrorResponse(c, ErrorResponseFormat{
		Message: "something went wrong",
	}, err)
}

func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return fiber.StatusNotFound
	case apperr.KindUnauthorized:
		return fiber.StatusUnauthorized
	case apperr.KindValidation:
		return fiber.StatusUnprocessableEntity
	case apperr.KindTransient:
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}
