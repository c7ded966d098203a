package controller

import (
	"net/http"

	"weav-api/core/constants"
	"weav-api/core/errors"
	"weav-api/core/logger"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Response handler interface and implementation
type BaseController interface {
	BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	InternalServerError(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	Unauthorized(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	Forbidden(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError
	SuccessResponse(c echo.Context, data any) error
	CreatedResponse(c echo.Context, data any) error
	ErrorResponse(c echo.Context, err error) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

// NewErrorResponse builds an echo error whose body is {"error": message}.
// An error passed in details is kept as the internal cause for logging.
func NewErrorResponse(httpStatusCode int, appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	he := echo.NewHTTPError(httpStatusCode, &ErrorResponse{Error: message})
	if len(details) > 0 {
		if cause, ok := details[0].(error); ok && cause != nil {
			he.Internal = cause
		}
	}
	if httpStatusCode >= http.StatusInternalServerError {
		logger.Error("BaseController:ErrorResponse",
			"status", httpStatusCode,
			"code", appErrCode,
			"message", message,
			"cause", he.Internal,
		)
	}
	return he
}

// HTTP Error handlers
func (h *responseHandler) BadRequest(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusBadRequest, appErrCode, message, details...)
}

func (h *responseHandler) InternalServerError(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusInternalServerError, appErrCode, message, details...)
}

func (h *responseHandler) NotFound(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusNotFound, appErrCode, message, details...)
}

func (h *responseHandler) Unauthorized(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusUnauthorized, appErrCode, message, details...)
}

func (h *responseHandler) Forbidden(appErrCode errors.ErrorCode, message string, details ...any) *echo.HTTPError {
	return NewErrorResponse(http.StatusForbidden, appErrCode, message, details...)
}

func (h *responseHandler) SuccessResponse(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

func (h *responseHandler) CreatedResponse(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// StatusFor maps an application error code to its HTTP status.
func StatusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrInvalidInput, errors.ErrInvalidRequestData, errors.ErrMissingField:
		return http.StatusBadRequest
	case errors.ErrUnauthorized, errors.ErrTokenExpired, errors.ErrInvalidTokenFormat, errors.ErrMissingAuthorizationHeader:
		return http.StatusUnauthorized
	case errors.ErrForbidden:
		return http.StatusForbidden
	case errors.ErrNotFound:
		return http.StatusNotFound
	case errors.ErrAlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *responseHandler) ErrorResponse(c echo.Context, err error) error {
	httpStatus := http.StatusInternalServerError
	appCode := errors.ErrInternalServer
	msg := "Internal server error"

	var ae *errors.AppError
	if errors.As(err, &ae) && ae != nil {
		appCode = ae.Code
		httpStatus = StatusFor(appCode)
		if ae.Message != "" {
			msg = ae.Message
		}
	}

	if httpStatus >= http.StatusInternalServerError {
		logger.Error("BaseController:ErrorResponse",
			"status", httpStatus,
			"code", appCode,
			"message", msg,
			"request_id", c.Get(constants.ContextRequestID),
			err,
		)
	}
	return c.JSON(httpStatus, &ErrorResponse{Error: msg})
}

// Bind decodes the request body and runs the registered validator.
func Bind(c echo.Context, req any) *echo.HTTPError {
	if err := c.Bind(req); err != nil {
		return NewErrorResponse(http.StatusBadRequest, errors.ErrInvalidRequestData, "Invalid request body", err)
	}
	if err := c.Validate(req); err != nil {
		return NewErrorResponse(http.StatusBadRequest, errors.ErrInvalidInput, err.Error())
	}
	return nil
}

// HTTPErrorHandler renders every unhandled error as {"error": message}.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	msg := "Internal server error"

	var he *echo.HTTPError
	var ae *errors.AppError
	switch {
	case errors.As(err, &he):
		status = he.Code
		switch m := he.Message.(type) {
		case *ErrorResponse:
			msg = m.Error
		case string:
			msg = m
		default:
			msg = http.StatusText(status)
		}
	case errors.As(err, &ae):
		status = StatusFor(ae.Code)
		msg = ae.Message
	default:
		logger.Error("HTTPErrorHandler:Unhandled", "path", c.Request().URL.Path, err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, &ErrorResponse{Error: msg})
}
