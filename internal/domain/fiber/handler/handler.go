package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/nocv-se/nocv-backend/internal/apperr"
	"github.com/nocv-se/nocv-backend/internal/response"
	"github.com/nocv-se/nocv-backend/internal/util"
	"github.com/sirupsen/logrus"
)

var validate = validator.New()

// fail maps an error from the taxonomy to the standard error envelope.
// Unclassified errors are logged and answered as a generic 500.
func fail(c *fiber.Ctx, err error) error {
	status := apperr.HTTPStatus(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		logrus.WithError(err).WithField("path", c.Path()).Error("unhandled error")
		message = "ett internt fel inträffade"
	}
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    status,
		Message: message,
	}, err)
}

// buildPagination fills the list envelope. An empty page reports from/to as
// 0/0 rather than a negative range.
func buildPagination(page, pageSize int, total int64, count int) *response.Pagination {
	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)
	from := (page-1)*pageSize + 1
	to := from + count - 1
	if count == 0 {
		from = 0
		to = 0
	}
	return &response.Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: total,
		HasMore:    int64(page) < totalPages,
		From:       from,
		To:         to,
	}
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return apperr.Validation("ogiltig begäran")
	}
	if err := validate.Struct(out); err != nil {
		return apperr.Validation("ogiltig begäran: %v", err)
	}
	return nil
}
