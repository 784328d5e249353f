package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memedex/memedex/apitypes"
	"github.com/memedex/memedex/internal/bulk"
	"github.com/memedex/memedex/internal/config"
)

func (s *Server) bulkGenerateHandler(c echo.Context) error {
	var req apitypes.BulkGenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Model != "" && !config.ValidModel(req.Model) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown model")
	}

	filter := bulk.Filter{
		DirectoryID:      req.DirectoryID,
		TagID:            req.TagID,
		NeedsDescription: req.NeedsDescription,
	}

	result, err := s.bulk.Start(c.Request().Context(), clientKey(c), filter, req.Model)
	if err != nil {
		switch {
		case errors.Is(err, bulk.ErrOperationActive):
			return echo.NewHTTPError(http.StatusConflict, "bulk operation already in progress")
		case errors.Is(err, bulk.ErrInvalidFilter):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return err
		}
	}

	return c.JSON(http.StatusAccepted, apitypes.BulkGenerateResponse{
		OperationID: result.OperationID,
		Total:       result.Total,
		Queued:      result.Queued,
		Failed:      result.Failed,
	})
}

func (s *Server) bulkStatusHandler(c echo.Context) error {
	poll, err := s.bulk.Poll(c.Request().Context(), clientKey(c))
	if err != nil {
		if errors.Is(err, bulk.ErrNoOperation) {
			return c.JSON(http.StatusOK, apitypes.BulkStatusResponse{Active: false})
		}
		return err
	}

	startedAt := poll.StartedAt
	return c.JSON(http.StatusOK, apitypes.BulkStatusResponse{
		Active:       true,
		StatusCounts: poll.Counts,
		Total:        poll.Total,
		IsComplete:   poll.IsComplete,
		StartedAt:    &startedAt,
	})
}

func (s *Server) bulkCancelHandler(c echo.Context) error {
	result, err := s.bulk.Cancel(c.Request().Context(), clientKey(c))
	if err != nil {
		if errors.Is(err, bulk.ErrNoOperation) {
			return echo.NewHTTPError(http.StatusNotFound, "no bulk operation in progress")
		}
		return err
	}

	return c.JSON(http.StatusOK, apitypes.BulkCancelResponse{
		Cancelled: result.Cancelled,
		Total:     result.Total,
	})
}
