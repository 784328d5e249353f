package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memedex/memedex/apitypes"
	"github.com/memedex/memedex/internal/dispatch"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/status"
)

// statusCallbackHandler receives the worker's status reports. The reported
// integer code is mapped to a state and applied through the state machine;
// a report the table does not allow from the item's current state is
// rejected so the worker notices the disagreement.
func (s *Server) statusCallbackHandler(c echo.Context) error {
	var req apitypes.StatusCallback
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	to, err := status.FromCode(req.Data.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx := c.Request().Context()
	item, err := s.db.CatalogItem.Get(ctx, req.Data.ItemID)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		return err
	}

	updated, err := s.dispatcher.ApplyStatus(ctx, item, to)
	if err != nil {
		if errors.Is(err, dispatch.ErrInvalidTransition) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, toItem(updated))
}

// descriptionCallbackHandler receives finished captions. Delivery implies
// the job is done, so the item moves processing -> done and the caption is
// stored.
func (s *Server) descriptionCallbackHandler(c echo.Context) error {
	var req apitypes.DescriptionCallback
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()
	item, err := s.db.CatalogItem.Get(ctx, req.Data.ItemID)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		return err
	}

	updated, err := s.dispatcher.ApplyStatus(ctx, item, status.Done)
	if err != nil {
		if errors.Is(err, dispatch.ErrInvalidTransition) {
			return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
		}
		return err
	}

	updated, err = s.dispatcher.SetDescription(ctx, updated, req.Data.Description)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toItem(updated))
}
