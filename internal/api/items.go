package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/memedex/memedex/apitypes"
	"github.com/memedex/memedex/internal/config"
	"github.com/memedex/memedex/internal/dispatch"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/catalogitem"
	"github.com/memedex/memedex/internal/ent/generated/tag"
	"github.com/memedex/memedex/internal/status"
)

func toItem(item *generated.CatalogItem) apitypes.Item {
	response := apitypes.Item{
		ID:          item.ID,
		DirectoryID: item.DirectoryID,
		Filename:    item.Filename,
		Description: item.Description,
		Status:      string(item.Status),
	}
	for _, t := range item.Edges.Tags {
		response.Tags = append(response.Tags, apitypes.Tag{ID: t.ID, Name: t.Name})
	}
	return response
}

func (s *Server) listItemsHandler(c echo.Context) error {
	query := s.db.CatalogItem.Query().WithTags()

	if raw := c.QueryParam("directory_id"); raw != "" {
		id, err := parseIntParam(raw, "directory_id")
		if err != nil {
			return err
		}
		query = query.Where(catalogitem.DirectoryID(id))
	}

	if raw := c.QueryParam("tag_id"); raw != "" {
		id, err := parseIntParam(raw, "tag_id")
		if err != nil {
			return err
		}
		query = query.Where(catalogitem.HasTagsWith(tag.ID(id)))
	}

	if raw := c.QueryParam("status"); raw != "" {
		if !status.State(raw).Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
		}
		query = query.Where(catalogitem.StatusEQ(catalogitem.Status(raw)))
	}

	items, err := query.
		Order(generated.Asc(catalogitem.FieldID)).
		All(c.Request().Context())
	if err != nil {
		return err
	}

	response := make([]apitypes.Item, 0, len(items))
	for _, item := range items {
		response = append(response, toItem(item))
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) getItemHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	item, err := s.db.CatalogItem.Query().
		Where(catalogitem.ID(id)).
		WithTags().
		Only(c.Request().Context())
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, toItem(item))
}

func (s *Server) generateHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req apitypes.GenerateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Model != "" && !config.ValidModel(req.Model) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown model")
	}

	ctx := c.Request().Context()
	item, err := s.db.CatalogItem.Get(ctx, id)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		return err
	}

	if err := s.dispatcher.Generate(ctx, item, req.Model); err != nil {
		switch {
		case errors.Is(err, dispatch.ErrAlreadyQueued):
			return echo.NewHTTPError(http.StatusConflict, "caption generation already in progress")
		case errors.Is(err, dispatch.ErrGenerationUnavailable):
			return echo.NewHTTPError(http.StatusServiceUnavailable, "caption generation unavailable")
		default:
			return err
		}
	}

	item, err = s.db.CatalogItem.Get(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusAccepted, toItem(item))
}

func (s *Server) cancelHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	item, err := s.db.CatalogItem.Get(ctx, id)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		return err
	}

	if err := s.dispatcher.Cancel(ctx, item); err != nil {
		switch {
		case errors.Is(err, dispatch.ErrNotCancellable):
			return echo.NewHTTPError(http.StatusConflict, "item is not queued")
		case errors.Is(err, dispatch.ErrGenerationUnavailable):
			return echo.NewHTTPError(http.StatusServiceUnavailable, "worker unavailable, item left at removing")
		default:
			return err
		}
	}

	item, err = s.db.CatalogItem.Get(ctx, id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toItem(item))
}

func (s *Server) attachTagHandler(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tagID, err := pathID(c, "tagID")
	if err != nil {
		return err
	}

	err = s.db.CatalogItem.UpdateOneID(itemID).
		AddTagIDs(tagID).
		Exec(c.Request().Context())
	if err != nil {
		if generated.IsNotFound(err) || generated.IsConstraintError(err) {
			return echo.NewHTTPError(http.StatusNotFound, "item or tag not found")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) detachTagHandler(c echo.Context) error {
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tagID, err := pathID(c, "tagID")
	if err != nil {
		return err
	}

	err = s.db.CatalogItem.UpdateOneID(itemID).
		RemoveTagIDs(tagID).
		Exec(c.Request().Context())
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "item not found")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func parseIntParam(raw, name string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
