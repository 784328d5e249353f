package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/memedex/memedex/apitypes"
	"github.com/memedex/memedex/internal/ent/generated"
	"github.com/memedex/memedex/internal/ent/generated/tag"
)

func (s *Server) listTagsHandler(c echo.Context) error {
	tags, err := s.db.Tag.Query().
		Order(generated.Asc(tag.FieldName)).
		All(c.Request().Context())
	if err != nil {
		return err
	}

	response := make([]apitypes.Tag, 0, len(tags))
	for _, t := range tags {
		response = append(response, apitypes.Tag{ID: t.ID, Name: t.Name})
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) createTagHandler(c echo.Context) error {
	var req apitypes.CreateTagRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}

	created, err := s.db.Tag.Create().
		SetName(name).
		Save(c.Request().Context())
	if err != nil {
		if generated.IsConstraintError(err) {
			return echo.NewHTTPError(http.StatusConflict, "tag already exists")
		}
		return err
	}

	return c.JSON(http.StatusCreated, apitypes.Tag{ID: created.ID, Name: created.Name})
}

func (s *Server) deleteTagHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = s.db.Tag.DeleteOneID(id).Exec(c.Request().Context())
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "tag not found")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
