package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/memedex/memedex/apitypes"
	"github.com/memedex/memedex/internal/catalog"
	"github.com/memedex/memedex/internal/ent/generated"
)

func toDirectory(dir *generated.WatchedDirectory) apitypes.Directory {
	return apitypes.Directory{
		ID:                   dir.ID,
		Name:                 dir.Name,
		ScanFrequencyMinutes: dir.ScanFrequencyMinutes,
		LastScannedAt:        dir.LastScannedAt,
		ScanStatus:           string(dir.ScanStatus),
		LastScanError:        dir.LastScanError,
		CurrentlyScanning:    dir.CurrentlyScanning,
		LastScanDurationMs:   dir.LastScanDurationMs,
	}
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func (s *Server) listDirectoriesHandler(c echo.Context) error {
	ctx := c.Request().Context()

	dirs, err := s.db.WatchedDirectory.Query().All(ctx)
	if err != nil {
		return err
	}

	response := make([]apitypes.Directory, 0, len(dirs))
	for _, dir := range dirs {
		entry := toDirectory(dir)
		entry.ItemCount, err = dir.QueryItems().Count(ctx)
		if err != nil {
			return err
		}
		response = append(response, entry)
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) createDirectoryHandler(c echo.Context) error {
	var req apitypes.CreateDirectoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	// The name doubles as a path component under the library root.
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return echo.NewHTTPError(http.StatusBadRequest, "name must be a plain directory name")
	}
	if req.ScanFrequencyMinutes != nil && *req.ScanFrequencyMinutes < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "scan_frequency_minutes must be at least 1")
	}

	dir, err := s.db.WatchedDirectory.Create().
		SetName(name).
		SetNillableScanFrequencyMinutes(req.ScanFrequencyMinutes).
		Save(c.Request().Context())
	if err != nil {
		if generated.IsConstraintError(err) {
			return echo.NewHTTPError(http.StatusConflict, "directory already exists")
		}
		return err
	}

	return c.JSON(http.StatusCreated, toDirectory(dir))
}

func (s *Server) getDirectoryHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	dir, err := s.db.WatchedDirectory.Get(c.Request().Context(), id)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "directory not found")
		}
		return err
	}

	response := toDirectory(dir)
	response.ItemCount, err = dir.QueryItems().Count(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, response)
}

func (s *Server) updateDirectoryHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req apitypes.UpdateDirectoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ScanFrequencyMinutes != nil && *req.ScanFrequencyMinutes < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "scan_frequency_minutes must be at least 1")
	}

	update := s.db.WatchedDirectory.UpdateOneID(id)
	if req.ScanFrequencyMinutes != nil {
		update.SetScanFrequencyMinutes(*req.ScanFrequencyMinutes)
	} else {
		update.ClearScanFrequencyMinutes()
	}

	dir, err := update.Save(c.Request().Context())
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "directory not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, toDirectory(dir))
}

func (s *Server) deleteDirectoryHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	err = s.db.WatchedDirectory.DeleteOneID(id).Exec(c.Request().Context())
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "directory not found")
		}
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (s *Server) scanDirectoryHandler(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	dir, err := s.db.WatchedDirectory.Get(ctx, id)
	if err != nil {
		if generated.IsNotFound(err) {
			return echo.NewHTTPError(http.StatusNotFound, "directory not found")
		}
		return err
	}

	result, err := s.catalog.Scan(ctx, dir)
	if err != nil {
		if errors.Is(err, catalog.ErrScanInProgress) {
			return echo.NewHTTPError(http.StatusConflict, "scan already in progress")
		}
		return err
	}

	return c.JSON(http.StatusOK, apitypes.ScanResponse{
		Added:   result.Added,
		Removed: result.Removed,
	})
}
