package kmi

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"kmi-checker/core/history"
	"kmi-checker/core/logger"
	"kmi-checker/core/symbols"
	"kmi-checker/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CheckRequest selects the inputs of a check by storage reference.
type CheckRequest struct {
	// Whitelist is an s3://bucket/key reference. Empty uses the configured default.
	Whitelist string `json:"whitelist"`
	// Symvers is an s3://bucket/key reference. Empty uses the configured default.
	Symvers string `json:"symvers"`
	// Archive uploads the report to storage.
	Archive bool `json:"archive"`
}

// Handler handles HTTP requests for KMI checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the kmi routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/kmi")
	group.Post("/check", h.HandleCheck)
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/:id", h.HandleGetRun)
}

// HandleCheck runs a KMI check.
// @Summary Run KMI Check
// @Description Compares a whitelist document with a Module.symvers table. Inputs are either storage references (JSON body) or uploaded files (multipart fields "whitelist" and "symvers"). A report with passed=false means at least one CRC mismatch.
// @Tags kmi
// @Accept json,mpfd
// @Produce json
// @Param request body CheckRequest false "Storage references"
// @Param whitelist formData file false "Whitelist document"
// @Param symvers formData file false "Module.symvers"
// @Param archive query boolean false "Archive the report to storage"
// @Success 200 {object} Report "Check Report"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Input Not Found"
// @Failure 422 {object} map[string]string "Malformed Input"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /kmi/check [post]
func (h *Handler) HandleCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	ctx := c.Context()

	var (
		report  *Report
		err     error
		archive = c.Query("archive") == "true"
	)

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		archive = archive || utils.ToBool(c.FormValue("archive"))

		uploads, sources, ferr := readUploads(c)
		if ferr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ferr.Error()})
		}
		report, err = h.service.CheckContent(ctx, sources, uploads[0], uploads[1])
	} else {
		var req CheckRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
			}
		}
		for _, ref := range []string{req.Whitelist, req.Symvers} {
			if ref != "" && !IsStorageRef(ref) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": fmt.Sprintf("only %sbucket/key references are accepted, got %q", StorageScheme, ref),
				})
			}
		}
		archive = archive || req.Archive
		report, err = h.service.Check(ctx, Sources{Whitelist: req.Whitelist, Symvers: req.Symvers})
	}

	if err != nil {
		l.Error("KMI check failed", zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}

	if archive {
		if _, err := h.service.Archive(ctx, report); err != nil {
			l.Error("Failed to archive report", zap.String("run_id", report.ID), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	l.Info("KMI check completed",
		zap.String("run_id", report.ID),
		zap.Bool("passed", report.Passed),
		zap.Int("missing", report.Summary.Missing),
		zap.Int("mismatches", report.Summary.Mismatches))

	return c.JSON(report)
}

// HandleListRuns lists recent check runs.
// @Summary List Check Runs
// @Description Lists recorded KMI check runs, newest first.
// @Tags kmi
// @Produce json
// @Param limit query int false "Maximum number of runs (default 50)"
// @Success 200 {array} history.CheckRun "Check Runs"
// @Failure 503 {object} map[string]string "History Not Configured"
// @Router /kmi/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	runs, err := h.service.Runs(c.Context(), utils.ToInt(c.Query("limit")))
	if err != nil {
		l.Error("Listing check runs failed", zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}

// HandleGetRun returns one check run with its findings.
// @Summary Get Check Run
// @Description Returns a recorded KMI check run and its missing and mismatched symbols.
// @Tags kmi
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} history.CheckRun "Check Run"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 503 {object} map[string]string "History Not Configured"
// @Router /kmi/runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, err := h.service.Run(c.Context(), c.Params("id"))
	if err != nil {
		l.Warn("Loading check run failed", zap.String("run_id", c.Params("id")), zap.Error(err))
		return c.Status(errorStatus(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(run)
}

// readUploads returns the whitelist and symvers uploads, in that order.
func readUploads(c *fiber.Ctx) ([2][]byte, Sources, error) {
	var out [2][]byte
	var sources Sources
	for i, field := range []string{"whitelist", "symvers"} {
		fh, err := c.FormFile(field)
		if err != nil {
			return out, sources, fmt.Errorf("missing upload %q", field)
		}
		data, err := readUpload(fh)
		if err != nil {
			return out, sources, fmt.Errorf("failed to read upload %q: %w", field, err)
		}
		out[i] = data
	}
	sources.Whitelist, sources.Symvers = uploadName(c, "whitelist"), uploadName(c, "symvers")
	return out, sources, nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func uploadName(c *fiber.Ctx, field string) string {
	if fh, err := c.FormFile(field); err == nil && fh.Filename != "" {
		return "upload:" + fh.Filename
	}
	return "upload:" + field
}

// errorStatus maps check errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case symbols.IsMalformed(err):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, symbols.ErrInputNotFound), errors.Is(err, history.ErrRunNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrHistoryDisabled):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
