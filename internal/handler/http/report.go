package http

import (
	"net/http"

	"github.com/absensi-dosen/absensi-backend-go/internal/domain/report"
	"github.com/absensi-dosen/absensi-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{
		reportService: reportService,
	}
}

// sessionKey identifies the login session a generated report belongs to.
func sessionKey(r *http.Request) string {
	return jwtauth.TokenFromHeader(r)
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{
		Month: r.URL.Query().Get("month"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	monthly, err := h.reportService.Generate(r.Context(), sessionKey(r), req.Period())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly)
}

// Download implements ReportHandler.
func (h *ReportHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	export, err := h.reportService.Download(r.Context(), sessionKey(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Attachment(w, export.FileName, export.ContentType, export.Data)
}
