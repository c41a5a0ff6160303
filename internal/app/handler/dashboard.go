package handler

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/atinyakov/catfeed/internal/app/service"
	"github.com/atinyakov/catfeed/internal/view"
)

type DashboardHandler struct {
	service service.RecordServiceIface
	logger  *zap.Logger
	loc     *time.Location
}

func NewDashboard(s service.RecordServiceIface, l *zap.Logger, loc *time.Location) *DashboardHandler {
	return &DashboardHandler{
		service: s,
		logger:  l,
		loc:     loc,
	}
}

// Index renders the dashboard from a fresh read of every collection.
func (h *DashboardHandler) Index(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	state := &view.State{
		Feedings: h.service.Feedings(ctx),
		Messages: h.service.Messages(ctx),
		Images:   h.service.Images(ctx),
	}

	var buf bytes.Buffer
	if err := view.WriteHTML(&buf, view.NewPage(state, h.loc)); err != nil {
		h.logger.Error("cannot render dashboard", zap.Error(err))
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(res); err != nil {
		h.logger.Debug("cannot write dashboard", zap.Error(err))
	}
}
