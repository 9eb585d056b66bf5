package http

import (
	"net/http"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
)

type RiskLogsHandler struct {
	RiskLogService *service.RiskLogService
}

// ServeHTTP godoc
//
//	@Summary	List risk logs
//	@Tags		RiskLogs
//	@Produce	json
//	@Param		app_id		query		string	false	"Only this app"
//	@Param		risk_type	query		int		false	"Only this risk type"
//	@Success	200			{object}	consoleapi.Envelope{data=[]riskLogJSON}
//	@Security	BearerAuth
//	@Router		/risk-logs [get].
func (h *RiskLogsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	logs, err := h.RiskLogService.List(r.Context(), q.Get("app_id"), q.Get("risk_type"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", mapSlice(logs, toRiskLog))
}
