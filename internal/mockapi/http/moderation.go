package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/aussiebroadwan/riskconsole/pkg/httpx"
)

type ModerationHandler struct {
	ModerationService *service.ModerationService
}

// TextCheckResponse is the flat verdict of a text check. Code is 0 on
// success like an envelope, but the verdict fields sit beside it.
type TextCheckResponse struct {
	Code      int            `json:"code"`
	Message   string         `json:"message"`
	RequestID string         `json:"requestId"`
	RiskLevel string         `json:"riskLevel"`
	Detail    string         `json:"detail"`
	Score     int            `json:"score"`
	RiskType  int            `json:"riskType,omitempty"`
	Extra     TextCheckExtra `json:"extra"`
}

type TextCheckExtra struct {
	ResponseTime int64  `json:"response_time"`
	Language     string `json:"language"`
	ClientIP     string `json:"client_ip"`
}

// ServeHTTP godoc
//
//	@Summary		Check a text
//	@Description	Authorized by the access key of an app, not by a bearer token. Hits of sensitive lists are recorded as risk logs.
//	@Tags			Moderation
//	@Accept			json
//	@Produce		json
//	@Param			request	body		consoleapi.TextCheckRequest	true	"Submission"
//	@Success		200		{object}	TextCheckResponse
//	@Router			/moderation/text [post].
func (h *ModerationHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req consoleapi.TextCheckRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	v, err := h.ModerationService.CheckText(r.Context(), req.AccessKey, domain.Submission{
		AppID:     req.Data.AppID,
		Channel:   req.Data.Channel,
		Text:      req.Data.Text,
		Nickname:  req.Data.Nickname,
		IP:        req.Data.IP,
		AccountID: req.Data.AccountID,
		Language:  req.Data.Language,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeBare(w, TextCheckResponse{
		Code:      consoleapi.CodeOK,
		Message:   "success",
		RequestID: v.RequestID,
		RiskLevel: v.RiskLevel,
		Detail:    v.Detail,
		Score:     v.Score,
		RiskType:  v.RiskType,
		Extra: TextCheckExtra{
			ResponseTime: time.Since(start).Milliseconds(),
			Language:     req.Data.Language,
			ClientIP:     httpx.IPKeyExtractor(r),
		},
	})
}
