package http

import (
	"net/http"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

type ChannelsHandler struct {
	CatalogService *service.CatalogService
}

// HandleList godoc
//
//	@Summary	List channels
//	@Tags		Channels
//	@Produce	json
//	@Success	200	{object}	consoleapi.Envelope{data=[]consoleapi.Channel}
//	@Security	BearerAuth
//	@Router		/channels [get].
func (h *ChannelsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	channels, err := h.CatalogService.ListChannels(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", mapSlice(channels, toChannel))
}

func (h *ChannelsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	ch, err := h.CatalogService.GetChannel(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", toChannel(ch))
}

func (h *ChannelsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req consoleapi.CreateChannelRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	ch, err := h.CatalogService.CreateChannel(r.Context(), req.Name, req.Memo, actor(r, req.Username))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "channel created", toChannel(ch))
}

func (h *ChannelsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req consoleapi.UpdateChannelRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.CatalogService.UpdateChannel(r.Context(), id, req.Name, req.Memo, actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "channel updated", nil)
}

// HandleDelete godoc
//
//	@Summary	Delete a channel
//	@Tags		Channels
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"Channel id"
//	@Param		request	body		usernameBody	false	"Acting operator"
//	@Success	200		{object}	consoleapi.Envelope
//	@Failure	404		{object}	consoleapi.Envelope
//	@Security	BearerAuth
//	@Router		/channels/{id} [delete].
func (h *ChannelsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req usernameBody
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.CatalogService.DeleteChannel(r.Context(), id, actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "channel deleted", nil)
}
