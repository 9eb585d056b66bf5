package http

import (
	"net/http"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

// NameListsHandler serves name lists. Reads answer bare JSON, writes an
// envelope.
type NameListsHandler struct {
	NameListService *service.NameListService
}

// HandleList godoc
//
//	@Summary	List name lists
//	@Tags		NameLists
//	@Produce	json
//	@Success	200	{array}	consoleapi.NameList
//	@Security	BearerAuth
//	@Router		/name-lists [get].
func (h *NameListsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	lists, err := h.NameListService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeBare(w, mapSlice(lists, toNameList))
}

// HandleGet godoc
//
//	@Summary		Get a name list
//	@Description	lid is the numeric id, the list no or the list name.
//	@Tags			NameLists
//	@Produce		json
//	@Param			lid	path		string	true	"List id, no or name"
//	@Success		200	{object}	consoleapi.NameList
//	@Failure		404	{object}	consoleapi.Envelope
//	@Security		BearerAuth
//	@Router			/name-lists/{lid} [get].
func (h *NameListsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	n, err := h.NameListService.Get(r.Context(), r.PathValue("lid"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeBare(w, toNameList(n))
}

// HandleCreate godoc
//
//	@Summary	Create a name list
//	@Tags		NameLists
//	@Accept		json
//	@Produce	json
//	@Param		request	body		consoleapi.NameListPayload	true	"Name list"
//	@Success	200		{object}	consoleapi.Envelope{data=consoleapi.NameList}
//	@Security	BearerAuth
//	@Router		/name-lists [post].
func (h *NameListsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var p consoleapi.NameListPayload
	if err := decode(r, &p); err != nil {
		writeError(w, r, err)
		return
	}
	n, err := h.NameListService.Create(r.Context(), nameListInput(p), actor(r, p.Username))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "name list created", toNameList(n))
}

func (h *NameListsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var p consoleapi.NameListPayload
	if err := decode(r, &p); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.NameListService.Update(r.Context(), r.PathValue("lid"), nameListInput(p), actor(r, p.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "name list updated", nil)
}

func (h *NameListsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req usernameBody
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.NameListService.Delete(r.Context(), r.PathValue("lid"), actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "name list deleted", nil)
}

func (h *NameListsHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status   int    `json:"status"`
		Username string `json:"username"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.NameListService.SetStatus(r.Context(), r.PathValue("lid"), req.Status, actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "status updated", nil)
}

func nameListInput(p consoleapi.NameListPayload) service.NameListInput {
	return service.NameListInput{
		Name:          p.Name,
		Type:          p.Type,
		MatchRule:     p.MatchRule,
		MatchType:     p.MatchType,
		Suggest:       p.Suggest,
		RiskType:      p.RiskType,
		Status:        p.Status,
		Scope:         string(p.Scope),
		LanguageScope: string(p.LanguageScope),
		LanguageCodes: p.LanguageCodes,
		AppIDs:        p.AppIDs,
		ChannelIDs:    p.ChannelIDs,
	}
}
