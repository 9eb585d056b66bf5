package http

import (
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

// ListDetailsHandler serves the entries of name lists. Reads answer bare
// JSON, writes an envelope.
type ListDetailsHandler struct {
	ListDetailService *service.ListDetailService
}

func (h *ListDetailsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	d, err := h.ListDetailService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeBare(w, toListDetail(d))
}

// HandleSearch godoc
//
//	@Summary	Search list entries
//	@Tags		ListDetails
//	@Produce	json
//	@Param		text	query	string	true	"Substring to look for"
//	@Success	200		{array}	consoleapi.ListDetail
//	@Security	BearerAuth
//	@Router		/list-details/search [get].
func (h *ListDetailsHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	details, err := h.ListDetailService.Search(r.Context(), r.URL.Query().Get("text"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeBare(w, mapSlice(details, toListDetail))
}

func (h *ListDetailsHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req consoleapi.AddListDetailRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	d, err := h.ListDetailService.Add(r.Context(), req.ListNo, req.Text, req.Memo, actor(r, req.Username))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "entry added", toListDetail(d))
}

// HandleAddBatch godoc
//
//	@Summary		Add several list entries
//	@Description	Entries the list already has are skipped.
//	@Tags			ListDetails
//	@Accept			json
//	@Produce		json
//	@Param			request	body		consoleapi.AddListDetailsRequest	true	"Entries"
//	@Success		200		{object}	consoleapi.Envelope{data=int}
//	@Security		BearerAuth
//	@Router			/list-details/batch [post].
func (h *ListDetailsHandler) HandleAddBatch(w http.ResponseWriter, r *http.Request) {
	var req consoleapi.AddListDetailsRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	n, err := h.ListDetailService.AddBatch(r.Context(), req.ListNo, req.Data, actor(r, req.Username))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, strconv.Itoa(n)+" entries added", n)
}

func (h *ListDetailsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := pathInt(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req consoleapi.UpdateListDetailRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.ListDetailService.Update(r.Context(), id, req.Text, req.Memo, actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "entry updated", nil)
}

func (h *ListDetailsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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
	if err := h.ListDetailService.Delete(r.Context(), id, actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "entry deleted", nil)
}

func (h *ListDetailsHandler) HandleDeleteBatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		IDs      []int64 `json:"ids"`
		Username string  `json:"username"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.ListDetailService.DeleteBatch(r.Context(), req.IDs, actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, strconv.Itoa(len(req.IDs))+" entries deleted", nil)
}

func (h *ListDetailsHandler) HandleDeleteByText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ListName string `json:"list_name"`
		Text     string `json:"text"`
		Username string `json:"username"`
	}
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.ListDetailService.DeleteByText(r.Context(), req.ListName, req.Text, actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "entry deleted", nil)
}
