package http

import (
	"net/http"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/service"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

type AppsHandler struct {
	CatalogService *service.CatalogService
}

// HandleList godoc
//
//	@Summary	List apps
//	@Tags		Apps
//	@Produce	json
//	@Success	200	{object}	consoleapi.Envelope{data=[]consoleapi.App}
//	@Security	BearerAuth
//	@Router		/apps [get].
func (h *AppsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	apps, err := h.CatalogService.ListApps(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", mapSlice(apps, toApp))
}

func (h *AppsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	app, err := h.CatalogService.GetApp(r.Context(), r.PathValue("app_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "", toApp(app))
}

// HandleCreate godoc
//
//	@Summary		Create an app
//	@Description	Generates the access key of the app. The key is echoed in the message and returned as data.
//	@Tags			Apps
//	@Accept			json
//	@Produce		json
//	@Param			request	body		consoleapi.CreateAppRequest	true	"New app"
//	@Success		200		{object}	consoleapi.Envelope{data=string}
//	@Security		BearerAuth
//	@Router			/apps [post].
func (h *AppsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req consoleapi.CreateAppRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	app, err := h.CatalogService.CreateApp(r.Context(), req.AppID, req.Name, actor(r, req.Username))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "app created, access_key: "+app.AccessKey, app.AccessKey)
}

func (h *AppsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req consoleapi.UpdateAppRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.CatalogService.UpdateApp(r.Context(), r.PathValue("app_id"), req.Name, actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "app updated", nil)
}

func (h *AppsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	var req usernameBody
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := h.CatalogService.DeleteApp(r.Context(), r.PathValue("app_id"), actor(r, req.Username)); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, "app deleted", nil)
}

type usernameBody struct {
	Username string `json:"username"`
}
