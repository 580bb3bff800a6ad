package AdminHTTP

import (
	"context"
	"net/http"
	"strconv"

	httpSrv "gitlab.com/devpro_studio/Paranoia/pkg/server/http"
)

func (t *Controller) listFlags(c context.Context, ctx httpSrv.ICtx) {
	items := t.admin.ListFlags(c)

	out := make([]Flag, 0, len(items))
	for _, it := range items {
		used := false
		if t.stats != nil {
			used = t.stats.IsUsed(c, it.ID)
		}
		out = append(out, fromRecord(it, used))
	}
	respondJSON(ctx, http.StatusOK, out)
}

func (t *Controller) getFlag(c context.Context, ctx httpSrv.ICtx) {
	rec, err := t.admin.GetFlag(c, ctx.GetRouterValue("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	used := false
	if t.stats != nil {
		used = t.stats.IsUsed(c, rec.ID)
	}
	respondJSON(ctx, http.StatusOK, fromRecord(rec, used))
}

func (t *Controller) createFlag(c context.Context, ctx httpSrv.ICtx) {
	var req flagWriteReq
	if err := parseJSON(ctx, &req); err != nil {
		respondJSON(ctx, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	rec, err := t.admin.CreateOrUpdateFlag(c, req.toRecord())
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondJSON(ctx, http.StatusOK, fromRecord(rec, false))
}

func (t *Controller) updateFlag(c context.Context, ctx httpSrv.ICtx) {
	id := ctx.GetRouterValue("id")
	var req flagWriteReq
	if err := parseJSON(ctx, &req); err != nil {
		respondJSON(ctx, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	if req.ID != "" && req.ID != id {
		respondJSON(ctx, http.StatusBadRequest, map[string]string{"error": "id in body does not match path"})
		return
	}
	req.ID = id

	// PUT only updates: creation goes through POST
	if _, err := t.admin.GetFlag(c, id); err != nil {
		respondError(ctx, err)
		return
	}
	rec, err := t.admin.CreateOrUpdateFlag(c, req.toRecord())
	if err != nil {
		respondError(ctx, err)
		return
	}
	respondJSON(ctx, http.StatusOK, fromRecord(rec, false))
}

func (t *Controller) deleteFlag(c context.Context, ctx httpSrv.ICtx) {
	if err := t.admin.DeleteFlag(c, ctx.GetRouterValue("id")); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.GetResponse().SetStatus(http.StatusNoContent)
}

func (t *Controller) flagHistory(c context.Context, ctx httpSrv.ICtx) {
	id := ctx.GetRouterValue("id")
	limit := 0
	if l := ctx.GetRequest().GetQuery().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	items, err := t.admin.FlagHistory(c, id, limit)
	if err != nil {
		respondError(ctx, err)
		return
	}
	out := make([]HistoryItem, 0, len(items))
	for _, h := range items {
		out = append(out, fromHistory(h))
	}
	respondJSON(ctx, http.StatusOK, out)
}
