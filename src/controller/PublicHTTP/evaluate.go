package PublicHTTP

import (
	"context"
	"net/http"

	httpSrv "gitlab.com/devpro_studio/Paranoia/pkg/server/http"
)

func (t *Controller) parseEvaluate(ctx httpSrv.ICtx) (evaluateRequest, bool) {
	var req evaluateRequest
	if err := parseJSON(ctx, &req); err != nil {
		badRequest(ctx, "invalid body")
		return req, false
	}
	if req.FlagID == "" {
		badRequest(ctx, "flag_id required")
		return req, false
	}
	if req.Subject.ID == "" {
		badRequest(ctx, "subject.id required")
		return req, false
	}
	return req, true
}

func (t *Controller) evaluate(c context.Context, ctx httpSrv.ICtx) {
	req, ok := t.parseEvaluate(ctx)
	if !ok {
		return
	}

	res := t.evaluator.Evaluate(req.FlagID, req.Subject.toSubject())
	if res.Enabled {
		t.statsService.SetStat(c, res.FlagID)
	}
	respondJSON(ctx, http.StatusOK, fromAssignment(res))
}

func (t *Controller) isEnabled(c context.Context, ctx httpSrv.ICtx) {
	req, ok := t.parseEvaluate(ctx)
	if !ok {
		return
	}

	enabled := t.evaluator.IsEnabled(req.FlagID, req.Subject.toSubject())
	if enabled {
		t.statsService.SetStat(c, req.FlagID)
	}
	respondJSON(ctx, http.StatusOK, isEnabledResponse{FlagID: req.FlagID, Enabled: enabled})
}

func (t *Controller) getVariant(c context.Context, ctx httpSrv.ICtx) {
	req, ok := t.parseEvaluate(ctx)
	if !ok {
		return
	}

	v := t.evaluator.GetVariant(req.FlagID, req.Subject.toSubject())
	if v != nil {
		t.statsService.SetStat(c, req.FlagID)
	}
	respondJSON(ctx, http.StatusOK, variantResponse{FlagID: req.FlagID, Variant: variantPtr(v)})
}

func (t *Controller) evaluateAll(c context.Context, ctx httpSrv.ICtx) {
	var req evaluateAllRequest
	if err := parseJSON(ctx, &req); err != nil {
		badRequest(ctx, "invalid body")
		return
	}
	if req.Subject.ID == "" {
		badRequest(ctx, "subject.id required")
		return
	}

	items := t.evaluator.EvaluateAll(req.Subject.toSubject())
	resp := evaluateAllResponse{Results: make([]assignmentItem, 0, len(items))}
	for _, it := range items {
		if it.Enabled {
			t.statsService.SetStat(c, it.FlagID)
		}
		resp.Results = append(resp.Results, fromAssignment(it))
	}
	respondJSON(ctx, http.StatusOK, resp)
}
