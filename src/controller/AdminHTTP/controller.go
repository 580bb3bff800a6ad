package AdminHTTP

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
	"gitlab.com/devpro_studio/FlagGate/src/service/AdminService"
	"gitlab.com/devpro_studio/FlagGate/src/service/StatsService"
	"gitlab.com/devpro_studio/Paranoia/paranoia/controller"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	httpSrv "gitlab.com/devpro_studio/Paranoia/pkg/server/http"
)

type Controller struct {
	controller.Mock
	admin AdminService.Interface
	stats StatsService.Interface
}

func New(name string) *Controller {
	return &Controller{Mock: controller.Mock{NamePkg: name}}
}

func (t *Controller) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	t.admin = app.GetModule(interfaces.ModuleService, names.AdminService).(AdminService.Interface)
	t.stats = app.GetModule(interfaces.ModuleService, names.StatsService).(StatsService.Interface)
	http := app.GetPkg(interfaces.PkgServer, names.HttpServer).(httpSrv.IHttp)

	http.PushRoute("GET", "/api/flags", t.listFlags, nil)
	http.PushRoute("POST", "/api/flags", t.createFlag, nil)
	http.PushRoute("GET", "/api/flags/{id}", t.getFlag, nil)
	http.PushRoute("PUT", "/api/flags/{id}", t.updateFlag, nil)
	http.PushRoute("DELETE", "/api/flags/{id}", t.deleteFlag, nil)
	http.PushRoute("GET", "/api/flags/{id}/history", t.flagHistory, nil)

	return nil
}

func respondJSON(ctx httpSrv.ICtx, status int, v any) {
	b, _ := json.Marshal(v)
	ctx.GetResponse().Header().Set("Content-Type", "application/json; charset=utf-8")
	ctx.GetResponse().SetStatus(status)
	ctx.GetResponse().SetBody(b)
}

func parseJSON[T any](ctx httpSrv.ICtx, out *T) error {
	defer ctx.GetRequest().GetBody().Close()
	dec := json.NewDecoder(ctx.GetRequest().GetBody())
	return dec.Decode(out)
}

// respondError maps service errors to HTTP status codes.
func respondError(ctx httpSrv.ICtx, err error) {
	var validation *dto.ValidationError
	var notFound *dto.NotFoundError

	switch {
	case errors.As(err, &validation):
		respondJSON(ctx, http.StatusBadRequest, map[string]string{"error": validation.Error(), "field": validation.Field})
	case errors.As(err, &notFound):
		respondJSON(ctx, http.StatusNotFound, map[string]string{"error": notFound.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		respondJSON(ctx, http.StatusGatewayTimeout, map[string]string{"error": err.Error()})
	default:
		respondJSON(ctx, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}
