package PublicHTTP

import (
	"encoding/json"
	"net/http"

	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/service/EvaluatorService"
	"gitlab.com/devpro_studio/FlagGate/src/service/StatsService"
	"gitlab.com/devpro_studio/Paranoia/paranoia/controller"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	httpSrv "gitlab.com/devpro_studio/Paranoia/pkg/server/http"
)

type Controller struct {
	controller.Mock
	evaluator    EvaluatorService.Interface
	statsService StatsService.Interface
}

func New(name string) *Controller {
	return &Controller{Mock: controller.Mock{NamePkg: name}}
}

func (t *Controller) Init(app interfaces.IEngine, _ map[string]interface{}) error {
	t.evaluator = app.GetModule(interfaces.ModuleService, names.EvaluatorService).(EvaluatorService.Interface)
	t.statsService = app.GetModule(interfaces.ModuleService, names.StatsService).(StatsService.Interface)

	http := app.GetPkg(interfaces.PkgServer, names.HttpPublicServer).(httpSrv.IHttp)
	http.PushRoute("POST", "/api/evaluate", t.evaluate, nil)
	http.PushRoute("POST", "/api/evaluate/all", t.evaluateAll, nil)
	http.PushRoute("POST", "/api/is-enabled", t.isEnabled, nil)
	http.PushRoute("POST", "/api/variant", t.getVariant, nil)
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

func badRequest(ctx httpSrv.ICtx, msg string) {
	respondJSON(ctx, http.StatusBadRequest, map[string]string{"error": msg})
}
