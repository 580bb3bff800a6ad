package AdminHTTP

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"gitlab.com/devpro_studio/FlagGate/src/model/db"
	"gitlab.com/devpro_studio/FlagGate/src/model/dto"
	AdminSvc "gitlab.com/devpro_studio/FlagGate/src/service/AdminService"
	httpSrv "gitlab.com/devpro_studio/Paranoia/pkg/server/http"
)

type fakeAdmin struct {
	flags   map[string]dto.FlagRecord
	history []*db.FlagHistory
	err     error
}

func newFakeAdmin(recs ...dto.FlagRecord) *fakeAdmin {
	f := &fakeAdmin{flags: make(map[string]dto.FlagRecord)}
	for _, r := range recs {
		f.flags[r.ID] = r
	}
	return f
}

func (f *fakeAdmin) CreateOrUpdateFlag(_ context.Context, rec dto.FlagRecord) (dto.FlagRecord, error) {
	if f.err != nil {
		return dto.FlagRecord{}, f.err
	}
	rec.Normalize()
	if err := rec.Validate(); err != nil {
		return dto.FlagRecord{}, err
	}
	rec.Version = f.flags[rec.ID].Version + 1
	f.flags[rec.ID] = rec
	return rec, nil
}
func (f *fakeAdmin) GetFlag(_ context.Context, id string) (dto.FlagRecord, error) {
	rec, ok := f.flags[id]
	if !ok {
		return dto.FlagRecord{}, &dto.NotFoundError{ID: id}
	}
	return rec, nil
}
func (f *fakeAdmin) ListFlags(context.Context) []dto.FlagRecord {
	out := make([]dto.FlagRecord, 0, len(f.flags))
	for _, r := range f.flags {
		out = append(out, r)
	}
	return out
}
func (f *fakeAdmin) DeleteFlag(_ context.Context, id string) error {
	if _, ok := f.flags[id]; !ok {
		return &dto.NotFoundError{ID: id}
	}
	delete(f.flags, id)
	return nil
}
func (f *fakeAdmin) FlagHistory(context.Context, string, int) ([]*db.FlagHistory, error) {
	return f.history, f.err
}

var _ AdminSvc.Interface = (*fakeAdmin)(nil)

type fakeStats struct{ used map[string]bool }

func (f *fakeStats) SetStat(context.Context, string)            {}
func (f *fakeStats) IsUsed(_ context.Context, id string) bool { return f.used[id] }

func newCtx(method, path, body string, params map[string]string) *httpSrv.HttpCtx {
	ctx := httpSrv.HttpCtxPool.Get().(*httpSrv.HttpCtx)
	ctx.Fill(httptest.NewRequest(method, path, bytes.NewBufferString(body)))
	ctx.SetRouteProps(params)
	return ctx
}

func TestListFlags(t *testing.T) {
	c := Controller{
		admin: newFakeAdmin(dto.FlagRecord{ID: "beta-x", Enabled: true, RolloutPercentage: 50, TargetAudience: dto.AudienceAll}),
		stats: &fakeStats{used: map[string]bool{"beta-x": true}},
	}
	ctx := newCtx("GET", "/api/flags", "", nil)
	c.listFlags(context.Background(), ctx)

	if ctx.GetResponse().GetStatus() != http.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.GetResponse().GetStatus())
	}
	var body []Flag
	if err := json.Unmarshal(ctx.GetResponse().GetBody(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 1 || body[0].ID != "beta-x" || !body[0].Used || body[0].RolloutPercentage != 50 {
		t.Fatalf("unexpected body: %#v", body)
	}
}

func TestCreateFlag(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		resCode int
	}{
		{name: "ok", body: `{"id":"beta-x","enabled":true,"rollout_percentage":50,"target_audience":"students"}`, resCode: http.StatusOK},
		{name: "bad json", body: `{`, resCode: http.StatusBadRequest},
		{name: "rollout out of range", body: `{"id":"beta-x","rollout_percentage":120}`, resCode: http.StatusBadRequest},
		{name: "empty id", body: `{"rollout_percentage":10}`, resCode: http.StatusBadRequest},
		{name: "padded id", body: `{"id":" beta-x ","rollout_percentage":10}`, resCode: http.StatusBadRequest},
		{name: "inverted window", body: `{"id":"w","start_date":"2025-02-01T00:00:00Z","end_date":"2025-01-01T00:00:00Z"}`, resCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin := newFakeAdmin()
			c := Controller{admin: admin}
			ctx := newCtx("POST", "/api/flags", tt.body, nil)
			c.createFlag(context.Background(), ctx)

			if ctx.GetResponse().GetStatus() != tt.resCode {
				t.Fatalf("expected code %d, got %d: %s", tt.resCode, ctx.GetResponse().GetStatus(), ctx.GetResponse().GetBody())
			}
			if tt.resCode == http.StatusOK {
				if _, ok := admin.flags["beta-x"]; !ok {
					t.Fatalf("flag not created")
				}
			} else if len(admin.flags) != 0 {
				t.Fatalf("rejected request changed state")
			}
		})
	}
}

func TestUpdateFlag(t *testing.T) {
	admin := newFakeAdmin(dto.FlagRecord{ID: "f", RolloutPercentage: 10})
	c := Controller{admin: admin}

	ctx := newCtx("PUT", "/api/flags/f", `{"enabled":true,"rollout_percentage":80}`, map[string]string{"id": "f"})
	c.updateFlag(context.Background(), ctx)
	if ctx.GetResponse().GetStatus() != http.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.GetResponse().GetStatus())
	}
	if admin.flags["f"].RolloutPercentage != 80 {
		t.Fatalf("flag not updated: %#v", admin.flags["f"])
	}

	ctx = newCtx("PUT", "/api/flags/missing", `{"rollout_percentage":80}`, map[string]string{"id": "missing"})
	c.updateFlag(context.Background(), ctx)
	if ctx.GetResponse().GetStatus() != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", ctx.GetResponse().GetStatus())
	}

	ctx = newCtx("PUT", "/api/flags/f", `{"id":"g"}`, map[string]string{"id": "f"})
	c.updateFlag(context.Background(), ctx)
	if ctx.GetResponse().GetStatus() != http.StatusBadRequest {
		t.Fatalf("expected 400 on id mismatch, got %d", ctx.GetResponse().GetStatus())
	}
}

func TestGetAndDeleteFlag(t *testing.T) {
	c := Controller{admin: newFakeAdmin(dto.FlagRecord{ID: "f"})}

	ctx := newCtx("GET", "/api/flags/f", "", map[string]string{"id": "f"})
	c.getFlag(context.Background(), ctx)
	if ctx.GetResponse().GetStatus() != http.StatusOK {
		t.Fatalf("expected 200, got %d", ctx.GetResponse().GetStatus())
	}

	ctx = newCtx("DELETE", "/api/flags/f", "", map[string]string{"id": "f"})
	c.deleteFlag(context.Background(), ctx)
	if ctx.GetResponse().GetStatus() != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", ctx.GetResponse().GetStatus())
	}
	if len(ctx.GetResponse().GetBody()) != 0 {
		t.Fatalf("expected empty body on 204, got %q", ctx.GetResponse().GetBody())
	}

	ctx = newCtx("GET", "/api/flags/f", "", map[string]string{"id": "f"})
	c.getFlag(context.Background(), ctx)
	if ctx.GetResponse().GetStatus() != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", ctx.GetResponse().GetStatus())
	}

	ctx = newCtx("DELETE", "/api/flags/f", "", map[string]string{"id": "f"})
	c.deleteFlag(context.Background(), ctx)
	if ctx.GetResponse().GetStatus() != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", ctx.GetResponse().GetStatus())
	}
}

func TestStorageErrorIs500(t *testing.T) {
	admin := newFakeAdmin()
	admin.err = errors.New("db down")
	c := Controller{admin: admin}

	ctx := newCtx("POST", "/api/flags", `{"id":"f"}`, nil)
	c.createFlag(context.Background(), ctx)
	if ctx.GetResponse().GetStatus() != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", ctx.GetResponse().GetStatus())
	}
}

func TestFlagHistory(t *testing.T) {
	admin := newFakeAdmin()
	admin.history = []*db.FlagHistory{{Id: uuid.New(), FlagId: "f", RolloutPercentage: 30, V: 2}}
	c := Controller{admin: admin}

	ctx := newCtx("GET", "/api/flags/f/history?limit=5", "", map[string]string{"id": "f"})
	c.flagHistory(context.Background(), ctx)

	var body []HistoryItem
	_ = json.Unmarshal(ctx.GetResponse().GetBody(), &body)
	if len(body) != 1 || body[0].Version != 2 || body[0].RolloutPercentage != 30 {
		t.Fatalf("unexpected body: %#v", body)
	}
}
