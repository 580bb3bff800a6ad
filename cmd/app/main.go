package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gitlab.com/devpro_studio/FlagGate/names"
	"gitlab.com/devpro_studio/FlagGate/src/controller/AdminHTTP"
	"gitlab.com/devpro_studio/FlagGate/src/controller/FlagGateGRPC"
	"gitlab.com/devpro_studio/FlagGate/src/controller/PublicHTTP"
	"gitlab.com/devpro_studio/FlagGate/src/repository/FlagHistoryRepository"
	"gitlab.com/devpro_studio/FlagGate/src/repository/FlagRepository"
	"gitlab.com/devpro_studio/FlagGate/src/repository/StatsRepository"
	"gitlab.com/devpro_studio/FlagGate/src/repository/VersionRepository"
	"gitlab.com/devpro_studio/FlagGate/src/service/AdminService"
	"gitlab.com/devpro_studio/FlagGate/src/service/EvaluatorService"
	"gitlab.com/devpro_studio/FlagGate/src/service/FlagStore"
	"gitlab.com/devpro_studio/FlagGate/src/service/StatsService"
	"gitlab.com/devpro_studio/FlagGate/src/service/SyncService"
	"gitlab.com/devpro_studio/Paranoia/paranoia"
	"gitlab.com/devpro_studio/Paranoia/paranoia/interfaces"
	"gitlab.com/devpro_studio/Paranoia/pkg/cache/memory"
	"gitlab.com/devpro_studio/Paranoia/pkg/cache/redis"
	"gitlab.com/devpro_studio/Paranoia/pkg/database/postgres"
	"gitlab.com/devpro_studio/Paranoia/pkg/logger/sentry_log"
	"gitlab.com/devpro_studio/Paranoia/pkg/logger/std_log"
	"gitlab.com/devpro_studio/Paranoia/pkg/server/grpc"
	httpSrv "gitlab.com/devpro_studio/Paranoia/pkg/server/http"
)

func main() {
	s := paranoia.New("flag gate", "cfg.yaml")

	cfg := s.GetConfig()

	if len(cfg.GetConfigItem(interfaces.PkgLogger, "sentry")) > 0 {
		s.PushPkg(sentry_log.New("sentry"))
	}

	if len(cfg.GetConfigItem(interfaces.PkgLogger, "std")) > 0 {
		s.PushPkg(std_log.New("std"))
	}

	syncService := SyncService.New(names.SyncService)

	s.PushPkg(memory.New(names.CacheMemory)).
		PushPkg(redis.New(names.CacheRedis)).
		PushPkg(postgres.New(names.DatabasePrimary)).
		PushPkg(httpSrv.New(names.HttpServer)).
		PushPkg(httpSrv.New(names.HttpPublicServer)).
		PushPkg(grpc.New(names.GrpcServer)).
		PushModule(FlagHistoryRepository.New(names.FlagHistoryRepository)).
		PushModule(FlagRepository.New(names.FlagRepository)).
		PushModule(VersionRepository.New(names.VersionRepository)).
		PushModule(StatsRepository.New(names.StatsRepository)).
		PushModule(FlagStore.New(names.FlagStore)).
		PushModule(EvaluatorService.New(names.EvaluatorService)).
		PushModule(StatsService.New(names.StatsService)).
		PushModule(AdminService.New(names.AdminService)).
		PushModule(syncService).
		PushModule(AdminHTTP.New("admin_http_controller")).
		PushModule(PublicHTTP.New("public_http_controller")).
		PushModule(FlagGateGRPC.NewController("grpc_controller"))

	err := s.Init()
	if err != nil {
		panic(err)
	}
	defer s.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// an empty store fails closed; the sync loop keeps retrying
	if err := syncService.Reload(ctx); err != nil {
		s.GetLogger().Error(ctx, err)
	}
	go syncService.Run(ctx)

	s.GetLogger().Info(ctx, "start flag gate service")

	// Wait for syscall stop
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
}
