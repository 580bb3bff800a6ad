package names

const (
	CacheRedis            = "primary"
	CacheMemory           = "secondary"
	DatabasePrimary       = "primary"
	HttpServer            = "http"
	HttpPublicServer      = "http_public"
	GrpcServer            = "grpc"
	FlagRepository        = "flag"
	FlagHistoryRepository = "flag_history"
	VersionRepository     = "version"
	StatsRepository       = "stats"
	FlagStore             = "flag_store"
	EvaluatorService      = "evaluator"
	AdminService          = "admin"
	SyncService           = "sync"
	StatsService          = "stats"
)
