package constant

// Request context keys
const (
	RequestIDKey = "request_id"
)

// HTTP header names
const (
	HeaderRequestID = "X-Request-ID"
)

// Function/context names used as the ContextFunction log field.
const (
	CtxNormalize  = "Normalize"
	CtxStore      = "Store"
	CtxPut        = "Put"
	CtxDelete     = "Delete"
	CtxNuke       = "Nuke"
	CtxDecrement  = "Decrement"
	CtxSearch     = "Search"
	CtxRegistry   = "Registry"
	CtxSnapshot   = "Snapshot"
	CtxLoad       = "Load"
	CtxScheduler  = "Scheduler"
	CtxAPI        = "api"
	CtxRouter     = "Router"
	CtxMain       = "Main"
)

// Data field keys used as structured log fields.
const (
	DataNamespace   = "namespace"
	DataKey         = "key"
	DataID          = "id"
	DataLocale      = "locale"
	DataCount       = "count"
	DataWhen        = "when"
	DataLimit       = "limit"
	DataTSFloor     = "ts_floor"
	DataPath        = "path"
	DataElapsed     = "elapsed"
	DataDirty       = "dirty"
	DataEvicted     = "evicted"
	DataMethod      = "method"
	DataStatus      = "status"
	DataLatency     = "latency"
	DataSize        = "size"
	DataRemoteAddr  = "remote_addr"
	DataUserAgent   = "user_agent"
	DataPort        = "port"
	DataAddr        = "addr"
	DataDataDir     = "data_dir"
	DataEnvironment = "environment"
	DataInterval    = "interval"
	DataMaxElems    = "max_elems"
)

// API routes
const (
	RoutePut        = "/put"
	RouteDel        = "/del"
	RouteNuke       = "/nuke"
	RouteIncr       = "/incr"
	RouteDecr       = "/decr"
	RouteSearch     = "/search"
	RouteHealthcheck = "/health"
	RouteMetrics    = "/metrics"
)

// Log keys
const (
	LogTimeKey         = "time"
	LogLevelKey        = "level"
	LogNameKey         = "logger"
	LogCallerKey       = "caller"
	LogMessageKey      = "msg"
	LogStacktraceKey   = "stacktrace"
	LogRequestIDKey    = "request_id"
	LogFunctionKey     = "function"
	LogErrorCodeKey    = "error_code"
	LogErrorTypeKey    = "error_type"
	LogErrorMessageKey = "error_message"
	LogEncodingJSON    = "json"
	LogEncodingConsole = "console"
	LogOutputStdout    = "stdout"
	LogOutputStderr    = "stderr"
)

// Message constants
const (
	MsgApplicationStarting  = "Application starting"
	MsgServerStarting       = "Server starting"
	MsgServerFailedToStart  = "Server failed to start"
	MsgServerShuttingDown   = "Server shutting down"
	MsgServerShutdownError  = "Error during server shutdown"
	MsgServerStopped        = "Server stopped"
	MsgRequestReceived      = "Request received"
	MsgRequestCompleted     = "Request completed"
	MsgSettingUpRoutes      = "Setting up API routes"
	MsgHealthcheckRequest   = "Handling healthcheck request"
	MsgHealthy              = "Healthy"
	MsgSchedulerStarting    = "Snapshot scheduler starting"
	MsgSchedulerSweepStart  = "Snapshot sweep starting"
	MsgSchedulerSweepDone   = "Snapshot sweep finished"
	MsgDirsPrecreated       = "Snapshot fan-out directories pre-created"
)

// HTTP response body text (mirrors the original C source's reply strings).
const (
	RespOK                  = "OK"
	RespErrMissingRequired  = "MISSING_REQ_ARG"
	RespErrInternal         = "ERR"
	RespErrKeyNotFound      = "KEY_NOT_FOUND"
	RespErrNamespaceMissing = "NAMESPACE_NOT_FOUND"
)

// Environment variable names read as flag defaults/fallbacks.
const (
	EnvAddr            = "AC_ADDR"
	EnvPort            = "AC_PORT"
	EnvDataDir         = "AC_DATA_DIR"
	EnvLocale          = "AC_LOCALE"
	EnvSnapshotInterval = "AC_SNAPSHOT_INTERVAL"
	EnvMaxElems        = "AC_MAX_ELEMS"
	EnvSearchLimit     = "AC_SEARCH_LIMIT"
	EnvLogLevel        = "AC_LOG_LEVEL"
)
