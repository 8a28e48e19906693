package constant

// Store (core) error codes.
const (
	ErrCodeMissingArg       = "STO001"
	ErrCodeBadInput         = "STO002"
	ErrCodeNamespaceMissing = "STO003"
	ErrCodeKeyNotFound      = "STO004"
	ErrCodeInternal         = "STO005"
)

// Snapshot persistence error codes.
const (
	ErrCodeSnapshotOpen    = "SNP001"
	ErrCodeSnapshotWrite   = "SNP002"
	ErrCodeSnapshotRename  = "SNP003"
	ErrCodeSnapshotRead    = "SNP004"
	ErrCodeSnapshotCorrupt = "SNP005"
	ErrCodeSnapshotMkdir   = "SNP006"
)

// API error codes.
const (
	ErrCodeAPIBadRequest   = "API001"
	ErrCodeAPIServiceError = "API002"
)

// Application bootstrap error codes.
const (
	ErrCodeAppServerStart    = "APP001"
	ErrCodeAppServerShutdown = "APP002"
	ErrCodeAppConfig         = "APP003"
)

// Error types for categorization.
const (
	ErrTypeValidation = "validation"
	ErrTypeStorage    = "storage"
	ErrTypeRetrieval  = "retrieval"
	ErrTypeSnapshot   = "snapshot"
	ErrTypeAPI        = "api"
	ErrTypeApp        = "application"
)

// Sentinel error message text, compared by value the way the teacher's
// domain package compares err.Error() against constant.ErrShortCodeNotFound.
const (
	ErrMsgMissingRequiredArg = "missing required argument"
	ErrMsgBadInput           = "normalization failed: invalid input"
	ErrMsgNamespaceNotFound  = "namespace not found"
	ErrMsgKeyNotFound        = "key not found"
)
