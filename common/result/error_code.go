package result

type ErrorCode int

const (
	CodeOK ErrorCode = 0

	CodeGenericError ErrorCode = 10000

	// CodeHashParseError indicates a malformed block hash representation.
	CodeHashParseError ErrorCode = 20001
	// CodeCheckpointConflict indicates a height already holds a different hash.
	CodeCheckpointConflict ErrorCode = 20002
	// CodeCheckpointFileError indicates the checkpoint override file is unreadable or malformed.
	CodeCheckpointFileError ErrorCode = 20003
	// CodeEmptyStore indicates a max-height query on a store with no checkpoints.
	CodeEmptyStore ErrorCode = 20004
)
