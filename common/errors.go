package common

// Exception messages shared by the contracts. Off-chain code and tests
// match faults against them.
const (
	// ErrNotOwner appears when an owner-gated method is called by anyone
	// else.
	ErrNotOwner = "Ownable: caller is not the owner"
	// ErrNotAllowed appears when mint or burn is called by a contract that
	// is not a registered pool.
	ErrNotAllowed = "Not allowed"
	// ErrOwnerWitnessFailed appears when the method must be called by an
	// owner of some assets but was not.
	ErrOwnerWitnessFailed = "owner witness check failed"
	// ErrBurnExceedsBalance appears when more tokens are burnt than the
	// holder has.
	ErrBurnExceedsBalance = "burn amount exceeds balance"
	// ErrZeroDeposit appears on deposits of non-positive amount.
	ErrZeroDeposit = "zero deposit"
	// ErrOracleUnavailable prefixes all failures to obtain a price.
	ErrOracleUnavailable = "oracle unavailable"
	// ErrReentrantCall appears when a guarded method is entered while
	// another guarded invocation of the same contract is in progress.
	ErrReentrantCall = "reentrant call"
	// ErrInvalidAddress appears when a script hash argument is not
	// 20 bytes long.
	ErrInvalidAddress = "invalid address"
)
