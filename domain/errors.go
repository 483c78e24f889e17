package domain

import "errors"

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidAddress    = errors.New("Invalid address")
	ErrInvalidSignature  = errors.New("Invalid signature")

	// ErrGatewayUnavailable signals that the ledger gateway itself could not
	// be reached or answered malformed data. Distinct from an empty result.
	ErrGatewayUnavailable = errors.New("ledger gateway unavailable")
	// ErrNoSigner signals that no signing key is available for the caller.
	ErrNoSigner = errors.New("no signer for address")
	// ErrUserRejected signals the key exists but refused to sign, typically a
	// wrong passphrase on a locked keystore entry.
	ErrUserRejected = errors.New("signer rejected request")
	// ErrContractRejected signals the contract reverted the transaction. No
	// state change happened on chain.
	ErrContractRejected = errors.New("contract rejected transaction")
	// ErrMetadataUnresolvable marks a single item whose off-chain metadata
	// could not be fetched or parsed. Never fails a whole listing pass.
	ErrMetadataUnresolvable = errors.New("metadata unresolvable")
	// ErrTradeInFlight rejects a duplicate submission of an operation that is
	// still submitting or awaiting confirmation.
	ErrTradeInFlight = errors.New("trade already in flight")
	// ErrInvalidPrice rejects a price string that is not a non-negative
	// decimal representable in whole wei.
	ErrInvalidPrice = errors.New("invalid price")
)
