package types

// Issuance module event types
const (
	EventTypeMinted            = "minted"
	EventTypeSetMinted         = "set_minted"
	EventTypeFundsWithdrawn    = "funds_withdrawn"
	EventTypeCounterOverridden = "counter_overridden"
)

// Issuance module event attribute keys
const (
	AttributeKeyID             = "id"
	AttributeKeyIDs            = "ids"
	AttributeKeyRecipient      = "recipient"
	AttributeKeyAmount         = "amount"
	AttributeKeyPreviousNextID = "previous_next_id"
	AttributeKeyNextID         = "next_id"
)
