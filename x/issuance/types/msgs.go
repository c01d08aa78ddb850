package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// SignatureLength is the size of an r || s || v secp256k1 signature.
const SignatureLength = 65

var (
	_ sdk.Msg = &MsgSignedMint{}
	_ sdk.Msg = &MsgMint{}
	_ sdk.Msg = &MsgMintBundle{}
	_ sdk.Msg = &MsgWithdraw{}
	_ sdk.Msg = &MsgOverrideCounter{}
)

// MsgSignedMint redeems a backend authorization; the sender is the recipient
type MsgSignedMint struct {
	Sender    string    `json:"sender"`
	Amount    uint64    `json:"amount"`
	Nonce     math.Uint `json:"nonce"`
	Signature []byte    `json:"signature"`
}

// ProtoMessage implements proto.Message
func (msg *MsgSignedMint) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgSignedMint) Reset() { *msg = MsgSignedMint{} }

// String implements proto.Message
func (msg *MsgSignedMint) String() string {
	return fmt.Sprintf("MsgSignedMint{Sender: %s, Amount: %d, Nonce: %s}", msg.Sender, msg.Amount, msg.Nonce)
}

// NewMsgSignedMint creates a new MsgSignedMint instance
func NewMsgSignedMint(sender string, amount uint64, nonce math.Uint, signature []byte) *MsgSignedMint {
	return &MsgSignedMint{
		Sender:    sender,
		Amount:    amount,
		Nonce:     nonce,
		Signature: signature,
	}
}

// GetSigners returns the recipient of the authorization
func (msg MsgSignedMint) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Sender)}
}

// ValidateBasic implements sdk.HasValidateBasic
func (msg MsgSignedMint) ValidateBasic() error {
	if err := validateAddress("sender", msg.Sender); err != nil {
		return err
	}

	if msg.Amount == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "amount must be positive")
	}

	if msg.Nonce.IsNil() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "nonce cannot be empty")
	}

	if len(msg.Signature) != SignatureLength {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "signature must be %d bytes, got %d", SignatureLength, len(msg.Signature))
	}

	return nil
}

// MsgMint buys Count units at the unit price
type MsgMint struct {
	Sender  string   `json:"sender"`
	Count   uint64   `json:"count"`
	Payment sdk.Coin `json:"payment"`
}

// ProtoMessage implements proto.Message
func (msg *MsgMint) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgMint) Reset() { *msg = MsgMint{} }

// String implements proto.Message
func (msg *MsgMint) String() string {
	return fmt.Sprintf("MsgMint{Sender: %s, Count: %d, Payment: %s}", msg.Sender, msg.Count, msg.Payment)
}

// NewMsgMint creates a new MsgMint instance
func NewMsgMint(sender string, count uint64, payment sdk.Coin) *MsgMint {
	return &MsgMint{
		Sender:  sender,
		Count:   count,
		Payment: payment,
	}
}

// GetSigners returns the buyer
func (msg MsgMint) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Sender)}
}

// ValidateBasic implements sdk.HasValidateBasic
func (msg MsgMint) ValidateBasic() error {
	if err := validateAddress("sender", msg.Sender); err != nil {
		return err
	}

	if msg.Count == 0 {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, "count must be positive")
	}

	return validatePayment(msg.Payment)
}

// MsgMintBundle buys one discounted bundle
type MsgMintBundle struct {
	Sender  string   `json:"sender"`
	Payment sdk.Coin `json:"payment"`
}

// ProtoMessage implements proto.Message
func (msg *MsgMintBundle) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgMintBundle) Reset() { *msg = MsgMintBundle{} }

// String implements proto.Message
func (msg *MsgMintBundle) String() string {
	return fmt.Sprintf("MsgMintBundle{Sender: %s, Payment: %s}", msg.Sender, msg.Payment)
}

// NewMsgMintBundle creates a new MsgMintBundle instance
func NewMsgMintBundle(sender string, payment sdk.Coin) *MsgMintBundle {
	return &MsgMintBundle{
		Sender:  sender,
		Payment: payment,
	}
}

// GetSigners returns the buyer
func (msg MsgMintBundle) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Sender)}
}

// ValidateBasic implements sdk.HasValidateBasic
func (msg MsgMintBundle) ValidateBasic() error {
	if err := validateAddress("sender", msg.Sender); err != nil {
		return err
	}

	return validatePayment(msg.Payment)
}

// MsgWithdraw moves all collected funds to the authority
type MsgWithdraw struct {
	Authority string `json:"authority"`
}

// ProtoMessage implements proto.Message
func (msg *MsgWithdraw) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgWithdraw) Reset() { *msg = MsgWithdraw{} }

// String implements proto.Message
func (msg *MsgWithdraw) String() string {
	return fmt.Sprintf("MsgWithdraw{Authority: %s}", msg.Authority)
}

// NewMsgWithdraw creates a new MsgWithdraw instance
func NewMsgWithdraw(authority string) *MsgWithdraw {
	return &MsgWithdraw{Authority: authority}
}

// GetSigners returns the withdrawing account
func (msg MsgWithdraw) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Authority)}
}

// ValidateBasic implements sdk.HasValidateBasic
func (msg MsgWithdraw) ValidateBasic() error {
	return validateAddress("authority", msg.Authority)
}

// MsgOverrideCounter is the operator escape hatch that repositions the supply
// counter as if LastID were the most recently issued unit. It bypasses every
// allocation invariant.
type MsgOverrideCounter struct {
	Authority string `json:"authority"`
	LastID    uint64 `json:"last_id"`
}

// ProtoMessage implements proto.Message
func (msg *MsgOverrideCounter) ProtoMessage() {}

// Reset implements proto.Message
func (msg *MsgOverrideCounter) Reset() { *msg = MsgOverrideCounter{} }

// String implements proto.Message
func (msg *MsgOverrideCounter) String() string {
	return fmt.Sprintf("MsgOverrideCounter{Authority: %s, LastID: %d}", msg.Authority, msg.LastID)
}

// NewMsgOverrideCounter creates a new MsgOverrideCounter instance
func NewMsgOverrideCounter(authority string, lastID uint64) *MsgOverrideCounter {
	return &MsgOverrideCounter{
		Authority: authority,
		LastID:    lastID,
	}
}

// GetSigners returns the overriding account
func (msg MsgOverrideCounter) GetSigners() []sdk.AccAddress {
	return []sdk.AccAddress{mustAccAddress(msg.Authority)}
}

// ValidateBasic implements sdk.HasValidateBasic
func (msg MsgOverrideCounter) ValidateBasic() error {
	if err := validateAddress("authority", msg.Authority); err != nil {
		return err
	}

	if msg.LastID > MaxLastID {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "last id must be at most %d", MaxLastID)
	}

	return nil
}

func validateAddress(field, addr string) error {
	if addr == "" {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "%s cannot be empty", field)
	}

	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid %s address: %s", field, err)
	}

	return nil
}

func validatePayment(payment sdk.Coin) error {
	if payment.Amount.IsNil() {
		return errorsmod.Wrap(sdkerrors.ErrInvalidCoins, "payment amount cannot be empty")
	}

	if err := payment.Validate(); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "payment: %s", err)
	}

	return nil
}

func mustAccAddress(addr string) sdk.AccAddress {
	acc, err := sdk.AccAddressFromBech32(addr)
	if err != nil {
		panic(err)
	}
	return acc
}
