// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xdr

type OperationType int32

const (
	OperationTypeCreateAccount                 OperationType = 0
	OperationTypePayment                       OperationType = 1
	OperationTypePathPaymentStrictReceive      OperationType = 2
	OperationTypeManageSellOffer               OperationType = 3
	OperationTypeCreatePassiveSellOffer        OperationType = 4
	OperationTypeSetOptions                    OperationType = 5
	OperationTypeChangeTrust                   OperationType = 6
	OperationTypeAllowTrust                    OperationType = 7
	OperationTypeAccountMerge                  OperationType = 8
	OperationTypeInflation                     OperationType = 9
	OperationTypeManageData                    OperationType = 10
	OperationTypeBumpSequence                  OperationType = 11
	OperationTypeManageBuyOffer                OperationType = 12
	OperationTypePathPaymentStrictSend         OperationType = 13
	OperationTypeCreateClaimableBalance        OperationType = 14
	OperationTypeClaimClaimableBalance         OperationType = 15
	OperationTypeBeginSponsoringFutureReserves OperationType = 16
	OperationTypeEndSponsoringFutureReserves   OperationType = 17
	OperationTypeRevokeSponsorship             OperationType = 18
	OperationTypeClawback                      OperationType = 19
	OperationTypeClawbackClaimableBalance      OperationType = 20
	OperationTypeSetTrustLineFlags             OperationType = 21
	OperationTypeLiquidityPoolDeposit          OperationType = 22
	OperationTypeLiquidityPoolWithdraw         OperationType = 23
	OperationTypeInvokeHostFunction            OperationType = 24
	OperationTypeExtendFootprintTtl            OperationType = 25
	OperationTypeRestoreFootprint              OperationType = 26
)

var operationTypeNames = map[int32]string{
	0:  "CreateAccount",
	1:  "Payment",
	2:  "PathPaymentStrictReceive",
	3:  "ManageSellOffer",
	4:  "CreatePassiveSellOffer",
	5:  "SetOptions",
	6:  "ChangeTrust",
	7:  "AllowTrust",
	8:  "AccountMerge",
	9:  "Inflation",
	10: "ManageData",
	11: "BumpSequence",
	12: "ManageBuyOffer",
	13: "PathPaymentStrictSend",
	14: "CreateClaimableBalance",
	15: "ClaimClaimableBalance",
	16: "BeginSponsoringFutureReserves",
	17: "EndSponsoringFutureReserves",
	18: "RevokeSponsorship",
	19: "Clawback",
	20: "ClawbackClaimableBalance",
	21: "SetTrustLineFlags",
	22: "LiquidityPoolDeposit",
	23: "LiquidityPoolWithdraw",
	24: "InvokeHostFunction",
	25: "ExtendFootprintTtl",
	26: "RestoreFootprint",
}

func (t OperationType) String() string        { return enumString(operationTypeNames, int32(t)) }
func (t OperationType) EncodeTo(e *Encoder)    { e.Enum("OperationType", operationTypeNames, int32(t)) }
func (t *OperationType) DecodeFrom(d *Decoder) { *t = OperationType(d.Enum("OperationType", operationTypeNames)) }

// IsSoroban reports whether the operation must be the single operation of a
// transaction carrying SorobanTransactionData
func (t OperationType) IsSoroban() bool {
	switch t {
	case OperationTypeInvokeHostFunction, OperationTypeExtendFootprintTtl, OperationTypeRestoreFootprint:
		return true
	default:
		return false
	}
}

type CreateAccountOp struct {
	Destination     AccountID
	StartingBalance int64
}

func (o CreateAccountOp) EncodeTo(e *Encoder) {
	o.Destination.EncodeTo(e)
	e.Int64(o.StartingBalance)
}

func (o *CreateAccountOp) DecodeFrom(d *Decoder) {
	o.Destination.DecodeFrom(d)
	o.StartingBalance = d.Int64()
}

type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      int64
}

func (o PaymentOp) EncodeTo(e *Encoder) {
	o.Destination.EncodeTo(e)
	o.Asset.EncodeTo(e)
	e.Int64(o.Amount)
}

func (o *PaymentOp) DecodeFrom(d *Decoder) {
	o.Destination.DecodeFrom(d)
	o.Asset.DecodeFrom(d)
	o.Amount = d.Int64()
}

const maxPathLength = 5

type PathPaymentStrictReceiveOp struct {
	SendAsset   Asset
	SendMax     int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  int64
	Path        []Asset
}

func (o PathPaymentStrictReceiveOp) EncodeTo(e *Encoder) {
	o.SendAsset.EncodeTo(e)
	e.Int64(o.SendMax)
	o.Destination.EncodeTo(e)
	o.DestAsset.EncodeTo(e)
	e.Int64(o.DestAmount)
	encodeArray(e, "PathPaymentStrictReceiveOp.Path", o.Path, maxPathLength)
}

func (o *PathPaymentStrictReceiveOp) DecodeFrom(d *Decoder) {
	o.SendAsset.DecodeFrom(d)
	o.SendMax = d.Int64()
	o.Destination.DecodeFrom(d)
	o.DestAsset.DecodeFrom(d)
	o.DestAmount = d.Int64()
	o.Path = decodeArray[Asset](d, "PathPaymentStrictReceiveOp.Path", maxPathLength)
}

type PathPaymentStrictSendOp struct {
	SendAsset   Asset
	SendAmount  int64
	Destination MuxedAccount
	DestAsset   Asset
	DestMin     int64
	Path        []Asset
}

func (o PathPaymentStrictSendOp) EncodeTo(e *Encoder) {
	o.SendAsset.EncodeTo(e)
	e.Int64(o.SendAmount)
	o.Destination.EncodeTo(e)
	o.DestAsset.EncodeTo(e)
	e.Int64(o.DestMin)
	encodeArray(e, "PathPaymentStrictSendOp.Path", o.Path, maxPathLength)
}

func (o *PathPaymentStrictSendOp) DecodeFrom(d *Decoder) {
	o.SendAsset.DecodeFrom(d)
	o.SendAmount = d.Int64()
	o.Destination.DecodeFrom(d)
	o.DestAsset.DecodeFrom(d)
	o.DestMin = d.Int64()
	o.Path = decodeArray[Asset](d, "PathPaymentStrictSendOp.Path", maxPathLength)
}

type ManageSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
	OfferID int64
}

func (o ManageSellOfferOp) EncodeTo(e *Encoder) {
	o.Selling.EncodeTo(e)
	o.Buying.EncodeTo(e)
	e.Int64(o.Amount)
	o.Price.EncodeTo(e)
	e.Int64(o.OfferID)
}

func (o *ManageSellOfferOp) DecodeFrom(d *Decoder) {
	o.Selling.DecodeFrom(d)
	o.Buying.DecodeFrom(d)
	o.Amount = d.Int64()
	o.Price.DecodeFrom(d)
	o.OfferID = d.Int64()
}

type ManageBuyOfferOp struct {
	Selling   Asset
	Buying    Asset
	BuyAmount int64
	Price     Price
	OfferID   int64
}

func (o ManageBuyOfferOp) EncodeTo(e *Encoder) {
	o.Selling.EncodeTo(e)
	o.Buying.EncodeTo(e)
	e.Int64(o.BuyAmount)
	o.Price.EncodeTo(e)
	e.Int64(o.OfferID)
}

func (o *ManageBuyOfferOp) DecodeFrom(d *Decoder) {
	o.Selling.DecodeFrom(d)
	o.Buying.DecodeFrom(d)
	o.BuyAmount = d.Int64()
	o.Price.DecodeFrom(d)
	o.OfferID = d.Int64()
}

type CreatePassiveSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
}

func (o CreatePassiveSellOfferOp) EncodeTo(e *Encoder) {
	o.Selling.EncodeTo(e)
	o.Buying.EncodeTo(e)
	e.Int64(o.Amount)
	o.Price.EncodeTo(e)
}

func (o *CreatePassiveSellOfferOp) DecodeFrom(d *Decoder) {
	o.Selling.DecodeFrom(d)
	o.Buying.DecodeFrom(d)
	o.Amount = d.Int64()
	o.Price.DecodeFrom(d)
}

type SetOptionsOp struct {
	InflationDest *AccountID
	ClearFlags    *uint32
	SetFlags      *uint32
	MasterWeight  *uint32
	LowThreshold  *uint32
	MedThreshold  *uint32
	HighThreshold *uint32
	HomeDomain    *string
	Signer        *Signer
}

func encodeOptionalUint32(e *Encoder, v *uint32) {
	e.Present(v != nil)
	if v != nil {
		e.Uint32(*v)
	}
}

func decodeOptionalUint32(d *Decoder) *uint32 {
	if !d.Present() || d.err != nil {
		return nil
	}
	v := d.Uint32()
	return &v
}

func (o SetOptionsOp) EncodeTo(e *Encoder) {
	encodeOptional(e, o.InflationDest)
	for _, v := range []*uint32{o.ClearFlags, o.SetFlags, o.MasterWeight, o.LowThreshold, o.MedThreshold, o.HighThreshold} {
		encodeOptionalUint32(e, v)
	}
	e.Present(o.HomeDomain != nil)
	if o.HomeDomain != nil {
		e.String("SetOptionsOp.HomeDomain", *o.HomeDomain, 32)
	}
	encodeOptional(e, o.Signer)
}

func (o *SetOptionsOp) DecodeFrom(d *Decoder) {
	o.InflationDest = decodeOptional[AccountID](d)
	for _, f := range []**uint32{&o.ClearFlags, &o.SetFlags, &o.MasterWeight, &o.LowThreshold, &o.MedThreshold, &o.HighThreshold} {
		*f = decodeOptionalUint32(d)
	}
	if d.Present() {
		s := d.String("SetOptionsOp.HomeDomain", 32)
		o.HomeDomain = &s
	}
	o.Signer = decodeOptional[Signer](d)
}

type ChangeTrustOp struct {
	Line  ChangeTrustAsset
	Limit int64
}

func (o ChangeTrustOp) EncodeTo(e *Encoder) {
	o.Line.EncodeTo(e)
	e.Int64(o.Limit)
}

func (o *ChangeTrustOp) DecodeFrom(d *Decoder) {
	o.Line.DecodeFrom(d)
	o.Limit = d.Int64()
}

type AllowTrustOp struct {
	Trustor   AccountID
	Asset     AssetCode
	Authorize uint32
}

func (o AllowTrustOp) EncodeTo(e *Encoder) {
	o.Trustor.EncodeTo(e)
	o.Asset.EncodeTo(e)
	e.Uint32(o.Authorize)
}

func (o *AllowTrustOp) DecodeFrom(d *Decoder) {
	o.Trustor.DecodeFrom(d)
	o.Asset.DecodeFrom(d)
	o.Authorize = d.Uint32()
}

type DataValue []byte

func (v DataValue) EncodeTo(e *Encoder)    { e.Opaque("DataValue", v, 64) }
func (v *DataValue) DecodeFrom(d *Decoder) { *v = d.Opaque("DataValue", 64) }

type ManageDataOp struct {
	DataName  string
	DataValue *DataValue
}

func (o ManageDataOp) EncodeTo(e *Encoder) {
	e.String("ManageDataOp.DataName", o.DataName, 64)
	encodeOptional(e, o.DataValue)
}

func (o *ManageDataOp) DecodeFrom(d *Decoder) {
	o.DataName = d.String("ManageDataOp.DataName", 64)
	o.DataValue = decodeOptional[DataValue](d)
}

type BumpSequenceOp struct {
	BumpTo int64
}

func (o BumpSequenceOp) EncodeTo(e *Encoder)    { e.Int64(o.BumpTo) }
func (o *BumpSequenceOp) DecodeFrom(d *Decoder) { o.BumpTo = d.Int64() }

type BeginSponsoringFutureReservesOp struct {
	SponsoredID AccountID
}

func (o BeginSponsoringFutureReservesOp) EncodeTo(e *Encoder)    { o.SponsoredID.EncodeTo(e) }
func (o *BeginSponsoringFutureReservesOp) DecodeFrom(d *Decoder) { o.SponsoredID.DecodeFrom(d) }

type ClawbackOp struct {
	Asset  Asset
	From   MuxedAccount
	Amount int64
}

func (o ClawbackOp) EncodeTo(e *Encoder) {
	o.Asset.EncodeTo(e)
	o.From.EncodeTo(e)
	e.Int64(o.Amount)
}

func (o *ClawbackOp) DecodeFrom(d *Decoder) {
	o.Asset.DecodeFrom(d)
	o.From.DecodeFrom(d)
	o.Amount = d.Int64()
}

type SetTrustLineFlagsOp struct {
	Trustor    AccountID
	Asset      Asset
	ClearFlags uint32
	SetFlags   uint32
}

func (o SetTrustLineFlagsOp) EncodeTo(e *Encoder) {
	o.Trustor.EncodeTo(e)
	o.Asset.EncodeTo(e)
	e.Uint32(o.ClearFlags)
	e.Uint32(o.SetFlags)
}

func (o *SetTrustLineFlagsOp) DecodeFrom(d *Decoder) {
	o.Trustor.DecodeFrom(d)
	o.Asset.DecodeFrom(d)
	o.ClearFlags = d.Uint32()
	o.SetFlags = d.Uint32()
}

type LiquidityPoolDepositOp struct {
	LiquidityPoolID PoolID
	MaxAmountA      int64
	MaxAmountB      int64
	MinPrice        Price
	MaxPrice        Price
}

func (o LiquidityPoolDepositOp) EncodeTo(e *Encoder) {
	o.LiquidityPoolID.EncodeTo(e)
	e.Int64(o.MaxAmountA)
	e.Int64(o.MaxAmountB)
	o.MinPrice.EncodeTo(e)
	o.MaxPrice.EncodeTo(e)
}

func (o *LiquidityPoolDepositOp) DecodeFrom(d *Decoder) {
	o.LiquidityPoolID.DecodeFrom(d)
	o.MaxAmountA = d.Int64()
	o.MaxAmountB = d.Int64()
	o.MinPrice.DecodeFrom(d)
	o.MaxPrice.DecodeFrom(d)
}

type LiquidityPoolWithdrawOp struct {
	LiquidityPoolID PoolID
	Amount          int64
	MinAmountA      int64
	MinAmountB      int64
}

func (o LiquidityPoolWithdrawOp) EncodeTo(e *Encoder) {
	o.LiquidityPoolID.EncodeTo(e)
	e.Int64(o.Amount)
	e.Int64(o.MinAmountA)
	e.Int64(o.MinAmountB)
}

func (o *LiquidityPoolWithdrawOp) DecodeFrom(d *Decoder) {
	o.LiquidityPoolID.DecodeFrom(d)
	o.Amount = d.Int64()
	o.MinAmountA = d.Int64()
	o.MinAmountB = d.Int64()
}

type InvokeHostFunctionOp struct {
	HostFunction HostFunction
	Auth         []SorobanAuthorizationEntry
}

func (o InvokeHostFunctionOp) EncodeTo(e *Encoder) {
	o.HostFunction.EncodeTo(e)
	encodeArray(e, "InvokeHostFunctionOp.Auth", o.Auth, Unbounded)
}

func (o *InvokeHostFunctionOp) DecodeFrom(d *Decoder) {
	o.HostFunction.DecodeFrom(d)
	o.Auth = decodeArray[SorobanAuthorizationEntry](d, "InvokeHostFunctionOp.Auth", Unbounded)
}

type ExtendFootprintTtlOp struct {
	Ext      ExtensionPoint
	ExtendTo uint32
}

func (o ExtendFootprintTtlOp) EncodeTo(e *Encoder) {
	o.Ext.EncodeTo(e)
	e.Uint32(o.ExtendTo)
}

func (o *ExtendFootprintTtlOp) DecodeFrom(d *Decoder) {
	o.Ext.DecodeFrom(d)
	o.ExtendTo = d.Uint32()
}

type RestoreFootprintOp struct {
	Ext ExtensionPoint
}

func (o RestoreFootprintOp) EncodeTo(e *Encoder)    { o.Ext.EncodeTo(e) }
func (o *RestoreFootprintOp) DecodeFrom(d *Decoder) { o.Ext.DecodeFrom(d) }

// OperationBody holds exactly one operation, selected by Type. The claimable
// balance and sponsorship revocation operations are declared but carry no
// codec here, and fail to encode or decode as unsupported.
type OperationBody struct {
	Type                          OperationType
	CreateAccountOp               *CreateAccountOp
	PaymentOp                     *PaymentOp
	PathPaymentStrictReceiveOp    *PathPaymentStrictReceiveOp
	ManageSellOfferOp             *ManageSellOfferOp
	CreatePassiveSellOfferOp      *CreatePassiveSellOfferOp
	SetOptionsOp                  *SetOptionsOp
	ChangeTrustOp                 *ChangeTrustOp
	AllowTrustOp                  *AllowTrustOp
	Destination                   *MuxedAccount
	ManageDataOp                  *ManageDataOp
	BumpSequenceOp                *BumpSequenceOp
	ManageBuyOfferOp              *ManageBuyOfferOp
	PathPaymentStrictSendOp       *PathPaymentStrictSendOp
	BeginSponsoringFutureReserves *BeginSponsoringFutureReservesOp
	ClawbackOp                    *ClawbackOp
	SetTrustLineFlagsOp           *SetTrustLineFlagsOp
	LiquidityPoolDepositOp        *LiquidityPoolDepositOp
	LiquidityPoolWithdrawOp       *LiquidityPoolWithdrawOp
	InvokeHostFunctionOp          *InvokeHostFunctionOp
	ExtendFootprintTtlOp          *ExtendFootprintTtlOp
	RestoreFootprintOp            *RestoreFootprintOp
}

func isUnsupportedOperation(t OperationType) bool {
	switch t {
	case OperationTypeCreateClaimableBalance, OperationTypeClaimClaimableBalance,
		OperationTypeRevokeSponsorship, OperationTypeClawbackClaimableBalance:
		return true
	default:
		return false
	}
}

// arm returns the value for the selected operation, with void for the
// operations that have no body
func (b OperationBody) arm() (arm Encodable, void bool) {
	nonNil := func(v Encodable, isNil bool) (Encodable, bool) {
		if isNil {
			return nil, false
		}
		return v, false
	}
	switch b.Type {
	case OperationTypeInflation, OperationTypeEndSponsoringFutureReserves:
		return nil, true
	case OperationTypeCreateAccount:
		return nonNil(b.CreateAccountOp, b.CreateAccountOp == nil)
	case OperationTypePayment:
		return nonNil(b.PaymentOp, b.PaymentOp == nil)
	case OperationTypePathPaymentStrictReceive:
		return nonNil(b.PathPaymentStrictReceiveOp, b.PathPaymentStrictReceiveOp == nil)
	case OperationTypeManageSellOffer:
		return nonNil(b.ManageSellOfferOp, b.ManageSellOfferOp == nil)
	case OperationTypeCreatePassiveSellOffer:
		return nonNil(b.CreatePassiveSellOfferOp, b.CreatePassiveSellOfferOp == nil)
	case OperationTypeSetOptions:
		return nonNil(b.SetOptionsOp, b.SetOptionsOp == nil)
	case OperationTypeChangeTrust:
		return nonNil(b.ChangeTrustOp, b.ChangeTrustOp == nil)
	case OperationTypeAllowTrust:
		return nonNil(b.AllowTrustOp, b.AllowTrustOp == nil)
	case OperationTypeAccountMerge:
		return nonNil(b.Destination, b.Destination == nil)
	case OperationTypeManageData:
		return nonNil(b.ManageDataOp, b.ManageDataOp == nil)
	case OperationTypeBumpSequence:
		return nonNil(b.BumpSequenceOp, b.BumpSequenceOp == nil)
	case OperationTypeManageBuyOffer:
		return nonNil(b.ManageBuyOfferOp, b.ManageBuyOfferOp == nil)
	case OperationTypePathPaymentStrictSend:
		return nonNil(b.PathPaymentStrictSendOp, b.PathPaymentStrictSendOp == nil)
	case OperationTypeBeginSponsoringFutureReserves:
		return nonNil(b.BeginSponsoringFutureReserves, b.BeginSponsoringFutureReserves == nil)
	case OperationTypeClawback:
		return nonNil(b.ClawbackOp, b.ClawbackOp == nil)
	case OperationTypeSetTrustLineFlags:
		return nonNil(b.SetTrustLineFlagsOp, b.SetTrustLineFlagsOp == nil)
	case OperationTypeLiquidityPoolDeposit:
		return nonNil(b.LiquidityPoolDepositOp, b.LiquidityPoolDepositOp == nil)
	case OperationTypeLiquidityPoolWithdraw:
		return nonNil(b.LiquidityPoolWithdrawOp, b.LiquidityPoolWithdrawOp == nil)
	case OperationTypeInvokeHostFunction:
		return nonNil(b.InvokeHostFunctionOp, b.InvokeHostFunctionOp == nil)
	case OperationTypeExtendFootprintTtl:
		return nonNil(b.ExtendFootprintTtlOp, b.ExtendFootprintTtlOp == nil)
	case OperationTypeRestoreFootprint:
		return nonNil(b.RestoreFootprintOp, b.RestoreFootprintOp == nil)
	}
	return nil, false
}

func (b OperationBody) EncodeTo(e *Encoder) {
	b.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	if isUnsupportedOperation(b.Type) {
		e.UnsupportedArm("OperationBody", b.Type)
		return
	}
	arm, void := b.arm()
	switch {
	case void:
	case arm == nil:
		e.ArmMissing("OperationBody", int32(b.Type))
	default:
		arm.EncodeTo(e)
	}
}

func (b *OperationBody) DecodeFrom(d *Decoder) {
	b.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	var arm Decodable
	switch b.Type {
	case OperationTypeInflation, OperationTypeEndSponsoringFutureReserves:
		return
	case OperationTypeCreateAccount:
		b.CreateAccountOp = new(CreateAccountOp)
		arm = b.CreateAccountOp
	case OperationTypePayment:
		b.PaymentOp = new(PaymentOp)
		arm = b.PaymentOp
	case OperationTypePathPaymentStrictReceive:
		b.PathPaymentStrictReceiveOp = new(PathPaymentStrictReceiveOp)
		arm = b.PathPaymentStrictReceiveOp
	case OperationTypeManageSellOffer:
		b.ManageSellOfferOp = new(ManageSellOfferOp)
		arm = b.ManageSellOfferOp
	case OperationTypeCreatePassiveSellOffer:
		b.CreatePassiveSellOfferOp = new(CreatePassiveSellOfferOp)
		arm = b.CreatePassiveSellOfferOp
	case OperationTypeSetOptions:
		b.SetOptionsOp = new(SetOptionsOp)
		arm = b.SetOptionsOp
	case OperationTypeChangeTrust:
		b.ChangeTrustOp = new(ChangeTrustOp)
		arm = b.ChangeTrustOp
	case OperationTypeAllowTrust:
		b.AllowTrustOp = new(AllowTrustOp)
		arm = b.AllowTrustOp
	case OperationTypeAccountMerge:
		b.Destination = new(MuxedAccount)
		arm = b.Destination
	case OperationTypeManageData:
		b.ManageDataOp = new(ManageDataOp)
		arm = b.ManageDataOp
	case OperationTypeBumpSequence:
		b.BumpSequenceOp = new(BumpSequenceOp)
		arm = b.BumpSequenceOp
	case OperationTypeManageBuyOffer:
		b.ManageBuyOfferOp = new(ManageBuyOfferOp)
		arm = b.ManageBuyOfferOp
	case OperationTypePathPaymentStrictSend:
		b.PathPaymentStrictSendOp = new(PathPaymentStrictSendOp)
		arm = b.PathPaymentStrictSendOp
	case OperationTypeBeginSponsoringFutureReserves:
		b.BeginSponsoringFutureReserves = new(BeginSponsoringFutureReservesOp)
		arm = b.BeginSponsoringFutureReserves
	case OperationTypeClawback:
		b.ClawbackOp = new(ClawbackOp)
		arm = b.ClawbackOp
	case OperationTypeSetTrustLineFlags:
		b.SetTrustLineFlagsOp = new(SetTrustLineFlagsOp)
		arm = b.SetTrustLineFlagsOp
	case OperationTypeLiquidityPoolDeposit:
		b.LiquidityPoolDepositOp = new(LiquidityPoolDepositOp)
		arm = b.LiquidityPoolDepositOp
	case OperationTypeLiquidityPoolWithdraw:
		b.LiquidityPoolWithdrawOp = new(LiquidityPoolWithdrawOp)
		arm = b.LiquidityPoolWithdrawOp
	case OperationTypeInvokeHostFunction:
		b.InvokeHostFunctionOp = new(InvokeHostFunctionOp)
		arm = b.InvokeHostFunctionOp
	case OperationTypeExtendFootprintTtl:
		b.ExtendFootprintTtlOp = new(ExtendFootprintTtlOp)
		arm = b.ExtendFootprintTtlOp
	case OperationTypeRestoreFootprint:
		b.RestoreFootprintOp = new(RestoreFootprintOp)
		arm = b.RestoreFootprintOp
	default:
		d.UnsupportedArm("OperationBody", b.Type)
		return
	}
	arm.DecodeFrom(d)
}

type Operation struct {
	SourceAccount *MuxedAccount
	Body          OperationBody
}

func (o Operation) EncodeTo(e *Encoder) {
	encodeOptional(e, o.SourceAccount)
	o.Body.EncodeTo(e)
}

func (o *Operation) DecodeFrom(d *Decoder) {
	o.SourceAccount = decodeOptional[MuxedAccount](d)
	o.Body.DecodeFrom(d)
}
