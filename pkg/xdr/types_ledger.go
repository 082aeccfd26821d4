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

// MaxSigners bounds the signer list of an account
const MaxSigners = 20

type Thresholds [4]byte

func (t Thresholds) EncodeTo(e *Encoder)    { e.FixedOpaque("Thresholds", t[:], 4) }
func (t *Thresholds) DecodeFrom(d *Decoder) { d.ReadFixed(t[:]) }

type Liabilities struct {
	Buying  int64
	Selling int64
}

func (l Liabilities) EncodeTo(e *Encoder) {
	e.Int64(l.Buying)
	e.Int64(l.Selling)
}

func (l *Liabilities) DecodeFrom(d *Decoder) {
	l.Buying = d.Int64()
	l.Selling = d.Int64()
}

type SponsorshipDescriptor struct {
	SponsorID *AccountID
}

func (s SponsorshipDescriptor) EncodeTo(e *Encoder)    { encodeOptional(e, s.SponsorID) }
func (s *SponsorshipDescriptor) DecodeFrom(d *Decoder) { s.SponsorID = decodeOptional[AccountID](d) }

type AccountEntryExtensionV3 struct {
	Ext       ExtensionPoint
	SeqLedger uint32
	SeqTime   uint64
}

func (x AccountEntryExtensionV3) EncodeTo(e *Encoder) {
	x.Ext.EncodeTo(e)
	e.Uint32(x.SeqLedger)
	e.Uint64(x.SeqTime)
}

func (x *AccountEntryExtensionV3) DecodeFrom(d *Decoder) {
	x.Ext.DecodeFrom(d)
	x.SeqLedger = d.Uint32()
	x.SeqTime = d.Uint64()
}

type AccountEntryExtensionV2 struct {
	NumSponsored        uint32
	NumSponsoring       uint32
	SignerSponsoringIDs []SponsorshipDescriptor
	V3                  *AccountEntryExtensionV3
}

func (x AccountEntryExtensionV2) EncodeTo(e *Encoder) {
	e.Uint32(x.NumSponsored)
	e.Uint32(x.NumSponsoring)
	encodeArray(e, "AccountEntryExtensionV2.SignerSponsoringIDs", x.SignerSponsoringIDs, MaxSigners)
	if x.V3 == nil {
		e.Int32(0)
		return
	}
	e.Int32(3)
	x.V3.EncodeTo(e)
}

func (x *AccountEntryExtensionV2) DecodeFrom(d *Decoder) {
	x.NumSponsored = d.Uint32()
	x.NumSponsoring = d.Uint32()
	x.SignerSponsoringIDs = decodeArray[SponsorshipDescriptor](d, "AccountEntryExtensionV2.SignerSponsoringIDs", MaxSigners)
	switch v := d.Int32(); {
	case d.err != nil, v == 0:
	case v == 3:
		x.V3 = new(AccountEntryExtensionV3)
		x.V3.DecodeFrom(d)
	default:
		d.UnknownArm("AccountEntryExtensionV2.Ext", v)
	}
}

type AccountEntryExtensionV1 struct {
	Liabilities Liabilities
	V2          *AccountEntryExtensionV2
}

func (x AccountEntryExtensionV1) EncodeTo(e *Encoder) {
	x.Liabilities.EncodeTo(e)
	if x.V2 == nil {
		e.Int32(0)
		return
	}
	e.Int32(2)
	x.V2.EncodeTo(e)
}

func (x *AccountEntryExtensionV1) DecodeFrom(d *Decoder) {
	x.Liabilities.DecodeFrom(d)
	switch v := d.Int32(); {
	case d.err != nil, v == 0:
	case v == 2:
		x.V2 = new(AccountEntryExtensionV2)
		x.V2.DecodeFrom(d)
	default:
		d.UnknownArm("AccountEntryExtensionV1.Ext", v)
	}
}

// AccountEntry is the ledger state of a classic account, including its current sequence number
type AccountEntry struct {
	AccountID     AccountID
	Balance       int64
	SeqNum        int64
	NumSubEntries uint32
	InflationDest *AccountID
	Flags         uint32
	HomeDomain    string
	Thresholds    Thresholds
	Signers       []Signer
	V1            *AccountEntryExtensionV1
}

func (a AccountEntry) EncodeTo(e *Encoder) {
	a.AccountID.EncodeTo(e)
	e.Int64(a.Balance)
	e.Int64(a.SeqNum)
	e.Uint32(a.NumSubEntries)
	encodeOptional(e, a.InflationDest)
	e.Uint32(a.Flags)
	e.String("AccountEntry.HomeDomain", a.HomeDomain, 32)
	a.Thresholds.EncodeTo(e)
	encodeArray(e, "AccountEntry.Signers", a.Signers, MaxSigners)
	if a.V1 == nil {
		e.Int32(0)
		return
	}
	e.Int32(1)
	a.V1.EncodeTo(e)
}

func (a *AccountEntry) DecodeFrom(d *Decoder) {
	a.AccountID.DecodeFrom(d)
	a.Balance = d.Int64()
	a.SeqNum = d.Int64()
	a.NumSubEntries = d.Uint32()
	a.InflationDest = decodeOptional[AccountID](d)
	a.Flags = d.Uint32()
	a.HomeDomain = d.String("AccountEntry.HomeDomain", 32)
	a.Thresholds.DecodeFrom(d)
	a.Signers = decodeArray[Signer](d, "AccountEntry.Signers", MaxSigners)
	switch v := d.Int32(); {
	case d.err != nil, v == 0:
	case v == 1:
		a.V1 = new(AccountEntryExtensionV1)
		a.V1.DecodeFrom(d)
	default:
		d.UnknownArm("AccountEntry.Ext", v)
	}
}

type ContractDataEntry struct {
	Ext        ExtensionPoint
	Contract   ScAddress
	Key        ScVal
	Durability ContractDataDurability
	Val        ScVal
}

func (c ContractDataEntry) EncodeTo(e *Encoder) {
	c.Ext.EncodeTo(e)
	c.Contract.EncodeTo(e)
	c.Key.EncodeTo(e)
	c.Durability.EncodeTo(e)
	c.Val.EncodeTo(e)
}

func (c *ContractDataEntry) DecodeFrom(d *Decoder) {
	c.Ext.DecodeFrom(d)
	c.Contract.DecodeFrom(d)
	c.Key.DecodeFrom(d)
	c.Durability.DecodeFrom(d)
	c.Val.DecodeFrom(d)
}

type ContractCodeCostInputs struct {
	Ext               ExtensionPoint
	NInstructions     uint32
	NFunctions        uint32
	NGlobals          uint32
	NTableEntries     uint32
	NTypes            uint32
	NDataSegments     uint32
	NElemSegments     uint32
	NImports          uint32
	NExports          uint32
	NDataSegmentBytes uint32
}

func (c ContractCodeCostInputs) fields() []uint32 {
	return []uint32{c.NInstructions, c.NFunctions, c.NGlobals, c.NTableEntries, c.NTypes,
		c.NDataSegments, c.NElemSegments, c.NImports, c.NExports, c.NDataSegmentBytes}
}

func (c ContractCodeCostInputs) EncodeTo(e *Encoder) {
	c.Ext.EncodeTo(e)
	for _, f := range c.fields() {
		e.Uint32(f)
	}
}

func (c *ContractCodeCostInputs) DecodeFrom(d *Decoder) {
	c.Ext.DecodeFrom(d)
	for _, f := range []*uint32{&c.NInstructions, &c.NFunctions, &c.NGlobals, &c.NTableEntries, &c.NTypes,
		&c.NDataSegments, &c.NElemSegments, &c.NImports, &c.NExports, &c.NDataSegmentBytes} {
		*f = d.Uint32()
	}
}

type ContractCodeEntryV1 struct {
	Ext        ExtensionPoint
	CostInputs ContractCodeCostInputs
}

func (c ContractCodeEntryV1) EncodeTo(e *Encoder) {
	c.Ext.EncodeTo(e)
	c.CostInputs.EncodeTo(e)
}

func (c *ContractCodeEntryV1) DecodeFrom(d *Decoder) {
	c.Ext.DecodeFrom(d)
	c.CostInputs.DecodeFrom(d)
}

type ContractCodeEntry struct {
	V1   *ContractCodeEntryV1
	Hash Hash
	Code []byte
}

func (c ContractCodeEntry) EncodeTo(e *Encoder) {
	if c.V1 == nil {
		e.Int32(0)
	} else {
		e.Int32(1)
		c.V1.EncodeTo(e)
	}
	c.Hash.EncodeTo(e)
	e.Opaque("ContractCodeEntry.Code", c.Code, Unbounded)
}

func (c *ContractCodeEntry) DecodeFrom(d *Decoder) {
	switch v := d.Int32(); {
	case d.err != nil, v == 0:
	case v == 1:
		c.V1 = new(ContractCodeEntryV1)
		c.V1.DecodeFrom(d)
	default:
		d.UnknownArm("ContractCodeEntry.Ext", v)
	}
	c.Hash.DecodeFrom(d)
	c.Code = d.Opaque("ContractCodeEntry.Code", Unbounded)
}

type TtlEntry struct {
	KeyHash            Hash
	LiveUntilLedgerSeq uint32
}

func (t TtlEntry) EncodeTo(e *Encoder) {
	t.KeyHash.EncodeTo(e)
	e.Uint32(t.LiveUntilLedgerSeq)
}

func (t *TtlEntry) DecodeFrom(d *Decoder) {
	t.KeyHash.DecodeFrom(d)
	t.LiveUntilLedgerSeq = d.Uint32()
}

// LedgerEntryData is the body of a ledger entry. Only the entry kinds a
// contract client reads are decoded, the rest fail as unsupported.
type LedgerEntryData struct {
	Type         LedgerEntryType
	Account      *AccountEntry
	ContractData *ContractDataEntry
	ContractCode *ContractCodeEntry
	Ttl          *TtlEntry
}

func (l LedgerEntryData) EncodeTo(e *Encoder) {
	l.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	var arm Encodable
	switch l.Type {
	case LedgerEntryTypeAccount:
		if l.Account != nil {
			arm = l.Account
		}
	case LedgerEntryTypeContractData:
		if l.ContractData != nil {
			arm = l.ContractData
		}
	case LedgerEntryTypeContractCode:
		if l.ContractCode != nil {
			arm = l.ContractCode
		}
	case LedgerEntryTypeTtl:
		if l.Ttl != nil {
			arm = l.Ttl
		}
	default:
		e.UnsupportedArm("LedgerEntryData", l.Type)
		return
	}
	if arm == nil {
		e.ArmMissing("LedgerEntryData", int32(l.Type))
		return
	}
	arm.EncodeTo(e)
}

func (l *LedgerEntryData) DecodeFrom(d *Decoder) {
	l.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch l.Type {
	case LedgerEntryTypeAccount:
		l.Account = new(AccountEntry)
		l.Account.DecodeFrom(d)
	case LedgerEntryTypeContractData:
		l.ContractData = new(ContractDataEntry)
		l.ContractData.DecodeFrom(d)
	case LedgerEntryTypeContractCode:
		l.ContractCode = new(ContractCodeEntry)
		l.ContractCode.DecodeFrom(d)
	case LedgerEntryTypeTtl:
		l.Ttl = new(TtlEntry)
		l.Ttl.DecodeFrom(d)
	default:
		d.UnsupportedArm("LedgerEntryData", l.Type)
	}
}
