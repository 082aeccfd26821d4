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

type ContractIDPreimageType int32

const (
	ContractIDPreimageTypeContractIDPreimageFromAddress ContractIDPreimageType = 0
	ContractIDPreimageTypeContractIDPreimageFromAsset   ContractIDPreimageType = 1
)

var contractIDPreimageTypeNames = map[int32]string{
	0: "ContractIdPreimageFromAddress",
	1: "ContractIdPreimageFromAsset",
}

func (t ContractIDPreimageType) String() string { return enumString(contractIDPreimageTypeNames, int32(t)) }
func (t ContractIDPreimageType) EncodeTo(e *Encoder) {
	e.Enum("ContractIDPreimageType", contractIDPreimageTypeNames, int32(t))
}
func (t *ContractIDPreimageType) DecodeFrom(d *Decoder) {
	*t = ContractIDPreimageType(d.Enum("ContractIDPreimageType", contractIDPreimageTypeNames))
}

type ContractIDPreimageFromAddress struct {
	Address ScAddress
	Salt    Uint256
}

func (p ContractIDPreimageFromAddress) EncodeTo(e *Encoder) {
	p.Address.EncodeTo(e)
	p.Salt.EncodeTo(e)
}

func (p *ContractIDPreimageFromAddress) DecodeFrom(d *Decoder) {
	p.Address.DecodeFrom(d)
	p.Salt.DecodeFrom(d)
}

type ContractIDPreimage struct {
	Type        ContractIDPreimageType
	FromAddress *ContractIDPreimageFromAddress
	FromAsset   *Asset
}

func (p ContractIDPreimage) EncodeTo(e *Encoder) {
	p.Type.EncodeTo(e)
	switch p.Type {
	case ContractIDPreimageTypeContractIDPreimageFromAddress:
		if p.FromAddress == nil {
			e.ArmMissing("ContractIDPreimage", int32(p.Type))
			return
		}
		p.FromAddress.EncodeTo(e)
	case ContractIDPreimageTypeContractIDPreimageFromAsset:
		if p.FromAsset == nil {
			e.ArmMissing("ContractIDPreimage", int32(p.Type))
			return
		}
		p.FromAsset.EncodeTo(e)
	default:
		e.UnknownArm("ContractIDPreimage", int32(p.Type))
	}
}

func (p *ContractIDPreimage) DecodeFrom(d *Decoder) {
	p.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch p.Type {
	case ContractIDPreimageTypeContractIDPreimageFromAddress:
		p.FromAddress = new(ContractIDPreimageFromAddress)
		p.FromAddress.DecodeFrom(d)
	case ContractIDPreimageTypeContractIDPreimageFromAsset:
		p.FromAsset = new(Asset)
		p.FromAsset.DecodeFrom(d)
	default:
		d.UnknownArm("ContractIDPreimage", int32(p.Type))
	}
}

type CreateContractArgs struct {
	ContractIDPreimage ContractIDPreimage
	Executable         ContractExecutable
}

func (a CreateContractArgs) EncodeTo(e *Encoder) {
	a.ContractIDPreimage.EncodeTo(e)
	a.Executable.EncodeTo(e)
}

func (a *CreateContractArgs) DecodeFrom(d *Decoder) {
	a.ContractIDPreimage.DecodeFrom(d)
	a.Executable.DecodeFrom(d)
}

type CreateContractArgsV2 struct {
	ContractIDPreimage ContractIDPreimage
	Executable         ContractExecutable
	ConstructorArgs    []ScVal
}

func (a CreateContractArgsV2) EncodeTo(e *Encoder) {
	a.ContractIDPreimage.EncodeTo(e)
	a.Executable.EncodeTo(e)
	encodeArray(e, "CreateContractArgsV2.ConstructorArgs", a.ConstructorArgs, Unbounded)
}

func (a *CreateContractArgsV2) DecodeFrom(d *Decoder) {
	a.ContractIDPreimage.DecodeFrom(d)
	a.Executable.DecodeFrom(d)
	a.ConstructorArgs = decodeArray[ScVal](d, "CreateContractArgsV2.ConstructorArgs", Unbounded)
}

type InvokeContractArgs struct {
	ContractAddress ScAddress
	FunctionName    ScSymbol
	Args            []ScVal
}

func (a InvokeContractArgs) EncodeTo(e *Encoder) {
	a.ContractAddress.EncodeTo(e)
	a.FunctionName.EncodeTo(e)
	encodeArray(e, "InvokeContractArgs.Args", a.Args, Unbounded)
}

func (a *InvokeContractArgs) DecodeFrom(d *Decoder) {
	a.ContractAddress.DecodeFrom(d)
	a.FunctionName.DecodeFrom(d)
	a.Args = decodeArray[ScVal](d, "InvokeContractArgs.Args", Unbounded)
}

type HostFunctionType int32

const (
	HostFunctionTypeHostFunctionTypeInvokeContract     HostFunctionType = 0
	HostFunctionTypeHostFunctionTypeCreateContract     HostFunctionType = 1
	HostFunctionTypeHostFunctionTypeUploadContractWasm HostFunctionType = 2
	HostFunctionTypeHostFunctionTypeCreateContractV2   HostFunctionType = 3
)

var hostFunctionTypeNames = map[int32]string{
	0: "HostFunctionTypeInvokeContract",
	1: "HostFunctionTypeCreateContract",
	2: "HostFunctionTypeUploadContractWasm",
	3: "HostFunctionTypeCreateContractV2",
}

func (t HostFunctionType) String() string     { return enumString(hostFunctionTypeNames, int32(t)) }
func (t HostFunctionType) EncodeTo(e *Encoder) { e.Enum("HostFunctionType", hostFunctionTypeNames, int32(t)) }
func (t *HostFunctionType) DecodeFrom(d *Decoder) {
	*t = HostFunctionType(d.Enum("HostFunctionType", hostFunctionTypeNames))
}

type HostFunction struct {
	Type             HostFunctionType
	InvokeContract   *InvokeContractArgs
	CreateContract   *CreateContractArgs
	Wasm             *[]byte
	CreateContractV2 *CreateContractArgsV2
}

func (f HostFunction) EncodeTo(e *Encoder) {
	f.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	switch f.Type {
	case HostFunctionTypeHostFunctionTypeInvokeContract:
		if f.InvokeContract != nil {
			f.InvokeContract.EncodeTo(e)
			return
		}
	case HostFunctionTypeHostFunctionTypeCreateContract:
		if f.CreateContract != nil {
			f.CreateContract.EncodeTo(e)
			return
		}
	case HostFunctionTypeHostFunctionTypeUploadContractWasm:
		if f.Wasm != nil {
			e.Opaque("HostFunction.Wasm", *f.Wasm, Unbounded)
			return
		}
	case HostFunctionTypeHostFunctionTypeCreateContractV2:
		if f.CreateContractV2 != nil {
			f.CreateContractV2.EncodeTo(e)
			return
		}
	}
	e.ArmMissing("HostFunction", int32(f.Type))
}

func (f *HostFunction) DecodeFrom(d *Decoder) {
	f.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch f.Type {
	case HostFunctionTypeHostFunctionTypeInvokeContract:
		f.InvokeContract = new(InvokeContractArgs)
		f.InvokeContract.DecodeFrom(d)
	case HostFunctionTypeHostFunctionTypeCreateContract:
		f.CreateContract = new(CreateContractArgs)
		f.CreateContract.DecodeFrom(d)
	case HostFunctionTypeHostFunctionTypeUploadContractWasm:
		wasm := d.Opaque("HostFunction.Wasm", Unbounded)
		f.Wasm = &wasm
	case HostFunctionTypeHostFunctionTypeCreateContractV2:
		f.CreateContractV2 = new(CreateContractArgsV2)
		f.CreateContractV2.DecodeFrom(d)
	default:
		d.UnknownArm("HostFunction", int32(f.Type))
	}
}

type SorobanAuthorizedFunctionType int32

const (
	SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn             SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractHostFn   SorobanAuthorizedFunctionType = 1
	SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractV2HostFn SorobanAuthorizedFunctionType = 2
)

var sorobanAuthorizedFunctionTypeNames = map[int32]string{
	0: "SorobanAuthorizedFunctionTypeContractFn",
	1: "SorobanAuthorizedFunctionTypeCreateContractHostFn",
	2: "SorobanAuthorizedFunctionTypeCreateContractV2HostFn",
}

func (t SorobanAuthorizedFunctionType) String() string {
	return enumString(sorobanAuthorizedFunctionTypeNames, int32(t))
}
func (t SorobanAuthorizedFunctionType) EncodeTo(e *Encoder) {
	e.Enum("SorobanAuthorizedFunctionType", sorobanAuthorizedFunctionTypeNames, int32(t))
}
func (t *SorobanAuthorizedFunctionType) DecodeFrom(d *Decoder) {
	*t = SorobanAuthorizedFunctionType(d.Enum("SorobanAuthorizedFunctionType", sorobanAuthorizedFunctionTypeNames))
}

type SorobanAuthorizedFunction struct {
	Type                   SorobanAuthorizedFunctionType
	ContractFn             *InvokeContractArgs
	CreateContractHostFn   *CreateContractArgs
	CreateContractV2HostFn *CreateContractArgsV2
}

func (f SorobanAuthorizedFunction) EncodeTo(e *Encoder) {
	f.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	switch f.Type {
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn:
		if f.ContractFn != nil {
			f.ContractFn.EncodeTo(e)
			return
		}
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractHostFn:
		if f.CreateContractHostFn != nil {
			f.CreateContractHostFn.EncodeTo(e)
			return
		}
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractV2HostFn:
		if f.CreateContractV2HostFn != nil {
			f.CreateContractV2HostFn.EncodeTo(e)
			return
		}
	}
	e.ArmMissing("SorobanAuthorizedFunction", int32(f.Type))
}

func (f *SorobanAuthorizedFunction) DecodeFrom(d *Decoder) {
	f.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch f.Type {
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeContractFn:
		f.ContractFn = new(InvokeContractArgs)
		f.ContractFn.DecodeFrom(d)
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractHostFn:
		f.CreateContractHostFn = new(CreateContractArgs)
		f.CreateContractHostFn.DecodeFrom(d)
	case SorobanAuthorizedFunctionTypeSorobanAuthorizedFunctionTypeCreateContractV2HostFn:
		f.CreateContractV2HostFn = new(CreateContractArgsV2)
		f.CreateContractV2HostFn.DecodeFrom(d)
	default:
		d.UnknownArm("SorobanAuthorizedFunction", int32(f.Type))
	}
}

// SorobanAuthorizedInvocation is the tree of calls an authorization entry covers
type SorobanAuthorizedInvocation struct {
	Function       SorobanAuthorizedFunction
	SubInvocations []SorobanAuthorizedInvocation
}

func (i SorobanAuthorizedInvocation) EncodeTo(e *Encoder) {
	i.Function.EncodeTo(e)
	encodeArray(e, "SorobanAuthorizedInvocation.SubInvocations", i.SubInvocations, Unbounded)
}

func (i *SorobanAuthorizedInvocation) DecodeFrom(d *Decoder) {
	ok := d.enter()
	defer d.leave()
	if !ok {
		return
	}
	i.Function.DecodeFrom(d)
	i.SubInvocations = decodeArray[SorobanAuthorizedInvocation](d, "SorobanAuthorizedInvocation.SubInvocations", Unbounded)
}

type SorobanAddressCredentials struct {
	Address                   ScAddress
	Nonce                     int64
	SignatureExpirationLedger uint32
	Signature                 ScVal
}

func (c SorobanAddressCredentials) EncodeTo(e *Encoder) {
	c.Address.EncodeTo(e)
	e.Int64(c.Nonce)
	e.Uint32(c.SignatureExpirationLedger)
	c.Signature.EncodeTo(e)
}

func (c *SorobanAddressCredentials) DecodeFrom(d *Decoder) {
	c.Address.DecodeFrom(d)
	c.Nonce = d.Int64()
	c.SignatureExpirationLedger = d.Uint32()
	c.Signature.DecodeFrom(d)
}

type SorobanCredentialsType int32

const (
	SorobanCredentialsTypeSorobanCredentialsSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsTypeSorobanCredentialsAddress       SorobanCredentialsType = 1
)

var sorobanCredentialsTypeNames = map[int32]string{
	0: "SorobanCredentialsSourceAccount",
	1: "SorobanCredentialsAddress",
}

func (t SorobanCredentialsType) String() string { return enumString(sorobanCredentialsTypeNames, int32(t)) }
func (t SorobanCredentialsType) EncodeTo(e *Encoder) {
	e.Enum("SorobanCredentialsType", sorobanCredentialsTypeNames, int32(t))
}
func (t *SorobanCredentialsType) DecodeFrom(d *Decoder) {
	*t = SorobanCredentialsType(d.Enum("SorobanCredentialsType", sorobanCredentialsTypeNames))
}

type SorobanCredentials struct {
	Type    SorobanCredentialsType
	Address *SorobanAddressCredentials
}

func (c SorobanCredentials) EncodeTo(e *Encoder) {
	c.Type.EncodeTo(e)
	switch c.Type {
	case SorobanCredentialsTypeSorobanCredentialsSourceAccount:
	case SorobanCredentialsTypeSorobanCredentialsAddress:
		if c.Address == nil {
			e.ArmMissing("SorobanCredentials", int32(c.Type))
			return
		}
		c.Address.EncodeTo(e)
	default:
		e.UnknownArm("SorobanCredentials", int32(c.Type))
	}
}

func (c *SorobanCredentials) DecodeFrom(d *Decoder) {
	c.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	switch c.Type {
	case SorobanCredentialsTypeSorobanCredentialsSourceAccount:
	case SorobanCredentialsTypeSorobanCredentialsAddress:
		c.Address = new(SorobanAddressCredentials)
		c.Address.DecodeFrom(d)
	default:
		d.UnknownArm("SorobanCredentials", int32(c.Type))
	}
}

type SorobanAuthorizationEntry struct {
	Credentials    SorobanCredentials
	RootInvocation SorobanAuthorizedInvocation
}

func (a SorobanAuthorizationEntry) EncodeTo(e *Encoder) {
	a.Credentials.EncodeTo(e)
	a.RootInvocation.EncodeTo(e)
}

func (a *SorobanAuthorizationEntry) DecodeFrom(d *Decoder) {
	a.Credentials.DecodeFrom(d)
	a.RootInvocation.DecodeFrom(d)
}

type LedgerEntryType int32

const (
	LedgerEntryTypeAccount          LedgerEntryType = 0
	LedgerEntryTypeTrustline        LedgerEntryType = 1
	LedgerEntryTypeOffer            LedgerEntryType = 2
	LedgerEntryTypeData             LedgerEntryType = 3
	LedgerEntryTypeClaimableBalance LedgerEntryType = 4
	LedgerEntryTypeLiquidityPool    LedgerEntryType = 5
	LedgerEntryTypeContractData     LedgerEntryType = 6
	LedgerEntryTypeContractCode     LedgerEntryType = 7
	LedgerEntryTypeConfigSetting    LedgerEntryType = 8
	LedgerEntryTypeTtl              LedgerEntryType = 9
)

var ledgerEntryTypeNames = map[int32]string{
	0: "Account",
	1: "Trustline",
	2: "Offer",
	3: "Data",
	4: "ClaimableBalance",
	5: "LiquidityPool",
	6: "ContractData",
	7: "ContractCode",
	8: "ConfigSetting",
	9: "Ttl",
}

func (t LedgerEntryType) String() string     { return enumString(ledgerEntryTypeNames, int32(t)) }
func (t LedgerEntryType) EncodeTo(e *Encoder) { e.Enum("LedgerEntryType", ledgerEntryTypeNames, int32(t)) }
func (t *LedgerEntryType) DecodeFrom(d *Decoder) {
	*t = LedgerEntryType(d.Enum("LedgerEntryType", ledgerEntryTypeNames))
}

type ContractDataDurability int32

const (
	ContractDataDurabilityTemporary  ContractDataDurability = 0
	ContractDataDurabilityPersistent ContractDataDurability = 1
)

var contractDataDurabilityNames = map[int32]string{
	0: "Temporary",
	1: "Persistent",
}

func (c ContractDataDurability) String() string { return enumString(contractDataDurabilityNames, int32(c)) }
func (c ContractDataDurability) EncodeTo(e *Encoder) {
	e.Enum("ContractDataDurability", contractDataDurabilityNames, int32(c))
}
func (c *ContractDataDurability) DecodeFrom(d *Decoder) {
	*c = ContractDataDurability(d.Enum("ContractDataDurability", contractDataDurabilityNames))
}

type ConfigSettingID int32

var configSettingIDNames = map[int32]string{
	0:  "ConfigSettingContractMaxSizeBytes",
	1:  "ConfigSettingContractComputeV0",
	2:  "ConfigSettingContractLedgerCostV0",
	3:  "ConfigSettingContractHistoricalDataV0",
	4:  "ConfigSettingContractEventsV0",
	5:  "ConfigSettingContractBandwidthV0",
	6:  "ConfigSettingContractCostParamsCpuInstructions",
	7:  "ConfigSettingContractCostParamsMemoryBytes",
	8:  "ConfigSettingContractDataKeySizeBytes",
	9:  "ConfigSettingContractDataEntrySizeBytes",
	10: "ConfigSettingStateArchival",
	11: "ConfigSettingContractExecutionLanes",
	12: "ConfigSettingLiveSorobanStateSizeWindow",
	13: "ConfigSettingEvictionIterator",
	14: "ConfigSettingContractParallelComputeV0",
	15: "ConfigSettingContractLedgerCostExtV0",
	16: "ConfigSettingScpTiming",
}

func (c ConfigSettingID) String() string        { return enumString(configSettingIDNames, int32(c)) }
func (c ConfigSettingID) EncodeTo(e *Encoder)    { e.Enum("ConfigSettingID", configSettingIDNames, int32(c)) }
func (c *ConfigSettingID) DecodeFrom(d *Decoder) { *c = ConfigSettingID(d.Enum("ConfigSettingID", configSettingIDNames)) }

type LedgerKeyAccount struct {
	AccountID AccountID
}

func (k LedgerKeyAccount) EncodeTo(e *Encoder)    { k.AccountID.EncodeTo(e) }
func (k *LedgerKeyAccount) DecodeFrom(d *Decoder) { k.AccountID.DecodeFrom(d) }

type LedgerKeyTrustLine struct {
	AccountID AccountID
	Asset     TrustLineAsset
}

func (k LedgerKeyTrustLine) EncodeTo(e *Encoder) {
	k.AccountID.EncodeTo(e)
	k.Asset.EncodeTo(e)
}

func (k *LedgerKeyTrustLine) DecodeFrom(d *Decoder) {
	k.AccountID.DecodeFrom(d)
	k.Asset.DecodeFrom(d)
}

type LedgerKeyOffer struct {
	SellerID AccountID
	OfferID  int64
}

func (k LedgerKeyOffer) EncodeTo(e *Encoder) {
	k.SellerID.EncodeTo(e)
	e.Int64(k.OfferID)
}

func (k *LedgerKeyOffer) DecodeFrom(d *Decoder) {
	k.SellerID.DecodeFrom(d)
	k.OfferID = d.Int64()
}

type LedgerKeyData struct {
	AccountID AccountID
	DataName  string
}

func (k LedgerKeyData) EncodeTo(e *Encoder) {
	k.AccountID.EncodeTo(e)
	e.String("LedgerKeyData.DataName", k.DataName, 64)
}

func (k *LedgerKeyData) DecodeFrom(d *Decoder) {
	k.AccountID.DecodeFrom(d)
	k.DataName = d.String("LedgerKeyData.DataName", 64)
}

type LedgerKeyClaimableBalance struct {
	BalanceID ClaimableBalanceID
}

func (k LedgerKeyClaimableBalance) EncodeTo(e *Encoder)    { k.BalanceID.EncodeTo(e) }
func (k *LedgerKeyClaimableBalance) DecodeFrom(d *Decoder) { k.BalanceID.DecodeFrom(d) }

type LedgerKeyLiquidityPool struct {
	LiquidityPoolID PoolID
}

func (k LedgerKeyLiquidityPool) EncodeTo(e *Encoder)    { k.LiquidityPoolID.EncodeTo(e) }
func (k *LedgerKeyLiquidityPool) DecodeFrom(d *Decoder) { k.LiquidityPoolID.DecodeFrom(d) }

type LedgerKeyContractData struct {
	Contract   ScAddress
	Key        ScVal
	Durability ContractDataDurability
}

func (k LedgerKeyContractData) EncodeTo(e *Encoder) {
	k.Contract.EncodeTo(e)
	k.Key.EncodeTo(e)
	k.Durability.EncodeTo(e)
}

func (k *LedgerKeyContractData) DecodeFrom(d *Decoder) {
	k.Contract.DecodeFrom(d)
	k.Key.DecodeFrom(d)
	k.Durability.DecodeFrom(d)
}

type LedgerKeyContractCode struct {
	Hash Hash
}

func (k LedgerKeyContractCode) EncodeTo(e *Encoder)    { k.Hash.EncodeTo(e) }
func (k *LedgerKeyContractCode) DecodeFrom(d *Decoder) { k.Hash.DecodeFrom(d) }

type LedgerKeyConfigSetting struct {
	ConfigSettingID ConfigSettingID
}

func (k LedgerKeyConfigSetting) EncodeTo(e *Encoder)    { k.ConfigSettingID.EncodeTo(e) }
func (k *LedgerKeyConfigSetting) DecodeFrom(d *Decoder) { k.ConfigSettingID.DecodeFrom(d) }

type LedgerKeyTtl struct {
	KeyHash Hash
}

func (k LedgerKeyTtl) EncodeTo(e *Encoder)    { k.KeyHash.EncodeTo(e) }
func (k *LedgerKeyTtl) DecodeFrom(d *Decoder) { k.KeyHash.DecodeFrom(d) }

type LedgerKey struct {
	Type             LedgerEntryType
	Account          *LedgerKeyAccount
	TrustLine        *LedgerKeyTrustLine
	Offer            *LedgerKeyOffer
	Data             *LedgerKeyData
	ClaimableBalance *LedgerKeyClaimableBalance
	LiquidityPool    *LedgerKeyLiquidityPool
	ContractData     *LedgerKeyContractData
	ContractCode     *LedgerKeyContractCode
	ConfigSetting    *LedgerKeyConfigSetting
	Ttl              *LedgerKeyTtl
}

func (k LedgerKey) arm() Encodable {
	switch k.Type {
	case LedgerEntryTypeAccount:
		if k.Account != nil {
			return k.Account
		}
	case LedgerEntryTypeTrustline:
		if k.TrustLine != nil {
			return k.TrustLine
		}
	case LedgerEntryTypeOffer:
		if k.Offer != nil {
			return k.Offer
		}
	case LedgerEntryTypeData:
		if k.Data != nil {
			return k.Data
		}
	case LedgerEntryTypeClaimableBalance:
		if k.ClaimableBalance != nil {
			return k.ClaimableBalance
		}
	case LedgerEntryTypeLiquidityPool:
		if k.LiquidityPool != nil {
			return k.LiquidityPool
		}
	case LedgerEntryTypeContractData:
		if k.ContractData != nil {
			return k.ContractData
		}
	case LedgerEntryTypeContractCode:
		if k.ContractCode != nil {
			return k.ContractCode
		}
	case LedgerEntryTypeConfigSetting:
		if k.ConfigSetting != nil {
			return k.ConfigSetting
		}
	case LedgerEntryTypeTtl:
		if k.Ttl != nil {
			return k.Ttl
		}
	}
	return nil
}

func (k LedgerKey) EncodeTo(e *Encoder) {
	k.Type.EncodeTo(e)
	if e.err != nil {
		return
	}
	arm := k.arm()
	if arm == nil {
		e.ArmMissing("LedgerKey", int32(k.Type))
		return
	}
	arm.EncodeTo(e)
}

func (k *LedgerKey) DecodeFrom(d *Decoder) {
	k.Type.DecodeFrom(d)
	if d.err != nil {
		return
	}
	var arm Decodable
	switch k.Type {
	case LedgerEntryTypeAccount:
		k.Account = new(LedgerKeyAccount)
		arm = k.Account
	case LedgerEntryTypeTrustline:
		k.TrustLine = new(LedgerKeyTrustLine)
		arm = k.TrustLine
	case LedgerEntryTypeOffer:
		k.Offer = new(LedgerKeyOffer)
		arm = k.Offer
	case LedgerEntryTypeData:
		k.Data = new(LedgerKeyData)
		arm = k.Data
	case LedgerEntryTypeClaimableBalance:
		k.ClaimableBalance = new(LedgerKeyClaimableBalance)
		arm = k.ClaimableBalance
	case LedgerEntryTypeLiquidityPool:
		k.LiquidityPool = new(LedgerKeyLiquidityPool)
		arm = k.LiquidityPool
	case LedgerEntryTypeContractData:
		k.ContractData = new(LedgerKeyContractData)
		arm = k.ContractData
	case LedgerEntryTypeContractCode:
		k.ContractCode = new(LedgerKeyContractCode)
		arm = k.ContractCode
	case LedgerEntryTypeConfigSetting:
		k.ConfigSetting = new(LedgerKeyConfigSetting)
		arm = k.ConfigSetting
	case LedgerEntryTypeTtl:
		k.Ttl = new(LedgerKeyTtl)
		arm = k.Ttl
	default:
		d.UnknownArm("LedgerKey", int32(k.Type))
		return
	}
	arm.DecodeFrom(d)
}

type LedgerFootprint struct {
	ReadOnly  []LedgerKey
	ReadWrite []LedgerKey
}

func (f LedgerFootprint) EncodeTo(e *Encoder) {
	encodeArray(e, "LedgerFootprint.ReadOnly", f.ReadOnly, Unbounded)
	encodeArray(e, "LedgerFootprint.ReadWrite", f.ReadWrite, Unbounded)
}

func (f *LedgerFootprint) DecodeFrom(d *Decoder) {
	f.ReadOnly = decodeArray[LedgerKey](d, "LedgerFootprint.ReadOnly", Unbounded)
	f.ReadWrite = decodeArray[LedgerKey](d, "LedgerFootprint.ReadWrite", Unbounded)
}

type SorobanResources struct {
	Footprint     LedgerFootprint
	Instructions  uint32
	DiskReadBytes uint32
	WriteBytes    uint32
}

func (r SorobanResources) EncodeTo(e *Encoder) {
	r.Footprint.EncodeTo(e)
	e.Uint32(r.Instructions)
	e.Uint32(r.DiskReadBytes)
	e.Uint32(r.WriteBytes)
}

func (r *SorobanResources) DecodeFrom(d *Decoder) {
	r.Footprint.DecodeFrom(d)
	r.Instructions = d.Uint32()
	r.DiskReadBytes = d.Uint32()
	r.WriteBytes = d.Uint32()
}

// SorobanResourcesExtV0 lists the footprint indexes of archived entries to restore automatically
type SorobanResourcesExtV0 struct {
	ArchivedSorobanEntries []uint32
}

func (r SorobanResourcesExtV0) EncodeTo(e *Encoder) {
	e.ArrayLen("SorobanResourcesExtV0.ArchivedSorobanEntries", len(r.ArchivedSorobanEntries), Unbounded)
	for _, idx := range r.ArchivedSorobanEntries {
		e.Uint32(idx)
	}
}

func (r *SorobanResourcesExtV0) DecodeFrom(d *Decoder) {
	n := d.ArrayLen("SorobanResourcesExtV0.ArchivedSorobanEntries", Unbounded)
	if d.err != nil {
		return
	}
	r.ArchivedSorobanEntries = make([]uint32, n)
	for i := range r.ArchivedSorobanEntries {
		r.ArchivedSorobanEntries[i] = d.Uint32()
	}
}

type SorobanTransactionDataExt struct {
	V           int32
	ResourceExt *SorobanResourcesExtV0
}

func (x SorobanTransactionDataExt) EncodeTo(e *Encoder) {
	switch x.V {
	case 0:
		e.Int32(0)
	case 1:
		if x.ResourceExt == nil {
			e.ArmMissing("SorobanTransactionDataExt", x.V)
			return
		}
		e.Int32(1)
		x.ResourceExt.EncodeTo(e)
	default:
		e.UnknownArm("SorobanTransactionDataExt", x.V)
	}
}

func (x *SorobanTransactionDataExt) DecodeFrom(d *Decoder) {
	x.V = d.Int32()
	if d.err != nil {
		return
	}
	switch x.V {
	case 0:
	case 1:
		x.ResourceExt = new(SorobanResourcesExtV0)
		x.ResourceExt.DecodeFrom(d)
	default:
		d.UnknownArm("SorobanTransactionDataExt", x.V)
	}
}

// SorobanTransactionData declares the footprint and resource limits of a Soroban transaction
type SorobanTransactionData struct {
	Ext         SorobanTransactionDataExt
	Resources   SorobanResources
	ResourceFee int64
}

func (s SorobanTransactionData) EncodeTo(e *Encoder) {
	s.Ext.EncodeTo(e)
	s.Resources.EncodeTo(e)
	e.Int64(s.ResourceFee)
}

func (s *SorobanTransactionData) DecodeFrom(d *Decoder) {
	s.Ext.DecodeFrom(d)
	s.Resources.DecodeFrom(d)
	s.ResourceFee = d.Int64()
}
