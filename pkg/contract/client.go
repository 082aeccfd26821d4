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

package contract

import (
	"context"
	"crypto/rand"
	"crypto/sha256"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-common/pkg/retry"
	"github.com/hyperledger/firefly-soroban/internal/metrics"
	"github.com/hyperledger/firefly-soroban/internal/persistence"
	"github.com/hyperledger/firefly-soroban/internal/persistence/leveldb"
	"github.com/hyperledger/firefly-soroban/internal/rpcclient"
	"github.com/hyperledger/firefly-soroban/internal/sbconfig"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/keypair"
	"github.com/hyperledger/firefly-soroban/pkg/network"
	"github.com/hyperledger/firefly-soroban/pkg/rpcapi"
	"github.com/hyperledger/firefly-soroban/pkg/strkey"
	"github.com/hyperledger/firefly-soroban/pkg/txnbuild"
	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

// NullAccount is the source used to simulate read calls when the client has
// no public key. Transactions built on it can never be signed.
const NullAccount = "GAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAWHF"

// TransactionSigner applies the transaction level signature of the invoker
type TransactionSigner interface {
	Address() string
	SignTransaction(ctx context.Context, tx *txnbuild.Transaction, passphrase string) (*txnbuild.Transaction, error)
}

type keypairSigner struct {
	kp keypair.KP
}

// KeypairSigner signs transactions with a local key
func KeypairSigner(kp keypair.KP) TransactionSigner {
	return &keypairSigner{kp: kp}
}

func (s *keypairSigner) Address() string {
	return s.kp.Address()
}

func (s *keypairSigner) SignTransaction(_ context.Context, tx *txnbuild.Transaction, passphrase string) (*txnbuild.Transaction, error) {
	return tx.Sign(passphrase, s.kp)
}

type ClientOptions struct {
	// ContractID is the C... address of the contract invoked by Invoke
	ContractID string
	// PublicKey is the G... address of the invoker and transaction source
	PublicKey string
	// Signer signs the restore transactions submitted when simulation
	// reports archived entries
	Signer TransactionSigner
	// Persistence records the in-flight transaction, so it can be resumed
	Persistence persistence.Persistence
}

type pipelineConfig struct {
	passphrase          string
	baseFee             int64
	timeoutSeconds      int64
	restoreIfNeeded     bool
	authValidityLedgers uint32
	poll                retry.Retry
	pollMaxAttempts     int
}

func readConfig() pipelineConfig {
	maxAttempts := config.GetInt(sbconfig.TransactionsPollMaxAttempts)
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return pipelineConfig{
		passphrase:          config.GetString(sbconfig.NetworkPassphrase),
		baseFee:             config.GetInt64(sbconfig.TransactionsBaseFee),
		timeoutSeconds:      int64(config.GetDuration(sbconfig.TransactionsTimeout).Seconds()),
		restoreIfNeeded:     config.GetBool(sbconfig.TransactionsRestoreIfNeeded),
		authValidityLedgers: uint32(config.GetInt(sbconfig.AuthValidityLedgers)),
		poll: retry.Retry{
			InitialDelay: config.GetDuration(sbconfig.TransactionsPollInterval),
			MaximumDelay: config.GetDuration(sbconfig.TransactionsPollMaxDelay),
			Factor:       config.GetFloat64(sbconfig.TransactionsPollFactor),
		},
		pollMaxAttempts: maxAttempts,
	}
}

// Client assembles and submits transactions against one contract. It holds
// no sequence number cache, the source account is reloaded for every build.
type Client struct {
	api         rpcapi.API
	persistence persistence.Persistence
	metrics     metrics.Metrics
	conf        pipelineConfig
	contractID  string
	contract    xdr.ScAddress
	publicKey   string
	signer      TransactionSigner
}

func NewClient(ctx context.Context, api rpcapi.API, opts ClientOptions) (*Client, error) {
	c := &Client{
		api:         api,
		persistence: opts.Persistence,
		metrics:     metrics.NewMetricsManager(ctx),
		conf:        readConfig(),
		contractID:  opts.ContractID,
		publicKey:   opts.PublicKey,
		signer:      opts.Signer,
	}
	if c.contractID != "" {
		if !strkey.IsValidContract(c.contractID) {
			return nil, i18n.NewError(ctx, sbmsgs.MsgTxInvalidField, "contractId", c.contractID)
		}
		contract, err := strkey.ScAddressFromString(c.contractID)
		if err != nil {
			return nil, err
		}
		c.contract = contract
	}
	if c.publicKey != "" && !strkey.IsValidEd25519PublicKey(c.publicKey) {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxInvalidField, "publicKey", c.publicKey)
	}
	if c.conf.baseFee < txnbuild.MinBaseFee {
		return nil, i18n.NewError(ctx, sbmsgs.MsgTxInvalidBaseFee, c.conf.baseFee, txnbuild.MinBaseFee)
	}
	return c, nil
}

// NewClientFromConfig connects to the RPC service of the rpc config section.
// The in-flight store is opened when a LevelDB path is configured, unless
// opts already carries one.
func NewClientFromConfig(ctx context.Context, opts ClientOptions) (*Client, error) {
	api, err := rpcclient.NewRPCClient(ctx, sbconfig.RPCConfig)
	if err != nil {
		return nil, err
	}
	if opts.Persistence == nil && config.GetString(sbconfig.PersistenceLevelDBPath) != "" {
		if opts.Persistence, err = leveldb.NewLevelDBPersistence(ctx); err != nil {
			return nil, err
		}
	}
	c, err := NewClient(ctx, api, opts)
	if err != nil && opts.Persistence != nil {
		opts.Persistence.Close(ctx)
	}
	return c, err
}

// VerifyNetwork checks the RPC service is attached to the network whose
// passphrase the client signs with
func (c *Client) VerifyNetwork(ctx context.Context) error {
	res, _, err := c.api.GetNetwork(ctx, &rpcapi.GetNetworkRequest{})
	if err != nil {
		return err
	}
	if res.Passphrase != c.conf.passphrase {
		return i18n.NewError(ctx, sbmsgs.MsgNetworkMismatch, res.Passphrase, c.conf.passphrase)
	}
	log.L(ctx).Infof("Connected to network '%s' protocol=%d", res.Passphrase, res.ProtocolVersion)
	return nil
}

func (c *Client) Close(ctx context.Context) {
	if c.persistence != nil {
		c.persistence.Close(ctx)
	}
}

func (c *Client) ContractID() string { return c.contractID }

func (c *Client) PublicKey() string { return c.publicKey }

func (c *Client) Passphrase() string { return c.conf.passphrase }

// loadAccount returns the current sequence of the source account from the
// network. Read calls without a public key use the null account.
func (c *Client) loadAccount(ctx context.Context) (*txnbuild.SimpleAccount, error) {
	if c.publicKey == "" {
		acct := txnbuild.NewSimpleAccount(NullAccount, 0)
		return &acct, nil
	}
	res, _, err := c.api.GetAccount(ctx, &rpcapi.GetAccountRequest{Address: c.publicKey})
	if err != nil {
		return nil, err
	}
	acct := txnbuild.NewSimpleAccount(res.AccountID, res.Sequence)
	return &acct, nil
}

func (c *Client) buildTransaction(ctx context.Context, op txnbuild.SorobanOperation) (*txnbuild.Transaction, error) {
	acct, err := c.loadAccount(ctx)
	if err != nil {
		return nil, newError(ErrorReasonInvalidInputs, err)
	}
	tx, err := txnbuild.NewTransaction(txnbuild.TransactionParams{
		SourceAccount:        acct,
		IncrementSequenceNum: true,
		Operations:           []txnbuild.Operation{op},
		BaseFee:              c.conf.baseFee,
		Preconditions:        txnbuild.Preconditions{TimeBounds: txnbuild.NewTimeout(c.conf.timeoutSeconds)},
	})
	if err != nil {
		return nil, newError(ErrorReasonInvalidInputs, err)
	}
	return tx, nil
}

// assemble builds a transaction for op and simulates it
func (c *Client) assemble(ctx context.Context, method string, op txnbuild.SorobanOperation) (*AssembledTransaction, error) {
	tx, err := c.buildTransaction(ctx, op)
	if err != nil {
		return nil, err
	}
	at := &AssembledTransaction{
		client: c,
		method: method,
		op:     op,
		draft:  tx,
	}
	if err := at.Simulate(ctx); err != nil {
		return nil, err
	}
	return at, nil
}

// Invoke builds and simulates a call of method on the contract. A read call
// can be resolved from the result straight away.
func (c *Client) Invoke(ctx context.Context, method string, args ...xdr.ScVal) (*AssembledTransaction, error) {
	if c.contractID == "" {
		return nil, newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgMissingContractID))
	}
	if method == "" {
		return nil, newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgMissingMethod))
	}
	ctx = log.WithLogField(ctx, "method", method)
	return c.assemble(ctx, method, txnbuild.NewInvokeContract(c.contract, method, args, ""))
}

// UploadWasm installs contract code, returning the hash that identifies it
func (c *Client) UploadWasm(ctx context.Context, wasm []byte) (*AssembledTransaction, xdr.Hash, error) {
	if c.publicKey == "" {
		return nil, xdr.Hash{}, newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgMissingPublicKey))
	}
	hash := xdr.Hash(sha256.Sum256(wasm))
	code := append([]byte(nil), wasm...)
	op := &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeUploadContractWasm,
			Wasm: &code,
		},
	}
	at, err := c.assemble(ctx, "uploadWasm", op)
	if err != nil {
		return nil, xdr.Hash{}, err
	}
	return at, hash, nil
}

// Deploy creates a contract instance of wasmHash owned by the invoker,
// running the constructor in the same invocation. A nil salt is replaced by
// random bytes. The returned id is where the contract will live.
func (c *Client) Deploy(ctx context.Context, wasmHash xdr.Hash, salt *xdr.Uint256, constructorArgs ...xdr.ScVal) (*AssembledTransaction, string, error) {
	if c.publicKey == "" {
		return nil, "", newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgMissingPublicKey))
	}
	if salt == nil {
		salt = &xdr.Uint256{}
		if _, err := rand.Read(salt[:]); err != nil {
			return nil, "", newError(ErrorReasonInvalidInputs, err)
		}
	}
	deployer, err := strkey.ScAddressFromString(c.publicKey)
	if err != nil {
		return nil, "", newError(ErrorReasonInvalidInputs, err)
	}
	preimage := xdr.ContractIDPreimage{
		Type: xdr.ContractIDPreimageTypeContractIDPreimageFromAddress,
		FromAddress: &xdr.ContractIDPreimageFromAddress{
			Address: deployer,
			Salt:    *salt,
		},
	}
	contractHash, err := network.ContractID(preimage, c.conf.passphrase)
	if err != nil {
		return nil, "", newError(ErrorReasonInvalidInputs, err)
	}
	contractID, err := strkey.Encode(strkey.VersionByteContract, contractHash[:])
	if err != nil {
		return nil, "", newError(ErrorReasonInvalidInputs, err)
	}

	op := &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeCreateContractV2,
			CreateContractV2: &xdr.CreateContractArgsV2{
				ContractIDPreimage: preimage,
				Executable: xdr.ContractExecutable{
					Type:     xdr.ContractExecutableTypeContractExecutableWasm,
					WasmHash: &wasmHash,
				},
				ConstructorArgs: constructorArgs,
			},
		},
	}
	ctx = log.WithLogField(ctx, "contract", contractID)
	at, err := c.assemble(ctx, "deploy", op)
	if err != nil {
		return nil, "", err
	}
	at.instanceKey = &xdr.LedgerKey{
		Type: xdr.LedgerEntryTypeContractData,
		ContractData: &xdr.LedgerKeyContractData{
			Contract:   xdr.ContractAddress(contractHash),
			Key:        xdr.ScvLedgerKeyContractInstance(),
			Durability: xdr.ContractDataDurabilityPersistent,
		},
	}
	return at, contractID, nil
}

// discoverFootprint simulates op to learn which ledger entries it touches
func (c *Client) discoverFootprint(ctx context.Context, op txnbuild.SorobanOperation) ([]xdr.LedgerKey, error) {
	tx, err := c.buildTransaction(ctx, op)
	if err != nil {
		return nil, err
	}
	sim, err := c.simulate(ctx, tx)
	if err != nil {
		return nil, err
	}
	if sim.RestorePreamble != nil {
		// Archived entries are part of the footprint the preamble restores
		return append(append([]xdr.LedgerKey(nil), sim.RestorePreamble.TransactionData.Resources.Footprint.ReadWrite...),
			sim.RestorePreamble.TransactionData.Resources.Footprint.ReadOnly...), nil
	}
	if sim.TransactionData == nil {
		return nil, newError(ErrorReasonSimulationFailed, i18n.NewError(ctx, sbmsgs.MsgNoFootprint))
	}
	fp := sim.TransactionData.Resources.Footprint
	keys := append(append([]xdr.LedgerKey(nil), fp.ReadOnly...), fp.ReadWrite...)
	if len(keys) == 0 {
		return nil, newError(ErrorReasonSimulationFailed, i18n.NewError(ctx, sbmsgs.MsgNoFootprint))
	}
	return keys, nil
}

func footprintData(readOnly, readWrite []xdr.LedgerKey) *xdr.SorobanTransactionData {
	return &xdr.SorobanTransactionData{
		Resources: xdr.SorobanResources{
			Footprint: xdr.LedgerFootprint{ReadOnly: readOnly, ReadWrite: readWrite},
		},
	}
}

// ExtendTTL extends the live-until ledger of every entry op touches. The
// footprint is discovered by simulating op, and is carried read-only.
func (c *Client) ExtendTTL(ctx context.Context, op txnbuild.SorobanOperation, extendTo uint32) (*AssembledTransaction, error) {
	if c.publicKey == "" {
		return nil, newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgMissingPublicKey))
	}
	keys, err := c.discoverFootprint(ctx, op)
	if err != nil {
		return nil, err
	}
	return c.assemble(ctx, "extendTTL", &txnbuild.ExtendFootprintTTL{
		ExtendTo:    extendTo,
		SorobanData: footprintData(keys, nil),
	})
}

// Restore restores the archived entries op touches. Restoration needs the
// keys read-write, so the read-only keys of the discovered footprint move over.
func (c *Client) Restore(ctx context.Context, op txnbuild.SorobanOperation) (*AssembledTransaction, error) {
	if c.publicKey == "" {
		return nil, newError(ErrorReasonInvalidInputs, i18n.NewError(ctx, sbmsgs.MsgMissingPublicKey))
	}
	keys, err := c.discoverFootprint(ctx, op)
	if err != nil {
		return nil, err
	}
	return c.assemble(ctx, "restore", &txnbuild.RestoreFootprint{
		SorobanData: footprintData(nil, keys),
	})
}
