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

package sbmsgs

import (
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffe = func(key, translation string, statusHint ...int) i18n.ErrorMessageKey {
	return i18n.FFE(language.AmericanEnglish, key, translation, statusHint...)
}

//revive:disable
var (
	// Wire format
	MsgXDRShortBuffer           = ffe("FF21200", "XDR decode failed at offset %d: need %d bytes, %d remaining")
	MsgXDRNonZeroPadding        = ffe("FF21201", "XDR decode failed at offset %d: non-zero padding byte")
	MsgXDRInvalidBool           = ffe("FF21202", "XDR decode failed at offset %d: invalid boolean value %d")
	MsgXDRLengthExceedsMax      = ffe("FF21203", "XDR length %d exceeds maximum %d for %s")
	MsgXDRInvalidEnum           = ffe("FF21204", "XDR value %d is not a valid %s")
	MsgXDRUnknownDiscriminant   = ffe("FF21205", "XDR union %s has no arm for discriminant %d")
	MsgXDRFixedLength           = ffe("FF21206", "XDR fixed opaque %s requires %d bytes, got %d")
	MsgXDRTrailingBytes         = ffe("FF21207", "XDR decode of %s left %d trailing bytes")
	MsgXDRUnionArmMissing       = ffe("FF21208", "XDR union %s with discriminant %d has no value set")
	MsgXDRMaxDepth              = ffe("FF21209", "XDR decode exceeded maximum nesting depth %d")
	MsgXDRInvalidBase64         = ffe("FF21210", "Invalid base64 XDR: %s")
	MsgXDRRoundTripMismatch     = ffe("FF21211", "XDR %s did not re-encode to identical bytes after decode")
	MsgXDRUnsupportedArm        = ffe("FF21212", "XDR union %s arm %s is not supported by this client")
	MsgXDREmpty                 = ffe("FF21213", "Empty XDR input for %s", http.StatusBadRequest)
	MsgXDRWriteFailed           = ffe("FF21214", "XDR encode of %s failed")
	MsgXDRArrayTooLarge         = ffe("FF21215", "XDR decode failed at offset %d: array count %d cannot fit in %d remaining bytes")
	MsgXDRInvalidUTF8String     = ffe("FF21216", "XDR %s string value is not valid for this field")

	// Keys and addresses
	MsgStrkeyInvalid            = ffe("FF21220", "Invalid strkey '%s': %s", http.StatusBadRequest)
	MsgStrkeyWrongVersion       = ffe("FF21221", "Strkey has version byte %d, expected %d", http.StatusBadRequest)
	MsgStrkeyChecksum           = ffe("FF21222", "Strkey checksum mismatch", http.StatusBadRequest)
	MsgKeypairNoSecret          = ffe("FF21223", "Keypair for '%s' has no secret key and cannot sign")
	MsgKeypairInvalidSeed       = ffe("FF21224", "Seed must be %d bytes, got %d", http.StatusBadRequest)
	MsgKeypairSignatureInvalid  = ffe("FF21225", "Signature verification failed for '%s'")
	MsgKeypairMnemonicInvalid   = ffe("FF21226", "Invalid mnemonic phrase", http.StatusBadRequest)
	MsgKeypairDeriveFailed      = ffe("FF21227", "Failed to derive key at index %d")
	MsgAddressUnsupported       = ffe("FF21228", "Address '%s' is not a supported account or contract address", http.StatusBadRequest)

	// Transaction model
	MsgTxNoOperations           = ffe("FF21230", "Transaction must contain between 1 and %d operations, got %d", http.StatusBadRequest)
	MsgTxNoSourceAccount        = ffe("FF21231", "Transaction source account is required", http.StatusBadRequest)
	MsgTxInvalidBaseFee         = ffe("FF21232", "Base fee %d is lower than the network minimum %d", http.StatusBadRequest)
	MsgTxFeeOverflow            = ffe("FF21233", "Transaction fee %d exceeds the uint32 limit", http.StatusBadRequest)
	MsgTxMissingTimebounds      = ffe("FF21234", "Transaction preconditions must set time bounds (use InfiniteTimeout explicitly for none)", http.StatusBadRequest)
	MsgTxInvalidOperation       = ffe("FF21235", "Invalid operation %d (%s): %s", http.StatusBadRequest)
	MsgTxSequenceFailed         = ffe("FF21236", "Failed to obtain sequence number for account '%s'")
	MsgTxSorobanMultipleOps     = ffe("FF21237", "A Soroban transaction must contain exactly one operation", http.StatusBadRequest)
	MsgTxNotSoroban             = ffe("FF21238", "Transaction does not contain a Soroban operation")
	MsgTxUnsupportedEnvelope    = ffe("FF21239", "Unsupported envelope type %s")
	MsgTxFeeBumpTooLow          = ffe("FF21240", "Fee bump fee %d is lower than the minimum %d", http.StatusBadRequest)
	MsgTxFeeBumpInnerUnsigned   = ffe("FF21241", "Inner transaction of a fee bump must be signed", http.StatusBadRequest)
	MsgTxSignatureLimit         = ffe("FF21242", "Transaction already carries the maximum of %d signatures")
	MsgTxMemoTooLong            = ffe("FF21243", "Text memo is %d bytes, maximum is %d", http.StatusBadRequest)
	MsgTxSignerNotFound         = ffe("FF21244", "No valid signature found for signer '%s'")
	MsgTxInvalidField           = ffe("FF21245", "Invalid value for %s: %s", http.StatusBadRequest)
	MsgTxNotSorobanOperation    = ffe("FF21246", "Operation %s cannot carry authorization entries")

	// Authorization
	MsgAuthEntrySignFailed      = ffe("FF21250", "Failed to sign authorization entry for '%s'")
	MsgAuthDelegateFailed       = ffe("FF21251", "Delegate signer failed for authorization entry '%s'")
	MsgAuthSignerMismatch       = ffe("FF21252", "Signer '%s' cannot authorize an entry for '%s'")
	MsgAuthExpirationRequired   = ffe("FF21253", "Authorization entries require a signature expiration ledger", http.StatusBadRequest)
	MsgAuthMissingSignatures    = ffe("FF21254", "Authorization entries still need signatures from: %s")
	MsgAuthNoEntriesForAddress  = ffe("FF21255", "No unsigned authorization entries require a signature from '%s'")
	MsgAuthContractAddress      = ffe("FF21256", "Authorization entry for contract '%s' must be signed by the contract itself")
	MsgAuthNonceFailed          = ffe("FF21257", "Failed to generate authorization nonce")
	MsgAuthDelegateWrongEntry   = ffe("FF21258", "Delegate signer returned an entry that does not match the requested invocation")
	MsgAuthSourceCredentials    = ffe("FF21259", "Authorization entry uses source account credentials and is covered by the transaction signature")

	// RPC
	MsgRPCRequestFailed         = ffe("FF21260", "RPC request '%s' failed")
	MsgRPCErrorResponse         = ffe("FF21261", "RPC '%s' returned error code=%d: %s")
	MsgRPCHTTPError             = ffe("FF21262", "RPC '%s' returned HTTP status %d: %s")
	MsgRPCAccountNotFound       = ffe("FF21263", "Account '%s' not found", http.StatusNotFound)
	MsgRPCInvalidResponse       = ffe("FF21264", "RPC '%s' returned an invalid response: %s")
	MsgRPCRateLimited           = ffe("FF21265", "Interrupted waiting for RPC rate limiter")

	// Pipeline
	MsgSimulationFailed         = ffe("FF21270", "Transaction simulation failed: %s")
	MsgRestoreRequired          = ffe("FF21271", "Simulation requires ledger entries to be restored first (minResourceFee=%d)")
	MsgNotSimulated             = ffe("FF21272", "Transaction has not been simulated")
	MsgReadCallNoSign           = ffe("FF21273", "This is a read-only call and does not need to be signed or sent; pass force to do so anyway")
	MsgNotSigned                = ffe("FF21274", "Transaction has not been signed")
	MsgSubmissionFailed         = ffe("FF21275", "Transaction %s submission failed with status %s: %s")
	MsgTransactionFailed        = ffe("FF21276", "Transaction %s failed on-chain: %s")
	MsgTransactionStatusUnknown = ffe("FF21277", "Transaction %s status unknown after %d polling attempts (last status %s)")
	MsgAlreadySubmitted         = ffe("FF21278", "Transaction %s has already been submitted and cannot be reused")
	MsgNoSigner                 = ffe("FF21279", "No transaction signer configured")
	MsgMissingContractID        = ffe("FF21280", "Contract ID is required", http.StatusBadRequest)
	MsgMissingMethod            = ffe("FF21281", "Contract method is required", http.StatusBadRequest)
	MsgMissingPublicKey         = ffe("FF21282", "Invoker public key is required", http.StatusBadRequest)
	MsgNoFootprint              = ffe("FF21283", "Simulation returned no footprint to maintain")
	MsgNoInFlightTransaction    = ffe("FF21284", "No in-flight transaction is recorded")
	MsgInFlightSlotBusy         = ffe("FF21285", "Transaction %s is already in flight; only one in-flight transaction is tracked")
	MsgShuttingDown             = ffe("FF21286", "Shutting down")
	MsgInFlightHashMismatch     = ffe("FF21287", "Persisted envelope hashes to %s, but was recorded as %s")
	MsgNetworkMismatch          = ffe("FF21288", "RPC service is attached to network '%s', but the client is configured for '%s'")

	// Persistence
	MsgLevelDBPathMissing         = ffe("FF21290", "Path must be supplied for LevelDB persistence")
	MsgPersistenceInitFailed      = ffe("FF21291", "Failed to initialize persistence at path '%s'")
	MsgPersistenceMarshalFailed   = ffe("FF21292", "JSON serialization failed while writing to persistence")
	MsgPersistenceUnmarshalFailed = ffe("FF21293", "JSON parsing failed while reading from persistence")
	MsgPersistenceReadFailed      = ffe("FF21294", "Failed to read key '%s' from persistence")
	MsgPersistenceWriteFailed     = ffe("FF21295", "Failed to write key '%s' to persistence")
	MsgPersistenceDeleteFailed    = ffe("FF21296", "Failed to delete key '%s' from persistence")
)
