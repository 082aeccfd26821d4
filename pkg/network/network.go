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

package network

import (
	"crypto/sha256"

	"github.com/hyperledger/firefly-soroban/pkg/xdr"
)

const (
	PublicNetworkPassphrase     = "Public Global Stellar Network ; September 2015"
	TestNetworkPassphrase       = "Test SDF Network ; September 2015"
	FutureNetworkPassphrase     = "Test SDF Future Network ; October 2022"
	StandaloneNetworkPassphrase = "Standalone Network ; February 2017"
)

// ID is the SHA-256 of the network passphrase, binding signatures to one network
func ID(passphrase string) xdr.Hash {
	return sha256.Sum256([]byte(passphrase))
}

func hashPayload(payload xdr.TransactionSignaturePayload) ([32]byte, error) {
	b, err := xdr.Marshal(payload)
	if err != nil {
		return [32]byte{}, err
	}
	return sha256.Sum256(b), nil
}

// HashTransaction returns the hash that signers of tx sign
func HashTransaction(tx xdr.Transaction, passphrase string) ([32]byte, error) {
	return hashPayload(xdr.TransactionSignaturePayload{
		NetworkID: ID(passphrase),
		TaggedTransaction: xdr.TransactionSignaturePayloadTaggedTransaction{
			Type: xdr.EnvelopeTypeEnvelopeTypeTx,
			Tx:   &tx,
		},
	})
}

// HashTransactionV0 hashes a legacy transaction in its V1 form
func HashTransactionV0(tx xdr.TransactionV0, passphrase string) ([32]byte, error) {
	return HashTransaction(tx.ToV1(), passphrase)
}

func HashFeeBumpTransaction(tx xdr.FeeBumpTransaction, passphrase string) ([32]byte, error) {
	return hashPayload(xdr.TransactionSignaturePayload{
		NetworkID: ID(passphrase),
		TaggedTransaction: xdr.TransactionSignaturePayloadTaggedTransaction{
			Type:    xdr.EnvelopeTypeEnvelopeTypeTxFeeBump,
			FeeBump: &tx,
		},
	})
}

// HashEnvelope returns the hash of the outermost transaction of env
func HashEnvelope(env xdr.TransactionEnvelope, passphrase string) ([32]byte, error) {
	switch {
	case env.V1 != nil:
		return HashTransaction(env.V1.Tx, passphrase)
	case env.V0 != nil:
		return HashTransactionV0(env.V0.Tx, passphrase)
	case env.FeeBump != nil:
		return HashFeeBumpTransaction(env.FeeBump.Tx, passphrase)
	default:
		_, err := xdr.Marshal(env)
		return [32]byte{}, err
	}
}

// HashIDPreimage returns the SHA-256 of the encoded preimage, as used for
// contract ids and Soroban authorization payloads
func HashIDPreimage(preimage xdr.HashIDPreimage) (xdr.Hash, error) {
	b, err := xdr.Marshal(preimage)
	if err != nil {
		return xdr.Hash{}, err
	}
	return sha256.Sum256(b), nil
}

// ContractID derives the id of a contract created from the given preimage on a network
func ContractID(preimage xdr.ContractIDPreimage, passphrase string) (xdr.Hash, error) {
	return HashIDPreimage(xdr.HashIDPreimage{
		Type: xdr.EnvelopeTypeEnvelopeTypeContractID,
		ContractID: &xdr.HashIDPreimageContractID{
			NetworkID:          ID(passphrase),
			ContractIDPreimage: preimage,
		},
	})
}
