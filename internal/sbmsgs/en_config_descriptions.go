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
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffc = func(key, translation, fieldType string) i18n.ConfigMessageKey {
	return i18n.FFC(language.AmericanEnglish, key, translation, fieldType)
}

//revive:disable
var (
	ConfigNetworkPassphrase = ffc("config.network.passphrase", "The passphrase of the network transactions are signed for", i18n.StringType)

	ConfigRPCRequestsPerSecond = ffc("config.rpc.requestsPerSecond", "Maximum rate of requests to the RPC server. Zero disables client side rate limiting", i18n.FloatType)
	ConfigRPCBurst             = ffc("config.rpc.burst", "Number of requests that can be made in a burst above the configured rate", i18n.IntType)

	ConfigTransactionsBaseFee           = ffc("config.transactions.baseFee", "Inclusion fee per operation in stroops, added to the resource fee returned by simulation", i18n.IntType)
	ConfigTransactionsTimeout           = ffc("config.transactions.timeout", "Upper time bound set on built transactions", i18n.TimeDurationType)
	ConfigTransactionsPollInterval      = ffc("config.transactions.poll.interval", "Initial delay between status checks of a submitted transaction", i18n.TimeDurationType)
	ConfigTransactionsPollMaxDelay      = ffc("config.transactions.poll.maxDelay", "Maximum delay between status checks of a submitted transaction", i18n.TimeDurationType)
	ConfigTransactionsPollFactor        = ffc("config.transactions.poll.factor", "Factor applied to the delay between status checks", i18n.FloatType)
	ConfigTransactionsPollMaxAttempts   = ffc("config.transactions.poll.maxAttempts", "Number of status checks before a submitted transaction is reported with unknown status", i18n.IntType)
	ConfigTransactionsRestoreIfNeeded   = ffc("config.transactions.restoreIfNeeded", "Automatically submit a restore transaction when simulation reports archived entries", i18n.BooleanType)
	ConfigAuthValidityLedgers           = ffc("config.auth.validityLedgers", "Number of ledgers after the latest ledger that a signed authorization entry stays valid for", i18n.IntType)
	ConfigPersistenceLevelDBPath        = ffc("config.persistence.leveldb.path", "The path for the LevelDB store of the in-flight transaction. Empty disables persistence", i18n.StringType)
	ConfigPersistenceLevelDBSyncWrites  = ffc("config.persistence.leveldb.syncWrites", "Whether to synchronously perform writes to the storage", i18n.BooleanType)
	ConfigPersistenceLevelDBMaxHandles  = ffc("config.persistence.leveldb.maxHandles", "The maximum number of cached file handles LevelDB should keep open", i18n.IntType)
	ConfigMetricsEnabled                = ffc("config.metrics.enabled", "Enables metrics collection for simulations and submissions", i18n.BooleanType)
)
