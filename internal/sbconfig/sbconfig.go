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

package sbconfig

import (
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/spf13/viper"
)

var ffc = config.AddRootKey

var (
	// NetworkPassphrase is the passphrase that scopes every signature payload
	NetworkPassphrase = ffc("network.passphrase")
	// TransactionsBaseFee is the per-operation inclusion fee in stroops
	TransactionsBaseFee = ffc("transactions.baseFee")
	// TransactionsTimeout is the upper time bound applied to built transactions
	TransactionsTimeout = ffc("transactions.timeout")
	// TransactionsPollInterval is the initial delay between getTransaction checks
	TransactionsPollInterval = ffc("transactions.poll.interval")
	// TransactionsPollMaxDelay caps the delay between getTransaction checks
	TransactionsPollMaxDelay = ffc("transactions.poll.maxDelay")
	// TransactionsPollFactor is the backoff factor between getTransaction checks
	TransactionsPollFactor = ffc("transactions.poll.factor")
	// TransactionsPollMaxAttempts is the attempt budget before the status is reported unknown
	TransactionsPollMaxAttempts = ffc("transactions.poll.maxAttempts")
	// TransactionsRestoreIfNeeded submits a restore transaction when simulation returns a restore preamble
	TransactionsRestoreIfNeeded = ffc("transactions.restoreIfNeeded")
	// AuthValidityLedgers is how many ledgers past the latest a signed auth entry stays valid
	AuthValidityLedgers = ffc("auth.validityLedgers")
	// PersistenceLevelDBPath is the directory of the in-flight transaction store
	PersistenceLevelDBPath = ffc("persistence.leveldb.path")
	// PersistenceLevelDBSyncWrites enables fsync on every write
	PersistenceLevelDBSyncWrites = ffc("persistence.leveldb.syncWrites")
	// PersistenceLevelDBMaxHandles bounds the open file handle cache
	PersistenceLevelDBMaxHandles = ffc("persistence.leveldb.maxHandles")
	// MetricsEnabled turns on the prometheus collectors
	MetricsEnabled = ffc("metrics.enabled")
)

const (
	RPCRequestsPerSecond = "requestsPerSecond"
	RPCBurst             = "burst"
)

// TestnetPassphrase is used when no passphrase is configured
const TestnetPassphrase = "Test SDF Network ; September 2015"

var RPCConfig config.Section

func setDefaults() {
	viper.SetDefault(string(NetworkPassphrase), TestnetPassphrase)
	viper.SetDefault(string(TransactionsBaseFee), 100)
	viper.SetDefault(string(TransactionsTimeout), "5m")
	viper.SetDefault(string(TransactionsPollInterval), "1s")
	viper.SetDefault(string(TransactionsPollMaxDelay), "10s")
	viper.SetDefault(string(TransactionsPollFactor), 1.0)
	viper.SetDefault(string(TransactionsPollMaxAttempts), 30)
	viper.SetDefault(string(TransactionsRestoreIfNeeded), false)
	viper.SetDefault(string(AuthValidityLedgers), 100)
	viper.SetDefault(string(PersistenceLevelDBSyncWrites), false)
	viper.SetDefault(string(PersistenceLevelDBMaxHandles), 100)
	viper.SetDefault(string(MetricsEnabled), false)
}

func Reset() {
	config.RootConfigReset(setDefaults)

	RPCConfig = config.RootSection("rpc")
	ffresty.InitConfig(RPCConfig)
	RPCConfig.AddKnownKey(RPCRequestsPerSecond, 0)
	RPCConfig.AddKnownKey(RPCBurst, 10)
}
