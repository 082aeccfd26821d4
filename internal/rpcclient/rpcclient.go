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

package rpcclient

import (
	"context"
	"sync/atomic"

	"github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-soroban/internal/sbconfig"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
	"github.com/hyperledger/firefly-soroban/pkg/rpcapi"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	codeInvalidRequest = -32600
	codeInvalidParams  = -32602
)

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      int64       `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params,omitempty"`
}

type rpcError struct {
	Code    int64            `json:"code"`
	Message string           `json:"message"`
	Data    *fftypes.JSONAny `json:"data,omitempty"`
}

type rpcResponse struct {
	JSONRPC string           `json:"jsonrpc"`
	ID      *fftypes.JSONAny `json:"id"`
	Result  *fftypes.JSONAny `json:"result,omitempty"`
	Error   *rpcError        `json:"error,omitempty"`
}

type rpcClient struct {
	client    *resty.Client
	limiter   *rate.Limiter
	requestID atomic.Int64
}

func InitConfig(conf config.Section) {
	ffresty.InitConfig(conf)
	conf.AddKnownKey(sbconfig.RPCRequestsPerSecond, 0)
	conf.AddKnownKey(sbconfig.RPCBurst, 10)
}

// NewRPCClient returns a JSON-RPC 2.0 implementation of the RPC boundary.
// Transport retries are configured on the resty client by ffresty.
func NewRPCClient(ctx context.Context, conf config.Section) (rpcapi.API, error) {
	client, err := ffresty.New(ctx, conf)
	if err != nil {
		return nil, err
	}
	c := &rpcClient{client: client}
	if rps := conf.GetFloat64(sbconfig.RPCRequestsPerSecond); rps > 0 {
		burst := conf.GetInt(sbconfig.RPCBurst)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return c, nil
}

func mapErrorReason(code int64) rpcapi.ErrorReason {
	switch code {
	case codeInvalidRequest, codeInvalidParams:
		return rpcapi.ErrorReasonInvalidInputs
	default:
		return rpcapi.ErrorReasonRPCError
	}
}

func (c *rpcClient) invokeRPC(ctx context.Context, method string, params interface{}, result interface{}) (rpcapi.ErrorReason, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return rpcapi.ErrorReasonDownstreamDown, i18n.WrapError(ctx, err, sbmsgs.MsgRPCRateLimited)
		}
	}

	id := c.requestID.Add(1)
	l := log.L(ctx).WithFields(logrus.Fields{"method": method, "rpcId": id})
	l.Tracef("RPC --> %s", method)

	var rpcRes rpcResponse
	res, err := c.client.R().
		SetContext(ctx).
		SetBody(&rpcRequest{JSONRPC: "2.0", ID: id, Method: method, Params: params}).
		SetResult(&rpcRes).
		SetError(&rpcRes).
		Post("")
	if err != nil {
		l.Errorf("RPC <-- %s failed: %s", method, err)
		return rpcapi.ErrorReasonDownstreamDown, i18n.WrapError(ctx, err, sbmsgs.MsgRPCRequestFailed, method)
	}
	if rpcRes.Error != nil {
		l.Debugf("RPC <-- %s error code=%d: %s", method, rpcRes.Error.Code, rpcRes.Error.Message)
		return mapErrorReason(rpcRes.Error.Code), i18n.NewError(ctx, sbmsgs.MsgRPCErrorResponse, method, rpcRes.Error.Code, rpcRes.Error.Message)
	}
	if res.IsError() {
		l.Debugf("RPC <-- %s HTTP %d", method, res.StatusCode())
		return rpcapi.ErrorReasonDownstreamDown, i18n.NewError(ctx, sbmsgs.MsgRPCHTTPError, method, res.StatusCode(), res.String())
	}
	if rpcRes.Result == nil {
		return rpcapi.ErrorReasonInvalidResponse, i18n.NewError(ctx, sbmsgs.MsgRPCInvalidResponse, method, "missing result")
	}
	if result != nil {
		if err := rpcRes.Result.Unmarshal(ctx, result); err != nil {
			return rpcapi.ErrorReasonInvalidResponse, i18n.WrapError(ctx, err, sbmsgs.MsgRPCInvalidResponse, method, err.Error())
		}
	}
	l.Tracef("RPC <-- %s", method)
	return "", nil
}
