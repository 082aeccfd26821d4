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

package strkey

import (
	"context"
	"encoding/base32"
	"encoding/binary"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
)

// VersionByte is the leading byte of a strkey, selecting its first base32 character
type VersionByte byte

const (
	VersionByteAccountID        VersionByte = 6 << 3  // G
	VersionByteMuxedAccount     VersionByte = 12 << 3 // M
	VersionByteSeed             VersionByte = 18 << 3 // S
	VersionByteHashTx           VersionByte = 19 << 3 // T
	VersionByteHashX            VersionByte = 23 << 3 // X
	VersionByteSignedPayload    VersionByte = 15 << 3 // P
	VersionByteContract         VersionByte = 2 << 3  // C
	VersionByteLiquidityPool    VersionByte = 11 << 3 // L
	VersionByteClaimableBalance VersionByte = 1 << 3  // B
)

var payloadLengths = map[VersionByte]int{
	VersionByteAccountID:        32,
	VersionByteMuxedAccount:     40,
	VersionByteSeed:             32,
	VersionByteHashTx:           32,
	VersionByteHashX:            32,
	VersionByteContract:         32,
	VersionByteLiquidityPool:    32,
	VersionByteClaimableBalance: 33,
}

// signed payloads are a 32 byte key, a 4 byte length, and up to 64 bytes of padded payload
const (
	minSignedPayloadLength = 32 + 4 + 4
	maxSignedPayloadLength = 32 + 4 + 64
)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

func crc16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func checkLength(ctx context.Context, version VersionByte, n int) error {
	if version == VersionByteSignedPayload {
		if n < minSignedPayloadLength || n > maxSignedPayloadLength {
			return i18n.NewError(ctx, sbmsgs.MsgStrkeyInvalid, "", "invalid signed payload length")
		}
		return nil
	}
	expected, ok := payloadLengths[version]
	if !ok {
		return i18n.NewError(ctx, sbmsgs.MsgStrkeyWrongVersion, version, 0)
	}
	if n != expected {
		return i18n.NewError(ctx, sbmsgs.MsgStrkeyInvalid, "", "invalid payload length")
	}
	return nil
}

// Encode returns the strkey of payload under the given version
func Encode(version VersionByte, payload []byte) (string, error) {
	if err := checkLength(context.Background(), version, len(payload)); err != nil {
		return "", err
	}
	raw := make([]byte, 0, 1+len(payload)+2)
	raw = append(raw, byte(version))
	raw = append(raw, payload...)
	raw = binary.LittleEndian.AppendUint16(raw, crc16(raw))
	return encoding.EncodeToString(raw), nil
}

// MustEncode is Encode for payloads already known to have the right length
func MustEncode(version VersionByte, payload []byte) string {
	s, err := Encode(version, payload)
	if err != nil {
		panic(err)
	}
	return s
}

func decodeRaw(ctx context.Context, s string) (VersionByte, []byte, error) {
	raw, err := encoding.DecodeString(s)
	if err != nil {
		return 0, nil, i18n.WrapError(ctx, err, sbmsgs.MsgStrkeyInvalid, s, err.Error())
	}
	if len(raw) < 3 {
		return 0, nil, i18n.NewError(ctx, sbmsgs.MsgStrkeyInvalid, s, "too short")
	}
	// reject non-canonical encodings, where unused trailing bits are set
	if encoding.EncodeToString(raw) != s {
		return 0, nil, i18n.NewError(ctx, sbmsgs.MsgStrkeyInvalid, s, "non-canonical encoding")
	}
	body, checksum := raw[:len(raw)-2], raw[len(raw)-2:]
	if binary.LittleEndian.Uint16(checksum) != crc16(body) {
		return 0, nil, i18n.NewError(ctx, sbmsgs.MsgStrkeyChecksum)
	}
	version := VersionByte(body[0])
	payload := body[1:]
	if err := checkLength(ctx, version, len(payload)); err != nil {
		return 0, nil, err
	}
	return version, payload, nil
}

// Decode returns the payload of s, which must carry the expected version
func Decode(expected VersionByte, s string) ([]byte, error) {
	ctx := context.Background()
	version, payload, err := decodeRaw(ctx, s)
	if err != nil {
		return nil, err
	}
	if version != expected {
		return nil, i18n.NewError(ctx, sbmsgs.MsgStrkeyWrongVersion, version, expected)
	}
	return payload, nil
}

// DecodeAny returns the version and payload of any valid strkey
func DecodeAny(s string) (VersionByte, []byte, error) {
	return decodeRaw(context.Background(), s)
}

func IsValidEd25519PublicKey(s string) bool {
	_, err := Decode(VersionByteAccountID, s)
	return err == nil
}

func IsValidEd25519SecretSeed(s string) bool {
	_, err := Decode(VersionByteSeed, s)
	return err == nil
}

func IsValidContract(s string) bool {
	_, err := Decode(VersionByteContract, s)
	return err == nil
}
