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

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-soroban/internal/sbmsgs"
)

// Unbounded is the maximum of a variable length opaque, string or array declared without a bound
const Unbounded = math.MaxUint32

// DefaultMaxDepth bounds the nesting of the recursive types (ScVal, SorobanAuthorizedInvocation)
const DefaultMaxDepth = 512

// Encodable is implemented by every wire type
type Encodable interface {
	EncodeTo(e *Encoder)
}

// Decodable is implemented by a pointer to every wire type
type Decodable interface {
	DecodeFrom(d *Decoder)
}

// DecodeError is returned for any malformed, truncated or out-of-set input.
// Decoding is all-or-nothing, so a DecodeError means the target value must be discarded.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string { return e.Err.Error() }
func (e *DecodeError) Unwrap() error { return e.Err }

func padLen(l int) int {
	return (4 - l%4) % 4
}

var zeroPad [4]byte

// Encoder appends the canonical encoding of values to an in-memory buffer.
// The first failure is sticky, and every later write is ignored.
type Encoder struct {
	ctx context.Context
	buf []byte
	err error
}

func NewEncoder() *Encoder {
	return &Encoder{ctx: context.Background()}
}

func (e *Encoder) Bytes() []byte { return e.buf }
func (e *Encoder) Err() error    { return e.err }
func (e *Encoder) Len() int      { return len(e.buf) }

// Fail records an encoding failure, if one is not already recorded
func (e *Encoder) Fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

func (e *Encoder) failf(key i18n.ErrorMessageKey, args ...interface{}) {
	e.Fail(i18n.NewError(e.ctx, key, args...))
}

func (e *Encoder) Uint32(v uint32) {
	if e.err == nil {
		e.buf = binary.BigEndian.AppendUint32(e.buf, v)
	}
}

func (e *Encoder) Int32(v int32) { e.Uint32(uint32(v)) }

func (e *Encoder) Uint64(v uint64) {
	if e.err == nil {
		e.buf = binary.BigEndian.AppendUint64(e.buf, v)
	}
}

func (e *Encoder) Int64(v int64) { e.Uint64(uint64(v)) }

func (e *Encoder) Bool(v bool) {
	if v {
		e.Uint32(1)
	} else {
		e.Uint32(0)
	}
}

// FixedOpaque writes exactly n bytes, with no length prefix and no padding
func (e *Encoder) FixedOpaque(name string, b []byte, n int) {
	if len(b) != n {
		e.failf(sbmsgs.MsgXDRFixedLength, name, n, len(b))
		return
	}
	if e.err == nil {
		e.buf = append(e.buf, b...)
	}
}

// Opaque writes a uint32 length, the content, then zero padding to a 4 byte boundary
func (e *Encoder) Opaque(name string, b []byte, max uint32) {
	if uint64(len(b)) > uint64(max) {
		e.failf(sbmsgs.MsgXDRLengthExceedsMax, len(b), max, name)
		return
	}
	e.Uint32(uint32(len(b)))
	if e.err == nil {
		e.buf = append(e.buf, b...)
		e.buf = append(e.buf, zeroPad[:padLen(len(b))]...)
	}
}

func (e *Encoder) String(name string, s string, max uint32) {
	e.Opaque(name, []byte(s), max)
}

// ArrayLen writes the count prefix of a variable length array
func (e *Encoder) ArrayLen(name string, n int, max uint32) {
	if uint64(n) > uint64(max) {
		e.failf(sbmsgs.MsgXDRLengthExceedsMax, n, max, name)
		return
	}
	e.Uint32(uint32(n))
}

// Enum writes v, which must be one of the declared symbols
func (e *Encoder) Enum(name string, names map[int32]string, v int32) {
	if _, ok := names[v]; !ok {
		e.failf(sbmsgs.MsgXDRInvalidEnum, v, name)
		return
	}
	e.Int32(v)
}

// Present writes the flag of an optional value
func (e *Encoder) Present(present bool) { e.Bool(present) }

// ArmMissing records a union whose discriminant selects an arm that has no value
func (e *Encoder) ArmMissing(union string, disc int32) {
	e.failf(sbmsgs.MsgXDRUnionArmMissing, union, disc)
}

// UnknownArm records a union discriminant with no declared arm
func (e *Encoder) UnknownArm(union string, disc int32) {
	e.failf(sbmsgs.MsgXDRUnknownDiscriminant, union, disc)
}

// UnsupportedArm records a declared arm this client has no codec for
func (e *Encoder) UnsupportedArm(union string, arm fmt.Stringer) {
	e.failf(sbmsgs.MsgXDRUnsupportedArm, union, arm.String())
}

// Decoder reads canonical encodings from a byte slice.
// The first failure is sticky, and every later read returns a zero value.
type Decoder struct {
	ctx      context.Context
	buf      []byte
	off      int
	err      error
	depth    int
	maxDepth int
}

func NewDecoder(b []byte) *Decoder {
	return &Decoder{
		ctx:      context.Background(),
		buf:      b,
		maxDepth: DefaultMaxDepth,
	}
}

// WithMaxDepth overrides the nesting bound for recursive types
func (d *Decoder) WithMaxDepth(depth int) *Decoder {
	d.maxDepth = depth
	return d
}

func (d *Decoder) Err() error     { return d.err }
func (d *Decoder) Offset() int    { return d.off }
func (d *Decoder) Remaining() int { return len(d.buf) - d.off }

func (d *Decoder) failAt(offset int, key i18n.ErrorMessageKey, args ...interface{}) {
	if d.err == nil {
		d.err = &DecodeError{Offset: offset, Err: i18n.NewError(d.ctx, key, args...)}
	}
}

func (d *Decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n > d.Remaining() {
		d.failAt(d.off, sbmsgs.MsgXDRShortBuffer, d.off, n, d.Remaining())
		return nil
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b
}

func (d *Decoder) Uint32() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (d *Decoder) Int32() int32 { return int32(d.Uint32()) }

func (d *Decoder) Uint64() uint64 {
	b := d.take(8)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

func (d *Decoder) Int64() int64 { return int64(d.Uint64()) }

func (d *Decoder) Bool() bool {
	off := d.off
	switch v := d.Uint32(); v {
	case 0:
		return false
	case 1:
		return true
	default:
		d.failAt(off, sbmsgs.MsgXDRInvalidBool, off, v)
		return false
	}
}

// Present reads the flag of an optional value
func (d *Decoder) Present() bool { return d.Bool() }

// ReadFixed fills dst exactly, consuming no padding
func (d *Decoder) ReadFixed(dst []byte) {
	if b := d.take(len(dst)); b != nil {
		copy(dst, b)
	}
}

// Opaque reads a length prefixed value, verifying the length bound and that the padding is present and zero
func (d *Decoder) Opaque(name string, max uint32) []byte {
	off := d.off
	l := d.Uint32()
	if d.err != nil {
		return nil
	}
	if l > max {
		d.failAt(off, sbmsgs.MsgXDRLengthExceedsMax, l, max, name)
		return nil
	}
	if uint64(l) > uint64(d.Remaining()) {
		d.failAt(d.off, sbmsgs.MsgXDRShortBuffer, d.off, l, d.Remaining())
		return nil
	}
	content := d.take(int(l))
	padOff := d.off
	pad := d.take(padLen(int(l)))
	if d.err != nil {
		return nil
	}
	for i, p := range pad {
		if p != 0 {
			d.failAt(padOff+i, sbmsgs.MsgXDRNonZeroPadding, padOff+i)
			return nil
		}
	}
	out := make([]byte, l)
	copy(out, content)
	return out
}

func (d *Decoder) String(name string, max uint32) string {
	return string(d.Opaque(name, max))
}

// ArrayLen reads the count prefix of a variable length array. Every element
// occupies at least 4 bytes, so a count that cannot fit in the remaining
// input fails here rather than after a large allocation.
func (d *Decoder) ArrayLen(name string, max uint32) int {
	off := d.off
	n := d.Uint32()
	if d.err != nil {
		return 0
	}
	if n > max {
		d.failAt(off, sbmsgs.MsgXDRLengthExceedsMax, n, max, name)
		return 0
	}
	if uint64(n)*4 > uint64(d.Remaining()) {
		d.failAt(off, sbmsgs.MsgXDRArrayTooLarge, off, n, d.Remaining())
		return 0
	}
	return int(n)
}

// Enum reads a value that must be one of the declared symbols
func (d *Decoder) Enum(name string, names map[int32]string) int32 {
	off := d.off
	v := d.Int32()
	if d.err != nil {
		return 0
	}
	if _, ok := names[v]; !ok {
		d.failAt(off, sbmsgs.MsgXDRInvalidEnum, v, name)
		return 0
	}
	return v
}

// UnknownArm records a union discriminant with no declared arm
func (d *Decoder) UnknownArm(union string, disc int32) {
	d.failAt(d.off-4, sbmsgs.MsgXDRUnknownDiscriminant, union, disc)
}

// UnsupportedArm records a declared arm this client has no codec for
func (d *Decoder) UnsupportedArm(union string, arm fmt.Stringer) {
	d.failAt(d.off-4, sbmsgs.MsgXDRUnsupportedArm, union, arm.String())
}

func (d *Decoder) enter() bool {
	d.depth++
	if d.depth > d.maxDepth {
		d.failAt(d.off, sbmsgs.MsgXDRMaxDepth, d.maxDepth)
		return false
	}
	return d.err == nil
}

func (d *Decoder) leave() {
	d.depth--
}

func encodeArray[T Encodable](e *Encoder, name string, xs []T, max uint32) {
	e.ArrayLen(name, len(xs), max)
	for _, x := range xs {
		x.EncodeTo(e)
	}
}

func decodeArray[T any, PT interface {
	*T
	Decodable
}](d *Decoder, name string, max uint32) []T {
	n := d.ArrayLen(name, max)
	if d.err != nil {
		return nil
	}
	xs := make([]T, n)
	for i := range xs {
		PT(&xs[i]).DecodeFrom(d)
		if d.err != nil {
			return nil
		}
	}
	return xs
}

func encodeOptional[T Encodable](e *Encoder, v *T) {
	e.Present(v != nil)
	if v != nil {
		(*v).EncodeTo(e)
	}
}

func decodeOptional[T any, PT interface {
	*T
	Decodable
}](d *Decoder) *T {
	if !d.Present() || d.err != nil {
		return nil
	}
	v := new(T)
	PT(v).DecodeFrom(d)
	return v
}

func typeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}

// Marshal returns the canonical encoding of v
func Marshal(v Encodable) ([]byte, error) {
	e := NewEncoder()
	v.EncodeTo(e)
	if e.err != nil {
		return nil, e.err
	}
	return e.buf, nil
}

// Unmarshal decodes all of b into v. Trailing bytes are an error.
func Unmarshal(b []byte, v Decodable) error {
	d := NewDecoder(b)
	v.DecodeFrom(d)
	if d.err != nil {
		return d.err
	}
	if d.Remaining() != 0 {
		return &DecodeError{Offset: d.off, Err: i18n.NewError(d.ctx, sbmsgs.MsgXDRTrailingBytes, typeName(v), d.Remaining())}
	}
	return nil
}

func MarshalBase64(v Encodable) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

func decodeBase64(ctx context.Context, s string, v interface{}) ([]byte, error) {
	if s == "" {
		return nil, &DecodeError{Err: i18n.NewError(ctx, sbmsgs.MsgXDREmpty, typeName(v))}
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, &DecodeError{Err: i18n.WrapError(ctx, err, sbmsgs.MsgXDRInvalidBase64, err)}
	}
	return b, nil
}

func UnmarshalBase64(s string, v Decodable) error {
	b, err := decodeBase64(context.Background(), s, v)
	if err != nil {
		return err
	}
	return Unmarshal(b, v)
}

// SafeUnmarshalBase64 decodes s into v, then re-encodes v and requires the
// result to be byte-identical to the input
func SafeUnmarshalBase64[T any, PT interface {
	*T
	Decodable
	Encodable
}](s string, v PT) error {
	ctx := context.Background()
	b, err := decodeBase64(ctx, s, v)
	if err != nil {
		return err
	}
	if err := Unmarshal(b, v); err != nil {
		return err
	}
	reencoded, err := Marshal(v)
	if err != nil {
		return err
	}
	if !bytes.Equal(b, reencoded) {
		return &DecodeError{Err: i18n.NewError(ctx, sbmsgs.MsgXDRRoundTripMismatch, typeName(v))}
	}
	return nil
}
