// Copyright 2023 Contributors to the Veraison project.
// SPDX-License-Identifier: Apache-2.0

package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// Params is an insertion-ordered set of request parameters. The order is
// preserved on the wire, which matters because the encoded body is part of
// the request signature. A nil *Params is a valid, empty set.
type Params struct {
	keys   []string
	values map[string]interface{}
}

// NewParams builds a Params from alternating keys and values. A trailing key
// without value is ignored.
func NewParams(kv ...interface{}) *Params {
	p := &Params{}
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(fmt.Sprint(kv[i]), kv[i+1])
	}
	return p
}

// Set adds or replaces the value associated with key. Replacing keeps the
// original position of the key.
func (p *Params) Set(key string, value interface{}) *Params {
	if p.values == nil {
		p.values = make(map[string]interface{})
	}

	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value

	return p
}

func (p *Params) Get(key string) (interface{}, bool) {
	if p == nil {
		return nil, false
	}
	v, ok := p.values[key]
	return v, ok
}

func (p *Params) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

func (p *Params) Del(key string) {
	if !p.Has(key) {
		return
	}

	delete(p.values, key)
	for i, k := range p.keys {
		if k == key {
			p.keys = append(p.keys[:i], p.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the parameter names in insertion order.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	return append([]string(nil), p.keys...)
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Clone returns a shallow copy. Cloning a nil *Params yields an empty set,
// so product clients can add their fields without touching the caller's.
func (p *Params) Clone() *Params {
	c := &Params{}
	for _, k := range p.Keys() {
		c.Set(k, p.values[k])
	}
	return c
}

// Merge sets every parameter of other on p.
func (p *Params) Merge(other *Params) *Params {
	for _, k := range other.Keys() {
		p.Set(k, other.values[k])
	}
	return p
}

// EncodeForm renders the parameters as application/x-www-form-urlencoded
// (key1=val1&key2=val2). Slice values are emitted once per element.
func (p *Params) EncodeForm() string {
	var b strings.Builder

	write := func(k, v string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(k))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
	}

	for _, k := range p.Keys() {
		switch v := p.values[k].(type) {
		case []string:
			for _, s := range v {
				write(k, s)
			}
		case nil:
			write(k, "")
		default:
			write(k, fmt.Sprint(v))
		}
	}

	return b.String()
}

// MarshalJSON renders the parameters as a JSON object, keys in insertion
// order.
func (p *Params) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, k := range p.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalNoEscape(k)
		if err != nil {
			return nil, err
		}

		val, err := marshalNoEscape(p.values[k])
		if err != nil {
			return nil, fmt.Errorf("parameter %q: %w", k, err)
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func marshalNoEscape(v interface{}) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
