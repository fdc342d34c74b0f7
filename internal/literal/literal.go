// Copyright 2014-2022 Google Inc.
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

// Package literal reads and writes forests of strings as YAML.
//
// A literal is a sequence. Each element is either a scalar, which becomes a
// leaf, or a mapping with a scalar value and a sequence of children:
//
//	- value: 1
//	  children:
//	    - value: 11
//	      children: [111]
//	    - 12
//	- 2
//
// JSON is accepted as well, being a subset of YAML.
package literal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"

	"github.com/outtree/forest"
)

// ErrMalformed is wrapped by every error about the shape of a literal.
var ErrMalformed = errors.New("malformed forest literal")

type element struct {
	Value    json.RawMessage   `json:"value"`
	Children []json.RawMessage `json:"children,omitempty"`
}

// Decode builds a forest from a literal.
func Decode(data []byte) (*forest.Forest[string], error) {
	var items []json.RawMessage
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrap(ErrMalformed, err.Error())
	}
	trees, err := decodeList(items, "")
	if err != nil {
		return nil, err
	}
	f := forest.New[string]()
	end := f.Flat().End()
	for _, t := range trees {
		if _, err := f.Join(end, t); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ReadFile decodes the literal stored in the named file.
func ReadFile(name string) (*forest.Forest[string], error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}
	f, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", name)
	}
	return f, nil
}

func decodeList(items []json.RawMessage, path string) ([]*forest.Forest[string], error) {
	out := make([]*forest.Forest[string], 0, len(items))
	for i, raw := range items {
		p := fmt.Sprintf("%s[%d]", path, i)
		value, children, err := decodeElement(raw, p)
		if err != nil {
			return nil, err
		}
		subtrees, err := decodeList(children, p+".children")
		if err != nil {
			return nil, err
		}
		out = append(out, forest.Of(value, subtrees...))
	}
	return out, nil
}

func decodeElement(raw json.RawMessage, path string) (string, []json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		v, err := scalar(raw, path)
		return v, nil, err
	}

	var e element
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&e); err != nil {
		return "", nil, errors.Wrapf(ErrMalformed, "%s: %v", path, err)
	}
	if e.Value == nil {
		return "", nil, errors.Wrapf(ErrMalformed, "%s: missing value", path)
	}
	v, err := scalar(e.Value, path+".value")
	return v, e.Children, err
}

func scalar(raw json.RawMessage, path string) (string, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0, bytes.Equal(raw, []byte("null")):
		return "", errors.Wrapf(ErrMalformed, "%s: null value", path)
	case raw[0] == '{', raw[0] == '[':
		return "", errors.Wrapf(ErrMalformed, "%s: value is not a scalar", path)
	case raw[0] == '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", errors.Wrapf(ErrMalformed, "%s: %v", path, err)
		}
		return s, nil
	}
	// numbers and booleans are taken in their JSON spelling
	return string(raw), nil
}

type encoded struct {
	Value    string `json:"value"`
	Children []any  `json:"children"`
}

// Encode renders f as a literal that Decode reads back into an equal forest.
func Encode(f *forest.Forest[string]) ([]byte, error) {
	return EncodeView(f.Flat())
}

// EncodeView renders the descendants of the node bound to v.
func EncodeView(v forest.View[string]) ([]byte, error) {
	items, err := encodeList(v.Flat())
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(items)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode forest literal")
	}
	return out, nil
}

func encodeList(v forest.View[string]) ([]any, error) {
	items := make([]any, 0, v.ChildCount())
	for it := range v.Positions() {
		value, err := it.Value()
		if err != nil {
			return nil, err
		}
		children, err := it.View()
		if err != nil {
			return nil, err
		}
		if !children.HasChildren() {
			items = append(items, *value)
			continue
		}
		sub, err := encodeList(children)
		if err != nil {
			return nil, err
		}
		items = append(items, encoded{Value: *value, Children: sub})
	}
	return items, nil
}
