package kv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Both codecs keep iteration order: a list encodes as an array and a map as
// an object whose members appear in key order of the sequence. Decoding an
// object turns canonical decimal member names ("0", "-7", but not "07")
// back into integer keys.

// MarshalJSON implements [json.Marshaler].
func (s *Seq[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	list := s.IsList()
	if list {
		buf.WriteByte('[')
	} else {
		buf.WriteByte('{')
	}
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		if !list {
			name, err := json.Marshal(s.keys[i].String())
			if err != nil {
				return nil, err
			}
			buf.Write(name)
			buf.WriteByte(':')
		}
		b, err := json.Marshal(s.values[i])
		if err != nil {
			return nil, fmt.Errorf("kv: marshal value at key %v: %w", s.keys[i], err)
		}
		buf.Write(b)
	}
	if list {
		buf.WriteByte(']')
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON implements [json.Unmarshaler]. The receiver is reset first.
func (s *Seq[V]) UnmarshalJSON(data []byte) error {
	s.Reset()
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	switch tok {
	case json.Delim('['):
		for dec.More() {
			var v V
			if err := dec.Decode(&v); err != nil {
				return err
			}
			s.Append(v)
		}
	case json.Delim('{'):
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return err
			}
			name, _ := nameTok.(string)
			var v V
			if err := dec.Decode(&v); err != nil {
				return err
			}
			s.Set(TextKey(name), v)
		}
	default:
		if tok == nil {
			return nil
		}
		return fmt.Errorf("kv: cannot decode JSON %v into a sequence", tok)
	}
	_, err = dec.Token()
	return err
}

// MarshalYAML implements [yaml.Marshaler].
func (s *Seq[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	list := s.IsList()
	if list {
		node.Kind = yaml.SequenceNode
	}
	for i := 0; i < s.Len(); i++ {
		var val yaml.Node
		if err := val.Encode(s.values[i]); err != nil {
			return nil, fmt.Errorf("kv: marshal value at key %v: %w", s.keys[i], err)
		}
		if !list {
			key := &yaml.Node{Kind: yaml.ScalarNode, Value: s.keys[i].String()}
			if s.keys[i].IsInt() {
				key.Tag = "!!int"
			} else {
				key.Tag = "!!str"
			}
			node.Content = append(node.Content, key)
		}
		node.Content = append(node.Content, &val)
	}
	return node, nil
}

// UnmarshalYAML implements [yaml.Unmarshaler]. The receiver is reset first.
func (s *Seq[V]) UnmarshalYAML(node *yaml.Node) error {
	s.Reset()
	switch node.Kind {
	case yaml.SequenceNode:
		for _, item := range node.Content {
			var v V
			if err := item.Decode(&v); err != nil {
				return err
			}
			s.Append(v)
		}
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			var v V
			if err := node.Content[i+1].Decode(&v); err != nil {
				return err
			}
			s.Set(TextKey(node.Content[i].Value), v)
		}
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil
		}
		return fmt.Errorf("kv: cannot decode YAML scalar %q into a sequence", node.Value)
	default:
		return fmt.Errorf("kv: cannot decode YAML node kind %d into a sequence", node.Kind)
	}
	return nil
}

// TextKey converts a textual key name: canonical decimal integers ("0",
// "-3", but not "03" or "+1") become integer keys, everything else a
// string key.
func TextKey(name string) Key {
	if n, err := strconv.Atoi(name); err == nil && strconv.Itoa(n) == name {
		return IntKey(n)
	}
	return StrKey(name)
}
