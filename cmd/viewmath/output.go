package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/philipparndt/viewmath/pkg/config"
	"gopkg.in/yaml.v3"
)

// printer writes a command result in the selected format. Text output is
// produced by the command itself since every result reads differently.
type printer struct {
	w      io.Writer
	format string
}

func (p *printer) print(v any, text func(w io.Writer)) error {
	switch p.format {
	case config.FormatJSON:
		// encoding/json rejects NaN and Inf, which degenerate inputs
		// produce. Go through a YAML node tree, which keeps them.
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		doc, err := jsonValue(&n)
		if err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case config.FormatYAML:
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case config.FormatText, "":
		text(p.w)
	default:
		return fmt.Errorf("unknown output format %q", p.format)
	}
	return nil
}

// jsonValue converts a YAML node tree to values encoding/json can write.
// Non-finite floats become the strings "NaN", "+Inf" and "-Inf".
func jsonValue(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return jsonValue(n.Content[0])
	case yaml.AliasNode:
		return jsonValue(n.Alias)
	case yaml.MappingNode:
		obj := make(jsonObject, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := jsonValue(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			obj = append(obj, jsonField{key: n.Content[i].Value, value: v})
		}
		return obj, nil
	case yaml.SequenceNode:
		arr := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := jsonValue(c)
			if err != nil {
				return nil, err
			}
			arr[i] = v
		}
		return arr, nil
	}

	if n.ShortTag() == "!!float" {
		switch strings.ToLower(n.Value) {
		case ".nan":
			return "NaN", nil
		case ".inf", "+.inf":
			return "+Inf", nil
		case "-.inf":
			return "-Inf", nil
		}
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

type jsonField struct {
	key   string
	value any
}

// jsonObject is a JSON object that keeps the field order of the result.
type jsonObject []jsonField

func (o jsonObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(f.value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func heading(w io.Writer, title string) {
	fmt.Fprintln(w, title)
	for range title {
		fmt.Fprint(w, "=")
	}
	fmt.Fprintln(w)
}
