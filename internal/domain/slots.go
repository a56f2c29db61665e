package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// slotDef describes one named colour slot: its output slug and the value
// used when a document leaves it out.
type slotDef struct {
	slug string
	def  Variable
}

type slotTable []slotDef

func (t slotTable) index(slug string) int {
	for i, s := range t {
		if s.slug == slug {
			return i
		}
	}
	return -1
}

func (t slotTable) defaults(dst []Variable) {
	for i, s := range t {
		dst[i] = s.def
	}
}

// decode fills dst from a JSON object keyed by slug. Absent slots keep their
// defaults and unknown keys are ignored.
func (t slotTable) decode(data []byte, dst []Variable) error {
	t.defaults(dst)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, raw := range fields {
		i := t.index(key)
		if i < 0 {
			continue
		}
		v, err := decodeVariable(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		dst[i] = v
	}
	return nil
}

// encode writes values as a JSON object in slot order.
func (t slotTable) encode(values []Variable) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, s := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, _ := json.Marshal(s.slug)
		buf.Write(key)
		buf.WriteByte(':')

		v := values[i]
		if v == nil {
			v = s.def
		}
		data, err := marshalVariable(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.slug, err)
		}
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (t slotTable) validate(values []Variable) error {
	for i, s := range t {
		if values[i] == nil {
			continue
		}
		if err := checkDefaults(values[i]); err != nil {
			return fmt.Errorf("%s: %w", s.slug, err)
		}
	}
	return nil
}

func byMode(light, dark string) ByMode {
	return ByMode{Light: light, Dark: dark}
}
