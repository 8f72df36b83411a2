package fleet

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The board feed is hand-maintained and types drift: numeric columns show up
// as numbers, numeric strings or blanks, and yes/no columns as strings or
// booleans. FlexFloat and FlexString absorb that at the decoding boundary so
// the normalizer sees one canonical form.

// FlexFloat decodes a JSON number, numeric string, null or blank into a
// float64. Anything unparseable decodes as 0.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*f = 0
			return nil
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		*f = 0
		return nil
	}
	*f = FlexFloat(v)
	return nil
}

// FlexString decodes any JSON scalar into its string form. Numbers keep
// their literal representation, null decodes as the empty string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexString(str)
		return nil
	}
	*f = FlexString(s)
	return nil
}
