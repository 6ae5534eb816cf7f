package loader

import (
	"bytes"
	"encoding/json"
	"io"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/sharerecovery/peer"
	"go.dedis.ch/sharerecovery/peer/impl/interpolation"
	"go.dedis.ch/sharerecovery/types"
	"golang.org/x/xerrors"
)

const keysField = "keys"

// Load reads and parses the share document at path.
func Load(path string, conf peer.Configuration) (types.ShareSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ShareSet{}, xerrors.Errorf("failed to read %s: %v", path, err)
	}
	return Parse(data, conf)
}

// Parse decodes a share document:
//
//	{"keys": {"n": 4, "k": 3}, "1": {"base": "10", "value": "4"}, ...}
//
// Every decimal key is the abscissa of a share whose ordinate is value
// written in base. The returned shares are sorted by ascending abscissa.
func Parse(data []byte, conf peer.Configuration) (types.ShareSet, error) {
	entries, err := readObject(data)
	if err != nil {
		return types.ShareSet{}, err
	}

	set := types.ShareSet{}
	keysFound := false
	seen := map[string]struct{}{}

	for _, entry := range entries {
		if entry.key == keysField {
			set.N, set.K, err = parseKeys(entry.raw)
			if err != nil {
				return types.ShareSet{}, err
			}
			keysFound = true
			continue
		}

		if !isNumericKey(entry.key) {
			if conf.StrictKeys {
				return types.ShareSet{}, inputErrorf(entry.key, nil, "key is not a decimal abscissa")
			}
			log.Debug().Msgf("ignoring non-numeric key %q", entry.key)
			continue
		}

		share, err := parseShare(entry.key, entry.raw)
		if err != nil {
			return types.ShareSet{}, err
		}

		x := share.X().String()
		if _, ok := seen[x]; ok && conf.RejectDuplicates {
			return types.ShareSet{}, inputErrorf(entry.key, nil, "duplicate x=%s", x)
		}
		seen[x] = struct{}{}

		set.Shares = append(set.Shares, share)
	}

	if !keysFound {
		return types.ShareSet{}, inputErrorf(keysField, nil, "missing object")
	}
	if conf.MaxThreshold > 0 && set.K > conf.MaxThreshold {
		return types.ShareSet{}, inputErrorf(keysField+".k", nil,
			"threshold %d exceeds the maximum %d", set.K, conf.MaxThreshold)
	}
	if conf.EnforceShareCount && len(set.Shares) != set.N {
		return types.ShareSet{}, inputErrorf(keysField+".n", nil,
			"declared n=%d but found %d shares", set.N, len(set.Shares))
	}
	if len(set.Shares) < set.K {
		return types.ShareSet{}, &interpolation.InsufficientSharesError{Have: len(set.Shares), Need: set.K}
	}

	set.SortByX()

	return set, nil
}

// -----------------------------------------------------------------------------
// Utils

type entry struct {
	key string
	raw json.RawMessage
}

// readObject returns the members of the top-level object in document order.
// Repeated keys are kept.
func readObject(data []byte) ([]entry, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, inputErrorf("document", err, "malformed JSON")
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, inputErrorf("document", nil, "expected a JSON object")
	}

	entries := []entry{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, inputErrorf("document", err, "malformed JSON")
		}
		key, ok := tok.(string)
		if !ok {
			return nil, inputErrorf("document", nil, "unexpected token %v", tok)
		}

		var raw json.RawMessage
		err = dec.Decode(&raw)
		if err != nil {
			return nil, inputErrorf(key, err, "malformed JSON")
		}
		entries = append(entries, entry{key: key, raw: raw})
	}

	_, err = dec.Token()
	if err != nil {
		return nil, inputErrorf("document", err, "malformed JSON")
	}
	_, err = dec.Token()
	if err != io.EOF {
		return nil, inputErrorf("document", nil, "trailing data after the object")
	}

	return entries, nil
}

type keysObject struct {
	N *flexValue `json:"n"`
	K *flexValue `json:"k"`
}

type shareObject struct {
	Base  *flexValue `json:"base"`
	Value *flexValue `json:"value"`
}

func parseKeys(raw json.RawMessage) (n int, k int, err error) {
	var keys keysObject
	err = json.Unmarshal(raw, &keys)
	if err != nil {
		return 0, 0, inputErrorf(keysField, err, "expected an object")
	}

	if keys.N == nil {
		return 0, 0, inputErrorf(keysField+".n", nil, "missing field")
	}
	if keys.K == nil {
		return 0, 0, inputErrorf(keysField+".k", nil, "missing field")
	}

	n, err = keys.N.Int()
	if err != nil {
		return 0, 0, inputErrorf(keysField+".n", err, "must be an integer")
	}
	k, err = keys.K.Int()
	if err != nil {
		return 0, 0, inputErrorf(keysField+".k", err, "must be an integer")
	}
	if k <= 0 {
		return 0, 0, inputErrorf(keysField+".k", nil, "must be positive, got %d", k)
	}

	return n, k, nil
}

func parseShare(key string, raw json.RawMessage) (types.Share, error) {
	x, ok := new(big.Int).SetString(key, 10)
	if !ok {
		return types.Share{}, inputErrorf(key, nil, "invalid abscissa")
	}

	var obj shareObject
	err := json.Unmarshal(raw, &obj)
	if err != nil {
		return types.Share{}, inputErrorf(key, err, "expected an object with base and value")
	}
	if obj.Base == nil {
		return types.Share{}, inputErrorf(key+".base", nil, "missing field")
	}
	if obj.Value == nil {
		return types.Share{}, inputErrorf(key+".value", nil, "missing field")
	}

	base, err := obj.Base.Int()
	if err != nil {
		return types.Share{}, inputErrorf(key+".base", err, "must be an integer")
	}
	if base < 2 || base > 36 {
		return types.Share{}, inputErrorf(key+".base", nil, "invalid base %d for x=%s (allowed 2..36)", base, x)
	}

	digits := obj.Value.String()
	if digits == "" {
		return types.Share{}, inputErrorf(key+".value", nil, "empty value for x=%s", x)
	}

	y, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return types.Share{}, inputErrorf(key+".value", nil, "invalid digits for base %d at x=%s: %q", base, x, digits)
	}

	return types.NewShare(x, y)
}

// isNumericKey accepts digits only, no sign and no decimal point.
func isNumericKey(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// flexValue holds a JSON scalar given either as a string or as a number.
type flexValue struct {
	text   string
	number bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *flexValue) UnmarshalJSON(data []byte) error {
	var s string
	if json.Unmarshal(data, &s) == nil {
		v.text = strings.TrimSpace(s)
		return nil
	}

	var num json.Number
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	err := dec.Decode(&num)
	if err != nil {
		return xerrors.Errorf("expected a string or a number, got %s", data)
	}
	v.text = num.String()
	v.number = true
	return nil
}

func (v flexValue) String() string {
	return v.text
}

// Int accepts decimal strings, and JSON numbers with an integral value such
// as 3, 3.0 or 3e0.
func (v flexValue) Int() (int, error) {
	if !v.number {
		return strconv.Atoi(v.text)
	}

	r, ok := new(big.Rat).SetString(v.text)
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return 0, xerrors.Errorf("%s is not an integer", v.text)
	}
	n := r.Num().Int64()
	if int64(int(n)) != n {
		return 0, xerrors.Errorf("%s is out of range", v.text)
	}
	return int(n), nil
}
