package patloc

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Resolution is the outcome of resolving one (page, role, field) triple.
// Exactly one shape is populated: Locator for an explicit override, or
// Candidates plus Description for a template-generated result. A Resolution
// is created fresh per call and holds no engine state.
type Resolution struct {
	Locator     string
	Candidates  []string
	Description string
}

// IsExplicit reports whether the resolution came from an explicit override
// rather than a template.
func (r Resolution) IsExplicit() bool {
	return len(r.Candidates) == 0
}

// All returns the locator strings the driver layer should evaluate, in
// order. The first candidate matching a live element is authoritative; the
// driver reports element-not-found only after exhausting the whole list.
func (r Resolution) All() []string {
	if r.IsExplicit() {
		return []string{r.Locator}
	}
	out := make([]string, len(r.Candidates))
	copy(out, r.Candidates)
	return out
}

// compositeDoc is the JSON document format generated resolutions are
// written back to the bundle in, compatible with the QAF locator format.
type compositeDoc struct {
	Locator []string `json:"locator"`
	Desc    string   `json:"desc"`
}

// encode renders the write-back document for a generated resolution.
func (r Resolution) encode() string {
	data, err := json.Marshal(compositeDoc{Locator: r.Candidates, Desc: r.Description})
	if err != nil {
		// Marshalling strings cannot fail.
		panic(err)
	}
	return string(data)
}

// decodeResolution recognises a written-back composite document stored in
// an override slot and turns it back into a generated Resolution.
func decodeResolution(raw string) (Resolution, bool) {
	if len(raw) == 0 || raw[0] != '{' || !gjson.Valid(raw) {
		return Resolution{}, false
	}
	locators := gjson.Get(raw, "locator")
	if !locators.IsArray() {
		return Resolution{}, false
	}
	res := Resolution{Description: gjson.Get(raw, "desc").String()}
	for _, l := range locators.Array() {
		res.Candidates = append(res.Candidates, l.String())
	}
	return res, len(res.Candidates) > 0
}
