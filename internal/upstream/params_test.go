package upstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func TestSettersOmitNilValues(t *testing.T) {
	p := Params{}
	p.SetString("name", nil)
	p.SetInt("targetId", nil)
	p.SetBool("approved", nil)
	p.SetFloat("molWeightGt", nil)

	assert.Empty(t, p, "unset fields must not produce parameters")
}

func TestBoolSerializesLowercase(t *testing.T) {
	p := Params{}
	p.SetBool("approved", boolPtr(true))
	p.SetBool("primaryTarget", boolPtr(false))

	assert.Equal(t, "true", p["approved"])
	assert.Equal(t, "false", p["primaryTarget"], "explicit false is sent, not dropped")
}

func TestNumericSerialization(t *testing.T) {
	p := Params{}
	p.SetInt("targetId", intPtr(42))
	p.SetFloat("molWeightGt", floatPtr(100))
	p.SetFloat("molWeightLt", floatPtr(499.5))

	assert.Equal(t, "42", p["targetId"])
	assert.Equal(t, "100", p["molWeightGt"], "whole floats use plain decimal form")
	assert.Equal(t, "499.5", p["molWeightLt"])
}

func TestStringSerialization(t *testing.T) {
	p := Params{}
	p.SetString("geneSymbol", strPtr("HTR1A"))

	assert.Equal(t, Params{"geneSymbol": "HTR1A"}, p)
}

func TestEncodeEscapesValues(t *testing.T) {
	p := Params{"name": "5-HT receptor", "type": "GPCR"}

	encoded := p.Encode()
	assert.Contains(t, encoded, "name=5-HT+receptor")
	assert.Contains(t, encoded, "type=GPCR")
}

func TestEncodeEmptyParams(t *testing.T) {
	assert.Equal(t, "", Params{}.Encode())
	assert.Equal(t, "", Params(nil).Encode())
}
