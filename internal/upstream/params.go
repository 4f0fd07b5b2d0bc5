package upstream

import (
	"net/url"
	"strconv"
)

// Params holds the query parameters for one upstream call. Setters take
// pointers so an unset filter field produces no entry at all; the upstream
// service treats a present-but-empty parameter differently from an absent
// one.
type Params map[string]string

// SetString adds a string parameter when v is set.
func (p Params) SetString(name string, v *string) {
	if v != nil {
		p[name] = *v
	}
}

// SetInt adds an integer parameter in decimal form when v is set.
func (p Params) SetInt(name string, v *int) {
	if v != nil {
		p[name] = strconv.Itoa(*v)
	}
}

// SetBool adds a boolean parameter when v is set. The upstream service only
// accepts the lowercase literals "true" and "false".
func (p Params) SetBool(name string, v *bool) {
	if v != nil {
		p[name] = strconv.FormatBool(*v)
	}
}

// SetFloat adds a float parameter in its shortest decimal form when v is set.
func (p Params) SetFloat(name string, v *float64) {
	if v != nil {
		p[name] = strconv.FormatFloat(*v, 'f', -1, 64)
	}
}

// Encode returns the URL-encoded query string for the parameters.
func (p Params) Encode() string {
	values := url.Values{}
	for name, value := range p {
		values.Set(name, value)
	}
	return values.Encode()
}
