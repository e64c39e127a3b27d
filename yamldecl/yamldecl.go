// Package yamldecl builds signature declarations from YAML documents. A
// document is a list of signatures, each a list of descriptors:
//
//	- [number, {rest: {nullable: string}}, undef]
//	- [string]
//
// Builtins, sentinels and registered nominal names appear as scalars;
// modifiers are single key maps, exactly like Go descriptor maps. A bare
// null scalar is the Null sentinel. Custom predicates cannot be expressed
// in YAML and fail the declaration.
package yamldecl

import (
	"fmt"

	"github.com/sigh0829/check-args/signature"
	"gopkg.in/yaml.v2"
)

// Load parses a declaration document into a signature builder. YAML syntax
// errors and an empty document are returned as errors; invalid descriptors
// panic the same way Go declarations do.
func Load(data []byte) (*signature.Builder, error) {
	var raw [][]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf(`yamldecl: document declares no signatures`)
	}
	var b *signature.Builder
	for _, descs := range raw {
		if b == nil {
			b = signature.Declare(descs...)
		} else {
			b.Declare(descs...)
		}
	}
	return b, nil
}
