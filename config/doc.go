// Package config holds the tunable parameters of an analysis session and
// loads them from YAML.
//
// Example file:
//
//	degenerator:
//	  feature_map: {捺: 点, 提: 横}
//	  no_cross: false
//	sieves: [结构完整, 根少优先, 能连不交, 能散不连, 同向笔画]
//	strong: [口, 木]
//	weak: [丿]
//	decisions: {一: a, 丨: b, 口: k}
//	gap: 20
//
// Every field is optional; missing fields keep the Default value and
// feature_map entries extend the default map. Validate checks sieve names
// against a registry.
//
// Errors:
//
//   - ErrParse        malformed YAML
//   - ErrInvalid      negative gap or unknown stroke feature in the map
//   - sieve.ErrUnknownSieve, wrapped, for a sieve name missing from the registry
package config
