// Package loader fills a typed platform from a YAML platform descriptor.
//
// The descriptor is deserialized into plain structs and handed to the
// internal/ir/ops builders, which do all validation. The loader never
// interprets schema strings; anything beyond the typed descriptor (gate
// decomposition programs, topology, calibration data) is the business of
// external front-ends.
package loader
