package skemawire

// Package skemawire converts native Go values into JSON-compatible wire values
// under the direction of a schema document.
//
// - A stable error model via Issues (JSON Pointer, code, message)
// - An ordered wire mapping (Object) so emitted keys follow input order
// - Schema nodes and lookups under schema/, the format registry under format/
// - Model (named struct) resolution under model/, the engine under marshal/
// - Wire serializers (JSON, YAML, CBOR) under codec/, and the CLI under cmd/skemawire
//
// Design policy:
// - Keep only shared public types in the root package.
// - Registries are explicit objects injected into the engine; nothing is global.
// - Unknown formats degrade to passthrough and are reported through zap, never as errors.
//
// Typical usage:
//
//	formats := format.NewRegistry(format.WithLogger(logger))
//	models := model.NewRegistry()
//	_ = models.Register("Pet", Pet{})
//	m := marshal.New(formats, models)
//	wire, err := m.Marshal(petSchema, pet)
//	if iss, ok := skemawire.AsIssues(err); ok {
//		// iss[0].Code, iss[0].Path
//	}
