// Package fixtures builds fully populated data-model instances for tests.
//
// It decouples the creation of entities in tests from their creation in
// production code, so changing a production constructor does not ripple
// through the whole test suite.
//
// The module is split into three packages:
//   - builder: copy-on-write fixture builders merging caller overrides
//     with definition defaults.
//   - fake: deterministic synthetic data, from plain counters up to
//     checksum-valid ISSN and ORCID identifiers.
//   - store: a generic in-memory persistence collaborator built entities
//     are saved into.
package fixtures
