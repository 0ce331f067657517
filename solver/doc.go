// Package solver defines the external layered-layout contract: the
// request/response tree shape the E-engine hands to an ELK-compatible
// solver, the closed option-value enums the schema names, and the Solver
// interface itself. No layout algorithm lives here — this package is the
// black-box boundary egraph builds and eapply consumes.
//
// FakeSolver is a deterministic test double (grid-stub placement) used by
// egraph/eapply tests so those packages exercise the full request/response
// shape without a real ELK binding, an adapter boundary to an external
// graph library documented and faked rather than vendored.
package solver
