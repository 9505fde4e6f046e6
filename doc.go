/*
Package multisig defines the common interfaces that weave together the
subpackages of the quorum-gated action authorization engine.

The root package carries only the shared kernel: addresses, the
persistence contract for stored models, the key-value store interfaces
with their cache-wrap (savepoint) extension, and the context helpers
used to pass block information into operations.

The engine itself lives in the wallet package. Storage implementations
live in store, generic persistence helpers in orm and categorized
errors in errors.
*/
package multisig
