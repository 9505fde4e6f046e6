/*
Package wallet implements a shared account governed by a board.

State changes do not happen directly. They are proposed as actions,
collected in an append-only log, signed by board members and executed by
anyone with a propose-capable role once enough signatures are valid. A
signature is judged at evaluation time: it counts only while its author
still holds the board member role and still meets the stake requirement.

Membership itself is managed through the same mechanism. Adding and
removing board members and proposers, changing the quorum, slashing
misbehaving members and delegating work to external services are all
action variants, so every administrative change requires the same
quorum of the current board.

Batch-scoped actions (status reports and transfer batches) are guarded
by a deduplication index so the same work cannot be proposed, or
executed, twice for one batch.

Every operation is atomic: it runs inside a cache wrap of the backing
store and is discarded completely on error.
*/
package wallet
