// Package transaction provides the unit-of-work boundary for the catalog and play queue stores.
//
// [Do] acquires a fresh connection, begins a transaction and hands the work function a [Tx] whose accessors
// return stores bound to that transaction. The transaction commits when the work returns nil and rolls back otherwise.
// Every failure, including failing to connect, begin or commit, is returned wrapped in [shared.ErrTransactionFailed]
// with the original error preserved for [errors.Is] and [errors.As].
//
// Stores obtained from a [Tx] must not be retained after the work function returns: the underlying transaction is
// finished by then and any further use fails with [sql.ErrTxDone].
package transaction
