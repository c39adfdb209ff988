// Package controllers turns user intents into single transactional round trips.
//
// Every operation runs exactly one unit of work through [transaction.Do] and, once the transaction has returned
// successfully, publishes the fresh state to a [View]. Failures are returned to the caller unchanged and nothing is
// published for them.
package controllers
