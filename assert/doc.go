/*
Package assert supports the two ways invariants are checked while building a router:
  - Collecting every configuration problem into one error, so a bad tree reports all of its mistakes at once.
  - Assertions that panic when an internal invariant is violated.

Assertions are compiled out with the 'noassert' build tag.
*/
package assert
