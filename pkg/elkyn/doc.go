// Package elkyn is the public, embeddable API for the database: a
// path-addressed tree of JSON-like values, live subscriptions, and
// declarative path-based authorization over rule documents. It
// re-exports the shapes callers need from the internal packages so a
// consumer only ever imports this one path.
package elkyn
