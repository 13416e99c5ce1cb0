// Package catalog defines the catalog item model and a client for the
// upstream catalog provider.
//
// Items are consumed read-only. The provider owns them; this module never
// mutates an item it was handed, and decoding is deliberately lenient: a
// missing field becomes an empty string or zero, never an error. A partial
// record from the provider should degrade matching precision, not break a
// request.
package catalog
