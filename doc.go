// Package garagebook implements the customer and invoice book of a small
// automotive repair shop. It is local-first: the whole state lives in a few
// JSON documents under one directory, loaded once and rewritten wholesale on
// every mutation.
//
// The core functionalities include:
//   - Customer Book: the in-memory customer collection (Book), the single
//     source of truth during a run and the only writer back to the store.
//     Customers own their vehicles, vehicles own their invoices; deletions
//     cascade along ownership.
//   - Invoice Session: the mutable state of one invoice under composition,
//     with line-item editing, the one-shot VAT rule for parts entries and
//     totals that always satisfy final = labour + parts.
//   - Analytics: read-only monthly profit rollups, yearly filtering, summary
//     statistics and month-over-month trends, plus the aggregate views the
//     chat assistant is restricted to.
//   - Data Persistence: canonical JSON encoding of the customer collection,
//     global settings and the business header, with first-run seeding from a
//     bundled dataset.
//
// This package serves as the foundational logic for the `gbk` command-line
// tool.
package garagebook
